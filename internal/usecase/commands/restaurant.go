package commands

import (
	"context"

	"github.com/angelgmx/reservaIA/internal/domain/restaurant"
	"github.com/angelgmx/reservaIA/internal/domain/user"
	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/pkg/errs"
	"github.com/angelgmx/reservaIA/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRestaurantAlreadyExists = errs.New("owner already has a restaurant")
	ErrGalleryPhotoNotFound    = errs.New("gallery photo not found")
)

type RestaurantCommands interface {
	// Setup creates the owner's restaurant and promotes the account.
	Setup(ctx context.Context, ownerID uuid.UUID, req reqdto.SetupRestaurantRequest) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, ownerID uuid.UUID, req reqdto.UpdateRestaurantProfileRequest) error
	UpdateBranding(ctx context.Context, ownerID uuid.UUID, req reqdto.UpdateBrandingRequest) error
	AddGalleryPhoto(ctx context.Context, ownerID uuid.UUID, url string) error
	RemoveGalleryPhoto(ctx context.Context, ownerID uuid.UUID, index int) error
	UpdateChatbotContext(ctx context.Context, ownerID uuid.UUID, req reqdto.UpdateChatbotContextRequest) error
}

type restaurantCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRestaurantCommands(uow shared.UnitOfWork) RestaurantCommands {
	return &restaurantCommandsImpl{uow: uow}
}

func (c *restaurantCommandsImpl) Setup(ctx context.Context, ownerID uuid.UUID, req reqdto.SetupRestaurantRequest) (uuid.UUID, error) {
	name, contact, priceRange, capacity, err := profileValues(
		req.Name, req.Address, req.City, req.Phone, req.Email, req.PriceRange, req.MaxCapacity,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	rest := restaurant.NewRestaurant(
		ownerID,
		name,
		derefOrEmpty(req.Description),
		contact,
		derefOrEmpty(req.CuisineType),
		priceRange,
		capacity,
	)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().RestaurantByOwner(ctx, ownerID); err == nil {
			return ErrRestaurantAlreadyExists
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if _, err := tx.Restaurants().Create(ctx, tx.DB(), rest); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrRestaurantAlreadyExists)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Users().UpdateRole(ctx, tx.DB(), ownerID, user.RoleRestaurantOwner); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return rest.ID(), nil
}

func (c *restaurantCommandsImpl) UpdateProfile(ctx context.Context, ownerID uuid.UUID, req reqdto.UpdateRestaurantProfileRequest) error {
	name, contact, priceRange, capacity, err := profileValues(
		req.Name, req.Address, req.City, req.Phone, req.Email, req.PriceRange, req.MaxCapacity,
	)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return c.withOwnedRestaurant(ctx, ownerID, func(rest *restaurant.Restaurant) error {
		rest.UpdateProfile(
			name,
			derefOrEmpty(req.Description),
			contact,
			derefOrEmpty(req.CuisineType),
			priceRange,
			capacity,
		)
		if req.IsActive != nil {
			rest.SetActive(*req.IsActive)
		}
		return nil
	})
}

func (c *restaurantCommandsImpl) UpdateBranding(ctx context.Context, ownerID uuid.UUID, req reqdto.UpdateBrandingRequest) error {
	primary, err := restaurant.NewThemeColor(derefOrEmpty(req.PrimaryColor))
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	secondary, err := restaurant.NewThemeColor(derefOrEmpty(req.SecondaryColor))
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return c.withOwnedRestaurant(ctx, ownerID, func(rest *restaurant.Restaurant) error {
		if req.LogoURL != nil {
			rest.SetLogoURL(*req.LogoURL)
		}
		if req.PrimaryColor != nil || req.SecondaryColor != nil {
			if req.PrimaryColor == nil {
				primary = rest.PrimaryColor()
			}
			if req.SecondaryColor == nil {
				secondary = rest.SecondaryColor()
			}
			rest.SetThemeColors(primary, secondary)
		}
		return nil
	})
}

func (c *restaurantCommandsImpl) AddGalleryPhoto(ctx context.Context, ownerID uuid.UUID, url string) error {
	return c.withOwnedRestaurant(ctx, ownerID, func(rest *restaurant.Restaurant) error {
		rest.AddGalleryPhoto(url)
		return nil
	})
}

func (c *restaurantCommandsImpl) RemoveGalleryPhoto(ctx context.Context, ownerID uuid.UUID, index int) error {
	return c.withOwnedRestaurant(ctx, ownerID, func(rest *restaurant.Restaurant) error {
		if !rest.RemoveGalleryPhoto(index) {
			return ErrGalleryPhotoNotFound
		}
		return nil
	})
}

func (c *restaurantCommandsImpl) UpdateChatbotContext(ctx context.Context, ownerID uuid.UUID, req reqdto.UpdateChatbotContextRequest) error {
	return c.withOwnedRestaurant(ctx, ownerID, func(rest *restaurant.Restaurant) error {
		menuDescription := rest.MenuDescription()
		if req.MenuDescription != nil {
			menuDescription = *req.MenuDescription
		}
		faqInfo := rest.FAQInfo()
		if req.FAQInfo != nil {
			faqInfo = *req.FAQInfo
		}
		additionalInfo := rest.AdditionalInfo()
		if req.AdditionalInfo != nil {
			additionalInfo = *req.AdditionalInfo
		}
		rest.SetChatbotContext(menuDescription, faqInfo, additionalInfo)
		return nil
	})
}

// withOwnedRestaurant loads the owner's restaurant under a row lock,
// applies mutate, and writes the whole profile back.
func (c *restaurantCommandsImpl) withOwnedRestaurant(ctx context.Context, ownerID uuid.UUID, mutate func(*restaurant.Restaurant) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rest, err := tx.Restaurants().FindByOwnerForUpdate(ctx, tx.DB(), ownerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRestaurantNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := mutate(rest); err != nil {
			return err
		}

		if err := tx.Restaurants().Update(ctx, tx.DB(), rest); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func profileValues(
	nameRaw, address, city, phone string,
	email, priceRangeRaw *string,
	maxCapacity *int32,
) (restaurant.Name, restaurant.ContactInfo, restaurant.PriceRange, restaurant.Capacity, error) {
	name, err := restaurant.NewName(nameRaw)
	if err != nil {
		return restaurant.Name{}, restaurant.ContactInfo{}, "", restaurant.Capacity{}, err
	}
	contact, err := restaurant.NewContactInfo(address, city, phone, derefOrEmpty(email))
	if err != nil {
		return restaurant.Name{}, restaurant.ContactInfo{}, "", restaurant.Capacity{}, err
	}
	priceRange, err := restaurant.NewPriceRange(derefOrEmpty(priceRangeRaw))
	if err != nil {
		return restaurant.Name{}, restaurant.ContactInfo{}, "", restaurant.Capacity{}, err
	}
	capacity, err := restaurant.NewCapacity(maxCapacity)
	if err != nil {
		return restaurant.Name{}, restaurant.ContactInfo{}, "", restaurant.Capacity{}, err
	}
	return name, contact, priceRange, capacity, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
