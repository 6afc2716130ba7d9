package commands

import (
	"context"

	"github.com/angelgmx/reservaIA/internal/domain/menu"
	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/pkg/errs"
	"github.com/angelgmx/reservaIA/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrMenuItemNotFound = errs.New("menu item not found")

type MenuCommands interface {
	CreateItem(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateMenuItemRequest) (uuid.UUID, error)
	UpdateItem(ctx context.Context, ownerID, itemID uuid.UUID, req reqdto.UpdateMenuItemRequest) error
	DeleteItem(ctx context.Context, ownerID, itemID uuid.UUID) error
}

type menuCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewMenuCommands(uow shared.UnitOfWork) MenuCommands {
	return &menuCommandsImpl{uow: uow}
}

func (c *menuCommandsImpl) CreateItem(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateMenuItemRequest) (uuid.UUID, error) {
	var itemID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rest, err := tx.Reads().RestaurantByOwner(ctx, ownerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRestaurantNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		item, err := menu.NewItem(rest.ID, req.Name, derefOrEmpty(req.Description), req.PriceCents, req.Category)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		itemID, err = tx.MenuItems().Create(ctx, tx.DB(), item)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return itemID, nil
}

func (c *menuCommandsImpl) UpdateItem(ctx context.Context, ownerID, itemID uuid.UUID, req reqdto.UpdateMenuItemRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rest, err := c.ownedMenuItemRestaurant(ctx, tx, ownerID, itemID)
		if err != nil {
			return err
		}

		item, err := menu.NewItem(rest.ID, req.Name, derefOrEmpty(req.Description), req.PriceCents, req.Category)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		updated := menu.ReconstructItem(
			itemID, rest.ID,
			item.Name(), item.Description(), item.PriceCents(), item.Category(),
			req.IsAvailable,
			item.CreatedAt(), item.UpdatedAt(),
		)

		if err := tx.MenuItems().Update(ctx, tx.DB(), updated); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *menuCommandsImpl) DeleteItem(ctx context.Context, ownerID, itemID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := c.ownedMenuItemRestaurant(ctx, tx, ownerID, itemID); err != nil {
			return err
		}

		if err := tx.MenuItems().Delete(ctx, tx.DB(), itemID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// ownedMenuItemRestaurant resolves the item and enforces that it belongs
// to the caller's restaurant. Items of other restaurants read as not found.
func (c *menuCommandsImpl) ownedMenuItemRestaurant(ctx context.Context, tx shared.Tx, ownerID, itemID uuid.UUID) (*shared.RestaurantSnapshot, error) {
	rest, err := tx.Reads().RestaurantByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRestaurantNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	item, err := tx.Reads().MenuItemByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrMenuItemNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if item.RestaurantID != rest.ID {
		return nil, ErrMenuItemNotFound
	}

	return rest, nil
}
