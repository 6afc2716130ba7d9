//go:build unit || e2e

package builder

import (
	"time"

	domrest "github.com/angelgmx/reservaIA/internal/domain/restaurant"
	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	"github.com/angelgmx/reservaIA/internal/usecase/queries"
	"github.com/angelgmx/reservaIA/internal/usecase/shared"

	"github.com/google/uuid"
)

type RestaurantBuilder struct {
	OwnerID     uuid.UUID
	Name        string
	Description string
	Address     string
	City        string
	Phone       string
	Email       string
	CuisineType string
	PriceRange  string
	MaxCapacity *int32
	IsActive    bool
}

func NewRestaurantBuilder() *RestaurantBuilder {
	capacity := int32(40)
	return &RestaurantBuilder{
		OwnerID:     uuid.New(),
		Name:        "Casa Pepe",
		Description: "Cocina tradicional andaluza",
		Address:     "Calle Mayor 12",
		City:        "Sevilla",
		Phone:       "+34 954 111 222",
		Email:       "reservas@casapepe.example.com",
		CuisineType: "Andaluza",
		PriceRange:  "$$",
		MaxCapacity: &capacity,
		IsActive:    true,
	}
}

func (b *RestaurantBuilder) With(mutate func(*RestaurantBuilder)) *RestaurantBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RestaurantBuilder) BuildDomain() (*domrest.Restaurant, error) {
	name, err := domrest.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	contact, err := domrest.NewContactInfo(b.Address, b.City, b.Phone, b.Email)
	if err != nil {
		return nil, err
	}
	priceRange, err := domrest.NewPriceRange(b.PriceRange)
	if err != nil {
		return nil, err
	}
	capacity, err := domrest.NewCapacity(b.MaxCapacity)
	if err != nil {
		return nil, err
	}

	rest := domrest.NewRestaurant(b.OwnerID, name, b.Description, contact, b.CuisineType, priceRange, capacity)
	if !b.IsActive {
		rest.SetActive(false)
	}
	return rest, nil
}

func (b *RestaurantBuilder) BuildSnapshot() *shared.RestaurantSnapshot {
	return &shared.RestaurantSnapshot{
		ID:          uuid.New(),
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		MaxCapacity: b.MaxCapacity,
		IsActive:    b.IsActive,
	}
}

func (b *RestaurantBuilder) BuildSetupRequestDTO() reqdto.SetupRestaurantRequest {
	return reqdto.SetupRestaurantRequest{
		Name:        b.Name,
		Description: strPtr(b.Description),
		Address:     b.Address,
		City:        b.City,
		Phone:       b.Phone,
		Email:       strPtr(b.Email),
		CuisineType: strPtr(b.CuisineType),
		PriceRange:  strPtr(b.PriceRange),
		MaxCapacity: b.MaxCapacity,
	}
}

func (b *RestaurantBuilder) BuildViewQuery() *queries.RestaurantView {
	now := time.Now()
	return &queries.RestaurantView{
		ID:            uuid.New(),
		OwnerID:       b.OwnerID,
		Name:          b.Name,
		Description:   strPtr(b.Description),
		Address:       b.Address,
		City:          b.City,
		Phone:         b.Phone,
		Email:         strPtr(b.Email),
		CuisineType:   strPtr(b.CuisineType),
		PriceRange:    b.PriceRange,
		MaxCapacity:   b.MaxCapacity,
		GalleryPhotos: []string{},
		IsActive:      b.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Fluent builder methods
func (b *RestaurantBuilder) WithOwnerID(id uuid.UUID) *RestaurantBuilder {
	b.OwnerID = id
	return b
}

func (b *RestaurantBuilder) WithName(name string) *RestaurantBuilder {
	b.Name = name
	return b
}

func (b *RestaurantBuilder) WithMaxCapacity(n int32) *RestaurantBuilder {
	b.MaxCapacity = &n
	return b
}

func (b *RestaurantBuilder) AsUncapped() *RestaurantBuilder {
	b.MaxCapacity = nil
	return b
}

func (b *RestaurantBuilder) AsInactive() *RestaurantBuilder {
	b.IsActive = false
	return b
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
