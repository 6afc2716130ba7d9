//go:build unit || e2e

package builder

import (
	"time"

	dommenu "github.com/angelgmx/reservaIA/internal/domain/menu"
	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	"github.com/angelgmx/reservaIA/internal/usecase/queries"

	"github.com/google/uuid"
)

type MenuItemBuilder struct {
	RestaurantID uuid.UUID
	Name         string
	Description  string
	PriceCents   int64
	Category     string
	IsAvailable  bool
}

func NewMenuItemBuilder() *MenuItemBuilder {
	return &MenuItemBuilder{
		RestaurantID: uuid.New(),
		Name:         "Salmorejo cordobés",
		Description:  "Con huevo duro y jamón",
		PriceCents:   850,
		Category:     "Entrantes",
		IsAvailable:  true,
	}
}

func (b *MenuItemBuilder) With(mutate func(*MenuItemBuilder)) *MenuItemBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *MenuItemBuilder) BuildDomain() (*dommenu.Item, error) {
	item, err := dommenu.NewItem(b.RestaurantID, b.Name, b.Description, b.PriceCents, b.Category)
	if err != nil {
		return nil, err
	}
	item.SetAvailability(b.IsAvailable)
	return item, nil
}

func (b *MenuItemBuilder) BuildCreateRequestDTO() reqdto.CreateMenuItemRequest {
	return reqdto.CreateMenuItemRequest{
		Name:        b.Name,
		Description: strPtr(b.Description),
		PriceCents:  b.PriceCents,
		Category:    b.Category,
	}
}

func (b *MenuItemBuilder) BuildUpdateRequestDTO() reqdto.UpdateMenuItemRequest {
	return reqdto.UpdateMenuItemRequest{
		Name:        b.Name,
		Description: strPtr(b.Description),
		PriceCents:  b.PriceCents,
		Category:    b.Category,
		IsAvailable: b.IsAvailable,
	}
}

func (b *MenuItemBuilder) BuildViewQuery() *queries.MenuItemView {
	now := time.Now()
	return &queries.MenuItemView{
		ID:           uuid.New(),
		RestaurantID: b.RestaurantID,
		Name:         b.Name,
		Description:  strPtr(b.Description),
		PriceCents:   b.PriceCents,
		Category:     b.Category,
		IsAvailable:  b.IsAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Fluent builder methods
func (b *MenuItemBuilder) WithRestaurantID(id uuid.UUID) *MenuItemBuilder {
	b.RestaurantID = id
	return b
}

func (b *MenuItemBuilder) WithName(name string) *MenuItemBuilder {
	b.Name = name
	return b
}

func (b *MenuItemBuilder) WithPriceCents(price int64) *MenuItemBuilder {
	b.PriceCents = price
	return b
}

func (b *MenuItemBuilder) WithCategory(category string) *MenuItemBuilder {
	b.Category = category
	return b
}

func (b *MenuItemBuilder) AsUnavailable() *MenuItemBuilder {
	b.IsAvailable = false
	return b
}
