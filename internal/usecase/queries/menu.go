package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type MenuItemView struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	PriceCents   int64     `json:"price_cents"`
	Category     string    `json:"category"`
	IsAvailable  bool      `json:"is_available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MenuQueries interface {
	// ListByRestaurant returns the full menu for the owner dashboard.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*MenuItemView, error)
	// ListAvailableByRestaurant is the public menu: available items only,
	// grouped client-side by category.
	ListAvailableByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*MenuItemView, error)
}

type MenuViewRepo interface {
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*MenuItemView, error)
	FindAvailableByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*MenuItemView, error)
}

type menuQueriesImpl struct {
	repo MenuViewRepo
}

func NewMenuQueries(repo MenuViewRepo) MenuQueries {
	return &menuQueriesImpl{repo: repo}
}

func (q *menuQueriesImpl) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*MenuItemView, error) {
	return q.repo.FindByRestaurantID(ctx, restaurantID)
}

func (q *menuQueriesImpl) ListAvailableByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*MenuItemView, error) {
	return q.repo.FindAvailableByRestaurantID(ctx, restaurantID)
}
