package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReviewView struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int32     `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type RestaurantRatingSummary struct {
	RestaurantID  uuid.UUID `json:"restaurant_id"`
	TotalReviews  int64     `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
}

type ReviewQueries interface {
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*ReviewView, error)
	RatingSummary(ctx context.Context, restaurantID uuid.UUID) (*RestaurantRatingSummary, error)
}

type ReviewViewRepo interface {
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*ReviewView, error)
	AggregateByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (*RestaurantRatingSummary, error)
}

type reviewQueriesImpl struct {
	repo ReviewViewRepo
}

func NewReviewQueries(repo ReviewViewRepo) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*ReviewView, error) {
	return q.repo.FindByRestaurantID(ctx, restaurantID)
}

func (q *reviewQueriesImpl) RatingSummary(ctx context.Context, restaurantID uuid.UUID) (*RestaurantRatingSummary, error) {
	return q.repo.AggregateByRestaurantID(ctx, restaurantID)
}
