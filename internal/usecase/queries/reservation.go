package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	RestaurantID    uuid.UUID `json:"restaurant_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	ReservationDate time.Time `json:"reservation_date"`
	ReservationTime string    `json:"reservation_time"`
	NumberOfGuests  int32     `json:"number_of_guests"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ListByRestaurant returns the dashboard feed ordered by date then time.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*ReservationView, error)
	ListByRestaurantAndStatus(ctx context.Context, restaurantID uuid.UUID, status string) ([]*ReservationView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*ReservationView, error)
	FindByRestaurantIDAndStatus(ctx context.Context, restaurantID uuid.UUID, status string) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*ReservationView, error) {
	return q.repo.FindByRestaurantID(ctx, restaurantID)
}

func (q *reservationQueriesImpl) ListByRestaurantAndStatus(ctx context.Context, restaurantID uuid.UUID, status string) ([]*ReservationView, error) {
	return q.repo.FindByRestaurantIDAndStatus(ctx, restaurantID, status)
}
