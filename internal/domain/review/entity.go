package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	customerName CustomerName
	rating       Rating
	comment      Comment
	createdAt    time.Time
}

func NewReview(restaurantID uuid.UUID, customerName CustomerName, rating Rating, comment Comment) *Review {
	return &Review{
		id:           uuid.New(),
		restaurantID: restaurantID,
		customerName: customerName,
		rating:       rating,
		comment:      comment,
	}
}

func ReconstructReview(
	id, restaurantID uuid.UUID,
	customerName CustomerName,
	rating Rating,
	comment Comment,
	createdAt time.Time,
) *Review {
	return &Review{
		id:           id,
		restaurantID: restaurantID,
		customerName: customerName,
		rating:       rating,
		comment:      comment,
		createdAt:    createdAt,
	}
}

func (r *Review) ID() uuid.UUID              { return r.id }
func (r *Review) RestaurantID() uuid.UUID    { return r.restaurantID }
func (r *Review) CustomerName() CustomerName { return r.customerName }
func (r *Review) Rating() Rating             { return r.rating }
func (r *Review) Comment() Comment           { return r.comment }
func (r *Review) CreatedAt() time.Time       { return r.createdAt }
