//go:build unit || e2e

package builder

import (
	"time"

	domreview "github.com/angelgmx/reservaIA/internal/domain/review"
	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	"github.com/angelgmx/reservaIA/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	RestaurantID uuid.UUID
	CustomerName string
	Rating       int
	Comment      string
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		RestaurantID: uuid.New(),
		CustomerName: "Carlos Ruiz",
		Rating:       5,
		Comment:      "Comida excelente y trato inmejorable",
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	name, err := domreview.NewCustomerName(b.CustomerName)
	if err != nil {
		return nil, err
	}
	rating, err := domreview.NewRating(b.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(b.Comment)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(b.RestaurantID, name, rating, comment), nil
}

func (b *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		CustomerName: b.CustomerName,
		Rating:       b.Rating,
		Comment:      strPtr(b.Comment),
	}
}

func (b *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	return &queries.ReviewView{
		ID:           uuid.New(),
		RestaurantID: b.RestaurantID,
		CustomerName: b.CustomerName,
		Rating:       int32(b.Rating),
		Comment:      strPtr(b.Comment),
		CreatedAt:    time.Now(),
	}
}

// Fluent builder methods
func (b *ReviewBuilder) WithRestaurantID(id uuid.UUID) *ReviewBuilder {
	b.RestaurantID = id
	return b
}

func (b *ReviewBuilder) WithCustomerName(name string) *ReviewBuilder {
	b.CustomerName = name
	return b
}

func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.Rating = rating
	return b
}

func (b *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	b.Comment = comment
	return b
}
