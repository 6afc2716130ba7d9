package response

import (
	"time"

	"github.com/angelgmx/reservaIA/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customerName"`
	Rating       int32     `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ReviewCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type RatingSummaryResponse struct {
	TotalReviews  int64   `json:"totalReviews"`
	AverageRating float64 `json:"averageRating"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:           v.ID,
		CustomerName: v.CustomerName,
		Rating:       v.Rating,
		Comment:      v.Comment,
		CreatedAt:    v.CreatedAt,
	}
}

func FromReviewViews(views []*queries.ReviewView) []*ReviewResponse {
	result := make([]*ReviewResponse, len(views))
	for i, v := range views {
		result[i] = FromReviewView(v)
	}
	return result
}

func FromRatingSummary(s *queries.RestaurantRatingSummary) *RatingSummaryResponse {
	return &RatingSummaryResponse{
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
	}
}
