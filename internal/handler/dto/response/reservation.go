package response

import (
	"time"

	"github.com/angelgmx/reservaIA/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	RestaurantID    uuid.UUID `json:"restaurantId"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	ReservationDate string    `json:"reservationDate"`
	ReservationTime string    `json:"reservationTime"`
	NumberOfGuests  int32     `json:"numberOfGuests"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ReservationCreatedResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              v.ID,
		RestaurantID:    v.RestaurantID,
		CustomerName:    v.CustomerName,
		CustomerEmail:   v.CustomerEmail,
		CustomerPhone:   v.CustomerPhone,
		ReservationDate: v.ReservationDate.Format("2006-01-02"),
		ReservationTime: v.ReservationTime,
		NumberOfGuests:  v.NumberOfGuests,
		SpecialRequests: v.SpecialRequests,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	result := make([]*ReservationResponse, len(views))
	for i, v := range views {
		result[i] = FromReservationView(v)
	}
	return result
}
