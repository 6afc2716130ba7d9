package request

import (
	"time"

	"github.com/angelgmx/reservaIA/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	CustomerName    string  `json:"customer_name" binding:"required"`
	CustomerEmail   string  `json:"customer_email" binding:"required,email"`
	CustomerPhone   string  `json:"customer_phone" binding:"required"`
	ReservationDate string  `json:"reservation_date" binding:"required"`
	ReservationTime string  `json:"reservation_time" binding:"required"`
	NumberOfGuests  int     `json:"number_of_guests" binding:"required"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

// ToIntake parses the calendar date here so the factory only deals with
// typed input. Time-of-day parsing stays in the domain.
func (r CreateReservationRequest) ToIntake(restaurantID uuid.UUID) (reservation.Intake, error) {
	date, err := time.Parse("2006-01-02", r.ReservationDate)
	if err != nil {
		return reservation.Intake{}, reservation.ErrInvalidDate
	}

	return reservation.Intake{
		RestaurantID:    restaurantID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		Date:            date,
		Time:            r.ReservationTime,
		NumberOfGuests:  r.NumberOfGuests,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
