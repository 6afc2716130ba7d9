package reservation

import (
	"time"

	"github.com/angelgmx/reservaIA/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory performs intake: it turns raw customer input into a validated
// pending reservation, or rejects it before any capacity check runs.
type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

type Intake struct {
	RestaurantID    uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Date            time.Time
	Time            string
	NumberOfGuests  int
	SpecialRequests *string
}

func (f *Factory) CreateReservation(in Intake) (*Reservation, error) {
	contact, err := NewCustomerContact(in.CustomerName, in.CustomerEmail, in.CustomerPhone)
	if err != nil {
		return nil, err
	}

	timeOfDay, err := NewTimeOfDay(in.Time)
	if err != nil {
		return nil, err
	}

	slot, err := NewSlot(in.Date, timeOfDay, f.Clock.Now())
	if err != nil {
		return nil, err
	}

	guests, err := NewGuestCount(in.NumberOfGuests)
	if err != nil {
		return nil, err
	}

	requests := SpecialRequests{}
	if in.SpecialRequests != nil {
		requests, err = NewSpecialRequests(*in.SpecialRequests)
		if err != nil {
			return nil, err
		}
	}

	return NewReservation(in.RestaurantID, contact, slot, guests, requests), nil
}
