package reservation

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	id              uuid.UUID
	restaurantID    uuid.UUID
	contact         CustomerContact
	slot            Slot
	guests          GuestCount
	specialRequests SpecialRequests
	status          Status
	createdAt       time.Time
}

// NewReservation builds a pending reservation candidate. Status is always
// pending here regardless of what the client sent; only the owner
// dashboard moves it afterwards.
func NewReservation(
	restaurantID uuid.UUID,
	contact CustomerContact,
	slot Slot,
	guests GuestCount,
	specialRequests SpecialRequests,
) *Reservation {
	return &Reservation{
		id:              uuid.New(),
		restaurantID:    restaurantID,
		contact:         contact,
		slot:            slot,
		guests:          guests,
		specialRequests: specialRequests,
		status:          StatusPending,
	}
}

func ReconstructReservation(
	id, restaurantID uuid.UUID,
	contact CustomerContact,
	slot Slot,
	guests GuestCount,
	specialRequests SpecialRequests,
	status Status,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		restaurantID:    restaurantID,
		contact:         contact,
		slot:            slot,
		guests:          guests,
		specialRequests: specialRequests,
		status:          status,
		createdAt:       createdAt,
	}
}

// TransitionTo applies the status state machine and fails on any edge
// not present in it.
func (r *Reservation) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status != StatusCancelled
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) RestaurantID() uuid.UUID { return r.restaurantID }
func (r *Reservation) Contact() CustomerContact {
	return r.contact
}
func (r *Reservation) Slot() Slot         { return r.slot }
func (r *Reservation) Guests() GuestCount { return r.guests }
func (r *Reservation) SpecialRequests() SpecialRequests {
	return r.specialRequests
}
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
