package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads. Query views live in queries.

type RestaurantSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	MaxCapacity *int32
	IsActive    bool
}

type ReservationSnapshot struct {
	ID             uuid.UUID
	RestaurantID   uuid.UUID
	Status         string
	Date           time.Time
	TimeOfDay      string
	NumberOfGuests int32
}

type MenuItemSnapshot struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	DisplayName  string
	Role         string
	IsActive     bool
}
