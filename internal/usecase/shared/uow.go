package shared

import (
	"context"
	"time"

	"github.com/angelgmx/reservaIA/internal/domain/menu"
	"github.com/angelgmx/reservaIA/internal/domain/reservation"
	"github.com/angelgmx/reservaIA/internal/domain/restaurant"
	"github.com/angelgmx/reservaIA/internal/domain/review"
	"github.com/angelgmx/reservaIA/internal/domain/user"
	"github.com/angelgmx/reservaIA/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Restaurants() RestaurantRepository
	MenuItems() MenuRepository
	Reviews() ReviewRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RestaurantByID(ctx context.Context, id uuid.UUID) (*RestaurantSnapshot, error)
	// RestaurantForUpdate takes a row lock so concurrent submissions against
	// the same restaurant serialize on the capacity check.
	RestaurantForUpdate(ctx context.Context, id uuid.UUID) (*RestaurantSnapshot, error)
	RestaurantByOwner(ctx context.Context, ownerID uuid.UUID) (*RestaurantSnapshot, error)
	// GuestsBookedForSlot sums guests over non-cancelled reservations in the slot.
	GuestsBookedForSlot(ctx context.Context, restaurantID uuid.UUID, date time.Time, timeOfDay string) (int32, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// ReservationForUpdate takes a row lock so concurrent status changes
	// against the same reservation serialize on the transition check.
	ReservationForUpdate(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	MenuItemByID(ctx context.Context, id uuid.UUID) (*MenuItemSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error
}

type RestaurantRepository interface {
	Create(ctx context.Context, tx db.DBTX, rest *restaurant.Restaurant) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, rest *restaurant.Restaurant) error
	// FindByOwnerForUpdate rehydrates the aggregate under a row lock for
	// read-modify-write edits.
	FindByOwnerForUpdate(ctx context.Context, tx db.DBTX, ownerID uuid.UUID) (*restaurant.Restaurant, error)
}

type MenuRepository interface {
	Create(ctx context.Context, tx db.DBTX, item *menu.Item) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, item *menu.Item) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateRole(ctx context.Context, tx db.DBTX, id uuid.UUID, role user.Role) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}
