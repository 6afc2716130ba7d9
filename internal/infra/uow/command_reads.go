package uow

import (
	"context"
	"time"

	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/infra/db"
	"github.com/angelgmx/reservaIA/internal/pkg/pgconv"
	"github.com/angelgmx/reservaIA/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type commandReads struct {
	dbtx db.DBTX
}

const restaurantSnapshotSQL = `
SELECT id, owner_id, name, max_capacity, is_active
FROM restaurants
WHERE id = $1`

// FOR UPDATE serializes concurrent reservation submissions against the
// same restaurant: the second transaction blocks here until the first
// commits, so its guest sum always sees the committed reservation.
const restaurantSnapshotForUpdateSQL = restaurantSnapshotSQL + `
FOR UPDATE`

const restaurantSnapshotByOwnerSQL = `
SELECT id, owner_id, name, max_capacity, is_active
FROM restaurants
WHERE owner_id = $1`

func (c *commandReads) RestaurantByID(ctx context.Context, id uuid.UUID) (*shared.RestaurantSnapshot, error) {
	return c.scanRestaurant(ctx, restaurantSnapshotSQL, id)
}

func (c *commandReads) RestaurantForUpdate(ctx context.Context, id uuid.UUID) (*shared.RestaurantSnapshot, error) {
	return c.scanRestaurant(ctx, restaurantSnapshotForUpdateSQL, id)
}

func (c *commandReads) RestaurantByOwner(ctx context.Context, ownerID uuid.UUID) (*shared.RestaurantSnapshot, error) {
	return c.scanRestaurant(ctx, restaurantSnapshotByOwnerSQL, ownerID)
}

func (c *commandReads) scanRestaurant(ctx context.Context, sql string, arg any) (*shared.RestaurantSnapshot, error) {
	var (
		snap     shared.RestaurantSnapshot
		capacity pgtype.Int4
	)

	err := c.dbtx.QueryRow(ctx, sql, arg).Scan(
		&snap.ID, &snap.OwnerID, &snap.Name, &capacity, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read restaurant snapshot", err)
	}

	snap.MaxCapacity = pgconv.Int4Ptr(capacity)
	return &snap, nil
}

// Cancelled reservations release their seats; pending ones hold them so a
// burst of unreviewed requests cannot oversell the slot.
const guestsForSlotSQL = `
SELECT coalesce(sum(number_of_guests), 0)
FROM reservations
WHERE restaurant_id = $1
  AND reservation_date = $2
  AND reservation_time = $3::time
  AND status IN ('pending', 'confirmed')`

func (c *commandReads) GuestsBookedForSlot(ctx context.Context, restaurantID uuid.UUID, date time.Time, timeOfDay string) (int32, error) {
	var total int64
	err := c.dbtx.QueryRow(ctx, guestsForSlotSQL, restaurantID, pgconv.Date(date), timeOfDay).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum guests for slot", err)
	}
	return int32(total), nil
}

const reservationSnapshotSQL = `
SELECT id, restaurant_id, status, reservation_date,
       to_char(reservation_time, 'HH24:MI'), number_of_guests
FROM reservations
WHERE id = $1`

// FOR UPDATE serializes concurrent status changes on the same reservation:
// without it two owner calls could both read `pending`, both pass the
// transition check, and the later write would resurrect a cancelled row.
const reservationSnapshotForUpdateSQL = reservationSnapshotSQL + `
FOR UPDATE`

func (c *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	return c.scanReservation(ctx, reservationSnapshotSQL, id)
}

func (c *commandReads) ReservationForUpdate(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	return c.scanReservation(ctx, reservationSnapshotForUpdateSQL, id)
}

func (c *commandReads) scanReservation(ctx context.Context, sql string, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	var (
		snap shared.ReservationSnapshot
		date pgtype.Date
	)

	err := c.dbtx.QueryRow(ctx, sql, id).Scan(
		&snap.ID, &snap.RestaurantID, &snap.Status, &date, &snap.TimeOfDay, &snap.NumberOfGuests,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read reservation snapshot", err)
	}

	snap.Date = date.Time
	return &snap, nil
}

const menuItemSnapshotSQL = `
SELECT id, restaurant_id
FROM menu_items
WHERE id = $1`

func (c *commandReads) MenuItemByID(ctx context.Context, id uuid.UUID) (*shared.MenuItemSnapshot, error) {
	var snap shared.MenuItemSnapshot

	err := c.dbtx.QueryRow(ctx, menuItemSnapshotSQL, id).Scan(&snap.ID, &snap.RestaurantID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read menu item snapshot", err)
	}

	return &snap, nil
}

const userSnapshotByEmailSQL = `
SELECT id, email, password_hash, display_name, role, is_active
FROM users
WHERE email = $1`

func (c *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	var snap shared.UserSnapshot

	err := c.dbtx.QueryRow(ctx, userSnapshotByEmailSQL, email).Scan(
		&snap.ID, &snap.Email, &snap.PasswordHash, &snap.DisplayName, &snap.Role, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read user snapshot", err)
	}

	return &snap, nil
}
