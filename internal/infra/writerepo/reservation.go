package writerepo

import (
	"context"

	"github.com/angelgmx/reservaIA/internal/domain/reservation"
	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/infra/db"
	"github.com/angelgmx/reservaIA/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const insertReservationSQL = `
INSERT INTO reservations (
    id, restaurant_id, customer_name, customer_email, customer_phone,
    reservation_date, reservation_time, number_of_guests, special_requests, status
) VALUES ($1, $2, $3, $4, $5, $6, $7::time, $8, $9, $10)
RETURNING id`

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var requests *string
	if !res.SpecialRequests().IsEmpty() {
		s := res.SpecialRequests().String()
		requests = &s
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, insertReservationSQL,
		res.ID(),
		res.RestaurantID(),
		res.Contact().Name(),
		res.Contact().Email(),
		res.Contact().Phone(),
		pgconv.Date(res.Slot().Date()),
		res.Slot().Time().String(),
		int32(res.Guests().Value()),
		pgconv.TextFromPtr(requests),
		res.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

const updateReservationStatusSQL = `
UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1`

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error {
	tag, err := tx.Exec(ctx, updateReservationStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
