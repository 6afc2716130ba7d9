package readstore

import (
	"context"

	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/infra/db"
	"github.com/angelgmx/reservaIA/internal/pkg/pgconv"
	"github.com/angelgmx/reservaIA/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const reservationViewColumns = `
    id, restaurant_id, customer_name, customer_email, customer_phone,
    reservation_date, to_char(reservation_time, 'HH24:MI') AS reservation_time,
    number_of_guests, special_requests, status, created_at, updated_at`

const findReservationByIDSQL = `
SELECT` + reservationViewColumns + `
FROM reservations
WHERE id = $1`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, findReservationByIDSQL, id)

	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return view, nil
}

// Dashboard ordering matches the owner's mental model: next service first.
const findReservationsByRestaurantSQL = `
SELECT` + reservationViewColumns + `
FROM reservations
WHERE restaurant_id = $1
ORDER BY reservation_date ASC, reservation_time ASC, created_at ASC`

func (r *ReservationReadStore) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, findReservationsByRestaurantSQL, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

const findReservationsByRestaurantAndStatusSQL = `
SELECT` + reservationViewColumns + `
FROM reservations
WHERE restaurant_id = $1 AND status = $2
ORDER BY reservation_date ASC, reservation_time ASC, created_at ASC`

func (r *ReservationReadStore) FindByRestaurantIDAndStatus(ctx context.Context, restaurantID uuid.UUID, status string) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, findReservationsByRestaurantAndStatusSQL, restaurantID, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by status", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		v        queries.ReservationView
		date     pgtype.Date
		requests pgtype.Text
		created  pgtype.Timestamptz
		updated  pgtype.Timestamptz
	)

	err := row.Scan(
		&v.ID,
		&v.RestaurantID,
		&v.CustomerName,
		&v.CustomerEmail,
		&v.CustomerPhone,
		&date,
		&v.ReservationTime,
		&v.NumberOfGuests,
		&requests,
		&v.Status,
		&created,
		&updated,
	)
	if err != nil {
		return nil, err
	}

	v.ReservationDate = date.Time
	v.SpecialRequests = pgconv.TextPtr(requests)
	v.CreatedAt = created.Time
	v.UpdatedAt = updated.Time

	return &v, nil
}
