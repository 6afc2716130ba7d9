package commands

import (
	"context"
	"log/slog"

	"github.com/angelgmx/reservaIA/internal/domain/reservation"
	"github.com/angelgmx/reservaIA/internal/domain/restaurant"
	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/pkg/errs"
	"github.com/angelgmx/reservaIA/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRestaurantNotFound      = errs.New("restaurant not found")
	ErrRestaurantInactive      = errs.New("restaurant is not accepting reservations")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrCapacityExceeded        = errs.New("slot capacity exceeded")
	ErrCapacityCheckFailed     = errs.New("capacity check failed")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrInvalidStatusTransition = errs.New("invalid status transition")
	ErrNotRestaurantOwner      = errs.New("not the restaurant owner")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ReservationCommands interface {
	// SubmitReservation validates intake, checks capacity, and persists the
	// pending reservation in one transaction.
	SubmitReservation(ctx context.Context, restaurantID uuid.UUID, req reqdto.CreateReservationRequest) (uuid.UUID, error)
	// UpdateStatus moves a reservation through the owner-facing state machine.
	UpdateStatus(ctx context.Context, actorID, reservationID uuid.UUID, newStatus string) error
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
}

func NewReservationCommands(uow shared.UnitOfWork, factory *reservation.Factory) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		factory: factory,
	}
}

// The capacity check and the insert share a transaction holding the
// restaurant row lock, so two concurrent submissions cannot both read the
// old guest sum and both commit. Without the lock a 10-seat slot with two
// simultaneous 6-guest requests would end up with 12 guests.
func (r *reservationCommandsImpl) SubmitReservation(
	ctx context.Context,
	restaurantID uuid.UUID,
	req reqdto.CreateReservationRequest,
) (uuid.UUID, error) {
	intake, err := req.ToIntake(restaurantID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	res, err := r.factory.CreateReservation(intake)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var reservationID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RestaurantForUpdate(ctx, restaurantID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRestaurantNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !snap.IsActive {
			return ErrRestaurantInactive
		}

		capacity, err := restaurant.NewCapacity(snap.MaxCapacity)
		if err != nil {
			return errs.Mark(err, ErrCapacityCheckFailed)
		}

		if capacity.IsSet() {
			booked, err := tx.Reads().GuestsBookedForSlot(
				ctx, restaurantID, res.Slot().Date(), res.Slot().Time().String(),
			)
			if err != nil {
				return errs.Mark(err, ErrCapacityCheckFailed)
			}
			if !capacity.Admits(booked, int32(res.Guests().Value())) {
				slog.Info("reservation rejected on capacity",
					"restaurant_id", restaurantID,
					"slot", res.Slot().String(),
					"booked", booked,
					"requested", res.Guests().Value())
				return ErrCapacityExceeded
			}
		}

		reservationID, err = tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return reservationID, nil
}

func (r *reservationCommandsImpl) UpdateStatus(ctx context.Context, actorID, reservationID uuid.UUID, newStatus string) error {
	next, err := reservation.NewStatus(newStatus)
	if err != nil {
		return errs.Mark(err, ErrInvalidStatusTransition)
	}

	// The transition check and the write share a transaction holding the
	// reservation row lock; a concurrent cancel and confirm therefore
	// serialize, and the loser re-reads the committed status instead of
	// overwriting it.
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationForUpdate(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		rest, err := tx.Reads().RestaurantByID(ctx, snap.RestaurantID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if rest.OwnerID != actorID {
			return ErrNotRestaurantOwner
		}

		current, err := reservation.NewStatus(snap.Status)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !current.CanTransitionTo(next) {
			return ErrInvalidStatusTransition
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), reservationID, next); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
