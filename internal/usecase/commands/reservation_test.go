//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/angelgmx/reservaIA/internal/domain/reservation"
	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/infra/db"
	"github.com/angelgmx/reservaIA/internal/pkg/clock"
	"github.com/angelgmx/reservaIA/internal/usecase/commands"
	"github.com/angelgmx/reservaIA/internal/usecase/shared"
	"github.com/angelgmx/reservaIA/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUoW is an in-memory unit of work. Individual statements are atomic
// under mu, and the ForUpdate reads take per-row mutexes held until the
// transaction callback returns, which mirrors how Postgres row locks
// serialize concurrent transactions under ReadCommitted.
type fakeUoW struct {
	mu               sync.Mutex
	restaurants      map[uuid.UUID]*shared.RestaurantSnapshot
	reservations     map[uuid.UUID]*storedReservation
	restaurantLocks  map[uuid.UUID]*sync.Mutex
	reservationLocks map[uuid.UUID]*sync.Mutex
}

type storedReservation struct {
	restaurantID uuid.UUID
	date         string
	timeOfDay    string
	guests       int32
	status       reservation.Status
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		restaurants:      make(map[uuid.UUID]*shared.RestaurantSnapshot),
		reservations:     make(map[uuid.UUID]*storedReservation),
		restaurantLocks:  make(map[uuid.UUID]*sync.Mutex),
		reservationLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (f *fakeUoW) addRestaurant(snap *shared.RestaurantSnapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.restaurants[snap.ID] = snap
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &fakeTx{store: f}
	defer tx.releaseRowLocks()
	return fn(ctx, tx)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: f}
}

type fakeTx struct {
	store *fakeUoW
	held  []*sync.Mutex
}

func (t *fakeTx) lockRow(locks map[uuid.UUID]*sync.Mutex, id uuid.UUID) {
	t.store.mu.Lock()
	m, ok := locks[id]
	if !ok {
		m = &sync.Mutex{}
		locks[id] = m
	}
	t.store.mu.Unlock()
	m.Lock()
	t.held = append(t.held, m)
}

func (t *fakeTx) releaseRowLocks() {
	for _, m := range t.held {
		m.Unlock()
	}
	t.held = nil
}

func (t *fakeTx) Reservations() shared.ReservationRepository {
	return &fakeReservationRepo{store: t.store}
}
func (t *fakeTx) Restaurants() shared.RestaurantRepository { return nil }
func (t *fakeTx) MenuItems() shared.MenuRepository         { return nil }
func (t *fakeTx) Reviews() shared.ReviewRepository         { return nil }
func (t *fakeTx) Users() shared.UserRepository             { return nil }
func (t *fakeTx) Reads() shared.CommandReads               { return &fakeReads{store: t.store, tx: t} }
func (t *fakeTx) DB() db.DBTX                              { return nil }

type fakeReads struct {
	store *fakeUoW
	tx    *fakeTx
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func (r *fakeReads) RestaurantByID(_ context.Context, id uuid.UUID) (*shared.RestaurantSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	snap, ok := r.store.restaurants[id]
	if !ok {
		return nil, notFound("restaurant")
	}
	return snap, nil
}

func (r *fakeReads) RestaurantForUpdate(ctx context.Context, id uuid.UUID) (*shared.RestaurantSnapshot, error) {
	r.tx.lockRow(r.store.restaurantLocks, id)
	return r.RestaurantByID(ctx, id)
}

func (r *fakeReads) RestaurantByOwner(_ context.Context, ownerID uuid.UUID) (*shared.RestaurantSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, snap := range r.store.restaurants {
		if snap.OwnerID == ownerID {
			return snap, nil
		}
	}
	return nil, notFound("restaurant")
}

func (r *fakeReads) GuestsBookedForSlot(_ context.Context, restaurantID uuid.UUID, date time.Time, timeOfDay string) (int32, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var total int32
	day := date.Format("2006-01-02")
	for _, res := range r.store.reservations {
		if res.restaurantID != restaurantID || res.date != day || res.timeOfDay != timeOfDay {
			continue
		}
		if res.status == reservation.StatusCancelled {
			continue
		}
		total += res.guests
	}
	return total, nil
}

func (r *fakeReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	date, _ := time.Parse("2006-01-02", res.date)
	return &shared.ReservationSnapshot{
		ID:             id,
		RestaurantID:   res.restaurantID,
		Status:         string(res.status),
		Date:           date,
		TimeOfDay:      res.timeOfDay,
		NumberOfGuests: res.guests,
	}, nil
}

func (r *fakeReads) ReservationForUpdate(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	r.tx.lockRow(r.store.reservationLocks, id)
	return r.ReservationByID(ctx, id)
}

func (r *fakeReads) MenuItemByID(_ context.Context, _ uuid.UUID) (*shared.MenuItemSnapshot, error) {
	return nil, notFound("menu item")
}

func (r *fakeReads) UserByEmail(_ context.Context, _ string) (*shared.UserSnapshot, error) {
	return nil, notFound("user")
}

type fakeReservationRepo struct {
	store *fakeUoW
}

func (r *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	id := uuid.New()
	r.store.reservations[id] = &storedReservation{
		restaurantID: res.RestaurantID(),
		date:         res.Slot().Date().Format("2006-01-02"),
		timeOfDay:    res.Slot().Time().String(),
		guests:       int32(res.Guests().Value()),
		status:       res.Status(),
	}
	return id, nil
}

func (r *fakeReservationRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status reservation.Status) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	res, ok := r.store.reservations[id]
	if !ok {
		return notFound("reservation")
	}
	res.status = status
	return nil
}

func newReservationCommands(uow shared.UnitOfWork) commands.ReservationCommands {
	factory := reservation.NewFactory(clock.NewRealClock())
	return commands.NewReservationCommands(uow, factory)
}

func TestSubmitReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a pending reservation", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)

		req := builder.NewReservationBuilder().BuildCreateRequestDTO()
		id, err := cmd.SubmitReservation(ctx, snap.ID, req)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)

		stored, err := uow.CommandReads().ReservationByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, string(reservation.StatusPending), stored.Status)
		assert.Equal(t, int32(4), stored.NumberOfGuests)
		assert.Equal(t, "20:30", stored.TimeOfDay)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		uow := newFakeUoW()
		cmd := newReservationCommands(uow)

		req := builder.NewReservationBuilder().BuildCreateRequestDTO()
		_, err := cmd.SubmitReservation(ctx, uuid.New(), req)
		require.ErrorIs(t, err, commands.ErrRestaurantNotFound)
	})

	t.Run("inactive restaurant", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().AsInactive().BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)

		req := builder.NewReservationBuilder().BuildCreateRequestDTO()
		_, err := cmd.SubmitReservation(ctx, snap.ID, req)
		require.ErrorIs(t, err, commands.ErrRestaurantInactive)
	})

	t.Run("invalid intake is a validation error", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)

		req := builder.NewReservationBuilder().WithGuests(0).BuildCreateRequestDTO()
		_, err := cmd.SubmitReservation(ctx, snap.ID, req)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
		require.ErrorIs(t, err, reservation.ErrGuestCountOutOfRange)
	})

	t.Run("capacity boundary", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().WithMaxCapacity(10).BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)

		_, err := cmd.SubmitReservation(ctx, snap.ID,
			builder.NewReservationBuilder().WithGuests(6).BuildCreateRequestDTO())
		require.NoError(t, err)

		// 6 booked + 5 requested overflows a 10 seat slot.
		_, err = cmd.SubmitReservation(ctx, snap.ID,
			builder.NewReservationBuilder().WithGuests(5).BuildCreateRequestDTO())
		require.ErrorIs(t, err, commands.ErrCapacityExceeded)

		// 6 + 4 fills the slot exactly.
		_, err = cmd.SubmitReservation(ctx, snap.ID,
			builder.NewReservationBuilder().WithGuests(4).BuildCreateRequestDTO())
		require.NoError(t, err)

		// Full slot admits nobody else.
		_, err = cmd.SubmitReservation(ctx, snap.ID,
			builder.NewReservationBuilder().WithGuests(1).BuildCreateRequestDTO())
		require.ErrorIs(t, err, commands.ErrCapacityExceeded)
	})

	t.Run("other slots are unaffected", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().WithMaxCapacity(10).BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)

		_, err := cmd.SubmitReservation(ctx, snap.ID,
			builder.NewReservationBuilder().WithGuests(10).BuildCreateRequestDTO())
		require.NoError(t, err)

		_, err = cmd.SubmitReservation(ctx, snap.ID,
			builder.NewReservationBuilder().WithGuests(10).WithTime("13:00").BuildCreateRequestDTO())
		require.NoError(t, err)
	})

	t.Run("cancelling frees the slot", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().WithMaxCapacity(10).BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)

		id, err := cmd.SubmitReservation(ctx, snap.ID,
			builder.NewReservationBuilder().WithGuests(8).BuildCreateRequestDTO())
		require.NoError(t, err)

		_, err = cmd.SubmitReservation(ctx, snap.ID,
			builder.NewReservationBuilder().WithGuests(8).BuildCreateRequestDTO())
		require.ErrorIs(t, err, commands.ErrCapacityExceeded)

		require.NoError(t, cmd.UpdateStatus(ctx, snap.OwnerID, id, "cancelled"))

		_, err = cmd.SubmitReservation(ctx, snap.ID,
			builder.NewReservationBuilder().WithGuests(8).BuildCreateRequestDTO())
		require.NoError(t, err)
	})

	t.Run("uncapped restaurant admits any party", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().AsUncapped().BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)

		for range 5 {
			_, err := cmd.SubmitReservation(ctx, snap.ID,
				builder.NewReservationBuilder().WithGuests(20).BuildCreateRequestDTO())
			require.NoError(t, err)
		}
	})

	t.Run("concurrent submissions admit only one when both would overflow", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().WithMaxCapacity(10).BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)

		errCh := make(chan error, 2)
		var wg sync.WaitGroup
		for range 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := cmd.SubmitReservation(ctx, snap.ID,
					builder.NewReservationBuilder().WithGuests(6).BuildCreateRequestDTO())
				errCh <- err
			}()
		}
		wg.Wait()
		close(errCh)

		var admitted, rejected int
		for err := range errCh {
			if err == nil {
				admitted++
				continue
			}
			require.ErrorIs(t, err, commands.ErrCapacityExceeded)
			rejected++
		}
		assert.Equal(t, 1, admitted)
		assert.Equal(t, 1, rejected)
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T, cmd commands.ReservationCommands, restaurantID uuid.UUID) uuid.UUID {
		t.Helper()
		id, err := cmd.SubmitReservation(ctx, restaurantID,
			builder.NewReservationBuilder().BuildCreateRequestDTO())
		require.NoError(t, err)
		return id
	}

	t.Run("owner confirms a pending reservation", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)
		id := submit(t, cmd, snap.ID)

		require.NoError(t, cmd.UpdateStatus(ctx, snap.OwnerID, id, "confirmed"))

		stored, err := uow.CommandReads().ReservationByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, string(reservation.StatusConfirmed), stored.Status)
	})

	t.Run("unknown target status", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)
		id := submit(t, cmd, snap.ID)

		err := cmd.UpdateStatus(ctx, snap.OwnerID, id, "archived")
		require.ErrorIs(t, err, commands.ErrInvalidStatusTransition)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)

		err := cmd.UpdateStatus(ctx, snap.OwnerID, uuid.New(), "confirmed")
		require.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("only the owning restaurant may act", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)
		id := submit(t, cmd, snap.ID)

		err := cmd.UpdateStatus(ctx, uuid.New(), id, "confirmed")
		require.ErrorIs(t, err, commands.ErrNotRestaurantOwner)
	})

	t.Run("confirmed cannot go back to pending", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)
		id := submit(t, cmd, snap.ID)

		require.NoError(t, cmd.UpdateStatus(ctx, snap.OwnerID, id, "confirmed"))
		err := cmd.UpdateStatus(ctx, snap.OwnerID, id, "pending")
		require.ErrorIs(t, err, commands.ErrInvalidStatusTransition)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)
		id := submit(t, cmd, snap.ID)

		require.NoError(t, cmd.UpdateStatus(ctx, snap.OwnerID, id, "cancelled"))
		for _, next := range []string{"pending", "confirmed", "cancelled"} {
			err := cmd.UpdateStatus(ctx, snap.OwnerID, id, next)
			require.ErrorIs(t, err, commands.ErrInvalidStatusTransition)
		}
	})

	// Without the reservation row lock both calls read `pending`, both pass
	// the transition check, and the later write wins, leaving a cancelled
	// reservation confirmed.
	t.Run("concurrent cancel and confirm never resurrect the reservation", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewRestaurantBuilder().AsUncapped().BuildSnapshot()
		uow.addRestaurant(snap)
		cmd := newReservationCommands(uow)

		for range 25 {
			id := submit(t, cmd, snap.ID)

			cancelErr := make(chan error, 1)
			confirmErr := make(chan error, 1)
			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				cancelErr <- cmd.UpdateStatus(ctx, snap.OwnerID, id, "cancelled")
			}()
			go func() {
				defer wg.Done()
				confirmErr <- cmd.UpdateStatus(ctx, snap.OwnerID, id, "confirmed")
			}()
			wg.Wait()

			// Cancellation always lands: either pending -> cancelled, or
			// confirmed -> cancelled when the confirm was first.
			require.NoError(t, <-cancelErr)
			if err := <-confirmErr; err != nil {
				require.ErrorIs(t, err, commands.ErrInvalidStatusTransition)
			}

			stored, err := uow.CommandReads().ReservationByID(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, string(reservation.StatusCancelled), stored.Status)
		}
	})
}
