//go:build unit

package reservation_test

import (
	"strings"
	"testing"

	"github.com/angelgmx/reservaIA/internal/domain/reservation"
	"github.com/angelgmx/reservaIA/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservationIntake(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Equal(t, 4, actual.Guests().Value())
		assert.Equal(t, "20:30", actual.Slot().Time().String())
		assert.True(t, actual.IsActive())
	})

	t.Run("guest count validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero guests",
				mutate: func(b *builder.ReservationBuilder) { b.WithGuests(0) },
				errIs:  reservation.ErrGuestCountOutOfRange,
			},
			{
				name:   "minimum valid guests",
				mutate: func(b *builder.ReservationBuilder) { b.WithGuests(1) },
			},
			{
				name:   "maximum valid guests",
				mutate: func(b *builder.ReservationBuilder) { b.WithGuests(20) },
			},
			{
				name:   "above maximum guests",
				mutate: func(b *builder.ReservationBuilder) { b.WithGuests(21) },
				errIs:  reservation.ErrGuestCountOutOfRange,
			},
			{
				name:   "negative guests",
				mutate: func(b *builder.ReservationBuilder) { b.WithGuests(-3) },
				errIs:  reservation.ErrGuestCountOutOfRange,
			},
		})
	})

	t.Run("date validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "past date rejected",
				mutate: func(b *builder.ReservationBuilder) { b.AsPastDate() },
				errIs:  reservation.ErrPastDate,
			},
			{
				name:   "same day accepted",
				mutate: func(b *builder.ReservationBuilder) { b.AsSameDay() },
			},
		})
	})

	t.Run("time validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "out of range time",
				mutate: func(b *builder.ReservationBuilder) { b.WithTime("25:99") },
				errIs:  reservation.ErrInvalidTimeOfDay,
			},
			{
				name:   "non-numeric time",
				mutate: func(b *builder.ReservationBuilder) { b.WithTime("8pm") },
				errIs:  reservation.ErrInvalidTimeOfDay,
			},
			{
				name:   "midnight accepted",
				mutate: func(b *builder.ReservationBuilder) { b.WithTime("00:00") },
			},
		})
	})

	t.Run("contact validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty customer name",
				mutate: func(b *builder.ReservationBuilder) { b.WithCustomerName("   ") },
				errIs:  reservation.ErrEmptyCustomerName,
			},
			{
				name:   "malformed email",
				mutate: func(b *builder.ReservationBuilder) { b.WithCustomerEmail("not-an-email") },
				errIs:  reservation.ErrInvalidCustomerEmail,
			},
			{
				name:   "empty phone",
				mutate: func(b *builder.ReservationBuilder) { b.WithCustomerPhone("") },
				errIs:  reservation.ErrEmptyCustomerPhone,
			},
		})
	})

	t.Run("special requests validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "maximum length accepted",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithSpecialRequests(strings.Repeat("a", reservation.MaxSpecialRequestsLength))
				},
			},
			{
				name: "over maximum length rejected",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithSpecialRequests(strings.Repeat("a", reservation.MaxSpecialRequestsLength+1))
				},
				errIs: reservation.ErrRequestsTooLong,
			},
			{
				name:   "omitted requests accepted",
				mutate: func(b *builder.ReservationBuilder) { b.SpecialRequests = nil },
			},
		})
	})
}

func TestStatusTransitions(t *testing.T) {
	newPending := func(t *testing.T) *reservation.Reservation {
		t.Helper()
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		return res
	}

	t.Run("pending to confirmed", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.TransitionTo(reservation.StatusConfirmed))
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("pending to cancelled", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.TransitionTo(reservation.StatusCancelled))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.False(t, res.IsActive())
	})

	t.Run("confirmed to cancelled", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.TransitionTo(reservation.StatusConfirmed))
		require.NoError(t, res.TransitionTo(reservation.StatusCancelled))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("confirmed cannot go back to pending", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.TransitionTo(reservation.StatusConfirmed))
		err := res.TransitionTo(reservation.StatusPending)
		require.ErrorIs(t, err, reservation.ErrInvalidTransition)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		for _, next := range []reservation.Status{
			reservation.StatusPending,
			reservation.StatusConfirmed,
			reservation.StatusCancelled,
		} {
			res := newPending(t)
			require.NoError(t, res.TransitionTo(reservation.StatusCancelled))
			err := res.TransitionTo(next)
			require.ErrorIs(t, err, reservation.ErrInvalidTransition, "cancelled -> %s must fail", next)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		res := newPending(t)
		err := res.TransitionTo(reservation.Status("archived"))
		require.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "cancelled"} {
		status, err := reservation.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, status.String())
	}

	_, err := reservation.NewStatus("no-show")
	require.ErrorIs(t, err, reservation.ErrInvalidStatus)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
