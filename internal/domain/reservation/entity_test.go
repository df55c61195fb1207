//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"hotel-nova/internal/domain/money"
	"hotel-nova/internal/domain/reservation"
	"hotel-nova/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.False(t, actual.ID().IsSet())
		assert.Equal(t, reservation.StatusConfirmed, actual.Status())
		assert.Equal(t, int64(2), actual.Period().Nights())
	})

	t.Run("requires persisted guest and room", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.GuestID = 0
		}).BuildDomain()
		assert.Error(t, err)

		_, err = builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.RoomID = 0
		}).BuildDomain()
		assert.Error(t, err)
	})

	t.Run("guest count must be positive", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.GuestCount = 0
		}).BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrInvalidGuestCount)
	})

	t.Run("codes are unique", func(t *testing.T) {
		a := reservation.NewCode()
		b := reservation.NewCode()
		assert.True(t, strings.HasPrefix(a, "RES-"))
		assert.NotEqual(t, a, b)
	})
}

func TestStayPeriod(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("check-out must follow check-in", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(day(10), day(10))
		assert.ErrorIs(t, err, reservation.ErrInvalidDateRange)

		_, err = reservation.NewStayPeriod(day(12), day(10))
		assert.ErrorIs(t, err, reservation.ErrInvalidDateRange)
	})

	t.Run("nights are whole days", func(t *testing.T) {
		period, err := reservation.NewStayPeriod(day(10), day(12))
		require.NoError(t, err)
		assert.Equal(t, int64(2), period.Nights())
	})

	t.Run("time of day is discarded", func(t *testing.T) {
		late := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
		early := time.Date(2026, 3, 12, 1, 0, 0, 0, time.UTC)

		period, err := reservation.NewStayPeriod(late, early)
		require.NoError(t, err)
		assert.Equal(t, day(10), period.CheckIn())
		assert.Equal(t, day(12), period.CheckOut())
		assert.Equal(t, int64(2), period.Nights())
	})

	t.Run("starts on or before", func(t *testing.T) {
		period, err := reservation.NewStayPeriod(day(10), day(12))
		require.NoError(t, err)

		assert.True(t, period.StartsOnOrBefore(day(10)))
		assert.True(t, period.StartsOnOrBefore(day(11)))
		assert.False(t, period.StartsOnOrBefore(day(9)))
	})
}

func TestLifecycle(t *testing.T) {
	build := func(t *testing.T) *reservation.Reservation {
		t.Helper()
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		return r
	}

	t.Run("confirmed to checked in to checked out", func(t *testing.T) {
		r := build(t)

		require.NoError(t, r.CheckIn())
		assert.Equal(t, reservation.StatusCheckedIn, r.Status())

		require.NoError(t, r.CheckOut())
		assert.Equal(t, reservation.StatusCheckedOut, r.Status())
	})

	t.Run("confirmed to cancelled", func(t *testing.T) {
		r := build(t)

		require.NoError(t, r.Cancel())
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("invalid transitions are rejected", func(t *testing.T) {
		cases := []struct {
			name string
			prep func(r *reservation.Reservation)
			step func(r *reservation.Reservation) error
		}{
			{
				name: "check out without check in",
				prep: func(_ *reservation.Reservation) {},
				step: (*reservation.Reservation).CheckOut,
			},
			{
				name: "cancel after check in",
				prep: func(r *reservation.Reservation) { _ = r.CheckIn() },
				step: (*reservation.Reservation).Cancel,
			},
			{
				name: "check in twice",
				prep: func(r *reservation.Reservation) { _ = r.CheckIn() },
				step: (*reservation.Reservation).CheckIn,
			},
			{
				name: "cancel a cancelled reservation",
				prep: func(r *reservation.Reservation) { _ = r.Cancel() },
				step: (*reservation.Reservation).Cancel,
			},
			{
				name: "check in a checked out stay",
				prep: func(r *reservation.Reservation) { _ = r.CheckIn(); _ = r.CheckOut() },
				step: (*reservation.Reservation).CheckIn,
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				r := build(t)
				c.prep(r)
				before := r.Status()
				err := c.step(r)
				assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
				assert.Equal(t, before, r.Status())
			})
		}
	})

	t.Run("terminal states", func(t *testing.T) {
		assert.False(t, reservation.StatusConfirmed.IsTerminal())
		assert.False(t, reservation.StatusCheckedIn.IsTerminal())
		assert.True(t, reservation.StatusCheckedOut.IsTerminal())
		assert.True(t, reservation.StatusCancelled.IsTerminal())
	})
}

func TestTotalCost(t *testing.T) {
	r, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)

	// two nights at $50.00
	assert.Equal(t, int64(10000), r.TotalCost(money.New(5000)).Cents())
}
