//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"hotel-nova/internal/domain/reservation"
	"hotel-nova/internal/domain/room"
	"hotel-nova/internal/pkg/clock"
	"hotel-nova/internal/usecase"
	"hotel-nova/tests/common/builder"
	"hotel-nova/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture: "today" for every test in this file
var today = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

type reservationFixture struct {
	store *fake.Store
	uc    usecase.ReservationUseCase
}

func newReservationFixture() *reservationFixture {
	store := fake.NewStore()
	clk := clock.NewMockClock(today)
	return &reservationFixture{
		store: store,
		uc:    usecase.NewReservationUseCase(store, store.Views(), clk, time.UTC),
	}
}

func (f *reservationFixture) seedDefaults() {
	f.store.SeedGuest("X-1234567", "Ana", "Morales")
	f.store.SeedRoom(101, room.CategorySimple, 5000, room.StatusAvailable)
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("future stay leaves the room available", func(t *testing.T) {
		f := newReservationFixture()
		f.seedDefaults()

		view, err := f.uc.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = today.AddDate(0, 0, 3)
			b.CheckOut = today.AddDate(0, 0, 5)
		}).BuildCreateParams())
		require.NoError(t, err)

		assert.Equal(t, "confirmed", view.Status)
		assert.Equal(t, "Ana Morales", view.GuestName)
		assert.Equal(t, 101, view.RoomNumber)
		assert.Equal(t, room.StatusAvailable, f.store.RoomByNumber(101).Status())
	})

	t.Run("stay starting today occupies the room", func(t *testing.T) {
		f := newReservationFixture()
		f.seedDefaults()

		_, err := f.uc.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = today
			b.CheckOut = today.AddDate(0, 0, 2)
		}).BuildCreateParams())
		require.NoError(t, err)

		assert.Equal(t, room.StatusOccupied, f.store.RoomByNumber(101).Status())
	})

	t.Run("unregistered guest", func(t *testing.T) {
		f := newReservationFixture()
		f.store.SeedRoom(101, room.CategorySimple, 5000, room.StatusAvailable)

		_, err := f.uc.Create(ctx, builder.NewReservationBuilder().BuildCreateParams())
		assert.ErrorIs(t, err, usecase.ErrGuestNotRegistered)
	})

	t.Run("missing room", func(t *testing.T) {
		f := newReservationFixture()
		f.store.SeedGuest("X-1234567", "Ana", "Morales")

		_, err := f.uc.Create(ctx, builder.NewReservationBuilder().BuildCreateParams())
		assert.ErrorIs(t, err, usecase.ErrRoomNotFound)
	})

	t.Run("room not available", func(t *testing.T) {
		f := newReservationFixture()
		f.store.SeedGuest("X-1234567", "Ana", "Morales")
		f.store.SeedRoom(101, room.CategorySimple, 5000, room.StatusMaintenance)

		_, err := f.uc.Create(ctx, builder.NewReservationBuilder().BuildCreateParams())
		assert.ErrorIs(t, err, usecase.ErrRoomNotAvailable)
	})

	t.Run("invalid date range", func(t *testing.T) {
		f := newReservationFixture()
		f.seedDefaults()

		_, err := f.uc.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckOut = b.CheckIn
		}).BuildCreateParams())
		assert.ErrorIs(t, err, reservation.ErrInvalidDateRange)
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("cancelling releases the room", func(t *testing.T) {
		f := newReservationFixture()
		f.seedDefaults()

		view, err := f.uc.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = today
			b.CheckOut = today.AddDate(0, 0, 2)
		}).BuildCreateParams())
		require.NoError(t, err)
		require.Equal(t, room.StatusOccupied, f.store.RoomByNumber(101).Status())

		cancelled, err := f.uc.Cancel(ctx, view.ID)
		require.NoError(t, err)

		assert.Equal(t, "cancelled", cancelled.Status)
		assert.Equal(t, room.StatusAvailable, f.store.RoomByNumber(101).Status())
	})

	t.Run("checked-in stays cannot be cancelled", func(t *testing.T) {
		f := newReservationFixture()
		f.seedDefaults()

		view, err := f.uc.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = today.AddDate(0, 0, 1)
			b.CheckOut = today.AddDate(0, 0, 3)
		}).BuildCreateParams())
		require.NoError(t, err)

		_, err = f.uc.CheckIn(ctx, view.ID)
		require.NoError(t, err)

		_, err = f.uc.Cancel(ctx, view.ID)
		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
	})

	t.Run("missing reservation", func(t *testing.T) {
		f := newReservationFixture()
		_, err := f.uc.Cancel(ctx, 42)
		assert.ErrorIs(t, err, usecase.ErrReservationNotFound)
	})
}

func TestCheckInReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("check-in occupies the room", func(t *testing.T) {
		f := newReservationFixture()
		f.seedDefaults()

		view, err := f.uc.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = today.AddDate(0, 0, 1)
			b.CheckOut = today.AddDate(0, 0, 3)
		}).BuildCreateParams())
		require.NoError(t, err)

		checked, err := f.uc.CheckIn(ctx, view.ID)
		require.NoError(t, err)

		assert.Equal(t, "checked_in", checked.Status)
		assert.Equal(t, room.StatusOccupied, f.store.RoomByNumber(101).Status())
	})

	t.Run("room occupied by an immediate stay rejects another check-in", func(t *testing.T) {
		f := newReservationFixture()
		f.seedDefaults()

		// a stay starting today already flips the room to Occupied; the
		// explicit check-in then finds no available room
		view, err := f.uc.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = today
			b.CheckOut = today.AddDate(0, 0, 2)
		}).BuildCreateParams())
		require.NoError(t, err)
		require.Equal(t, room.StatusOccupied, f.store.RoomByNumber(101).Status())

		_, err = f.uc.CheckIn(ctx, view.ID)
		assert.ErrorIs(t, err, usecase.ErrRoomNotAvailable)
		assert.Equal(t, reservation.StatusConfirmed, f.store.ReservationByID(view.ID).Status())
	})

	t.Run("cannot check in twice", func(t *testing.T) {
		f := newReservationFixture()
		f.seedDefaults()

		view, err := f.uc.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = today.AddDate(0, 0, 1)
			b.CheckOut = today.AddDate(0, 0, 3)
		}).BuildCreateParams())
		require.NoError(t, err)

		_, err = f.uc.CheckIn(ctx, view.ID)
		require.NoError(t, err)

		_, err = f.uc.CheckIn(ctx, view.ID)
		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
	})
}

func TestCheckOutReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("two nights in a simple room invoice $100", func(t *testing.T) {
		f := newReservationFixture()
		f.seedDefaults()

		view, err := f.uc.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = today.AddDate(0, 0, 1)
			b.CheckOut = today.AddDate(0, 0, 3)
		}).BuildCreateParams())
		require.NoError(t, err)

		_, err = f.uc.CheckIn(ctx, view.ID)
		require.NoError(t, err)

		invoice, err := f.uc.CheckOut(ctx, view.ID)
		require.NoError(t, err)

		assert.Equal(t, int64(2), invoice.Nights)
		assert.Equal(t, int64(5000), invoice.NightlyCents)
		assert.Equal(t, int64(10000), invoice.TotalCents)
		assert.Equal(t, "Ana Morales", invoice.GuestName)
		assert.Equal(t, reservation.StatusCheckedOut, f.store.ReservationByID(view.ID).Status())
		assert.Equal(t, room.StatusCleaning, f.store.RoomByNumber(101).Status())
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		f := newReservationFixture()
		f.seedDefaults()

		view, err := f.uc.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = today.AddDate(0, 0, 1)
			b.CheckOut = today.AddDate(0, 0, 3)
		}).BuildCreateParams())
		require.NoError(t, err)

		_, err = f.uc.CheckOut(ctx, view.ID)
		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
	})

	t.Run("suite nights carry the surcharge", func(t *testing.T) {
		f := newReservationFixture()
		f.store.SeedGuest("X-1234567", "Ana", "Morales")
		f.store.SeedRoom(301, room.CategorySuite, 10000, room.StatusAvailable)

		view, err := f.uc.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.RoomNumber = 301
			b.CheckIn = today.AddDate(0, 0, 1)
			b.CheckOut = today.AddDate(0, 0, 4)
		}).BuildCreateParams())
		require.NoError(t, err)

		_, err = f.uc.CheckIn(ctx, view.ID)
		require.NoError(t, err)

		invoice, err := f.uc.CheckOut(ctx, view.ID)
		require.NoError(t, err)

		assert.Equal(t, int64(3), invoice.Nights)
		assert.Equal(t, int64(12000), invoice.NightlyCents)
		assert.Equal(t, int64(36000), invoice.TotalCents)
	})
}

func TestGetReservationByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the confirmation code", func(t *testing.T) {
		f := newReservationFixture()
		f.seedDefaults()

		view, err := f.uc.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckIn = today.AddDate(0, 0, 3)
			b.CheckOut = today.AddDate(0, 0, 5)
		}).BuildCreateParams())
		require.NoError(t, err)
		require.NotEmpty(t, view.Code)

		found, err := f.uc.GetByCode(ctx, view.Code)
		require.NoError(t, err)
		assert.Equal(t, view.ID, found.ID)
		assert.Equal(t, view.Code, found.Code)
	})

	t.Run("unknown code", func(t *testing.T) {
		f := newReservationFixture()

		_, err := f.uc.GetByCode(ctx, "RES-0000-0000")
		assert.ErrorIs(t, err, usecase.ErrReservationNotFound)
	})
}
