//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"hotel-nova/internal/domain/room"
	"hotel-nova/internal/pkg/clock"
	"hotel-nova/internal/usecase"
	"hotel-nova/tests/common/builder"
	"hotel-nova/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	store        *fake.Store
	reservations usecase.ReservationUseCase
	reports      usecase.ReportUseCase
}

func newReportFixture() *reportFixture {
	store := fake.NewStore()
	clk := clock.NewMockClock(today)
	return &reportFixture{
		store:        store,
		reservations: usecase.NewReservationUseCase(store, store.Views(), clk, time.UTC),
		reports:      usecase.NewReportUseCase(store.Views(), store.Views()),
	}
}

// stay walks a reservation through the full lifecycle up to check-out.
func (f *reportFixture) stay(t *testing.T, roomNumber, nights int) {
	t.Helper()
	ctx := context.Background()

	view, err := f.reservations.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.RoomNumber = roomNumber
		b.CheckIn = today.AddDate(0, 0, 1)
		b.CheckOut = today.AddDate(0, 0, 1+nights)
	}).BuildCreateParams())
	require.NoError(t, err)

	_, err = f.reservations.CheckIn(ctx, view.ID)
	require.NoError(t, err)
	_, err = f.reservations.CheckOut(ctx, view.ID)
	require.NoError(t, err)
}

func TestTotalRevenue(t *testing.T) {
	ctx := context.Background()

	t.Run("only checked-out stays count", func(t *testing.T) {
		f := newReportFixture()
		f.store.SeedGuest("X-1234567", "Ana", "Morales")
		f.store.SeedRoom(101, room.CategorySimple, 5000, room.StatusAvailable)
		f.store.SeedRoom(102, room.CategorySimple, 5000, room.StatusAvailable)
		f.store.SeedRoom(301, room.CategorySuite, 10000, room.StatusAvailable)

		// checked out: 2 nights at $50
		f.stay(t, 101, 2)

		// confirmed only
		_, err := f.reservations.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.RoomNumber = 102
			b.CheckIn = today.AddDate(0, 0, 1)
			b.CheckOut = today.AddDate(0, 0, 3)
		}).BuildCreateParams())
		require.NoError(t, err)

		// cancelled
		view, err := f.reservations.Create(ctx, builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.RoomNumber = 301
			b.CheckIn = today.AddDate(0, 0, 1)
			b.CheckOut = today.AddDate(0, 0, 3)
		}).BuildCreateParams())
		require.NoError(t, err)
		_, err = f.reservations.Cancel(ctx, view.ID)
		require.NoError(t, err)

		report, err := f.reports.TotalRevenue(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, report.CheckedOutCount)
		assert.Equal(t, int64(10000), report.TotalCents)
	})

	t.Run("suite revenue carries the surcharge", func(t *testing.T) {
		f := newReportFixture()
		f.store.SeedGuest("X-1234567", "Ana", "Morales")
		f.store.SeedRoom(301, room.CategorySuite, 10000, room.StatusAvailable)

		f.stay(t, 301, 3)

		report, err := f.reports.TotalRevenue(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, report.CheckedOutCount)
		assert.Equal(t, int64(36000), report.TotalCents)
	})

	t.Run("empty ledger", func(t *testing.T) {
		f := newReportFixture()

		report, err := f.reports.TotalRevenue(ctx)
		require.NoError(t, err)

		assert.Equal(t, 0, report.CheckedOutCount)
		assert.Equal(t, int64(0), report.TotalCents)
	})
}

func TestOccupancy(t *testing.T) {
	ctx := context.Background()

	f := newReportFixture()
	f.store.SeedRoom(101, room.CategorySimple, 5000, room.StatusAvailable)
	f.store.SeedRoom(102, room.CategorySimple, 5000, room.StatusAvailable)
	f.store.SeedRoom(201, room.CategoryDouble, 8000, room.StatusOccupied)
	f.store.SeedRoom(202, room.CategoryDouble, 8000, room.StatusCleaning)
	f.store.SeedRoom(301, room.CategorySuite, 10000, room.StatusMaintenance)

	counts, err := f.reports.Occupancy(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, counts.Total)
	assert.Equal(t, 2, counts.Available)
	assert.Equal(t, 1, counts.Occupied)
	assert.Equal(t, 1, counts.Cleaning)
	assert.Equal(t, 1, counts.Maintenance)
}
