//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"hotel-nova/internal/domain/room"
	"hotel-nova/internal/usecase"
	"hotel-nova/tests/common/builder"
	"hotel-nova/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a room as available", func(t *testing.T) {
		store := fake.NewStore()
		uc := usecase.NewRoomUseCase(store)

		created, err := uc.AddRoom(ctx, builder.NewRoomBuilder().BuildAddParams())
		require.NoError(t, err)

		assert.True(t, created.ID().IsSet())
		assert.Equal(t, room.StatusAvailable, created.Status())

		stored := store.RoomByNumber(101)
		require.NotNil(t, stored)
		assert.Equal(t, room.CategorySimple, stored.Category())
	})

	t.Run("duplicate number is rejected", func(t *testing.T) {
		store := fake.NewStore()
		store.SeedRoom(101, room.CategorySimple, 5000, room.StatusAvailable)
		uc := usecase.NewRoomUseCase(store)

		_, err := uc.AddRoom(ctx, builder.NewRoomBuilder().BuildAddParams())
		assert.ErrorIs(t, err, usecase.ErrDuplicateRoom)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		store := fake.NewStore()
		uc := usecase.NewRoomUseCase(store)

		params := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.Category = "presidential"
		}).BuildAddParams()

		_, err := uc.AddRoom(ctx, params)
		assert.ErrorIs(t, err, room.ErrInvalidCategory)
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		store := fake.NewStore()
		uc := usecase.NewRoomUseCase(store)

		params := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.RateCents = -1
		}).BuildAddParams()

		_, err := uc.AddRoom(ctx, params)
		assert.ErrorIs(t, err, room.ErrNegativeRate)
	})
}

func TestFindRoomByNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		store := fake.NewStore()
		store.SeedRoom(205, room.CategoryDouble, 8000, room.StatusCleaning)
		uc := usecase.NewRoomUseCase(store)

		found, err := uc.FindRoomByNumber(ctx, 205)
		require.NoError(t, err)
		assert.Equal(t, room.StatusCleaning, found.Status())
	})

	t.Run("missing", func(t *testing.T) {
		uc := usecase.NewRoomUseCase(fake.NewStore())

		_, err := uc.FindRoomByNumber(ctx, 999)
		assert.ErrorIs(t, err, usecase.ErrRoomNotFound)
	})
}

func TestUpdateRoomStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the room to the target status", func(t *testing.T) {
		store := fake.NewStore()
		store.SeedRoom(101, room.CategorySimple, 5000, room.StatusCleaning)
		uc := usecase.NewRoomUseCase(store)

		updated, err := uc.UpdateRoomStatus(ctx, 101, "available")
		require.NoError(t, err)
		assert.Equal(t, room.StatusAvailable, updated.Status())
		assert.Equal(t, room.StatusAvailable, store.RoomByNumber(101).Status())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		store := fake.NewStore()
		store.SeedRoom(101, room.CategorySimple, 5000, room.StatusAvailable)
		uc := usecase.NewRoomUseCase(store)

		_, err := uc.UpdateRoomStatus(ctx, 101, "renovating")
		assert.ErrorIs(t, err, usecase.ErrInvalidRoomStatus)
	})

	t.Run("missing room", func(t *testing.T) {
		uc := usecase.NewRoomUseCase(fake.NewStore())

		_, err := uc.UpdateRoomStatus(ctx, 404, "available")
		assert.ErrorIs(t, err, usecase.ErrRoomNotFound)
	})
}

func TestRemoveRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the room", func(t *testing.T) {
		store := fake.NewStore()
		store.SeedRoom(101, room.CategorySimple, 5000, room.StatusAvailable)
		uc := usecase.NewRoomUseCase(store)

		require.NoError(t, uc.RemoveRoom(ctx, 101))
		assert.Nil(t, store.RoomByNumber(101))
	})

	t.Run("missing room", func(t *testing.T) {
		uc := usecase.NewRoomUseCase(fake.NewStore())
		assert.ErrorIs(t, uc.RemoveRoom(ctx, 101), usecase.ErrRoomNotFound)
	})
}

func TestListRooms(t *testing.T) {
	store := fake.NewStore()
	store.SeedRoom(101, room.CategorySimple, 5000, room.StatusAvailable)
	store.SeedRoom(102, room.CategorySuite, 10000, room.StatusOccupied)
	uc := usecase.NewRoomUseCase(store)

	rooms, err := uc.ListRooms(context.Background())
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}
