//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"hotel-nova/internal/domain/guest"
	"hotel-nova/internal/usecase"
	"hotel-nova/tests/common/builder"
	"hotel-nova/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterGuest(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a new guest", func(t *testing.T) {
		store := fake.NewStore()
		uc := usecase.NewGuestUseCase(store)

		registered, created, err := uc.RegisterGuest(ctx, builder.NewGuestBuilder().BuildRegisterParams())
		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, registered.ID().IsSet())
	})

	t.Run("same document returns the stored record", func(t *testing.T) {
		store := fake.NewStore()
		uc := usecase.NewGuestUseCase(store)

		first, created, err := uc.RegisterGuest(ctx, builder.NewGuestBuilder().BuildRegisterParams())
		require.NoError(t, err)
		require.True(t, created)

		// second registration carries different contact details on purpose
		params := builder.NewGuestBuilder().With(func(b *builder.GuestBuilder) {
			b.Email = "other@example.com"
		}).BuildRegisterParams()

		second, created, err := uc.RegisterGuest(ctx, params)
		require.NoError(t, err)
		assert.False(t, created)
		assert.True(t, first.ID().Equal(second.ID()))
		assert.Equal(t, first.Email(), second.Email())
	})

	t.Run("invalid guest is rejected", func(t *testing.T) {
		uc := usecase.NewGuestUseCase(fake.NewStore())

		params := builder.NewGuestBuilder().With(func(b *builder.GuestBuilder) {
			b.Document = "  "
		}).BuildRegisterParams()

		_, _, err := uc.RegisterGuest(ctx, params)
		assert.ErrorIs(t, err, guest.ErrEmptyDocument)
	})
}

func TestFindGuestByDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		store := fake.NewStore()
		store.SeedGuest("X-777", "Carmen", "Silva")
		uc := usecase.NewGuestUseCase(store)

		found, err := uc.FindGuestByDocument(ctx, "X-777")
		require.NoError(t, err)
		assert.Equal(t, "Carmen Silva", found.FullName())
	})

	t.Run("missing", func(t *testing.T) {
		uc := usecase.NewGuestUseCase(fake.NewStore())

		_, err := uc.FindGuestByDocument(ctx, "missing")
		assert.ErrorIs(t, err, usecase.ErrGuestNotFound)
	})
}

func TestUpdateGuestContact(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the stored contact details", func(t *testing.T) {
		store := fake.NewStore()
		store.SeedGuest("X-777", "Carmen", "Silva")
		uc := usecase.NewGuestUseCase(store)

		updated, err := uc.UpdateGuestContact(ctx, "X-777", "carmen@example.com", "+34 600 111 222")
		require.NoError(t, err)
		assert.Equal(t, "carmen@example.com", updated.Email())
		assert.Equal(t, "+34 600 111 222", updated.Phone())

		stored, err := uc.FindGuestByDocument(ctx, "X-777")
		require.NoError(t, err)
		assert.Equal(t, "carmen@example.com", stored.Email())
	})

	t.Run("empty values clear the contact", func(t *testing.T) {
		store := fake.NewStore()
		store.SeedGuest("X-777", "Carmen", "Silva")
		uc := usecase.NewGuestUseCase(store)

		_, err := uc.UpdateGuestContact(ctx, "X-777", "carmen@example.com", "+34 600 111 222")
		require.NoError(t, err)

		updated, err := uc.UpdateGuestContact(ctx, "X-777", "", "")
		require.NoError(t, err)
		assert.Empty(t, updated.Email())
		assert.Empty(t, updated.Phone())
	})

	t.Run("unknown document", func(t *testing.T) {
		uc := usecase.NewGuestUseCase(fake.NewStore())

		_, err := uc.UpdateGuestContact(ctx, "missing", "x@example.com", "")
		assert.ErrorIs(t, err, usecase.ErrGuestNotFound)
	})
}

func TestListGuests(t *testing.T) {
	store := fake.NewStore()
	store.SeedGuest("X-1", "Ana", "Morales")
	store.SeedGuest("X-2", "Luis", "Vega")
	uc := usecase.NewGuestUseCase(store)

	guests, err := uc.ListGuests(context.Background())
	require.NoError(t, err)
	assert.Len(t, guests, 2)
}
