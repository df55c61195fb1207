//go:build unit

package guest_test

import (
	"testing"

	"hotel-nova/internal/domain/guest"
	"hotel-nova/internal/domain/ident"
	"hotel-nova/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.GuestBuilder)
	errIs  error
}

func TestGuest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewGuestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.False(t, actual.ID().IsSet())
		assert.Equal(t, "X-1234567", actual.Document())
		assert.Equal(t, "Ana Morales", actual.FullName())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty document",
				mutate: func(b *builder.GuestBuilder) { b.Document = "" },
				errIs:  guest.ErrEmptyDocument,
			},
			{
				name:   "whitespace document",
				mutate: func(b *builder.GuestBuilder) { b.Document = "   " },
				errIs:  guest.ErrEmptyDocument,
			},
			{
				name:   "empty first name",
				mutate: func(b *builder.GuestBuilder) { b.FirstName = "" },
				errIs:  guest.ErrEmptyName,
			},
			{
				name:   "empty last name",
				mutate: func(b *builder.GuestBuilder) { b.LastName = "  " },
				errIs:  guest.ErrEmptyName,
			},
			{
				name:   "contact details are optional",
				mutate: func(b *builder.GuestBuilder) { b.Email = ""; b.Phone = "" },
			},
		})
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		actual, err := guest.NewGuest("  X-99  ", "  Luis ", " Vega ", "", "")
		require.NoError(t, err)
		assert.Equal(t, "X-99", actual.Document())
		assert.Equal(t, "Luis Vega", actual.FullName())
	})

	t.Run("contact update", func(t *testing.T) {
		actual, err := builder.NewGuestBuilder().BuildDomain()
		require.NoError(t, err)

		actual.UpdateContact("new@example.com", "+34 600 999 999")
		assert.Equal(t, "new@example.com", actual.Email())
		assert.Equal(t, "+34 600 999 999", actual.Phone())
	})

	t.Run("identifier is assigned once", func(t *testing.T) {
		actual, err := builder.NewGuestBuilder().BuildDomain()
		require.NoError(t, err)

		id, _ := ident.New(3)
		require.NoError(t, actual.AssignID(id))
		err = actual.AssignID(id)
		assert.ErrorIs(t, err, guest.ErrAlreadyPersisted)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewGuestBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
