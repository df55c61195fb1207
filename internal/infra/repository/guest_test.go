//go:build unit

package repository

import (
	"context"
	"testing"

	"hotel-nova/internal/infra"
	"hotel-nova/internal/infra/query"
	"hotel-nova/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGuestQueries struct {
	mock.Mock
}

func (m *MockGuestQueries) CreateGuest(ctx context.Context, db query.DBTX, arg query.CreateGuestParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGuestQueries) GetGuestByID(ctx context.Context, db query.DBTX, id int64) (query.GuestRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.GuestRow), args.Error(1)
}

func (m *MockGuestQueries) GetGuestByDocument(ctx context.Context, db query.DBTX, document string) (query.GuestRow, error) {
	args := m.Called(ctx, db, document)
	return args.Get(0).(query.GuestRow), args.Error(1)
}

func (m *MockGuestQueries) ListGuests(ctx context.Context, db query.DBTX) ([]query.GuestRow, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]query.GuestRow), args.Error(1)
}

func (m *MockGuestQueries) UpdateGuest(ctx context.Context, db query.DBTX, arg query.UpdateGuestParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockGuestQueries) DeleteGuest(ctx context.Context, db query.DBTX, id int64) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

// query.DBTX implementation for MockGuestQueries
func (m *MockGuestQueries) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockGuestQueries) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockGuestQueries) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestGuestSave(t *testing.T) {
	tests := []struct {
		name     string
		mockID   int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:   "success",
			mockID: 7,
		},
		{
			name:     "duplicate document",
			mockErr:  &pgconn.PgError{Code: "23505"},
			wantKind: infra.KindDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockGuestQueries)
			mockQueries.On("CreateGuest", mock.Anything, mock.Anything, mock.Anything).Return(tt.mockID, tt.mockErr)

			repo := NewGuestRepository(mockQueries, mockQueries)
			entity, err := builder.NewGuestBuilder().BuildDomain()
			require.NoError(t, err)

			err = repo.Save(context.Background(), entity)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockID, entity.ID().Int64())
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestGuestFindByDocument(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockGuestQueries)
		mockQueries.On("GetGuestByDocument", mock.Anything, mock.Anything, "X-1234567").Return(query.GuestRow{
			ID:        7,
			Document:  "X-1234567",
			FirstName: "Ana",
			LastName:  "Morales",
			Email:     "ana@example.com",
		}, nil)

		repo := NewGuestRepository(mockQueries, mockQueries)

		entity, err := repo.FindByDocument(context.Background(), "X-1234567")

		require.NoError(t, err)
		assert.Equal(t, int64(7), entity.ID().Int64())
		assert.Equal(t, "Ana Morales", entity.FullName())
		assert.Equal(t, "ana@example.com", entity.Email())
		mockQueries.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockGuestQueries)
		mockQueries.On("GetGuestByDocument", mock.Anything, mock.Anything, "X-0000000").
			Return(query.GuestRow{}, pgx.ErrNoRows)

		repo := NewGuestRepository(mockQueries, mockQueries)

		_, err := repo.FindByDocument(context.Background(), "X-0000000")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertExpectations(t)
	})
}
