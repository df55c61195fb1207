package readstore

import (
	"context"
	"errors"

	"hotel-nova/internal/infra"
	"hotel-nova/internal/infra/query"
	"hotel-nova/internal/usecase"

	"github.com/jackc/pgx/v5"
)

type ReservationViewQueries interface {
	GetReservationView(ctx context.Context, db query.DBTX, id int64) (query.ReservationViewRow, error)
	ListReservationViews(ctx context.Context, db query.DBTX) ([]query.ReservationViewRow, error)
	ListReservationViewsByStatus(ctx context.Context, db query.DBTX, status string) ([]query.ReservationViewRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      query.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db query.DBTX) *ReservationReadStore {
	return &ReservationReadStore{queries: queries, db: db}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id int64) (*usecase.ReservationView, error) {
	row, err := s.queries.GetReservationView(ctx, s.db, id)
	if err != nil {
		return nil, wrapPgErr("failed to get reservation view", err)
	}
	return viewFromRow(row), nil
}

func (s *ReservationReadStore) FindAll(ctx context.Context) ([]*usecase.ReservationView, error) {
	rows, err := s.queries.ListReservationViews(ctx, s.db)
	if err != nil {
		return nil, wrapPgErr("failed to list reservation views", err)
	}
	return viewsFromRows(rows), nil
}

func (s *ReservationReadStore) FindByStatus(ctx context.Context, status string) ([]*usecase.ReservationView, error) {
	rows, err := s.queries.ListReservationViewsByStatus(ctx, s.db, status)
	if err != nil {
		return nil, wrapPgErr("failed to list reservation views by status", err)
	}
	return viewsFromRows(rows), nil
}

func viewFromRow(row query.ReservationViewRow) *usecase.ReservationView {
	return &usecase.ReservationView{
		ID:            row.ID,
		Code:          row.Code,
		Status:        row.Status,
		CheckIn:       row.CheckIn,
		CheckOut:      row.CheckOut,
		GuestCount:    int(row.GuestCount),
		GuestID:       row.GuestID,
		GuestDocument: row.GuestDocument,
		GuestName:     row.GuestFirst + " " + row.GuestLast,
		RoomID:        row.RoomID,
		RoomNumber:    int(row.RoomNumber),
		RoomCategory:  row.RoomCategory,
		RoomRateCents: row.RoomRateCents,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func viewsFromRows(rows []query.ReservationViewRow) []*usecase.ReservationView {
	result := make([]*usecase.ReservationView, 0, len(rows))
	for _, row := range rows {
		result = append(result, viewFromRow(row))
	}
	return result
}

var _ usecase.ReservationViews = (*ReservationReadStore)(nil)

// wrapPgErr mirrors the repository-side mapping so callers see the same
// infra.RepositoryError kinds regardless of which side produced the error.
func wrapPgErr(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
