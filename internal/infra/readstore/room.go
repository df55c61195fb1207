package readstore

import (
	"context"

	"hotel-nova/internal/domain/room"
	"hotel-nova/internal/infra/query"
	"hotel-nova/internal/usecase"
)

type RoomViewQueries interface {
	CountRoomsByStatus(ctx context.Context, db query.DBTX) ([]query.RoomStatusCountRow, error)
}

type RoomReadStore struct {
	queries RoomViewQueries
	db      query.DBTX
}

func NewRoomReadStore(queries RoomViewQueries, db query.DBTX) *RoomReadStore {
	return &RoomReadStore{queries: queries, db: db}
}

func (s *RoomReadStore) CountByStatus(ctx context.Context) (*usecase.OccupancyCounts, error) {
	rows, err := s.queries.CountRoomsByStatus(ctx, s.db)
	if err != nil {
		return nil, wrapPgErr("failed to count rooms by status", err)
	}

	counts := &usecase.OccupancyCounts{}
	for _, row := range rows {
		n := int(row.Count)
		counts.Total += n
		switch room.Status(row.Status) {
		case room.StatusAvailable:
			counts.Available = n
		case room.StatusOccupied:
			counts.Occupied = n
		case room.StatusCleaning:
			counts.Cleaning = n
		case room.StatusMaintenance:
			counts.Maintenance = n
		}
	}
	return counts, nil
}

var _ usecase.RoomViews = (*RoomReadStore)(nil)
