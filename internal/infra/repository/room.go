package repository

import (
	"context"

	"hotel-nova/internal/domain/ident"
	"hotel-nova/internal/domain/money"
	"hotel-nova/internal/domain/room"
	"hotel-nova/internal/infra"
	"hotel-nova/internal/infra/query"
)

type RoomQueries interface {
	CreateRoom(ctx context.Context, db query.DBTX, arg query.CreateRoomParams) (int64, error)
	GetRoomByID(ctx context.Context, db query.DBTX, id int64) (query.RoomRow, error)
	GetRoomByNumber(ctx context.Context, db query.DBTX, number int32) (query.RoomRow, error)
	ListRooms(ctx context.Context, db query.DBTX) ([]query.RoomRow, error)
	UpdateRoom(ctx context.Context, db query.DBTX, arg query.UpdateRoomParams) error
	DeleteRoom(ctx context.Context, db query.DBTX, id int64) error
}

type RoomRepository struct {
	queries RoomQueries
	db      query.DBTX
}

func NewRoomRepository(queries RoomQueries, db query.DBTX) *RoomRepository {
	return &RoomRepository{queries: queries, db: db}
}

// Save inserts the room and feeds the store-generated identifier back into
// the entity, completing the persistence round-trip.
func (r *RoomRepository) Save(ctx context.Context, entity *room.Room) error {
	if entity.ID().IsSet() {
		return infra.WrapRepoErr("room already persisted; use Update", nil, infra.KindDBFailure)
	}

	id, err := r.queries.CreateRoom(ctx, r.db, query.CreateRoomParams{
		Number:    int32(entity.Number()),
		Category:  entity.Category().String(),
		RateCents: entity.Rate().Cents(),
		Status:    entity.Status().String(),
	})
	if err != nil {
		return wrapPgErr("failed to save room", err)
	}

	assigned, err := ident.New(id)
	if err != nil {
		return infra.WrapRepoErr("store returned an invalid room identifier", err)
	}
	return entity.AssignID(assigned)
}

func (r *RoomRepository) FindByID(ctx context.Context, id ident.ID) (*room.Room, error) {
	if !id.IsSet() {
		return nil, infra.WrapRepoErr("room identifier not assigned", nil, infra.KindNotFound)
	}
	row, err := r.queries.GetRoomByID(ctx, r.db, id.Int64())
	if err != nil {
		return nil, wrapPgErr("failed to find room by id", err)
	}
	return roomFromRow(row)
}

func (r *RoomRepository) FindByNumber(ctx context.Context, number int) (*room.Room, error) {
	row, err := r.queries.GetRoomByNumber(ctx, r.db, int32(number))
	if err != nil {
		return nil, wrapPgErr("failed to find room by number", err)
	}
	return roomFromRow(row)
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]*room.Room, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, wrapPgErr("failed to list rooms", err)
	}

	result := make([]*room.Room, 0, len(rows))
	for _, row := range rows {
		entity, err := roomFromRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	return result, nil
}

// Update persists the full current state keyed by the persistent identifier.
func (r *RoomRepository) Update(ctx context.Context, entity *room.Room) error {
	if !entity.ID().IsSet() {
		return infra.WrapRepoErr("room identifier not assigned", nil, infra.KindNotFound)
	}

	err := r.queries.UpdateRoom(ctx, r.db, query.UpdateRoomParams{
		ID:        entity.ID().Int64(),
		Number:    int32(entity.Number()),
		Category:  entity.Category().String(),
		RateCents: entity.Rate().Cents(),
		Status:    entity.Status().String(),
	})
	if err != nil {
		return wrapPgErr("failed to update room", err)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id ident.ID) error {
	if !id.IsSet() {
		return infra.WrapRepoErr("room identifier not assigned", nil, infra.KindNotFound)
	}
	if err := r.queries.DeleteRoom(ctx, r.db, id.Int64()); err != nil {
		return wrapPgErr("failed to delete room", err)
	}
	return nil
}

func roomFromRow(row query.RoomRow) (*room.Room, error) {
	id, err := ident.New(row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("stored room has an invalid identifier", err)
	}
	category, err := room.ParseCategory(row.Category)
	if err != nil {
		return nil, infra.WrapRepoErr("stored room has an invalid category", err)
	}
	status, err := room.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored room has an invalid status", err)
	}
	return room.Reconstruct(id, int(row.Number), category, money.New(row.RateCents), status), nil
}
