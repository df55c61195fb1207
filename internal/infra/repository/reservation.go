package repository

import (
	"context"

	"hotel-nova/internal/domain/ident"
	"hotel-nova/internal/domain/reservation"
	"hotel-nova/internal/infra"
	"hotel-nova/internal/infra/query"
)

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) (int64, error)
	GetReservationByID(ctx context.Context, db query.DBTX, id int64) (query.ReservationRow, error)
	GetReservationByCode(ctx context.Context, db query.DBTX, code string) (query.ReservationRow, error)
	ListReservations(ctx context.Context, db query.DBTX) ([]query.ReservationRow, error)
	UpdateReservation(ctx context.Context, db query.DBTX, arg query.UpdateReservationParams) error
	DeleteReservation(ctx context.Context, db query.DBTX, id int64) error
}

type ReservationRepository struct {
	queries ReservationQueries
	db      query.DBTX
}

func NewReservationRepository(queries ReservationQueries, db query.DBTX) *ReservationRepository {
	return &ReservationRepository{queries: queries, db: db}
}

func (r *ReservationRepository) Save(ctx context.Context, entity *reservation.Reservation) error {
	if entity.ID().IsSet() {
		return infra.WrapRepoErr("reservation already persisted; use Update", nil, infra.KindDBFailure)
	}

	id, err := r.queries.CreateReservation(ctx, r.db, query.CreateReservationParams{
		Code:       entity.Code(),
		GuestID:    entity.GuestID().Int64(),
		RoomID:     entity.RoomID().Int64(),
		CheckIn:    entity.Period().CheckIn(),
		CheckOut:   entity.Period().CheckOut(),
		GuestCount: int32(entity.GuestCount()),
		Status:     string(entity.Status()),
	})
	if err != nil {
		return wrapPgErr("failed to save reservation", err)
	}

	assigned, err := ident.New(id)
	if err != nil {
		return infra.WrapRepoErr("store returned an invalid reservation identifier", err)
	}
	return entity.AssignID(assigned)
}

func (r *ReservationRepository) FindByID(ctx context.Context, id ident.ID) (*reservation.Reservation, error) {
	if !id.IsSet() {
		return nil, infra.WrapRepoErr("reservation identifier not assigned", nil, infra.KindNotFound)
	}
	row, err := r.queries.GetReservationByID(ctx, r.db, id.Int64())
	if err != nil {
		return nil, wrapPgErr("failed to find reservation by id", err)
	}
	return reservationFromRow(row)
}

func (r *ReservationRepository) FindByCode(ctx context.Context, code string) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByCode(ctx, r.db, code)
	if err != nil {
		return nil, wrapPgErr("failed to find reservation by code", err)
	}
	return reservationFromRow(row)
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservations(ctx, r.db)
	if err != nil {
		return nil, wrapPgErr("failed to list reservations", err)
	}

	result := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		entity, err := reservationFromRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	return result, nil
}

func (r *ReservationRepository) Update(ctx context.Context, entity *reservation.Reservation) error {
	if !entity.ID().IsSet() {
		return infra.WrapRepoErr("reservation identifier not assigned", nil, infra.KindNotFound)
	}

	err := r.queries.UpdateReservation(ctx, r.db, query.UpdateReservationParams{
		ID:         entity.ID().Int64(),
		Code:       entity.Code(),
		GuestID:    entity.GuestID().Int64(),
		RoomID:     entity.RoomID().Int64(),
		CheckIn:    entity.Period().CheckIn(),
		CheckOut:   entity.Period().CheckOut(),
		GuestCount: int32(entity.GuestCount()),
		Status:     string(entity.Status()),
	})
	if err != nil {
		return wrapPgErr("failed to update reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id ident.ID) error {
	if !id.IsSet() {
		return infra.WrapRepoErr("reservation identifier not assigned", nil, infra.KindNotFound)
	}
	if err := r.queries.DeleteReservation(ctx, r.db, id.Int64()); err != nil {
		return wrapPgErr("failed to delete reservation", err)
	}
	return nil
}

func reservationFromRow(row query.ReservationRow) (*reservation.Reservation, error) {
	id, err := ident.New(row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid identifier", err)
	}
	guestID, err := ident.New(row.GuestID)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid guest reference", err)
	}
	roomID, err := ident.New(row.RoomID)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid room reference", err)
	}
	period, err := reservation.NewStayPeriod(row.CheckIn, row.CheckOut)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid stay period", err)
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid status", err)
	}
	return reservation.Reconstruct(id, row.Code, guestID, roomID, period, int(row.GuestCount), status), nil
}
