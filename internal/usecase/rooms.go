package usecase

import (
	"context"
	"errors"

	"hotel-nova/internal/domain/money"
	"hotel-nova/internal/domain/room"
	"hotel-nova/internal/infra"
	"hotel-nova/internal/pkg/errs"
	"hotel-nova/internal/usecase/shared"
)

var (
	ErrDuplicateRoom     = errors.New("a room with this number already exists")
	ErrRoomNotFound      = errors.New("room not found")
	ErrInvalidRoomStatus = errors.New("unrecognized room status")
	ErrStorageFailure    = errors.New("storage operation failed")
)

type AddRoomParams struct {
	Number    int
	Category  string
	RateCents int64
}

type RoomUseCase interface {
	AddRoom(ctx context.Context, params AddRoomParams) (*room.Room, error)
	FindRoomByNumber(ctx context.Context, number int) (*room.Room, error)
	ListRooms(ctx context.Context) ([]*room.Room, error)
	UpdateRoomStatus(ctx context.Context, number int, status string) (*room.Room, error)
	RemoveRoom(ctx context.Context, number int) error
}

type roomUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewRoomUseCase(uow shared.UnitOfWork) RoomUseCase {
	return &roomUseCaseImpl{uow: uow}
}

func (u *roomUseCaseImpl) AddRoom(ctx context.Context, params AddRoomParams) (*room.Room, error) {
	category, err := room.ParseCategory(params.Category)
	if err != nil {
		return nil, err
	}
	rate, err := money.NewNonNegative(params.RateCents)
	if err != nil {
		return nil, room.ErrNegativeRate
	}
	entity, err := room.NewRoom(params.Number, category, rate)
	if err != nil {
		return nil, err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Rooms().FindByNumber(ctx, entity.Number())
		switch {
		case err == nil:
			return ErrDuplicateRoom
		case !infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrStorageFailure)
		}

		if err := tx.Rooms().Save(ctx, entity); err != nil {
			// the unique constraint backs up the pre-check under concurrency
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateRoom
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (u *roomUseCaseImpl) FindRoomByNumber(ctx context.Context, number int) (*room.Room, error) {
	entity, err := u.uow.Repos().Rooms().FindByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return entity, nil
}

func (u *roomUseCaseImpl) ListRooms(ctx context.Context) ([]*room.Room, error) {
	rooms, err := u.uow.Repos().Rooms().FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return rooms, nil
}

func (u *roomUseCaseImpl) UpdateRoomStatus(ctx context.Context, number int, status string) (*room.Room, error) {
	next, err := room.ParseStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoomStatus)
	}

	var entity *room.Room
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Rooms().FindByNumber(ctx, number)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		if err := found.ChangeStatus(next); err != nil {
			return errs.Mark(err, ErrInvalidRoomStatus)
		}
		if err := tx.Rooms().Update(ctx, found); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		entity = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// RemoveRoom deletes by number. No invariant is attached to deletion; it
// exists as an administrative escape hatch.
func (u *roomUseCaseImpl) RemoveRoom(ctx context.Context, number int) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Rooms().FindByNumber(ctx, number)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		if err := tx.Rooms().Delete(ctx, found.ID()); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
}
