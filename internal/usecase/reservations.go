package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-nova/internal/domain/ident"
	"hotel-nova/internal/domain/reservation"
	"hotel-nova/internal/domain/room"
	"hotel-nova/internal/infra"
	"hotel-nova/internal/pkg/clock"
	"hotel-nova/internal/pkg/errs"
	"hotel-nova/internal/usecase/shared"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomNotAvailable    = errors.New("room is not available")
	ErrGuestNotRegistered  = errors.New("guest is not registered; register the guest first")
)

type CreateReservationParams struct {
	GuestID    int64
	RoomNumber int
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
}

type ReservationUseCase interface {
	Create(ctx context.Context, params CreateReservationParams) (*ReservationView, error)
	Cancel(ctx context.Context, id int64) (*ReservationView, error)
	CheckIn(ctx context.Context, id int64) (*ReservationView, error)
	// CheckOut closes the stay and returns the invoice summary.
	CheckOut(ctx context.Context, id int64) (*Invoice, error)
	Get(ctx context.Context, id int64) (*ReservationView, error)
	// GetByCode resolves the public confirmation code guests hold.
	GetByCode(ctx context.Context, code string) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationView, error)
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	views    ReservationViews
	clock    clock.Clock
	location *time.Location
}

func NewReservationUseCase(uow shared.UnitOfWork, views ReservationViews, clk clock.Clock, location *time.Location) ReservationUseCase {
	return &reservationUseCaseImpl{
		uow:      uow,
		views:    views,
		clock:    clk,
		location: location,
	}
}

// Create validates the guest and room, persists the reservation as Confirmed
// and, when the stay starts today or earlier, flips the room to Occupied in
// the same transaction.
//
// Availability is the room's CURRENT status flag only. Two stays that do not
// overlap in time can both be Confirmed against one room; calendar overlap is
// not checked. Inherited limitation, kept on purpose.
func (u *reservationUseCaseImpl) Create(ctx context.Context, params CreateReservationParams) (*ReservationView, error) {
	guestID, err := ident.New(params.GuestID)
	if err != nil {
		return nil, ErrGuestNotRegistered
	}
	period, err := reservation.NewStayPeriod(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		registered, err := tx.Guests().FindByID(ctx, guestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrGuestNotRegistered
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		reserved, err := tx.Rooms().FindByNumber(ctx, params.RoomNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		if !reserved.IsAvailable() {
			return fmt.Errorf("%w: current status %s", ErrRoomNotAvailable, reserved.Status())
		}

		res, err := reservation.NewReservation(reservation.NewCode(), registered.ID(), reserved.ID(), period, params.GuestCount)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Save(ctx, res); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}

		// a stay starting today occupies the room immediately; future stays
		// hold it only nominally until an explicit check-in
		if period.StartsOnOrBefore(clock.Today(u.clock, u.location)) {
			if err := reserved.ChangeStatus(room.StatusOccupied); err != nil {
				return err
			}
			if err := tx.Rooms().Update(ctx, reserved); err != nil {
				return errs.Mark(err, ErrStorageFailure)
			}
		}

		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.viewByID(ctx, created.ID().Int64())
}

// Cancel moves a Confirmed reservation to Cancelled and releases the room,
// whatever its prior status.
func (u *reservationUseCaseImpl) Cancel(ctx context.Context, id int64) (*ReservationView, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, reserved, err := u.loadPair(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := res.Cancel(); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}

		if err := reserved.ChangeStatus(room.StatusAvailable); err != nil {
			return err
		}
		if err := tx.Rooms().Update(ctx, reserved); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.viewByID(ctx, id)
}

func (u *reservationUseCaseImpl) CheckIn(ctx context.Context, id int64) (*ReservationView, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, reserved, err := u.loadPair(ctx, tx, id)
		if err != nil {
			return err
		}

		if res.Status() != reservation.StatusConfirmed {
			return fmt.Errorf("%w: cannot move from %s to %s",
				reservation.ErrInvalidTransition, res.Status(), reservation.StatusCheckedIn)
		}
		if !reserved.IsAvailable() {
			return fmt.Errorf("%w: current status %s", ErrRoomNotAvailable, reserved.Status())
		}

		if err := res.CheckIn(); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}

		if err := reserved.ChangeStatus(room.StatusOccupied); err != nil {
			return err
		}
		if err := tx.Rooms().Update(ctx, reserved); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.viewByID(ctx, id)
}

func (u *reservationUseCaseImpl) CheckOut(ctx context.Context, id int64) (*Invoice, error) {
	var invoice *Invoice
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, reserved, err := u.loadPair(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := res.CheckOut(); err != nil {
			return err
		}

		occupant, err := tx.Guests().FindByID(ctx, res.GuestID())
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}

		nightly := reserved.NightlyCost()
		total := res.TotalCost(nightly)
		invoice = &Invoice{
			ReservationID: res.ID().Int64(),
			Code:          res.Code(),
			GuestName:     occupant.FullName(),
			GuestDocument: occupant.Document(),
			RoomNumber:    reserved.Number(),
			RoomCategory:  reserved.Category().String(),
			CheckIn:       res.Period().CheckIn(),
			CheckOut:      res.Period().CheckOut(),
			Nights:        res.Period().Nights(),
			NightlyCents:  nightly.Cents(),
			TotalCents:    total.Cents(),
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}

		if err := reserved.ChangeStatus(room.StatusCleaning); err != nil {
			return err
		}
		if err := tx.Rooms().Update(ctx, reserved); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (u *reservationUseCaseImpl) Get(ctx context.Context, id int64) (*ReservationView, error) {
	return u.viewByID(ctx, id)
}

func (u *reservationUseCaseImpl) GetByCode(ctx context.Context, code string) (*ReservationView, error) {
	res, err := u.uow.Repos().Reservations().FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return u.viewByID(ctx, res.ID().Int64())
}

func (u *reservationUseCaseImpl) List(ctx context.Context) ([]*ReservationView, error) {
	views, err := u.views.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return views, nil
}

func (u *reservationUseCaseImpl) loadPair(ctx context.Context, tx shared.Tx, id int64) (*reservation.Reservation, *room.Room, error) {
	resID, err := ident.New(id)
	if err != nil {
		return nil, nil, ErrReservationNotFound
	}

	res, err := tx.Reservations().FindByID(ctx, resID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrReservationNotFound
		}
		return nil, nil, errs.Mark(err, ErrStorageFailure)
	}

	reserved, err := tx.Rooms().FindByID(ctx, res.RoomID())
	if err != nil {
		return nil, nil, errs.Mark(err, ErrStorageFailure)
	}
	return res, reserved, nil
}

func (u *reservationUseCaseImpl) viewByID(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := u.views.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return view, nil
}
