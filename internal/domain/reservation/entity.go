package reservation

import (
	"errors"
	"fmt"

	"hotel-nova/internal/domain/ident"
	"hotel-nova/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidGuestCount = errors.New("guest count must be positive")
	ErrGuestNotPersisted = errors.New("guest has no persistent identifier")
	ErrRoomNotPersisted  = errors.New("room has no persistent identifier")
	ErrInvalidTransition = errors.New("invalid reservation state transition")
	ErrAlreadyPersisted  = errors.New("reservation already has a persistent identifier")
)

// Reservation references its guest and room by identifier only; neither is
// owned, their lifetime is the store.
type Reservation struct {
	id         ident.ID
	code       string
	guestID    ident.ID
	roomID     ident.ID
	period     StayPeriod
	guestCount int
	status     Status
}

// NewCode returns an external display identifier for a new reservation.
func NewCode() string {
	return "RES-" + uuid.NewString()
}

func NewReservation(code string, guestID, roomID ident.ID, period StayPeriod, guestCount int) (*Reservation, error) {
	if !guestID.IsSet() {
		return nil, ErrGuestNotPersisted
	}
	if !roomID.IsSet() {
		return nil, ErrRoomNotPersisted
	}
	if guestCount <= 0 {
		return nil, ErrInvalidGuestCount
	}

	return &Reservation{
		code:       code,
		guestID:    guestID,
		roomID:     roomID,
		period:     period,
		guestCount: guestCount,
		status:     StatusConfirmed,
	}, nil
}

func Reconstruct(id ident.ID, code string, guestID, roomID ident.ID, period StayPeriod, guestCount int, status Status) *Reservation {
	return &Reservation{
		id:         id,
		code:       code,
		guestID:    guestID,
		roomID:     roomID,
		period:     period,
		guestCount: guestCount,
		status:     status,
	}
}

func (r *Reservation) AssignID(id ident.ID) error {
	if r.id.IsSet() {
		return ErrAlreadyPersisted
	}
	r.id = id
	return nil
}

func (r *Reservation) Cancel() error {
	return r.transition(StatusCancelled)
}

func (r *Reservation) CheckIn() error {
	return r.transition(StatusCheckedIn)
}

func (r *Reservation) CheckOut() error {
	return r.transition(StatusCheckedOut)
}

// transition leaves the status untouched when the move is illegal; the error
// reports the current state.
func (r *Reservation) transition(next Status) error {
	if !r.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, r.status, next)
	}
	r.status = next
	return nil
}

// TotalCost derives the stay charge: nights times the room's nightly cost.
// Computed on demand, never stored.
func (r *Reservation) TotalCost(nightly money.Money) money.Money {
	return nightly.MulInt(r.period.Nights())
}

func (r *Reservation) ID() ident.ID       { return r.id }
func (r *Reservation) Code() string       { return r.code }
func (r *Reservation) GuestID() ident.ID  { return r.guestID }
func (r *Reservation) RoomID() ident.ID   { return r.roomID }
func (r *Reservation) Period() StayPeriod { return r.period }
func (r *Reservation) GuestCount() int    { return r.guestCount }
func (r *Reservation) Status() Status     { return r.status }
