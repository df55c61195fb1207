package room

import (
	"errors"

	"hotel-nova/internal/domain/ident"
	"hotel-nova/internal/domain/money"
)

var (
	ErrInvalidNumber    = errors.New("room number must be positive")
	ErrInvalidCategory  = errors.New("invalid room category")
	ErrInvalidStatus    = errors.New("invalid room status")
	ErrNegativeRate     = errors.New("nightly rate cannot be negative")
	ErrAlreadyPersisted = errors.New("room already has a persistent identifier")
)

// suite nights carry a fixed 20% surcharge over the base rate
const suiteSurchargePercent = 120

type Room struct {
	id       ident.ID
	number   int
	category Category
	rate     money.Money
	status   Status
}

func NewRoom(number int, category Category, rate money.Money) (*Room, error) {
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if rate.IsNegative() {
		return nil, ErrNegativeRate
	}

	return &Room{
		number:   number,
		category: category,
		rate:     rate,
		status:   StatusAvailable,
	}, nil
}

func Reconstruct(id ident.ID, number int, category Category, rate money.Money, status Status) *Room {
	return &Room{
		id:       id,
		number:   number,
		category: category,
		rate:     rate,
		status:   status,
	}
}

// AssignID is called by the repository once the store has generated the
// identifier on first save.
func (r *Room) AssignID(id ident.ID) error {
	if r.id.IsSet() {
		return ErrAlreadyPersisted
	}
	r.id = id
	return nil
}

func (r *Room) ChangeStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	r.status = next
	return nil
}

func (r *Room) IsAvailable() bool {
	return r.status == StatusAvailable
}

// NightlyCost derives the per-night charge from category and base rate.
// Never cached, never stored.
func (r *Room) NightlyCost() money.Money {
	return NightlyCostFor(r.category, r.rate)
}

func NightlyCostFor(category Category, rate money.Money) money.Money {
	if category == CategorySuite {
		return rate.MulPercent(suiteSurchargePercent)
	}
	return rate
}

func (r *Room) ID() ident.ID       { return r.id }
func (r *Room) Number() int        { return r.number }
func (r *Room) Category() Category { return r.category }
func (r *Room) Rate() money.Money  { return r.rate }
func (r *Room) Status() Status     { return r.status }
