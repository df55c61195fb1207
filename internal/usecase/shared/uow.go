package shared

import (
	"context"

	"hotel-nova/internal/domain/guest"
	"hotel-nova/internal/domain/ident"
	"hotel-nova/internal/domain/reservation"
	"hotel-nova/internal/domain/room"
)

// UnitOfWork is the only door to persistence the service layer has. Within
// runs fn against a transaction-scoped repository set, so a lifecycle step
// that touches a reservation and its room commits or rolls back as one.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Repos gives pool-backed repositories for single-statement operations
	// that need no explicit transaction.
	Repos() Tx
}

type Tx interface {
	Rooms() RoomRepository
	Guests() GuestRepository
	Reservations() ReservationRepository
}

// Each repository exposes the full capability set per entity: save assigns
// the persistent identifier, update persists the whole current state keyed
// by it, and the natural-key finder is number/document respectively.
// Failures surface as infra repository errors carrying the low-level cause.

type RoomRepository interface {
	Save(ctx context.Context, r *room.Room) error
	FindByID(ctx context.Context, id ident.ID) (*room.Room, error)
	FindByNumber(ctx context.Context, number int) (*room.Room, error)
	FindAll(ctx context.Context) ([]*room.Room, error)
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id ident.ID) error
}

type GuestRepository interface {
	Save(ctx context.Context, g *guest.Guest) error
	FindByID(ctx context.Context, id ident.ID) (*guest.Guest, error)
	FindByDocument(ctx context.Context, document string) (*guest.Guest, error)
	FindAll(ctx context.Context) ([]*guest.Guest, error)
	Update(ctx context.Context, g *guest.Guest) error
	Delete(ctx context.Context, id ident.ID) error
}

type ReservationRepository interface {
	Save(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id ident.ID) (*reservation.Reservation, error)
	FindByCode(ctx context.Context, code string) (*reservation.Reservation, error)
	FindAll(ctx context.Context) ([]*reservation.Reservation, error)
	Update(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id ident.ID) error
}
