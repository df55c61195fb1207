//go:build unit

// Package fake provides an in-memory persistence layer so service-level
// behavior can be tested without Postgres. Uniqueness rules and error kinds
// mirror the real repositories.
package fake

import (
	"context"
	"sync"
	"time"

	"hotel-nova/internal/domain/guest"
	"hotel-nova/internal/domain/ident"
	"hotel-nova/internal/domain/money"
	"hotel-nova/internal/domain/reservation"
	"hotel-nova/internal/domain/room"
	"hotel-nova/internal/infra"
	"hotel-nova/internal/usecase"
	"hotel-nova/internal/usecase/shared"
)

type Store struct {
	mu sync.Mutex

	rooms        map[int64]*room.Room
	guests       map[int64]*guest.Guest
	reservations map[int64]*reservation.Reservation

	nextRoomID        int64
	nextGuestID       int64
	nextReservationID int64
}

func NewStore() *Store {
	return &Store{
		rooms:             make(map[int64]*room.Room),
		guests:            make(map[int64]*guest.Guest),
		reservations:      make(map[int64]*reservation.Reservation),
		nextRoomID:        1,
		nextGuestID:       1,
		nextReservationID: 1,
	}
}

// Within runs fn against the shared state; the fake has no rollback.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, s.tx())
}

func (s *Store) Repos() shared.Tx {
	return s.tx()
}

func (s *Store) tx() shared.Tx {
	return &fakeTx{store: s}
}

var _ shared.UnitOfWork = (*Store)(nil)

type fakeTx struct {
	store *Store
}

func (t *fakeTx) Rooms() shared.RoomRepository {
	return &roomRepo{store: t.store}
}

func (t *fakeTx) Guests() shared.GuestRepository {
	return &guestRepo{store: t.store}
}

func (t *fakeTx) Reservations() shared.ReservationRepository {
	return &reservationRepo{store: t.store}
}

// SeedRoom stores a room directly and returns the persisted copy.
func (s *Store) SeedRoom(number int, category room.Category, rateCents int64, status room.Status) *room.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := ident.New(s.nextRoomID)
	s.nextRoomID++
	entity := room.Reconstruct(id, number, category, money.New(rateCents), status)
	s.rooms[id.Int64()] = entity
	return cloneRoom(entity)
}

// SeedGuest stores a guest directly and returns the persisted copy.
func (s *Store) SeedGuest(document, firstName, lastName string) *guest.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := ident.New(s.nextGuestID)
	s.nextGuestID++
	entity := guest.Reconstruct(id, document, firstName, lastName, "", "")
	s.guests[id.Int64()] = entity
	return cloneGuest(entity)
}

// RoomByNumber reads current stored state for assertions.
func (s *Store) RoomByNumber(number int) *room.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rooms {
		if r.Number() == number {
			return cloneRoom(r)
		}
	}
	return nil
}

// ReservationByID reads current stored state for assertions.
func (s *Store) ReservationByID(id int64) *reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.reservations[id]; ok {
		return cloneReservation(r)
	}
	return nil
}

// Views returns the read side over the same state.
func (s *Store) Views() *Views {
	return &Views{store: s}
}

// clones keep stored state isolated from caller mutations

func cloneRoom(r *room.Room) *room.Room {
	return room.Reconstruct(r.ID(), r.Number(), r.Category(), r.Rate(), r.Status())
}

func cloneGuest(g *guest.Guest) *guest.Guest {
	return guest.Reconstruct(g.ID(), g.Document(), g.FirstName(), g.LastName(), g.Email(), g.Phone())
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	return reservation.Reconstruct(r.ID(), r.Code(), r.GuestID(), r.RoomID(), r.Period(), r.GuestCount(), r.Status())
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func duplicate(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindDuplicateKey)
}

// Views implements the read-side interfaces by joining the fake tables the
// way the SQL view does.
type Views struct {
	store *Store
}

var (
	_ usecase.ReservationViews = (*Views)(nil)
	_ usecase.RoomViews        = (*Views)(nil)
)

func (v *Views) FindByID(_ context.Context, id int64) (*usecase.ReservationView, error) {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()

	res, ok := v.store.reservations[id]
	if !ok {
		return nil, notFound("reservation view not found")
	}
	return v.assemble(res), nil
}

func (v *Views) FindAll(_ context.Context) ([]*usecase.ReservationView, error) {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()

	result := make([]*usecase.ReservationView, 0, len(v.store.reservations))
	for _, res := range v.store.reservations {
		result = append(result, v.assemble(res))
	}
	return result, nil
}

func (v *Views) FindByStatus(_ context.Context, status string) ([]*usecase.ReservationView, error) {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()

	var result []*usecase.ReservationView
	for _, res := range v.store.reservations {
		if res.Status().String() == status {
			result = append(result, v.assemble(res))
		}
	}
	return result, nil
}

func (v *Views) CountByStatus(_ context.Context) (*usecase.OccupancyCounts, error) {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()

	counts := &usecase.OccupancyCounts{}
	for _, r := range v.store.rooms {
		counts.Total++
		switch r.Status() {
		case room.StatusAvailable:
			counts.Available++
		case room.StatusOccupied:
			counts.Occupied++
		case room.StatusCleaning:
			counts.Cleaning++
		case room.StatusMaintenance:
			counts.Maintenance++
		}
	}
	return counts, nil
}

func (v *Views) assemble(res *reservation.Reservation) *usecase.ReservationView {
	g := v.store.guests[res.GuestID().Int64()]
	r := v.store.rooms[res.RoomID().Int64()]

	view := &usecase.ReservationView{
		ID:         res.ID().Int64(),
		Code:       res.Code(),
		Status:     res.Status().String(),
		CheckIn:    res.Period().CheckIn(),
		CheckOut:   res.Period().CheckOut(),
		GuestCount: res.GuestCount(),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if g != nil {
		view.GuestID = g.ID().Int64()
		view.GuestDocument = g.Document()
		view.GuestName = g.FullName()
	}
	if r != nil {
		view.RoomID = r.ID().Int64()
		view.RoomNumber = r.Number()
		view.RoomCategory = string(r.Category())
		view.RoomRateCents = r.Rate().Cents()
	}
	return view
}
