//go:build unit

package fake

import (
	"context"

	"hotel-nova/internal/domain/guest"
	"hotel-nova/internal/domain/ident"
	"hotel-nova/internal/domain/reservation"
	"hotel-nova/internal/domain/room"
)

type roomRepo struct {
	store *Store
}

func (r *roomRepo) Save(_ context.Context, entity *room.Room) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.rooms {
		if existing.Number() == entity.Number() {
			return duplicate("room number already taken")
		}
	}

	id, _ := ident.New(r.store.nextRoomID)
	r.store.nextRoomID++
	if err := entity.AssignID(id); err != nil {
		return err
	}
	r.store.rooms[id.Int64()] = cloneRoom(entity)
	return nil
}

func (r *roomRepo) FindByID(_ context.Context, id ident.ID) (*room.Room, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if entity, ok := r.store.rooms[id.Int64()]; ok && id.IsSet() {
		return cloneRoom(entity), nil
	}
	return nil, notFound("room not found")
}

func (r *roomRepo) FindByNumber(_ context.Context, number int) (*room.Room, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, entity := range r.store.rooms {
		if entity.Number() == number {
			return cloneRoom(entity), nil
		}
	}
	return nil, notFound("room not found")
}

func (r *roomRepo) FindAll(_ context.Context) ([]*room.Room, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*room.Room, 0, len(r.store.rooms))
	for _, entity := range r.store.rooms {
		result = append(result, cloneRoom(entity))
	}
	return result, nil
}

func (r *roomRepo) Update(_ context.Context, entity *room.Room) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.rooms[entity.ID().Int64()]; !ok || !entity.ID().IsSet() {
		return notFound("room not found")
	}
	r.store.rooms[entity.ID().Int64()] = cloneRoom(entity)
	return nil
}

func (r *roomRepo) Delete(_ context.Context, id ident.ID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.rooms[id.Int64()]; !ok {
		return notFound("room not found")
	}
	delete(r.store.rooms, id.Int64())
	return nil
}

type guestRepo struct {
	store *Store
}

func (r *guestRepo) Save(_ context.Context, entity *guest.Guest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.guests {
		if existing.Document() == entity.Document() {
			return duplicate("guest document already registered")
		}
	}

	id, _ := ident.New(r.store.nextGuestID)
	r.store.nextGuestID++
	if err := entity.AssignID(id); err != nil {
		return err
	}
	r.store.guests[id.Int64()] = cloneGuest(entity)
	return nil
}

func (r *guestRepo) FindByID(_ context.Context, id ident.ID) (*guest.Guest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if entity, ok := r.store.guests[id.Int64()]; ok && id.IsSet() {
		return cloneGuest(entity), nil
	}
	return nil, notFound("guest not found")
}

func (r *guestRepo) FindByDocument(_ context.Context, document string) (*guest.Guest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, entity := range r.store.guests {
		if entity.Document() == document {
			return cloneGuest(entity), nil
		}
	}
	return nil, notFound("guest not found")
}

func (r *guestRepo) FindAll(_ context.Context) ([]*guest.Guest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*guest.Guest, 0, len(r.store.guests))
	for _, entity := range r.store.guests {
		result = append(result, cloneGuest(entity))
	}
	return result, nil
}

func (r *guestRepo) Update(_ context.Context, entity *guest.Guest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.guests[entity.ID().Int64()]; !ok || !entity.ID().IsSet() {
		return notFound("guest not found")
	}
	r.store.guests[entity.ID().Int64()] = cloneGuest(entity)
	return nil
}

func (r *guestRepo) Delete(_ context.Context, id ident.ID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.guests[id.Int64()]; !ok {
		return notFound("guest not found")
	}
	delete(r.store.guests, id.Int64())
	return nil
}

type reservationRepo struct {
	store *Store
}

func (r *reservationRepo) Save(_ context.Context, entity *reservation.Reservation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.reservations {
		if existing.Code() == entity.Code() {
			return duplicate("reservation code already taken")
		}
	}

	id, _ := ident.New(r.store.nextReservationID)
	r.store.nextReservationID++
	if err := entity.AssignID(id); err != nil {
		return err
	}
	r.store.reservations[id.Int64()] = cloneReservation(entity)
	return nil
}

func (r *reservationRepo) FindByID(_ context.Context, id ident.ID) (*reservation.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if entity, ok := r.store.reservations[id.Int64()]; ok && id.IsSet() {
		return cloneReservation(entity), nil
	}
	return nil, notFound("reservation not found")
}

func (r *reservationRepo) FindByCode(_ context.Context, code string) (*reservation.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, entity := range r.store.reservations {
		if entity.Code() == code {
			return cloneReservation(entity), nil
		}
	}
	return nil, notFound("reservation not found")
}

func (r *reservationRepo) FindAll(_ context.Context) ([]*reservation.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*reservation.Reservation, 0, len(r.store.reservations))
	for _, entity := range r.store.reservations {
		result = append(result, cloneReservation(entity))
	}
	return result, nil
}

func (r *reservationRepo) Update(_ context.Context, entity *reservation.Reservation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.reservations[entity.ID().Int64()]; !ok || !entity.ID().IsSet() {
		return notFound("reservation not found")
	}
	r.store.reservations[entity.ID().Int64()] = cloneReservation(entity)
	return nil
}

func (r *reservationRepo) Delete(_ context.Context, id ident.ID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.reservations[id.Int64()]; !ok {
		return notFound("reservation not found")
	}
	delete(r.store.reservations, id.Int64())
	return nil
}
