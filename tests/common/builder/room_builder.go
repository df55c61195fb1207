//go:build unit || e2e

package builder

import (
	"hotel-nova/internal/domain/ident"
	"hotel-nova/internal/domain/money"
	"hotel-nova/internal/domain/room"
	reqdto "hotel-nova/internal/handler/dto/request"
	"hotel-nova/internal/infra/query"
	"hotel-nova/internal/usecase"
)

type RoomBuilder struct {
	ID        int64
	Number    int
	Category  string
	RateCents int64
	Status    string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:        1,
		Number:    101,
		Category:  "simple",
		RateCents: 5000,
		Status:    "available",
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	category, err := room.ParseCategory(b.Category)
	if err != nil {
		return nil, err
	}
	rate, err := money.NewNonNegative(b.RateCents)
	if err != nil {
		return nil, err
	}
	return room.NewRoom(b.Number, category, rate)
}

// BuildPersisted reconstructs the room as the store would hand it back.
func (b *RoomBuilder) BuildPersisted() *room.Room {
	id, _ := ident.New(b.ID)
	return room.Reconstruct(id, b.Number, room.Category(b.Category), money.New(b.RateCents), room.Status(b.Status))
}

func (b *RoomBuilder) BuildRow() query.RoomRow {
	return query.RoomRow{
		ID:        b.ID,
		Number:    int32(b.Number),
		Category:  b.Category,
		RateCents: b.RateCents,
		Status:    b.Status,
	}
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Number:    b.Number,
		Category:  b.Category,
		RateCents: &b.RateCents,
	}
}

func (b *RoomBuilder) BuildAddParams() usecase.AddRoomParams {
	return usecase.AddRoomParams{
		Number:    b.Number,
		Category:  b.Category,
		RateCents: b.RateCents,
	}
}
