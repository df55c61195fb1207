package response

import (
	"hotel-nova/internal/domain/room"
)

type RoomResponse struct {
	ID           int64  `json:"id"`
	Number       int    `json:"number"`
	Category     string `json:"category"`
	RateCents    int64  `json:"rateCents"`
	NightlyCents int64  `json:"nightlyCents"`
	Status       string `json:"status"`
}

func FromRoom(r *room.Room) *RoomResponse {
	return &RoomResponse{
		ID:           r.ID().Int64(),
		Number:       r.Number(),
		Category:     string(r.Category()),
		RateCents:    r.Rate().Cents(),
		NightlyCents: r.NightlyCost().Cents(),
		Status:       string(r.Status()),
	}
}

func FromRooms(rooms []*room.Room) []*RoomResponse {
	result := make([]*RoomResponse, len(rooms))
	for i, r := range rooms {
		result[i] = FromRoom(r)
	}
	return result
}
