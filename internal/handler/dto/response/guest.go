package response

import (
	"hotel-nova/internal/domain/guest"
)

type GuestResponse struct {
	ID        int64  `json:"id"`
	Document  string `json:"document"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func FromGuest(g *guest.Guest) *GuestResponse {
	return &GuestResponse{
		ID:        g.ID().Int64(),
		Document:  g.Document(),
		FirstName: g.FirstName(),
		LastName:  g.LastName(),
		FullName:  g.FullName(),
		Email:     g.Email(),
		Phone:     g.Phone(),
	}
}

func FromGuests(guests []*guest.Guest) []*GuestResponse {
	result := make([]*GuestResponse, len(guests))
	for i, g := range guests {
		result[i] = FromGuest(g)
	}
	return result
}
