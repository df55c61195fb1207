package response

import (
	"time"

	"hotel-nova/internal/usecase"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID            int64     `json:"id"`
	Code          string    `json:"code"`
	Status        string    `json:"status"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	GuestCount    int       `json:"guestCount"`
	GuestID       int64     `json:"guestId"`
	GuestDocument string    `json:"guestDocument"`
	GuestName     string    `json:"guestName"`
	RoomID        int64     `json:"roomId"`
	RoomNumber    int       `json:"roomNumber"`
	RoomCategory  string    `json:"roomCategory"`
	RoomRateCents int64     `json:"roomRateCents"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type InvoiceResponse struct {
	ReservationID int64     `json:"reservationId"`
	Code          string    `json:"code"`
	GuestName     string    `json:"guestName"`
	GuestDocument string    `json:"guestDocument"`
	RoomNumber    int       `json:"roomNumber"`
	RoomCategory  string    `json:"roomCategory"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	Nights        int64     `json:"nights"`
	NightlyCents  int64     `json:"nightlyCents"`
	TotalCents    int64     `json:"totalCents"`
}

func FromReservationView(v *usecase.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromReservationViews(views []*usecase.ReservationView) []*ReservationResponse {
	result := make([]*ReservationResponse, len(views))
	for i, v := range views {
		result[i] = FromReservationView(v)
	}
	return result
}

func FromInvoice(inv *usecase.Invoice) *InvoiceResponse {
	var resp InvoiceResponse
	_ = copier.Copy(&resp, inv)
	return &resp
}
