package request

import (
	"fmt"
	"time"

	"hotel-nova/internal/usecase"
)

const dateLayout = "2006-01-02"

type CreateReservationRequest struct {
	GuestID    int64  `json:"guest_id" binding:"required,gt=0"`
	RoomNumber int    `json:"room_number" binding:"required,gt=0"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
	GuestCount int    `json:"guest_count" binding:"required,gt=0"`
}

// ToParams parses the calendar dates; range validation happens in the domain.
func (r CreateReservationRequest) ToParams() (usecase.CreateReservationParams, error) {
	checkIn, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return usecase.CreateReservationParams{}, fmt.Errorf("invalid check_in date %q: expected YYYY-MM-DD", r.CheckIn)
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return usecase.CreateReservationParams{}, fmt.Errorf("invalid check_out date %q: expected YYYY-MM-DD", r.CheckOut)
	}

	return usecase.CreateReservationParams{
		GuestID:    r.GuestID,
		RoomNumber: r.RoomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: r.GuestCount,
	}, nil
}
