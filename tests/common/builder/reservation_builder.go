//go:build unit || e2e

package builder

import (
	"time"

	"hotel-nova/internal/domain/ident"
	"hotel-nova/internal/domain/reservation"
	reqdto "hotel-nova/internal/handler/dto/request"
	"hotel-nova/internal/usecase"
)

type ReservationBuilder struct {
	ID         int64
	Code       string
	GuestID    int64
	RoomID     int64
	RoomNumber int
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
	Status     string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         1,
		Code:       "RES-test-0001",
		GuestID:    1,
		RoomID:     1,
		RoomNumber: 101,
		CheckIn:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
		Status:     "confirmed",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	guestID, err := ident.New(b.GuestID)
	if err != nil {
		return nil, err
	}
	roomID, err := ident.New(b.RoomID)
	if err != nil {
		return nil, err
	}
	period, err := reservation.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.Code, guestID, roomID, period, b.GuestCount)
}

func (b *ReservationBuilder) BuildPersisted() *reservation.Reservation {
	id, _ := ident.New(b.ID)
	guestID, _ := ident.New(b.GuestID)
	roomID, _ := ident.New(b.RoomID)
	period, _ := reservation.NewStayPeriod(b.CheckIn, b.CheckOut)
	return reservation.Reconstruct(id, b.Code, guestID, roomID, period, b.GuestCount, reservation.Status(b.Status))
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		GuestID:    b.GuestID,
		RoomNumber: b.RoomNumber,
		CheckIn:    b.CheckIn.Format("2006-01-02"),
		CheckOut:   b.CheckOut.Format("2006-01-02"),
		GuestCount: b.GuestCount,
	}
}

func (b *ReservationBuilder) BuildCreateParams() usecase.CreateReservationParams {
	return usecase.CreateReservationParams{
		GuestID:    b.GuestID,
		RoomNumber: b.RoomNumber,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		GuestCount: b.GuestCount,
	}
}

func (b *ReservationBuilder) BuildView() *usecase.ReservationView {
	return &usecase.ReservationView{
		ID:            b.ID,
		Code:          b.Code,
		Status:        b.Status,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		GuestCount:    b.GuestCount,
		GuestID:       b.GuestID,
		GuestDocument: "X-1234567",
		GuestName:     "Ana Morales",
		RoomID:        b.RoomID,
		RoomNumber:    b.RoomNumber,
		RoomCategory:  "simple",
		RoomRateCents: 5000,
		CreatedAt:     b.CheckIn.Add(-24 * time.Hour),
		UpdatedAt:     b.CheckIn.Add(-24 * time.Hour),
	}
}
