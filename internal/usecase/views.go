package usecase

import (
	"context"
	"time"
)

// Read-side views join reservations with their guest and room so listings
// and invoices need a single round trip. The cost is intentionally absent:
// it is derived from category and rate whenever someone asks.

type ReservationView struct {
	ID            int64
	Code          string
	Status        string
	CheckIn       time.Time
	CheckOut      time.Time
	GuestCount    int
	GuestID       int64
	GuestDocument string
	GuestName     string
	RoomID        int64
	RoomNumber    int
	RoomCategory  string
	RoomRateCents int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ReservationViews interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationView, error)
	FindByStatus(ctx context.Context, status string) ([]*ReservationView, error)
}

type OccupancyCounts struct {
	Total       int
	Available   int
	Occupied    int
	Cleaning    int
	Maintenance int
}

type RoomViews interface {
	CountByStatus(ctx context.Context) (*OccupancyCounts, error)
}

type Invoice struct {
	ReservationID int64
	Code          string
	GuestName     string
	GuestDocument string
	RoomNumber    int
	RoomCategory  string
	CheckIn       time.Time
	CheckOut      time.Time
	Nights        int64
	NightlyCents  int64
	TotalCents    int64
}

type RevenueReport struct {
	CheckedOutCount int
	TotalCents      int64
}
