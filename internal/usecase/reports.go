package usecase

import (
	"context"

	"hotel-nova/internal/domain/money"
	"hotel-nova/internal/domain/reservation"
	"hotel-nova/internal/domain/room"
	"hotel-nova/internal/pkg/errs"
)

type ReportUseCase interface {
	// TotalRevenue recomputes the derived cost of every checked-out stay on
	// each call; nothing is cached or stored.
	TotalRevenue(ctx context.Context) (*RevenueReport, error)
	Occupancy(ctx context.Context) (*OccupancyCounts, error)
}

type reportUseCaseImpl struct {
	reservations ReservationViews
	rooms        RoomViews
}

func NewReportUseCase(reservations ReservationViews, rooms RoomViews) ReportUseCase {
	return &reportUseCaseImpl{
		reservations: reservations,
		rooms:        rooms,
	}
}

func (u *reportUseCaseImpl) TotalRevenue(ctx context.Context) (*RevenueReport, error) {
	views, err := u.reservations.FindByStatus(ctx, reservation.StatusCheckedOut.String())
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	report := &RevenueReport{CheckedOutCount: len(views)}
	for _, v := range views {
		total, err := stayTotal(v)
		if err != nil {
			return nil, err
		}
		report.TotalCents += total.Cents()
	}
	return report, nil
}

func (u *reportUseCaseImpl) Occupancy(ctx context.Context) (*OccupancyCounts, error) {
	counts, err := u.rooms.CountByStatus(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return counts, nil
}

// stayTotal rebuilds the domain calculation from the view: nights times the
// nightly cost of the room's category and rate.
func stayTotal(v *ReservationView) (money.Money, error) {
	period, err := reservation.NewStayPeriod(v.CheckIn, v.CheckOut)
	if err != nil {
		return money.Money{}, errs.Wrap(err, "stored reservation has an invalid stay period")
	}
	category, err := room.ParseCategory(v.RoomCategory)
	if err != nil {
		return money.Money{}, errs.Wrap(err, "stored room has an invalid category")
	}
	nightly := room.NightlyCostFor(category, money.New(v.RoomRateCents))
	return nightly.MulInt(period.Nights()), nil
}
