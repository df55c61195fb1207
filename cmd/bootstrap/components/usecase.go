package components

import (
	"hotel-nova/internal/pkg/clock"
	"hotel-nova/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewRoomUseCase,
		usecase.NewGuestUseCase,
		usecase.NewReservationUseCase,
		usecase.NewReportUseCase,
	),
)
