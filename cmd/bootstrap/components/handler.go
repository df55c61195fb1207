package components

import (
	"hotel-nova/internal/handler"
	"hotel-nova/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewGuestHandler,
		api.NewReservationHandler,
		api.NewReportHandler,
	),
	fx.Invoke(handler.NewRouter),
)
