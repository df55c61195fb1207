package bootstrap

import (
	"hotel-nova/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	HotelModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
