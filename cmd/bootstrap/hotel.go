package bootstrap

import (
	"time"

	"hotel-nova/internal/pkg/config"

	"go.uber.org/fx"
)

var HotelModule = fx.Module("hotel",
	fx.Provide(
		NewHotelLocation,
	),
)

// NewHotelLocation resolves the property timezone once at startup so a bad
// HOTEL_TIMEZONE fails the boot instead of every reservation.
func NewHotelLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Hotel.Location()
}
