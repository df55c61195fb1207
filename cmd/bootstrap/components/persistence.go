package components

import (
	"hotel-nova/internal/infra/query"
	"hotel-nova/internal/infra/readstore"
	"hotel-nova/internal/infra/uow"
	"hotel-nova/internal/usecase"
	"hotel-nova/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewQueries,
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Reservation views
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(usecase.ReservationViews)),
		),
		// Room views
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.RoomViewQueries)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(usecase.RoomViews)),
		),
	),
)

func NewQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
