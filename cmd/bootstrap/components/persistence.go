package components

import (
	"github.com/angelgmx/reservaIA/internal/infra/db"
	"github.com/angelgmx/reservaIA/internal/infra/readstore"
	"github.com/angelgmx/reservaIA/internal/infra/uow"
	"github.com/angelgmx/reservaIA/internal/usecase/queries"
	"github.com/angelgmx/reservaIA/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		NewCommandReads,
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewRestaurantReadStore,
			fx.As(new(queries.RestaurantViewRepo)),
		),
		fx.Annotate(
			readstore.NewMenuReadStore,
			fx.As(new(queries.MenuViewRepo)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCommandReads(u shared.UnitOfWork) shared.CommandReads {
	return u.CommandReads()
}
