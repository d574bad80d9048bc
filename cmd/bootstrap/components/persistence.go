package components

import (
	"fleetbook/internal/infra/db"
	"fleetbook/internal/infra/readstore"
	"fleetbook/internal/infra/repository"
	"fleetbook/internal/infra/uow"
	"fleetbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Read stores keep their concrete types so supporting jobs can
		// reach methods beyond the query ports
		readstore.NewBookingReadStore,
		func(s *readstore.BookingReadStore) queries.BookingViewRepo { return s },
		readstore.NewAvailabilityReadStore,
		func(s *readstore.AvailabilityReadStore) queries.AvailabilityStore { return s },
		readstore.NewCarReadStore,
		func(s *readstore.CarReadStore) queries.CarViewRepo { return s },
		readstore.NewBlockReadStore,
		func(s *readstore.BlockReadStore) queries.BlockViewRepo { return s },
		// Delivery audit trail
		repository.NewNotificationLogRepository,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
