package components

import (
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewApprovalUseCase,
		commands.NewBlockUseCase,
		commands.NewCarUseCase,
		commands.NewAuthUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewCalendarQueries,
		queries.NewCarQueries,
		queries.NewBlockQueries,
	),
)
