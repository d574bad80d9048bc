package components

import (
	"fleetbook/internal/handler"
	"fleetbook/internal/handler/api"
	"fleetbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCalendarHandler,
		api.NewCarHandler,
		api.NewBlockHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
