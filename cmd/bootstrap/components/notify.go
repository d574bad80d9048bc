package components

import (
	"context"

	"fleetbook/internal/infra/notify"
	"fleetbook/internal/infra/readstore"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/pkg/config"
	"fleetbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		notify.NewEmailSender,
		notify.NewWebhookSender,
		notify.NewDispatcher,
		NewReminderSweep,
	),
	fx.Invoke(StartReminderSweep),
)

func NewReminderSweep(
	store *readstore.BookingReadStore,
	notifier commands.Notifier,
	clk clock.Clock,
	cfg config.BookingConfig,
) *notify.ReminderSweep {
	return notify.NewReminderSweep(store, notifier, clk, cfg)
}

func StartReminderSweep(lc fx.Lifecycle, sweep *notify.ReminderSweep) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweep.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
