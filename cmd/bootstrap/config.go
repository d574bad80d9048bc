package bootstrap

import (
	"fleetbook/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
		func(cfg config.Config) config.AdminConfig { return cfg.Admin },
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) config.NotifyConfig { return cfg.Notify },
	),
)

func NewConfig() (config.Config, error) {
	// Missing .env is fine, real deployments set the environment directly
	_ = godotenv.Load()
	return config.LoadConfig()
}
