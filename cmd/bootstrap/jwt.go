package bootstrap

import (
	"fleetbook/internal/pkg/config"
	"fleetbook/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Admin.JWTSecret, cfg.Admin.TokenDuration)
}
