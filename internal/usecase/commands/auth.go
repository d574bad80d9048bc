package commands

import (
	"context"

	"fleetbook/internal/pkg/config"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/pkg/jwt"
	"fleetbook/internal/pkg/password"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

const adminRole = "admin"

type AuthCommands interface {
	Login(ctx context.Context, rawPassword string) (string, error)
}

type authUseCaseImpl struct {
	cfg        config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthUseCase(cfg config.AdminConfig, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{cfg: cfg, jwtService: jwtService}
}

func (u *authUseCaseImpl) Login(_ context.Context, rawPassword string) (string, error) {
	if err := password.ComparePassword(u.cfg.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(adminRole)
	if err != nil {
		return "", errs.Wrap(err, "failed to sign admin token")
	}
	return token, nil
}
