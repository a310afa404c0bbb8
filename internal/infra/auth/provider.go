package auth

import (
	"log/slog"

	"cleanrecord/config"
	"cleanrecord/internal/domain/constants"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"
	"cleanrecord/internal/infra/auth/google"
)

// NewIdentityVerifier creates the verifier named by auth.provider
func NewIdentityVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	switch cfg.Auth.Provider {
	case constants.AuthProviderGoogle:
		logger.Info("Using Google ID token verifier", slog.String("clientId", cfg.Auth.ClientID))

		return google.NewVerifier(cfg, logger)
	case constants.AuthProviderJWT:
		logger.Info("Using shared-secret JWT verifier")

		return NewJWTVerifier(cfg)
	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Auth.Provider)
	}
}
