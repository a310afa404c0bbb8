// Package google verifies Google-issued ID tokens.
package google

import (
	"context"
	"log/slog"

	"cleanrecord/config"
	"cleanrecord/internal/domain/entity"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"

	"google.golang.org/api/idtoken"
)

// validateFunc matches idtoken.Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// Verifier implements service.IdentityVerifier for Google Sign-In ID tokens
type Verifier struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewVerifier creates a Google ID token verifier
func NewVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.Auth == nil || cfg.Auth.ClientID == "" {
		return nil, errors.New("auth.clientId must be provided for the google provider")
	}

	return &Verifier{
		clientID: cfg.Auth.ClientID,
		validate: idtoken.Validate,
		logger:   logger,
	}, nil
}

// Verify checks signature, audience and expiry, then maps the payload to a caller identity
func (v *Verifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		v.logger.DebugContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	if payload.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &entity.Identity{
		Subject:    payload.Subject,
		Email:      stringClaim(payload.Claims, "email"),
		GivenName:  stringClaim(payload.Claims, "given_name"),
		FamilyName: stringClaim(payload.Claims, "family_name"),
		Locale:     stringClaim(payload.Claims, "locale"),
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
