package middleware

import (
	"log/slog"
	"strings"

	"cleanrecord/internal/delivery/api/response"
	deliverycontext "cleanrecord/internal/delivery/context"
	"cleanrecord/internal/domain/entity"
	domainerrors "cleanrecord/internal/domain/errors"
	"cleanrecord/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix = "Bearer "

	contextKeyIdentity = "identity"
)

// AuthMiddleware resolves the caller of every protected route from its bearer token.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate validates the bearer token and stores the caller identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			return response.HandleAppError(c, domainerrors.ErrInvalidToken)
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.Verify(ctx, strings.TrimSpace(token))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Rejected bearer token", slog.Any("error", err))

			return response.HandleAppError(c, domainerrors.ErrInvalidToken)
		}

		SetIdentity(c, identity)

		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", identity.Subject))
		ctx = deliverycontext.WithUserID(ctx, identity.Subject)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// SetIdentity stores the authenticated caller on the echo context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(contextKeyIdentity, identity)
}

// GetIdentity returns the authenticated caller set by Authenticate.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(contextKeyIdentity).(*entity.Identity)
	if !ok || identity == nil || identity.Subject == "" {
		return nil, false
	}

	return identity, true
}

// GetUserID returns the owner key of the authenticated caller.
func GetUserID(c echo.Context) (string, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return "", false
	}

	return identity.Subject, true
}
