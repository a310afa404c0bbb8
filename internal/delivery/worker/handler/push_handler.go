package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"cleanrecord/config"
	deliverycontext "cleanrecord/internal/delivery/context"
	"cleanrecord/internal/domain/constants"
	"cleanrecord/internal/domain/entity"
	"cleanrecord/internal/errors"
	"cleanrecord/internal/infra/pubsub"
	"cleanrecord/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks a push request's OIDC token. Replaced in tests.
type tokenValidator func(req *http.Request) error

// PushHandler handles Pub/Sub push messages carrying stream lifecycle events
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	lifecycleUC    usecase.SessionLifecycleUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	LifecycleUC usecase.SessionLifecycleUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; the local publisher does not
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  newPushTokenVerifier(params.Config.Worker).verify,
		lifecycleUC:    params.LifecycleUC,
		logger:         params.Logger,
	}
}

// HandlePush applies one stream event. Malformed messages are rejected with 400,
// store failures answer 503 so Pub/Sub redelivers, everything else is acknowledged.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.validateToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := pushMsg.DecodeData()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.StreamEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse stream event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	if event.LiveInputID == "" && event.SessionID == "" {
		h.logger.Error("[Worker] Stream event names no live input or session",
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing stream event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("event_type", string(event.Type)),
		slog.String("live_input_id", event.LiveInputID),
	)

	if err := h.lifecycleUC.HandleStreamEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to apply stream event",
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the X-Request-Id context, then a fresh id
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage) string {
	if requestID, ok := pushMsg.Message.Attributes[pubsub.AttributeRequestID]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// pushTokenVerifier checks the OIDC token Pub/Sub attaches to authenticated push requests.
type pushTokenVerifier struct {
	// audience overrides the default of the request URL, needed behind proxies that rewrite the host.
	audience string
	// serviceAccount, when set, must match the token's email claim.
	serviceAccount string
}

func newPushTokenVerifier(cfg *config.WorkerConfig) *pushTokenVerifier {
	if cfg == nil {
		return &pushTokenVerifier{}
	}

	return &pushTokenVerifier{audience: cfg.PushAudience, serviceAccount: cfg.PushServiceAccount}
}

func (v *pushTokenVerifier) verify(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return errors.New("missing bearer token")
	}

	payload, err := idtoken.Validate(req.Context(), strings.TrimSpace(token), v.audienceFor(req))
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}

	if !slices.Contains(googleIssuers, payload.Issuer) {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push token email is not verified")
	}
	if v.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != v.serviceAccount {
			return errors.Errorf("push token issued to %q", email)
		}
	}

	return nil
}

func (v *pushTokenVerifier) audienceFor(req *http.Request) string {
	if v.audience != "" {
		return v.audience
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	return scheme + "://" + req.Host + req.URL.Path
}
