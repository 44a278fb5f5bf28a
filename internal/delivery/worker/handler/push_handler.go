// Package handler holds the catalog worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const newServiceTitle = "New service available"

// retryableError marks a failure that Pub/Sub should redeliver.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes catalog events delivered by a push subscription.
type PushHandler struct {
	verify          func(*http.Request) error
	logger          *slog.Logger
	uploader        service.ImageUploader
	notificationSvc service.NotificationService
	topic           string
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	Uploader        service.ImageUploader
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are only
// checked for the google provider outside development.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:          params.Logger,
		uploader:        params.Uploader,
		notificationSvc: params.NotificationSvc,
	}

	if params.Config.Firebase != nil {
		h.topic = params.Config.Firebase.Topic
	}

	pubsubCfg := params.Config.PubSub
	if pubsubCfg != nil &&
		pubsubCfg.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		audience := pubsubCfg.PushAudience
		h.verify = func(req *http.Request) error {
			return verifyPubSubToken(req, audience)
		}
	}

	return h
}

// HandlePush answers 400 for malformed messages, 503 for retryable failures and 200 otherwise.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeCatalogEvent()
	if err != nil {
		h.logger.Error("[Worker] Malformed catalog event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := event.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing catalog event",
		slog.String("type", string(event.Type)),
		slog.String("service_id", event.ServiceID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.processEvent(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to process catalog event",
			slog.String("service_id", event.ServiceID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.CatalogEvent) error {
	switch event.Type {
	case service.CatalogEventServiceDeleted:
		return h.removeThumbnail(ctx, event)
	case service.CatalogEventServiceCreated, service.CatalogEventServiceUpdated:
		if !event.BecamePublished() {
			return nil
		}

		return h.announce(ctx, event)
	default:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Ignoring unknown event type",
			slog.String("type", string(event.Type)),
		)

		return nil
	}
}

// removeThumbnail deletes the image of a deleted listing when it lives in our store.
func (h *PushHandler) removeThumbnail(ctx context.Context, event *service.CatalogEvent) error {
	if event.Thumbnail == "" {
		return nil
	}

	key, ok := h.uploader.KeyFromURL(event.Thumbnail)
	if !ok {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Thumbnail is not in the configured store",
			slog.String("thumbnail", event.Thumbnail),
		)

		return nil
	}

	if err := h.uploader.Delete(ctx, key); err != nil {
		return newRetryableError(errors.Wrapf(err, "failed to delete thumbnail %s", key))
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Thumbnail deleted", slog.String("key", key))

	return nil
}

// announce notifies topic subscribers that a listing went live.
func (h *PushHandler) announce(ctx context.Context, event *service.CatalogEvent) error {
	if h.topic == "" {
		return nil
	}

	body := strings.TrimSpace(event.ServiceName)
	if body == "" {
		body = "A new service has been published"
	}

	data := map[string]string{
		"type":       string(event.Type),
		"service_id": event.ServiceID,
	}
	if event.Unpriced {
		data["price_on_request"] = "true"
	}

	messageID, err := h.notificationSvc.SendTopicNotification(ctx, h.topic, newServiceTitle, body, data)
	if err != nil {
		return newRetryableError(errors.Wrap(err, "failed to send topic notification"))
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Topic notification sent",
		slog.String("topic", h.topic),
		slog.String("message_id", messageID),
	)

	return nil
}

// verifyPubSubToken validates the OIDC token Google attaches to push requests.
// An empty audience falls back to the URL of the request.
func verifyPubSubToken(req *http.Request, audience string) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
