// Package notification sends push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// messagingClient is the subset of *messaging.Client used here.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messagingClient
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var firebaseCfg *firebase.Config
	if projectID != "" {
		firebaseCfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, firebaseCfg, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendTopicNotification sends a notification to every device subscribed to topic.
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) (string, error) {
	if topic == "" {
		return "", errors.New("notification topic is required")
	}

	messageID, err := s.client.Send(ctx, &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to send topic notification")
	}

	return messageID, nil
}

// logNotificationService records notifications instead of sending them.
type logNotificationService struct {
	logger *slog.Logger
}

// NewLogNotificationService is used when Firebase credentials are not configured.
func NewLogNotificationService(logger *slog.Logger) service.NotificationService {
	return &logNotificationService{logger: logger}
}

// SendTopicNotification logs the notification.
func (s *logNotificationService) SendTopicNotification(ctx context.Context, topic, title, body string, _ map[string]string) (string, error) {
	s.logger.InfoContext(ctx, "Topic notification (not sent)",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
	)

	return "", nil
}

// Params defines the dependencies for the notification service provider
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService picks Firebase when credentials are configured.
func NewNotificationService(ctx context.Context, params Params) (service.NotificationService, error) {
	fbCfg := params.Config.Firebase
	if fbCfg == nil || fbCfg.CredentialsPath == "" {
		params.Logger.Warn("Firebase credentials not configured, notifications are logged only")

		return NewLogNotificationService(params.Logger), nil
	}

	return NewFirebaseService(ctx, fbCfg.ProjectID, fbCfg.CredentialsPath)
}
