package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendTopicNotification sends a push notification to every subscriber of topic
	// and returns the provider message id.
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) (string, error)
}
