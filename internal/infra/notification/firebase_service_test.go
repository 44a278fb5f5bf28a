package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/test/messages/1", nil
}

func TestFirebaseService_SendTopicNotification(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client}

	id, err := svc.SendTopicNotification(context.Background(), "new-services", "New service available", "Deep cleaning", map[string]string{"service_id": "1"})

	require.NoError(t, err)
	assert.Equal(t, "projects/test/messages/1", id)
	require.Len(t, client.sent, 1)
	assert.Equal(t, "new-services", client.sent[0].Topic)
	assert.Equal(t, "New service available", client.sent[0].Notification.Title)
	assert.Equal(t, "1", client.sent[0].Data["service_id"])
}

func TestFirebaseService_SendTopicNotification_Errors(t *testing.T) {
	t.Run("missing topic", func(t *testing.T) {
		svc := &firebaseService{client: &fakeMessagingClient{}}

		_, err := svc.SendTopicNotification(context.Background(), "", "t", "b", nil)

		assert.Error(t, err)
	})

	t.Run("client failure", func(t *testing.T) {
		svc := &firebaseService{client: &fakeMessagingClient{err: errors.New("unavailable")}}

		_, err := svc.SendTopicNotification(context.Background(), "topic", "t", "b", nil)

		assert.ErrorContains(t, err, "unavailable")
	})
}

func TestNewNotificationService_WithoutCredentials(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewNotificationService(context.Background(), Params{Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)

	id, err := svc.SendTopicNotification(context.Background(), "topic", "title", "body", nil)
	assert.NoError(t, err)
	assert.Empty(t, id)
}
