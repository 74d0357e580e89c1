package notificationpublisher

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/rabbitmq/schema"

	"github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSEPublishesToUserStream(t *testing.T) {
	// Setup ---
	sseServer := sse.New()
	sseServer.AutoReplay = true
	defer sseServer.Close()
	sseServer.CreateStream("u-1")
	server := httptest.NewServer(sseServer)
	defer server.Close()
	publisher := NewSSE(sseServer)
	n := notification.Notification{
		ID:        "n-1",
		UserID:    "u-1",
		Type:      notification.TypeEventReminder,
		Title:     "Reminder: Beach cleanup",
		CreatedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}

	// Exercise ---
	err := publisher.PublishNotification(context.Background(), n)
	require.Nil(t, err)

	// Verify ---
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"?stream=u-1", nil)
	require.Nil(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.Nil(t, err)
	defer resp.Body.Close()

	var event, data string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "event: ") {
			event = strings.TrimPrefix(line, "event: ")
		}
		if strings.HasPrefix(line, "data: ") {
			data = strings.TrimPrefix(line, "data: ")
		}
		if line == "" && data != "" {
			break
		}
	}
	assert.Equal(t, "notification", event)
	message := &schema.Notification{}
	require.Nil(t, message.Unmarshal([]byte(data)))
	assert.Equal(t, "n-1", message.ID)
	assert.Equal(t, "Reminder: Beach cleanup", message.Title)
}

func TestSSEPublishWithoutSubscribers(t *testing.T) {
	sseServer := sse.New()
	defer sseServer.Close()

	err := NewSSE(sseServer).PublishNotification(context.Background(), notification.Notification{UserID: "u-2"})

	assert.Nil(t, err)
}

func TestLogPublisher(t *testing.T) {
	log := logging.NewFakeLogger()

	err := NewLog(log).PublishNotification(context.Background(), notification.Notification{ID: "n-1"})

	assert.Nil(t, err)
	assert.Equal(t, 1, log.Count(logging.INFO))
}
