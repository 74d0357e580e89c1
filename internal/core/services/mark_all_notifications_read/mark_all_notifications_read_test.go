package markallnotificationsread

import (
	"context"
	"testing"

	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/notification"

	"github.com/stretchr/testify/require"
)

func TestMarkAllRead(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	repository := notification.NewFakeRepository(
		notification.Notification{ID: "n-1", UserID: "user-1"},
		notification.Notification{ID: "n-2", UserID: "user-1", IsRead: true},
		notification.Notification{ID: "n-3", UserID: "user-1"},
		notification.Notification{ID: "n-4", UserID: "user-2"},
	)
	service := New(logging.NewFakeLogger(), repository)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{UserID: "user-1"})

	// Verify ---
	assert.Nil(err)
	assert.Equal(uint(2), result.UpdatedCount)
	for _, n := range repository.All() {
		assert.Equal(n.UserID == "user-1", n.IsRead, "notification %s", n.ID)
	}
}
