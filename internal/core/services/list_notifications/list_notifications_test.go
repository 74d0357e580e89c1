package listnotifications

import (
	"context"
	"fmt"
	"testing"
	"time"

	c "volunteercal/internal/core/domain/common"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/notification"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newNotifications(count int) []notification.Notification {
	notifications := make([]notification.Notification, 0, count)
	for ix := 0; ix < count; ix++ {
		notifications = append(notifications, notification.Notification{
			ID:        notification.ID(fmt.Sprintf("n-%d", ix)),
			UserID:    "user-1",
			Type:      notification.TypeEventReminder,
			Title:     fmt.Sprintf("Reminder %d", ix),
			IsRead:    ix%2 == 0,
			CreatedAt: Now.Add(time.Duration(ix) * time.Minute),
		})
	}
	return notifications
}

func TestNewestFirst(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	repository := notification.NewFakeRepository(newNotifications(3)...)
	service := New(logging.NewFakeLogger(), repository)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{UserID: "user-1"})

	// Verify ---
	assert.Nil(err)
	assert.Len(result.Notifications, 3)
	assert.Equal(notification.ID("n-2"), result.Notifications[0].ID)
	assert.Equal(notification.ID("n-0"), result.Notifications[2].ID)
	assert.Equal(uint(1), result.UnreadCount)
}

func TestUnreadOnlyWithLimit(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	repository := notification.NewFakeRepository(newNotifications(10)...)
	service := New(logging.NewFakeLogger(), repository)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		UserID:     "user-1",
		UnreadOnly: true,
		Limit:      c.NewOptional[uint](2, true),
	})

	// Verify ---
	assert.Nil(err)
	assert.Len(result.Notifications, 2)
	for _, n := range result.Notifications {
		assert.False(n.IsRead)
	}
	assert.Equal(uint(5), result.UnreadCount)
}

func TestOtherUsersAreInvisible(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	repository := notification.NewFakeRepository(newNotifications(3)...)
	service := New(logging.NewFakeLogger(), repository)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{UserID: "user-2"})

	// Verify ---
	assert.Nil(err)
	assert.Empty(result.Notifications)
	assert.Zero(result.UnreadCount)
}
