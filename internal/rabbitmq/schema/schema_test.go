package schema

import (
	"testing"
	"time"

	c "volunteercal/internal/core/domain/common"
	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationWireFormat(t *testing.T) {
	// Setup ---
	n := &Notification{}
	n.FromDomain(notification.Notification{
		ID:             "n-1",
		UserID:         "u-1",
		Type:           notification.TypeEventReminder,
		Title:          "Reminder: Beach cleanup",
		Message:        c.NewOptional("Soon.", true),
		RelatedEventID: c.NewOptional(event.ID("e-1"), true),
		CreatedAt:      time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	})

	// Exercise ---
	data, err := n.Marshal()

	// Verify ---
	require.Nil(t, err)
	assert.JSONEq(
		t,
		`{
			"id": "n-1",
			"user_id": "u-1",
			"type": "event_reminder",
			"title": "Reminder: Beach cleanup",
			"message": "Soon.",
			"related_event_id": "e-1",
			"related_group_id": null,
			"is_read": false,
			"created_at": "2026-03-14T09:00:00Z"
		}`,
		string(data),
	)
}

func TestNotificationToDomain(t *testing.T) {
	n := &Notification{}
	require.Nil(t, n.Unmarshal([]byte(`{"id":"n-1","user_id":"u-1","type":"group_invite","title":"Join us","related_group_id":"g-1"}`)))

	dn, err := n.ToDomain()

	require.Nil(t, err)
	assert.Equal(t, notification.TypeGroupInvite, dn.Type)
	assert.Equal(t, c.NewOptional(notification.GroupID("g-1"), true), dn.RelatedGroupID)
	assert.False(t, dn.Message.IsPresent)
	assert.False(t, dn.RelatedEventID.IsPresent)
}

func TestNotificationToDomainUnknownType(t *testing.T) {
	n := &Notification{Type: "party"}

	_, err := n.ToDomain()

	assert.ErrorIs(t, err, notification.ErrParseType)
}
