package schema

import (
	"encoding/json"
	"time"

	c "volunteercal/internal/core/domain/common"
	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/core/domain/user"
)

// Notification is the wire form shared by the fanout exchange and the
// browser event stream.
type Notification struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        *string   `json:"message"`
	RelatedEventID *string   `json:"related_event_id"`
	RelatedGroupID *string   `json:"related_group_id"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

func (n *Notification) FromDomain(dn notification.Notification) {
	n.ID = string(dn.ID)
	n.UserID = string(dn.UserID)
	n.Type = dn.Type.String()
	n.Title = dn.Title
	n.Message = dn.Message.Pointer()
	if dn.RelatedEventID.IsPresent {
		v := string(dn.RelatedEventID.Value)
		n.RelatedEventID = &v
	}
	if dn.RelatedGroupID.IsPresent {
		v := string(dn.RelatedGroupID.Value)
		n.RelatedGroupID = &v
	}
	n.IsRead = dn.IsRead
	n.CreatedAt = dn.CreatedAt
}

func (n *Notification) ToDomain() (notification.Notification, error) {
	t, err := notification.ParseType(n.Type)
	if err != nil {
		return notification.Notification{}, err
	}
	dn := notification.Notification{
		ID:        notification.ID(n.ID),
		UserID:    user.ID(n.UserID),
		Type:      t,
		Title:     n.Title,
		Message:   c.OptionalFromPointer(n.Message),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if n.RelatedEventID != nil {
		dn.RelatedEventID = c.NewOptional(event.ID(*n.RelatedEventID), true)
	}
	if n.RelatedGroupID != nil {
		dn.RelatedGroupID = c.NewOptional(notification.GroupID(*n.RelatedGroupID), true)
	}
	return dn, nil
}

func (n *Notification) Marshal() ([]byte, error) {
	return json.Marshal(n)
}

func (n *Notification) Unmarshal(data []byte) error {
	return json.Unmarshal(data, n)
}
