package response

import (
	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/rabbitmq/schema"
)

// Notification has the same shape as the realtime stream payload.
type Notification = schema.Notification

func Notifications(dns []notification.Notification) []Notification {
	notifications := make([]Notification, 0, len(dns))
	for _, dn := range dns {
		n := Notification{}
		n.FromDomain(dn)
		notifications = append(notifications, n)
	}
	return notifications
}
