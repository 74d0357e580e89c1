package notificationpublisher

import (
	"context"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/rabbitmq/schema"

	"github.com/r3labs/sse/v2"
)

const sseEventName = "notification"

// SSE pushes notifications to the event stream of their recipient.
// Streams are keyed by user id.
type SSE struct {
	sseServer *sse.Server
}

func NewSSE(sseServer *sse.Server) *SSE {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &SSE{sseServer: sseServer}
}

func (p *SSE) PublishNotification(ctx context.Context, n notification.Notification) error {
	message := &schema.Notification{}
	message.FromDomain(n)
	data, err := message.Marshal()
	if err != nil {
		return err
	}
	// Publishing to a user without open streams is a no-op.
	p.sseServer.Publish(string(n.UserID), &sse.Event{
		ID:    []byte(n.ID),
		Event: []byte(sseEventName),
		Data:  data,
	})
	return nil
}
