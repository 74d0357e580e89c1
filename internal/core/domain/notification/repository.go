package notification

import (
	"context"
	"time"

	c "volunteercal/internal/core/domain/common"
	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/user"
)

type CreateInput struct {
	UserID         user.ID
	Type           Type
	Title          string
	Message        c.Optional[string]
	RelatedEventID c.Optional[event.ID]
	RelatedGroupID c.Optional[GroupID]
	CreatedAt      time.Time
}

type ReadOptions struct {
	UserID     user.ID
	UnreadOnly bool
	Limit      uint
	Offset     uint
}

// Repository is append-only from the producer side: consumers can only mark
// notifications read or delete them.
type Repository interface {
	Create(ctx context.Context, input CreateInput) (Notification, error)
	ListByUser(ctx context.Context, options ReadOptions) ([]Notification, error)
	CountUnread(ctx context.Context, userID user.ID) (uint, error)
	MarkRead(ctx context.Context, id ID, userID user.ID) error
	MarkAllRead(ctx context.Context, userID user.ID) (uint, error)
	Delete(ctx context.Context, id ID, userID user.ID) error
}

// Publisher pushes freshly created notifications to connected clients.
type Publisher interface {
	PublishNotification(ctx context.Context, n Notification) error
}
