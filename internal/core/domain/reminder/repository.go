package reminder

import (
	"context"
	"time"

	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/user"
)

type CreateInput struct {
	EventID   event.ID
	UserID    user.ID
	RemindAt  time.Time
	Channel   Channel
	CreatedAt time.Time
}

type UpdateInput struct {
	ID               ID
	DoRemindAtUpdate bool
	RemindAt         time.Time
	DoChannelUpdate  bool
	Channel          Channel
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Reminder, error)
	Lock(ctx context.Context, id ID) error
	GetByID(ctx context.Context, id ID) (Reminder, error)
	ListByUser(ctx context.Context, userID user.ID) ([]Reminder, error)
	ListByEvent(ctx context.Context, eventID event.ID) ([]Reminder, error)
	ListDue(ctx context.Context, now time.Time, limit uint) ([]Reminder, error)
	Update(ctx context.Context, input UpdateInput) (Reminder, error)
	// MarkSent reports whether this call moved the reminder from unsent to sent.
	MarkSent(ctx context.Context, id ID) (bool, error)
	Delete(ctx context.Context, id ID) error
	DeleteByEvent(ctx context.Context, eventID event.ID) (uint, error)
}

// Claimer hands out short-lived exclusive leases so that overlapping passes
// never dispatch the same reminder twice.
type Claimer interface {
	Claim(ctx context.Context, id ID) (bool, error)
	Release(ctx context.Context, id ID) error
}
