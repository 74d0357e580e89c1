package reminder

import (
	"time"

	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/user"
)

// BatchSize bounds a single scheduler pass.
const BatchSize = 100

// DefaultOffset is how long before an event's start the signup reminder fires.
const DefaultOffset = 24 * time.Hour

type ID string

type Reminder struct {
	ID        ID
	EventID   event.ID
	UserID    user.ID
	RemindAt  time.Time
	Channel   Channel
	Sent      bool
	CreatedAt time.Time
}

func (r *Reminder) IsDue(now time.Time) bool {
	return !r.Sent && !r.RemindAt.After(now)
}
