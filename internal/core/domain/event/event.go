package event

import (
	"context"
	"errors"
	"time"

	c "volunteercal/internal/core/domain/common"
)

var ErrEventDoesNotExist = errors.New("event does not exist")

type ID string

// Event is the subset of an event record needed to render a reminder.
type Event struct {
	ID        ID
	Title     string
	StartTime time.Time
	Location  c.Optional[string]
}

type Repository interface {
	GetByID(ctx context.Context, id ID) (Event, error)
}

const humanTimeLayout = "Monday, January 2, 2006 at 3:04 PM MST"

// HumanTime renders an event time the way reminders show it to volunteers.
func HumanTime(t time.Time) string {
	return t.UTC().Format(humanTimeLayout)
}
