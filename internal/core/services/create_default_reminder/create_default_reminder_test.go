package createdefaultreminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/reminder"
	uow "volunteercal/internal/core/domain/unit_of_work"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func TestRemindAtIsOneDayBeforeStart(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	unitOfWork := uow.NewFakeUnitOfWork()
	service := New(logging.NewFakeLogger(), unitOfWork, 0, func() time.Time { return Now })
	start, err := time.Parse(time.RFC3339, "2026-03-15T09:00:00Z")
	assert.Nil(err)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		EventID:        "event-1",
		UserID:         "user-1",
		EventStartTime: start,
	})

	// Verify ---
	assert.Nil(err)
	expected, _ := time.Parse(time.RFC3339, "2026-03-14T09:00:00Z")
	assert.True(expected.Equal(result.Reminder.RemindAt), "got %s", result.Reminder.RemindAt)
	assert.Equal(reminder.ChannelBoth, result.Reminder.Channel)
	assert.False(result.Reminder.Sent)
	assert.Equal(Now, result.Reminder.CreatedAt)
	assert.True(unitOfWork.Context.WasCommitCalled)

	stored, ok := unitOfWork.Reminders().Get(result.Reminder.ID)
	assert.True(ok)
	assert.Equal(event.ID("event-1"), stored.EventID)
}

func TestPastRemindAtIsAccepted(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	unitOfWork := uow.NewFakeUnitOfWork()
	service := New(logging.NewFakeLogger(), unitOfWork, 0, func() time.Time { return Now })

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		EventID:        "event-1",
		UserID:         "user-1",
		EventStartTime: Now.Add(time.Hour),
	})

	// Verify ---
	assert.Nil(err)
	assert.True(result.Reminder.IsDue(Now))
}

func TestCustomOffset(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	unitOfWork := uow.NewFakeUnitOfWork()
	service := New(logging.NewFakeLogger(), unitOfWork, 2*time.Hour, func() time.Time { return Now })
	start := time.Date(2026, 3, 15, 9, 0, 0, 0, time.FixedZone("CET", 3600))

	// Exercise ---
	result, err := service.Run(context.Background(), Input{EventID: "e", UserID: "u", EventStartTime: start})

	// Verify ---
	assert.Nil(err)
	expected := time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC)
	assert.True(expected.Equal(result.Reminder.RemindAt), "got %s", result.Reminder.RemindAt)
	assert.Equal(time.UTC, result.Reminder.RemindAt.Location())
}

func TestMissingStartTime(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	unitOfWork := uow.NewFakeUnitOfWork()
	service := New(logging.NewFakeLogger(), unitOfWork, 0, func() time.Time { return Now })

	// Exercise ---
	_, err := service.Run(context.Background(), Input{EventID: "e", UserID: "u"})

	// Verify ---
	assert.ErrorIs(err, reminder.ErrRemindAtNotSet)
	assert.False(unitOfWork.Context.WasCommitCalled)
}

func TestUnknownEvent(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	unitOfWork := uow.NewFakeUnitOfWork()
	unitOfWork.Reminders().KnownEventIDs = map[event.ID]struct{}{"event-1": {}}
	service := New(logging.NewFakeLogger(), unitOfWork, 0, func() time.Time { return Now })

	// Exercise ---
	_, err := service.Run(context.Background(), Input{EventID: "event-2", UserID: "u", EventStartTime: Now})

	// Verify ---
	assert.ErrorIs(err, reminder.ErrEventOrUserDoesNotExist)
	assert.False(unitOfWork.Context.WasCommitCalled)
	assert.True(unitOfWork.Context.WasRollbackCalled)
}

func TestCreateError(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	unitOfWork := uow.NewFakeUnitOfWork()
	unitOfWork.Reminders().CreateError = errors.New("insert failed")
	service := New(logging.NewFakeLogger(), unitOfWork, 0, func() time.Time { return Now })

	// Exercise ---
	_, err := service.Run(context.Background(), Input{EventID: "e", UserID: "u", EventStartTime: Now})

	// Verify ---
	assert.ErrorIs(err, unitOfWork.Reminders().CreateError)
}
