package listuserreminders

import (
	"context"
	"testing"
	"time"

	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/reminder"

	"github.com/stretchr/testify/require"
)

func TestOnlyOwnRemindersOrderedByRemindAt(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	later := reminder.Reminder{ID: "a", UserID: "user-1", RemindAt: base.Add(time.Hour)}
	earlier := reminder.Reminder{ID: "b", UserID: "user-1", RemindAt: base}
	foreign := reminder.Reminder{ID: "c", UserID: "user-2", RemindAt: base}
	service := New(logging.NewFakeLogger(), reminder.NewFakeRepository(later, earlier, foreign))

	// Exercise ---
	result, err := service.Run(context.Background(), Input{UserID: "user-1"})

	// Verify ---
	assert.Nil(err)
	assert.Equal([]reminder.Reminder{earlier, later}, result.Reminders)
}

func TestNoReminders(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	service := New(logging.NewFakeLogger(), reminder.NewFakeRepository())

	// Exercise ---
	result, err := service.Run(context.Background(), Input{UserID: "user-1"})

	// Verify ---
	assert.Nil(err)
	assert.Empty(result.Reminders)
}
