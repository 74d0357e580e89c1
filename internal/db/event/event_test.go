package event

import (
	"context"
	"testing"

	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGetByID(t *testing.T) {
	db.SkipWithoutTestDB(t)

	// Setup ---
	assert := require.New(t)
	pool := db.CreateTestPool()
	defer pool.Close()
	defer db.TruncateTables(pool)
	id := uuid.NewString()
	db.CreateTestEvent(pool, id, "Beach Cleanup")
	repo := NewPgxEventRepository(pool)

	// Exercise ---
	ev, err := repo.GetByID(context.Background(), event.ID(id))

	// Verify ---
	assert.Nil(err)
	assert.Equal(event.ID(id), ev.ID)
	assert.Equal("Beach Cleanup", ev.Title)
	assert.False(ev.Location.IsPresent)

	_, err = repo.GetByID(context.Background(), event.ID(uuid.NewString()))
	assert.ErrorIs(err, event.ErrEventDoesNotExist)
}
