package createdefaultreminder

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/logging"
	uow "volunteercal/internal/core/domain/unit_of_work"
	service "volunteercal/internal/core/services/create_default_reminder"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	eventID = "5b2e1f4a-8d3c-4f6e-9a1b-2c3d4e5f6a7b"
	userID  = "0f8e7d6c-5b4a-4392-8170-6a5b4c3d2e1f"
)

func newRouter(unitOfWork *uow.FakeUnitOfWork) http.Handler {
	now := func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) }
	router := chi.NewRouter()
	router.Method(
		http.MethodPost,
		"/internal/events/{eventID}/signups/{userID}/reminder",
		New(service.New(logging.NewFakeLogger(), unitOfWork, 0, now)),
	)
	return router
}

func TestCreateDefaultReminderHandler(t *testing.T) {
	// Setup ---
	unitOfWork := uow.NewFakeUnitOfWork()
	url := "/internal/events/" + eventID + "/signups/" + userID + "/reminder"
	rr := httptest.NewRecorder()

	// Exercise ---
	newRouter(unitOfWork).ServeHTTP(
		rr,
		httptest.NewRequest(http.MethodPost, url, strings.NewReader(`{"event_start_time":"2026-03-15T09:00:00Z"}`)),
	)

	// Verify ---
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	result := struct {
		Reminder struct {
			EventID  string    `json:"event_id"`
			UserID   string    `json:"user_id"`
			RemindAt time.Time `json:"remind_at"`
			Channel  string    `json:"channel"`
			Sent     bool      `json:"sent"`
		} `json:"reminder"`
	}{}
	require.Nil(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, eventID, result.Reminder.EventID)
	assert.Equal(t, userID, result.Reminder.UserID)
	assert.True(t, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC).Equal(result.Reminder.RemindAt))
	assert.Equal(t, "both", result.Reminder.Channel)
	assert.False(t, result.Reminder.Sent)
}

func TestCreateDefaultReminderHandlerUnknownEvent(t *testing.T) {
	// Setup ---
	unitOfWork := uow.NewFakeUnitOfWork()
	unitOfWork.Reminders().KnownEventIDs = map[event.ID]struct{}{}
	url := "/internal/events/" + eventID + "/signups/" + userID + "/reminder"
	rr := httptest.NewRecorder()

	// Exercise ---
	newRouter(unitOfWork).ServeHTTP(
		rr,
		httptest.NewRequest(http.MethodPost, url, strings.NewReader(`{"event_start_time":"2026-03-15T09:00:00Z"}`)),
	)

	// Verify ---
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateDefaultReminderHandlerBadRequest(t *testing.T) {
	cases := []struct {
		name string
		url  string
		body string
	}{
		{"invalid event id", "/internal/events/42/signups/" + userID + "/reminder", `{"event_start_time":"2026-03-15T09:00:00Z"}`},
		{"invalid user id", "/internal/events/" + eventID + "/signups/me/reminder", `{"event_start_time":"2026-03-15T09:00:00Z"}`},
		{"missing start", "/internal/events/" + eventID + "/signups/" + userID + "/reminder", `{}`},
		{"malformed body", "/internal/events/" + eventID + "/signups/" + userID + "/reminder", `{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			unitOfWork := uow.NewFakeUnitOfWork()
			rr := httptest.NewRecorder()

			newRouter(unitOfWork).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, tc.url, strings.NewReader(tc.body)))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.False(t, unitOfWork.Context.WasCommitCalled)
		})
	}
}
