package updatereminder

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/reminder"
	uow "volunteercal/internal/core/domain/unit_of_work"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/core/services/auth"
	service "volunteercal/internal/core/services/update_reminder"
	handlerauth "volunteercal/internal/http/handlers/auth"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownReminderID   = reminder.ID("1d1c9a8e-6d6b-4b47-9c59-0c2c7f3b7a01")
	otherReminderID = reminder.ID("1d1c9a8e-6d6b-4b47-9c59-0c2c7f3b7a02")
	sentReminderID  = reminder.ID("1d1c9a8e-6d6b-4b47-9c59-0c2c7f3b7a03")
	missingID       = reminder.ID("1d1c9a8e-6d6b-4b47-9c59-0c2c7f3b7a04")
)

var RemindAt = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newRouter() (http.Handler, *uow.FakeUnitOfWork) {
	unitOfWork := uow.NewFakeUnitOfWork(
		reminder.Reminder{ID: ownReminderID, EventID: "e-1", UserID: "u-1", RemindAt: RemindAt, Channel: reminder.ChannelBoth},
		reminder.Reminder{ID: otherReminderID, EventID: "e-1", UserID: "u-2", RemindAt: RemindAt, Channel: reminder.ChannelBoth},
		reminder.Reminder{ID: sentReminderID, EventID: "e-1", UserID: "u-1", RemindAt: RemindAt, Channel: reminder.ChannelBoth, Sent: true},
	)
	authenticator := user.NewFakeAuthenticator()
	authenticator.Users["token"] = "u-1"

	router := chi.NewRouter()
	router.Use(handlerauth.SetAuthTokenToContext)
	router.Method(
		http.MethodPatch,
		"/reminders/{reminderID}",
		New(auth.WithAuthentication(authenticator, service.New(logging.NewFakeLogger(), unitOfWork))),
	)
	return router, unitOfWork
}

func patch(h http.Handler, id reminder.ID, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPatch, "/reminders/"+string(id), strings.NewReader(body))
	r.Header.Set("Authorization", "Bearer token")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}

func TestUpdateReminderHandlerChannelOnly(t *testing.T) {
	// Setup ---
	router, unitOfWork := newRouter()

	// Exercise ---
	rr := patch(router, ownReminderID, `{"channel":"in_app"}`)

	// Verify ---
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	stored, _ := unitOfWork.Reminders().Get(ownReminderID)
	assert.Equal(t, reminder.ChannelInApp, stored.Channel)
	assert.True(t, RemindAt.Equal(stored.RemindAt))
}

func TestUpdateReminderHandlerRemindAtOnly(t *testing.T) {
	// Setup ---
	router, unitOfWork := newRouter()

	// Exercise ---
	rr := patch(router, ownReminderID, `{"remind_at":"2026-03-15T07:00:00Z"}`)

	// Verify ---
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	stored, _ := unitOfWork.Reminders().Get(ownReminderID)
	assert.Equal(t, reminder.ChannelBoth, stored.Channel)
	assert.True(t, time.Date(2026, 3, 15, 7, 0, 0, 0, time.UTC).Equal(stored.RemindAt))
}

func TestUpdateReminderHandlerErrors(t *testing.T) {
	cases := []struct {
		name           string
		id             reminder.ID
		body           string
		expectedStatus int
	}{
		{"invalid id", reminder.ID("7"), `{"channel":"email"}`, http.StatusBadRequest},
		{"malformed body", ownReminderID, `{"channel":`, http.StatusBadRequest},
		{"unknown channel", ownReminderID, `{"channel":"sms"}`, http.StatusBadRequest},
		{"empty channel", ownReminderID, `{"channel":""}`, http.StatusBadRequest},
		{"missing reminder", missingID, `{"channel":"email"}`, http.StatusNotFound},
		{"foreign reminder", otherReminderID, `{"channel":"email"}`, http.StatusForbidden},
		{"sent reminder", sentReminderID, `{"channel":"email"}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, _ := newRouter()

			rr := patch(router, tc.id, tc.body)

			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
		})
	}
}
