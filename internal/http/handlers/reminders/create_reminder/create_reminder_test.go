package createreminder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/reminder"
	uow "volunteercal/internal/core/domain/unit_of_work"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/core/services/auth"
	service "volunteercal/internal/core/services/create_reminder"
	handlerauth "volunteercal/internal/http/handlers/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	token   = "valid-token"
	userID  = user.ID("0f8e7d6c-5b4a-4392-8170-6a5b4c3d2e1f")
	eventID = "5b2e1f4a-8d3c-4f6e-9a1b-2c3d4e5f6a7b"
)

func newHandler(unitOfWork *uow.FakeUnitOfWork) http.Handler {
	authenticator := user.NewFakeAuthenticator()
	authenticator.Users[token] = userID
	now := func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) }
	return handlerauth.SetAuthTokenToContext(New(
		auth.WithAuthentication(authenticator, service.New(logging.NewFakeLogger(), unitOfWork, now)),
	))
}

func post(h http.Handler, authHeader string, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/reminders", strings.NewReader(body))
	if authHeader != "" {
		r.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}

func TestCreateReminderHandler(t *testing.T) {
	// Setup ---
	unitOfWork := uow.NewFakeUnitOfWork()
	body := `{"event_id":"` + eventID + `","remind_at":"2026-03-14T10:00:00+01:00","channel":"email"}`

	// Exercise ---
	rr := post(newHandler(unitOfWork), "Bearer "+token, body)

	// Verify ---
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"remind_at":"2026-03-14T09:00:00Z"`)
	assert.Contains(t, rr.Body.String(), `"channel":"email"`)
	all, _ := unitOfWork.Reminders().ListByUser(context.Background(), userID)
	require.Len(t, all, 1)
	assert.Equal(t, event.ID(eventID), all[0].EventID)
	assert.Equal(t, reminder.ChannelEmail, all[0].Channel)
}

func TestCreateReminderHandlerDefaultsChannel(t *testing.T) {
	unitOfWork := uow.NewFakeUnitOfWork()

	rr := post(newHandler(unitOfWork), "Bearer "+token, `{"event_id":"`+eventID+`","remind_at":"2026-03-14T09:00:00Z"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"channel":"both"`)
}

func TestCreateReminderHandlerErrors(t *testing.T) {
	cases := []struct {
		name           string
		authHeader     string
		body           string
		knownEvents    map[event.ID]struct{}
		expectedStatus int
	}{
		{
			name:           "no token",
			body:           `{"event_id":"` + eventID + `","remind_at":"2026-03-14T09:00:00Z"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown token",
			authHeader:     "Bearer other",
			body:           `{"event_id":"` + eventID + `","remind_at":"2026-03-14T09:00:00Z"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed body",
			authHeader:     "Bearer " + token,
			body:           `[`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "event id is not uuid",
			authHeader:     "Bearer " + token,
			body:           `{"event_id":"42","remind_at":"2026-03-14T09:00:00Z"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "remind_at missing",
			authHeader:     "Bearer " + token,
			body:           `{"event_id":"` + eventID + `"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown channel",
			authHeader:     "Bearer " + token,
			body:           `{"event_id":"` + eventID + `","remind_at":"2026-03-14T09:00:00Z","channel":"sms"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown event",
			authHeader:     "Bearer " + token,
			body:           `{"event_id":"` + eventID + `","remind_at":"2026-03-14T09:00:00Z"}`,
			knownEvents:    map[event.ID]struct{}{},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			unitOfWork := uow.NewFakeUnitOfWork()
			unitOfWork.Reminders().KnownEventIDs = tc.knownEvents

			rr := post(newHandler(unitOfWork), tc.authHeader, tc.body)

			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
		})
	}
}
