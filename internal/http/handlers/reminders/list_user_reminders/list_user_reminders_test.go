package listuserreminders

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"volunteercal/internal/core/domain/reminder"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/core/services/auth"
	service "volunteercal/internal/core/services/list_user_reminders"
	handlerauth "volunteercal/internal/http/handlers/auth"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	input *service.Input
	err   error
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Reminders = []reminder.Reminder{
		{
			ID:        "r-1",
			EventID:   "e-1",
			UserID:    input.UserID,
			RemindAt:  time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
			Channel:   reminder.ChannelBoth,
			Sent:      true,
			CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	return result, nil
}

func newHandler(stub *stubService) http.Handler {
	authenticator := user.NewFakeAuthenticator()
	authenticator.Users["token"] = "u-1"
	return handlerauth.SetAuthTokenToContext(New(auth.WithAuthentication[service.Input, service.Result](authenticator, stub)))
}

func TestListUserRemindersHandler(t *testing.T) {
	// Setup ---
	stub := &stubService{}
	r := httptest.NewRequest(http.MethodGet, "/reminders", nil)
	r.Header.Set("Authorization", "Bearer token")
	rr := httptest.NewRecorder()

	// Exercise ---
	newHandler(stub).ServeHTTP(rr, r)

	// Verify ---
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, &service.Input{UserID: "u-1"}, stub.input)
	assert.JSONEq(
		t,
		`{"reminders":[{
			"id":"r-1",
			"event_id":"e-1",
			"user_id":"u-1",
			"remind_at":"2026-03-14T09:00:00Z",
			"channel":"both",
			"sent":true,
			"created_at":"2026-02-01T00:00:00Z"
		}]}`,
		rr.Body.String(),
	)
}

func TestListUserRemindersHandlerErrors(t *testing.T) {
	cases := []struct {
		name           string
		authHeader     string
		err            error
		expectedStatus int
	}{
		{"no token", "", nil, http.StatusUnauthorized},
		{"unknown token", "Bearer nope", nil, http.StatusUnauthorized},
		{"store failure", "Bearer token", errors.New("db"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/reminders", nil)
			if tc.authHeader != "" {
				r.Header.Set("Authorization", tc.authHeader)
			}
			rr := httptest.NewRecorder()

			newHandler(&stubService{err: tc.err}).ServeHTTP(rr, r)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}
