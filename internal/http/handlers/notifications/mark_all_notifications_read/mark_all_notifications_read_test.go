package markallnotificationsread

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/core/services/auth"
	service "volunteercal/internal/core/services/mark_all_notifications_read"
	handlerauth "volunteercal/internal/http/handlers/auth"

	"github.com/stretchr/testify/assert"
)

func TestMarkAllNotificationsReadHandler(t *testing.T) {
	// Setup ---
	repo := notification.NewFakeRepository(
		notification.Notification{ID: "n-1", UserID: "u-1"},
		notification.Notification{ID: "n-2", UserID: "u-1", IsRead: true},
		notification.Notification{ID: "n-3", UserID: "u-2"},
	)
	authenticator := user.NewFakeAuthenticator()
	authenticator.Users["token"] = "u-1"
	handler := handlerauth.SetAuthTokenToContext(
		New(auth.WithAuthentication(authenticator, service.New(logging.NewFakeLogger(), repo))),
	)
	r := httptest.NewRequest(http.MethodPut, "/notifications/read", nil)
	r.Header.Set("Authorization", "Bearer token")
	rr := httptest.NewRecorder()

	// Exercise ---
	handler.ServeHTTP(rr, r)

	// Verify ---
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"updated_count":1}`, rr.Body.String())
	for _, n := range repo.All() {
		assert.Equal(t, n.UserID == "u-1", n.IsRead, n.ID)
	}
}
