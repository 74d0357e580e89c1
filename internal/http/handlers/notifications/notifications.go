package notifications

import (
	"errors"
	"net/http"

	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/http/handlers/response"
)

// RenderError maps errors of the notification services to responses.
func RenderError(rw http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, user.ErrUnauthenticated), errors.Is(err, user.ErrInvalidAccessToken):
		response.RenderUnauthorized(rw)
	case errors.Is(err, notification.ErrNotificationDoesNotExist):
		response.RenderNotFound(rw, err.Error())
	default:
		response.RenderInternalError(rw)
	}
}
