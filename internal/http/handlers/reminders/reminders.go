package reminders

import (
	"errors"
	"net/http"

	"volunteercal/internal/core/domain/reminder"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/http/handlers/response"
)

// RenderError maps errors of the reminder services to responses.
func RenderError(rw http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, user.ErrUnauthenticated), errors.Is(err, user.ErrInvalidAccessToken):
		response.RenderUnauthorized(rw)
	case errors.Is(err, reminder.ErrReminderDoesNotExist):
		response.RenderNotFound(rw, err.Error())
	case errors.Is(err, reminder.ErrReminderPermission):
		response.RenderError(rw, err.Error(), http.StatusForbidden)
	case errors.Is(err, reminder.ErrReminderAlreadySent),
		errors.Is(err, reminder.ErrEventOrUserDoesNotExist),
		errors.Is(err, reminder.ErrRemindAtNotSet),
		errors.Is(err, reminder.ErrInvalidChannel):
		response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
	default:
		response.RenderInternalError(rw)
	}
}
