package marknotificationread

import (
	"net/http"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/core/services"
	service "volunteercal/internal/core/services/mark_notification_read"
	"volunteercal/internal/http/handlers/notifications"
	"volunteercal/internal/http/handlers/params"
	"volunteercal/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	notificationID, err := params.UUID(r, "notificationID")
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), service.Input{NotificationID: notification.ID(notificationID)})
	if err != nil {
		notifications.RenderError(rw, err)
		return
	}
	rw.WriteHeader(http.StatusNoContent)
}
