package markallnotificationsread

import (
	"net/http"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/services"
	service "volunteercal/internal/core/services/mark_all_notifications_read"
	"volunteercal/internal/http/handlers/notifications"
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

type Result struct {
	UpdatedCount uint `json:"updated_count"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		notifications.RenderError(rw, err)
		return
	}
	response.Render(rw, Result{UpdatedCount: result.UpdatedCount}, http.StatusOK)
}
