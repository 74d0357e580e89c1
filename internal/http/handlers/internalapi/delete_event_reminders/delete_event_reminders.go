package deleteeventreminders

import (
	"net/http"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/services"
	service "volunteercal/internal/core/services/delete_event_reminders"
	"volunteercal/internal/http/handlers/params"
	"volunteercal/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	DeletedCount uint `json:"deleted_count"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	eventID, err := params.UUID(r, "eventID")
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{EventID: event.ID(eventID)})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, Result{DeletedCount: result.DeletedCount}, http.StatusOK)
}
