package schedulereminders

import (
	"net/http"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/services"
	service "volunteercal/internal/core/services/schedule_reminders"
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
	Processed int `json:"processed"`
	EmailSent int `json:"emailSent"`
	InAppSent int `json:"inAppSent"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusInternalServerError)
		return
	}
	response.Render(
		rw,
		Result{Processed: result.Processed, EmailSent: result.EmailSent, InAppSent: result.InAppSent},
		http.StatusOK,
	)
}
