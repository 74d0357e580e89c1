package createdefaultreminder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/reminder"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/core/services"
	service "volunteercal/internal/core/services/create_default_reminder"
	"volunteercal/internal/http/handlers/params"
	"volunteercal/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	EventStartTime time.Time `json:"event_start_time"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.EventStartTime, validation.Required),
	)
}

type Result struct {
	Reminder response.Reminder `json:"reminder"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	eventID, err := params.UUID(r, "eventID")
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}
	userID, err := params.UUID(r, "userID")
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{
		EventID:        event.ID(eventID),
		UserID:         user.ID(userID),
		EventStartTime: input.EventStartTime.UTC(),
	})
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrEventOrUserDoesNotExist):
			response.RenderNotFound(rw, err.Error())
		case errors.Is(err, reminder.ErrRemindAtNotSet):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusCreated)
}
