package createreminder

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/reminder"
	"volunteercal/internal/core/services"
	service "volunteercal/internal/core/services/create_reminder"
	"volunteercal/internal/http/handlers/reminders"
	"volunteercal/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
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

type Input struct {
	EventID  string    `json:"event_id"`
	RemindAt time.Time `json:"remind_at"`
	Channel  string    `json:"channel"`
}

type Result struct {
	Reminder response.Reminder `json:"reminder"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.EventID, validation.Required, is.UUID),
		validation.Field(&i.RemindAt, validation.Required),
		validation.Field(&i.Channel, validation.In("email", "in_app", "both")),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	channel := reminder.ChannelUnknown
	if input.Channel != "" {
		c, err := reminder.ParseChannel(input.Channel)
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		channel = c
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			EventID:  event.ID(input.EventID),
			RemindAt: input.RemindAt.UTC(),
			Channel:  channel,
		},
	)
	if err != nil {
		reminders.RenderError(rw, err)
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusCreated)
}
