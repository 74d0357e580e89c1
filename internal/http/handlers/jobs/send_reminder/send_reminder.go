package sendreminder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	c "volunteercal/internal/core/domain/common"
	"volunteercal/internal/core/domain/email"
	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/services"
	service "volunteercal/internal/core/services/send_reminder_email"
	"volunteercal/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/golang-module/carbon/v2"
)

const errMissingFields = "Missing required fields"

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
	ReminderID    string     `json:"reminder_id"`
	UserEmail     string     `json:"user_email"`
	UserName      *string    `json:"user_name"`
	EventTitle    string     `json:"event_title"`
	EventStart    *Timestamp `json:"event_start"`
	EventLocation *string    `json:"event_location"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ReminderID, validation.Required),
		validation.Field(&i.UserEmail, validation.Required),
		validation.Field(&i.EventTitle, validation.Required),
	)
}

// timestampLayouts covers RFC 3339 as well as the text form Postgres uses for timestamptz.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z07",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z07",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Timestamp is an event start time. Values without an offset are read as UTC.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed := carbon.ParseByLayout(raw, layout, carbon.UTC)
		if parsed.Error == nil {
			t.Time = parsed.Carbon2Time()
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", raw)
}

type Result struct {
	Success bool `json:"success"`
}

type deliveryFailure struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderError(rw, errMissingFields, http.StatusBadRequest)
		return
	}

	var eventStart time.Time
	if input.EventStart != nil {
		eventStart = input.EventStart.Time
	}
	var name, location c.Optional[string]
	if input.UserName != nil {
		name = c.OptionalString(*input.UserName)
	}
	if input.EventLocation != nil {
		location = c.OptionalString(*input.EventLocation)
	}

	_, err := h.service.Run(r.Context(), service.Input{
		ReminderID:     input.ReminderID,
		RecipientEmail: c.NewEmail(input.UserEmail),
		RecipientName:  name,
		EventTitle:     strings.TrimSpace(input.EventTitle),
		EventStart:     eventStart,
		EventLocation:  location,
	})
	if err != nil {
		var deliveryErr *email.DeliveryError
		switch {
		case errors.Is(err, email.ErrInvalidInput):
			response.RenderError(rw, errMissingFields, http.StatusBadRequest)
		case errors.Is(err, email.ErrNotConfigured):
			response.RenderError(rw, "Email provider not configured", http.StatusInternalServerError)
		case errors.As(err, &deliveryErr):
			response.Render(
				rw,
				deliveryFailure{Error: "Failed to send email", Details: deliveryErr.Details},
				http.StatusInternalServerError,
			)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, Result{Success: true}, http.StatusOK)
}
