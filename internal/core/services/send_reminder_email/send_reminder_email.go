package sendreminderemail

import (
	"context"
	"errors"
	"strings"
	"time"

	"volunteercal/internal/core/domain/email"
	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/services"
)

type Input = email.ReminderEmail

type Result struct{}

type service struct {
	log       logging.Logger
	transport email.Transport
	sender    email.Address
	timeout   time.Duration
}

func New(
	log logging.Logger,
	transport email.Transport,
	sender email.Address,
	timeout time.Duration,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if transport == nil {
		panic(e.NewNilArgumentError("transport"))
	}
	return &service{
		log:       log,
		transport: transport,
		sender:    sender,
		timeout:   timeout,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.RecipientEmail == "" || strings.TrimSpace(input.EventTitle) == "" {
		return result, email.ErrInvalidInput
	}

	html, err := renderHTML(input)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", input.ReminderID))
		return result, err
	}
	message := email.Message{
		From:      s.sender,
		To:        email.Address{Name: input.RecipientName.ValueOr(""), Email: input.RecipientEmail},
		Subject:   subject(input),
		HTML:      html,
		Text:      renderText(input),
		Reference: input.ReminderID,
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	err = s.transport.Send(ctx, message)
	if err == nil {
		s.log.Info(
			ctx,
			"Reminder email sent.",
			logging.Entry("reminderID", input.ReminderID),
			logging.Entry("to", input.RecipientEmail),
		)
		return result, nil
	}

	if errors.Is(err, email.ErrNotConfigured) {
		s.log.Error(ctx, "Email provider is not configured.", logging.Entry("reminderID", input.ReminderID))
		return result, err
	}
	var deliveryErr *email.DeliveryError
	if !errors.As(err, &deliveryErr) {
		deliveryErr = &email.DeliveryError{Details: err.Error()}
	}
	s.log.Error(
		ctx,
		"Could not send reminder email.",
		logging.Entry("reminderID", input.ReminderID),
		logging.Entry("to", input.RecipientEmail),
		logging.Entry("statusCode", deliveryErr.StatusCode),
		logging.Entry("details", deliveryErr.Details),
	)
	return result, deliveryErr
}
