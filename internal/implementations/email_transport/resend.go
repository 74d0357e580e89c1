package emailtransport

import (
	"context"

	"volunteercal/internal/core/domain/email"

	"github.com/resend/resend-go/v2"
)

type ResendTransport struct {
	client *resend.Client
}

func NewResendTransport(apiKey string) *ResendTransport {
	return &ResendTransport{client: resend.NewClient(apiKey)}
}

func (t *ResendTransport) Send(ctx context.Context, m email.Message) error {
	params := &resend.SendEmailRequest{
		From:    m.From.String(),
		To:      recipients(m),
		Subject: m.Subject,
		Html:    m.HTML,
		Text:    m.Text,
		Tags:    []resend.Tag{{Name: "reminder_id", Value: m.Reference}},
	}

	_, err := t.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return &email.DeliveryError{Details: err.Error()}
	}
	return nil
}
