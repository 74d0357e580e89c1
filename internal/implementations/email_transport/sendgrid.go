package emailtransport

import (
	"context"
	"net/http"

	"volunteercal/internal/core/domain/email"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridHost = "https://api.sendgrid.com"

type SendGridTransport struct {
	client *sendgrid.Client
}

func NewSendGridTransport(apiKey string) *SendGridTransport {
	return NewSendGridTransportWithHost(apiKey, sendGridHost)
}

// NewSendGridTransportWithHost points the client at a custom API host.
func NewSendGridTransportWithHost(apiKey string, host string) *SendGridTransport {
	request := sendgrid.GetRequest(apiKey, "/v3/mail/send", host)
	request.Method = http.MethodPost
	return &SendGridTransport{client: &sendgrid.Client{Request: request}}
}

func (t *SendGridTransport) Send(ctx context.Context, m email.Message) error {
	from := mail.NewEmail(m.From.Name, string(m.From.Email))
	to := mail.NewEmail(m.To.Name, string(m.To.Email))
	message := mail.NewSingleEmail(from, m.Subject, to, m.Text, m.HTML)
	message.CustomArgs = map[string]string{"reminder_id": m.Reference}

	response, err := t.client.SendWithContext(ctx, message)
	if err != nil {
		return &email.DeliveryError{Details: err.Error()}
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return &email.DeliveryError{StatusCode: response.StatusCode, Details: response.Body}
	}
	return nil
}
