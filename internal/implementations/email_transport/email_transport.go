package emailtransport

import (
	"context"
	"fmt"

	"volunteercal/internal/core/domain/email"

	"github.com/aws/aws-sdk-go-v2/aws"
)

type Provider string

const (
	ProviderResend   Provider = "resend"
	ProviderSendGrid Provider = "sendgrid"
	ProviderSES      Provider = "ses"
)

type Config struct {
	Provider       Provider
	ResendAPIKey   string
	SendGridAPIKey string
	// AWSConfig is only required by the SES provider.
	AWSConfig *aws.Config
}

// New selects the transport for the configured provider. A provider without
// credentials yields a transport that always fails with email.ErrNotConfigured.
func New(config Config) (email.Transport, error) {
	switch config.Provider {
	case ProviderResend, "":
		if config.ResendAPIKey == "" {
			return NewNotConfigured(), nil
		}
		return NewResendTransport(config.ResendAPIKey), nil
	case ProviderSendGrid:
		if config.SendGridAPIKey == "" {
			return NewNotConfigured(), nil
		}
		return NewSendGridTransport(config.SendGridAPIKey), nil
	case ProviderSES:
		if config.AWSConfig == nil {
			return NewNotConfigured(), nil
		}
		return NewSESTransport(*config.AWSConfig), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", config.Provider)
	}
}

type NotConfigured struct{}

func NewNotConfigured() *NotConfigured {
	return &NotConfigured{}
}

func (t *NotConfigured) Send(ctx context.Context, m email.Message) error {
	return email.ErrNotConfigured
}

func recipients(m email.Message) []string {
	return []string{m.To.String()}
}
