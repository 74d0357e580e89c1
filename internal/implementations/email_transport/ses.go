package emailtransport

import (
	"context"

	"volunteercal/internal/core/domain/email"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESTransport struct {
	ses sesAPI
}

func NewSESTransport(awsConfig aws.Config) *SESTransport {
	return &SESTransport{ses: ses.NewFromConfig(awsConfig)}
}

func (t *SESTransport) Send(ctx context.Context, m email.Message) error {
	// The sender address must be verified with Amazon SES.
	_, err := t.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: aws.String(m.From.String()),
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: recipients(m),
			},
			Message: &types.Message{
				Subject: &types.Content{Data: aws.String(m.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(m.HTML), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(m.Text), Charset: aws.String("UTF-8")},
				},
			},
			Tags: []types.MessageTag{
				{Name: aws.String("reminder_id"), Value: aws.String(m.Reference)},
			},
		},
	)
	if err != nil {
		return &email.DeliveryError{Details: err.Error()}
	}
	return nil
}
