// internal/common/notify/mailer.go
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Mailer sends a confirmation to a participant after a successful signup.
type Mailer interface {
	SendSignupConfirmation(ctx context.Context, email, activity string) error
}

// NopMailer is the default when email notifications are disabled.
type NopMailer struct{}

func (NopMailer) SendSignupConfirmation(context.Context, string, string) error {
	return nil
}

// sesAPI is the slice of the SES client the mailer needs; tests supply fakes.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESMailer sends signup confirmations through AWS SES.
type SESMailer struct {
	client sesAPI
	from   string
}

func NewSESMailer(ctx context.Context, region, from string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), from: from}, nil
}

// NewSESMailerWithClient wires an existing SES client; used by tests.
func NewSESMailerWithClient(client sesAPI, from string) *SESMailer {
	return &SESMailer{client: client, from: from}
}

func (m *SESMailer) SendSignupConfirmation(ctx context.Context, email, activity string) error {
	input := &ses.SendEmailInput{
		Source: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{email},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(fmt.Sprintf("Signed up for %s", activity)),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(fmt.Sprintf(
						"You are signed up for %s. Contact the school office to unregister.", activity)),
				},
			},
		},
	}

	_, err := m.client.SendEmail(ctx, input)
	return err
}
