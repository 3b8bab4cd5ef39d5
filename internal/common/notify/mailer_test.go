package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{}, nil
}

func TestSESMailer_SendSignupConfirmation(t *testing.T) {
	fake := &fakeSES{}
	mailer := NewSESMailerWithClient(fake, "activities@mergington.edu")

	err := mailer.SendSignupConfirmation(context.Background(), "newstudent@mergington.edu", "Chess Club")
	require.NoError(t, err)

	require.NotNil(t, fake.input)
	assert.Equal(t, "activities@mergington.edu", *fake.input.Source)
	require.Len(t, fake.input.Destination.ToAddresses, 1)
	assert.Equal(t, "newstudent@mergington.edu", fake.input.Destination.ToAddresses[0])
	assert.Contains(t, *fake.input.Message.Subject.Data, "Chess Club")
	assert.Contains(t, *fake.input.Message.Body.Text.Data, "Chess Club")
}

func TestSESMailer_SendFailure(t *testing.T) {
	fake := &fakeSES{err: errors.New("throttled")}
	mailer := NewSESMailerWithClient(fake, "activities@mergington.edu")

	err := mailer.SendSignupConfirmation(context.Background(), "x@mergington.edu", "Drama Club")
	require.Error(t, err)
}

func TestNopMailer(t *testing.T) {
	assert.NoError(t, NopMailer{}.SendSignupConfirmation(context.Background(), "x@mergington.edu", "Chess Club"))
}
