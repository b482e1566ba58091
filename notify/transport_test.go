package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/smithy-go"
	"github.com/mrz1836/postmark"
	"github.com/resend/resend-go/v2"
	"github.com/rrinconline/sticker-lab-backend/config"
	apperrors "github.com/rrinconline/sticker-lab-backend/errors"
	"github.com/rrinconline/sticker-lab-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testMessage = types.Message{
	From:    "Sticker & Magnet Lab <orders@rrinconline.com>",
	To:      []string{"a@example.com", "b@example.com"},
	Subject: "Order Confirmation - ORDER-abcdef12",
	HTML:    "<p>Thanks</p>",
	Text:    "Thanks\n",
}

type mockSES struct {
	mock.Mock
}

func (m *mockSES) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sesv2.SendEmailOutput), args.Error(1)
}

type mockEmailsService struct {
	mock.Mock
}

func (m *mockEmailsService) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.SendEmailResponse), args.Error(1)
}

type mockPostmark struct {
	mock.Mock
}

func (m *mockPostmark) SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(postmark.EmailResponse), args.Error(1)
}

func TestSESMailer(t *testing.T) {
	client := &mockSES{}
	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
		simple := in.Content.Simple
		return aws.ToString(in.FromEmailAddress) == testMessage.From &&
			assert.ObjectsAreEqual(testMessage.To, in.Destination.ToAddresses) &&
			aws.ToString(simple.Subject.Data) == testMessage.Subject &&
			aws.ToString(simple.Body.Html.Data) == testMessage.HTML &&
			aws.ToString(simple.Body.Text.Data) == testMessage.Text &&
			aws.ToString(simple.Body.Html.Charset) == "UTF-8"
	})).Return(&sesv2.SendEmailOutput{MessageId: aws.String("ses-1")}, nil).Once()
	client.On("SendEmail", mock.Anything, mock.Anything).Return(nil, errors.New("MessageRejected")).Once()

	m := NewSESMailer(client)

	id, err := m.Send(context.Background(), testMessage)
	require.NoError(t, err)
	assert.Equal(t, "ses-1", id)

	_, err = m.Send(context.Background(), testMessage)
	assert.ErrorContains(t, err, "MessageRejected")
	assert.Equal(t, apperrors.ServerError, apperrors.TypeOf(err))
	client.AssertExpectations(t)
}

func TestSESMailerAPIErrorIsUpstream(t *testing.T) {
	client := &mockSES{}
	client.On("SendEmail", mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "MessageRejected", Message: "Email address is not verified"})

	_, err := NewSESMailer(client).Send(context.Background(), testMessage)
	require.Error(t, err)
	assert.Equal(t, apperrors.UpstreamError, apperrors.TypeOf(err))
	assert.ErrorContains(t, err, "not verified")
}

func TestResendMailer(t *testing.T) {
	emails := &mockEmailsService{}
	emails.On("SendWithContext", mock.Anything, &resend.SendEmailRequest{
		From:    testMessage.From,
		To:      testMessage.To,
		Subject: testMessage.Subject,
		Html:    testMessage.HTML,
		Text:    testMessage.Text,
	}).Return(&resend.SendEmailResponse{Id: "re-1"}, nil).Once()
	emails.On("SendWithContext", mock.Anything, mock.Anything).Return(nil, errors.New("rate limited")).Once()

	m := &ResendMailer{emails: emails}

	id, err := m.Send(context.Background(), testMessage)
	require.NoError(t, err)
	assert.Equal(t, "re-1", id)

	_, err = m.Send(context.Background(), testMessage)
	assert.ErrorContains(t, err, "rate limited")
	emails.AssertExpectations(t)
}

func TestPostmarkMailer(t *testing.T) {
	tests := []struct {
		name      string
		resp      postmark.EmailResponse
		err       error
		expectErr string
	}{
		{name: "accepted", resp: postmark.EmailResponse{MessageID: "pm-1"}},
		{name: "api error code", resp: postmark.EmailResponse{ErrorCode: 406, Message: "Inactive recipient"}, expectErr: "406"},
		{name: "transport error", resp: postmark.EmailResponse{}, err: errors.New("connection reset"), expectErr: "connection reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockPostmark{}
			client.On("SendEmail", mock.Anything, postmark.Email{
				From:     testMessage.From,
				To:       "a@example.com,b@example.com",
				Subject:  testMessage.Subject,
				HTMLBody: testMessage.HTML,
				TextBody: testMessage.Text,
			}).Return(tt.resp, tt.err)

			id, err := (&PostmarkMailer{client: client}).Send(context.Background(), testMessage)
			if tt.expectErr != "" {
				assert.ErrorContains(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "pm-1", id)
		})
	}
}

func TestNewMailer(t *testing.T) {
	tests := []struct {
		provider  string
		expectErr bool
		check     func(t *testing.T, m Mailer)
	}{
		{provider: config.MailProviderResend, check: func(t *testing.T, m Mailer) { assert.IsType(t, &ResendMailer{}, m) }},
		{provider: config.MailProviderPostmark, check: func(t *testing.T, m Mailer) { assert.IsType(t, &PostmarkMailer{}, m) }},
		{provider: config.MailProviderLog, check: func(t *testing.T, m Mailer) { assert.IsType(t, LogMailer{}, m) }},
		{provider: "carrier-pigeon", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := &config.Config{Mail: config.MailConfig{
				Provider:             tt.provider,
				ResendAPIKey:         "re_test",
				PostmarkServerToken:  "server",
				PostmarkAccountToken: "account",
			}}
			m, err := NewMailer(context.Background(), cfg)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, m)
		})
	}
}
