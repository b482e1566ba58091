package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"
	"github.com/rrinconline/sticker-lab-backend/types"
)

type postmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// PostmarkMailer sends through Postmark's transactional API.
type PostmarkMailer struct {
	client postmarkAPI
}

func NewPostmarkMailer(serverToken, accountToken string) *PostmarkMailer {
	return &PostmarkMailer{client: postmark.NewClient(serverToken, accountToken)}
}

func (m *PostmarkMailer) Send(ctx context.Context, msg types.Message) (string, error) {
	resp, err := m.client.SendEmail(ctx, postmark.Email{
		From:     msg.From,
		To:       strings.Join(msg.To, ","),
		Subject:  msg.Subject,
		HTMLBody: msg.HTML,
		TextBody: msg.Text,
	})
	if err != nil {
		return "", fmt.Errorf("postmark send: %w", err)
	}
	if resp.ErrorCode > 0 {
		return "", fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message)
	}
	return resp.MessageID, nil
}
