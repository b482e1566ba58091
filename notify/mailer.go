package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/google/uuid"
	"github.com/rrinconline/sticker-lab-backend/config"
	"github.com/rrinconline/sticker-lab-backend/logger"
	"github.com/rrinconline/sticker-lab-backend/types"
)

// LogMailer writes messages to the log instead of sending them. Used for
// local development.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg types.Message) (string, error) {
	id := uuid.NewString()
	logger.GetLogger().Infow("Email (log transport)",
		"messageId", id,
		"from", msg.From,
		"to", logger.MaskEmails(msg.To),
		"subject", msg.Subject,
		"textLength", len(msg.Text))
	return id, nil
}

// NewMailer builds the transport selected by cfg.Mail.Provider.
func NewMailer(ctx context.Context, cfg *config.Config) (Mailer, error) {
	switch cfg.Mail.Provider {
	case config.MailProviderSES, "":
		awsCfg, err := cfg.AWS.Load(ctx)
		if err != nil {
			return nil, err
		}
		return NewSESMailer(sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
			o.BaseEndpoint = cfg.AWS.EndpointOverride()
		})), nil
	case config.MailProviderResend:
		return NewResendMailer(cfg.Mail.ResendAPIKey), nil
	case config.MailProviderPostmark:
		return NewPostmarkMailer(cfg.Mail.PostmarkServerToken, cfg.Mail.PostmarkAccountToken), nil
	case config.MailProviderLog:
		return LogMailer{}, nil
	default:
		return nil, fmt.Errorf("unsupported mail provider %q", cfg.Mail.Provider)
	}
}
