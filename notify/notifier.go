// Package notify delivers rendered notifications through a mail transport.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	apperrors "github.com/rrinconline/sticker-lab-backend/errors"
	"github.com/rrinconline/sticker-lab-backend/logger"
	"github.com/rrinconline/sticker-lab-backend/types"
)

// ErrNoRecipients is reported when a notification has nobody to go to.
var ErrNoRecipients = errors.New("no recipients")

// Mailer is a mail transport. Send returns the provider's message id.
type Mailer interface {
	Send(ctx context.Context, msg types.Message) (string, error)
}

// Notifier sends rendered notifications. Transport failures are turned into
// failed Outcomes and never returned as errors.
type Notifier struct {
	mailer  Mailer
	from    string
	timeout time.Duration
	metrics *Metrics
}

func NewNotifier(mailer Mailer, from string, timeout time.Duration) *Notifier {
	return NewNotifierWithRegistry(mailer, from, timeout, prometheus.DefaultRegisterer)
}

func NewNotifierWithRegistry(mailer Mailer, from string, timeout time.Duration, reg prometheus.Registerer) *Notifier {
	return &Notifier{
		mailer:  mailer,
		from:    from,
		timeout: timeout,
		metrics: newMetrics(reg),
	}
}

// Send delivers n to its recipients.
func (s *Notifier) Send(ctx context.Context, n types.RenderedNotification) types.Outcome {
	log := logger.GetLogger().Named("notify")
	audience := string(n.Audience)

	if len(n.Recipients) == 0 {
		s.metrics.errorCount.WithLabelValues(audience).Inc()
		log.Warnw("Skipping email without recipients", "audience", audience, "subject", n.Subject)
		return types.Failed(apperrors.Wrap(ErrNoRecipients, apperrors.MailError, "email not sent"))
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	startTime := time.Now()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	messageID, err := s.mailer.Send(ctx, types.Message{
		From:    s.from,
		To:      n.Recipients,
		Subject: n.Subject,
		HTML:    n.HTML,
		Text:    n.Text,
	})
	if err != nil {
		appErr := apperrors.Wrap(err, apperrors.MailError, "email send failed")
		s.metrics.errorCount.WithLabelValues(audience).Inc()
		log.Errorw("Failed to send email",
			"error", err,
			"errorType", appErr.Type,
			"audience", audience,
			"to", logger.MaskEmails(n.Recipients),
			"subject", n.Subject)
		return types.Failed(appErr)
	}

	s.metrics.sentCount.WithLabelValues(audience).Inc()
	log.Infow("Email sent successfully",
		"audience", audience,
		"to", logger.MaskEmails(n.Recipients),
		"subject", n.Subject,
		"messageId", messageID)

	return types.Succeeded()
}
