package service

import (
	"context"

	"github.com/resend/resend-go/v2"
)

// Mailer is the transactional email provider surface.
type Mailer interface {
	Send(ctx context.Context, from, replyTo string, to []string, subject, html string) (string, error)
}

type resendMailer struct {
	client *resend.Client
}

// NewResendMailer returns nil when no API key is configured; the
// notification dispatcher treats a nil mailer as "sending unavailable".
func NewResendMailer(apiKey string) Mailer {
	if apiKey == "" {
		return nil
	}
	return &resendMailer{client: resend.NewClient(apiKey)}
}

func (m *resendMailer) Send(ctx context.Context, from, replyTo string, to []string, subject, html string) (string, error) {
	params := &resend.SendEmailRequest{
		From:    from,
		To:      to,
		Subject: subject,
		Html:    html,
	}
	if replyTo != "" {
		params.ReplyTo = replyTo
	}
	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}
