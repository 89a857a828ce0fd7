package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Message is one outgoing HTML mail.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer delivers a rendered message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ResendMailer sends through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
	log    *zap.Logger
}

var _ Mailer = (*ResendMailer)(nil)

func NewResendMailer(apiKey, from string, log *zap.Logger) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey), from: from, log: log.Named("mail.resend")}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("resend send %q: %w", msg.Subject, err)
	}
	m.log.Info("mail sent", zap.String("mail_id", sent.Id), zap.String("subject", msg.Subject))
	return nil
}

// LogMailer only logs; used when no Resend API key is configured.
type LogMailer struct {
	log *zap.Logger
}

var _ Mailer = (*LogMailer)(nil)

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log.Named("mail.log")}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.log.Info("mail delivery disabled, message dropped",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("html_bytes", len(msg.HTML)))
	return nil
}
