package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"kmc/config"
	"kmc/infras/otel"
	"kmc/shared/constant"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
)

var ErrNoRecipient = errors.New("mail has no recipient")

type Mail struct {
	To      []string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

type resendMailer struct {
	client *resend.Client
	from   string
	otel   otel.Otel
}

// New returns a resend backed mailer, or a mailer that only logs when no API key is configured.
func New(cfg *config.Config, otel otel.Otel) Mailer {
	if cfg.External.Mail.APIKey == "" {
		log.Warn().Msg("mail API key not configured, notifications will only be logged")

		return &logMailer{}
	}

	return &resendMailer{
		client: resend.NewClient(cfg.External.Mail.APIKey),
		from:   cfg.External.Mail.From,
		otel:   otel,
	}
}

func (m *resendMailer) Send(ctx context.Context, mail Mail) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if len(mail.To) == 0 {
		return ErrNoRecipient
	}

	scope.SetAttribute("mail.subject", mail.Subject)

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      mail.To,
		Subject: mail.Subject,
		Html:    mail.HTML,
	})
	if err != nil {
		log.Error().Err(err).Strs("to", mail.To).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("id", sent.Id).Strs("to", mail.To).Msg("mail sent")

	return nil
}

type logMailer struct{}

func (m *logMailer) Send(_ context.Context, mail Mail) error {
	if len(mail.To) == 0 {
		return ErrNoRecipient
	}

	log.Info().Strs("to", mail.To).Str("subject", mail.Subject).Msg("mail delivery disabled, skipping")

	return nil
}
