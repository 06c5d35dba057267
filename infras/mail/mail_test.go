package mail_test

import (
	"context"
	"kmc/config"
	"kmc/infras/mail"
	"kmc/infras/otel/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithoutAPIKeyOnlyLogs(t *testing.T) {
	mailer := mail.New(&config.Config{}, mocks.NewOtel())

	err := mailer.Send(context.Background(), mail.Mail{To: []string{"manager@kmc.org"}, Subject: "휴가 신청"})
	assert.NoError(t, err)

	err = mailer.Send(context.Background(), mail.Mail{Subject: "휴가 신청"})
	assert.ErrorIs(t, err, mail.ErrNoRecipient)
}
