package email_test

import (
	"context"
	"net/mail"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/practicas-api/internal/application/ports"
	"github.com/jhoicas/practicas-api/internal/infrastructure/email"
)

func TestLogMailer_RegistraCorreos(t *testing.T) {
	m := email.NewLogMailer(zerolog.Nop())

	err := m.Send(context.Background(), ports.Email{
		To:      mail.Address{Name: "Jane", Address: "jane@acme.test"},
		Subject: "Verifica tu correo",
		Text:    "hola",
	})
	require.NoError(t, err)

	sent := m.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "jane@acme.test", sent[0].To.Address)
	assert.Equal(t, "Verifica tu correo", sent[0].Subject)
}

func TestSendgridMailer_ContextoCancelado(t *testing.T) {
	m := email.NewSendgridMailer("key", "practicas", "Oficina", "practicas@example.org")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, ports.Email{To: mail.Address{Address: "x@y.test"}, Subject: "s", Text: "t"})
	assert.ErrorIs(t, err, context.Canceled)
}
