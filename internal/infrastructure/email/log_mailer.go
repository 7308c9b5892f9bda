// Package email adaptadores del puerto ports.Mailer.
package email

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/practicas-api/internal/application/ports"
)

var _ ports.Mailer = (*LogMailer)(nil)

// LogMailer no envía nada: registra cada correo en el log y lo guarda en memoria.
// Es el proveedor por defecto en desarrollo (MAIL_PROVIDER=log).
type LogMailer struct {
	log zerolog.Logger

	mu   sync.Mutex
	sent []ports.Email
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, msg ports.Email) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()

	m.log.Info().
		Str("to", msg.To.String()).
		Str("subject", msg.Subject).
		Str("body", msg.Text).
		Msg("correo (no enviado, MAIL_PROVIDER=log)")
	return nil
}

// Sent copia de los correos registrados hasta ahora.
func (m *LogMailer) Sent() []ports.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ports.Email(nil), m.sent...)
}
