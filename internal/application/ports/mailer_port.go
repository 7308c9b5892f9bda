package ports

import (
	"context"
	"net/mail"
)

// Email mensaje saliente hacia una empresa solicitante.
type Email struct {
	To      mail.Address
	Subject string
	Text    string
	HTML    string // opcional
}

// Mailer define el puerto de salida para el envío de correos.
// Los adaptadores (SendGrid, log) no reintentan; el llamador decide qué hacer con el error.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}
