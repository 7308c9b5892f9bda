package entity

import "time"

// Autores posibles de un mensaje del hilo de una solicitud.
const (
	AutorEmpresa = "empresa"
	AutorCentro  = "centro"
)

// MaxMensajeLen longitud máxima (en runas) del cuerpo de un mensaje.
const MaxMensajeLen = 2000

// EmpresaMensaje es una entrada del hilo de mensajes de una solicitud. Solo se añaden, nunca se editan.
type EmpresaMensaje struct {
	ID          string
	SolicitudID string
	Autor       string // empresa | centro
	Contenido   string
	CreatedAt   time.Time
}
