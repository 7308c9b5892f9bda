package repository

import (
	"context"

	"github.com/jhoicas/practicas-api/internal/domain/entity"
)

// EmpresaMensajeRepository persistencia del hilo de mensajes. Solo inserción y lectura.
type EmpresaMensajeRepository interface {
	Create(ctx context.Context, m *entity.EmpresaMensaje) error
	// ListBySolicitud devuelve el hilo completo en orden de creación ascendente.
	ListBySolicitud(ctx context.Context, solicitudID string) ([]*entity.EmpresaMensaje, error)
}
