package repository

import (
	"context"

	"github.com/jhoicas/practicas-api/internal/domain/entity"
)

// SolicitudFilter filtros opcionales del listado de solicitudes.
type SolicitudFilter struct {
	Estado string // vacío = todos
}

// EmpresaSolicitudRepository define el puerto de persistencia para EmpresaSolicitud (DIP).
// Los Get* devuelven (nil, nil) si no existe el registro.
type EmpresaSolicitudRepository interface {
	// Create devuelve domain.ErrDuplicate si token o portal token ya existen.
	Create(ctx context.Context, s *entity.EmpresaSolicitud) error
	GetByID(ctx context.Context, id string) (*entity.EmpresaSolicitud, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.EmpresaSolicitud, error)
	GetByToken(ctx context.Context, token string) (*entity.EmpresaSolicitud, error)
	// GetByTokenForUpdate igual que GetByIDForUpdate pero por token de verificación.
	GetByTokenForUpdate(ctx context.Context, token string) (*entity.EmpresaSolicitud, error)
	GetByPortalToken(ctx context.Context, portalToken string) (*entity.EmpresaSolicitud, error)
	Update(ctx context.Context, s *entity.EmpresaSolicitud) error
	List(ctx context.Context, filter SolicitudFilter, limit, offset int) ([]*entity.EmpresaSolicitud, int, error)
}
