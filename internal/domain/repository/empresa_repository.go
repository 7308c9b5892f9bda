package repository

import (
	"context"

	"github.com/jhoicas/practicas-api/internal/domain/entity"
)

// EmpresaRepository define el puerto de persistencia para EmpresaColaboradora.
type EmpresaRepository interface {
	Create(ctx context.Context, e *entity.EmpresaColaboradora) error
	GetByID(ctx context.Context, id string) (*entity.EmpresaColaboradora, error)
	List(ctx context.Context, limit, offset int) ([]*entity.EmpresaColaboradora, int, error)
}

// ContactoEmpresaRepository define el puerto de persistencia para ContactoEmpresa.
type ContactoEmpresaRepository interface {
	Create(ctx context.Context, c *entity.ContactoEmpresa) error
	ListByEmpresa(ctx context.Context, empresaID string) ([]*entity.ContactoEmpresa, error)
}
