package usecase

import (
	"context"

	"github.com/jhoicas/practicas-api/internal/application/dto"
	"github.com/jhoicas/practicas-api/internal/application/solicitud"
	"github.com/jhoicas/practicas-api/internal/domain"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
)

// EmpresaUseCase consultas sobre empresas colaboradoras y sus contactos.
// Las empresas nacen al aprobar una solicitud (ver solicitud.UseCase.Approve).
type EmpresaUseCase struct {
	repo      repository.EmpresaRepository
	contactos repository.ContactoEmpresaRepository
}

// NewEmpresaUseCase construye el caso de uso con los puertos de persistencia.
func NewEmpresaUseCase(repo repository.EmpresaRepository, contactos repository.ContactoEmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo, contactos: contactos}
}

// GetByID obtiene una empresa por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *EmpresaUseCase) GetByID(ctx context.Context, id string) (*dto.EmpresaResponse, error) {
	if !entity.IDValido(id) {
		return nil, domain.ErrNotFound
	}
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return solicitud.ToEmpresaResponse(e), nil
}

// List lista empresas con paginación.
func (uc *EmpresaUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.EmpresaListResponse, error) {
	page.Normalize()
	list, total, err := uc.repo.List(ctx, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *solicitud.ToEmpresaResponse(e))
	}
	return &dto.EmpresaListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PerPage: page.PerPage, Total: total},
	}, nil
}

// ListContactos contactos de una empresa existente.
func (uc *EmpresaUseCase) ListContactos(ctx context.Context, empresaID string) ([]dto.ContactoEmpresaResponse, error) {
	if _, err := uc.GetByID(ctx, empresaID); err != nil {
		return nil, err
	}
	list, err := uc.contactos.ListByEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactoEmpresaResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *solicitud.ToContactoResponse(c))
	}
	return out, nil
}
