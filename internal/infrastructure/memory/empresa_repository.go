package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/practicas-api/internal/domain"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
)

var (
	_ repository.EmpresaRepository         = (*EmpresaRepo)(nil)
	_ repository.ContactoEmpresaRepository = (*ContactoRepo)(nil)
)

// EmpresaRepo empresas colaboradoras en memoria.
type EmpresaRepo struct {
	st *Store
	l  lock
}

func (r *EmpresaRepo) Create(_ context.Context, e *entity.EmpresaColaboradora) error {
	defer r.l.acquire()()
	if _, ok := r.st.empresas[e.ID]; ok {
		return domain.ErrDuplicate
	}
	r.st.empresas[e.ID] = empresaRow{seq: r.st.next(), e: *e}
	return nil
}

func (r *EmpresaRepo) GetByID(_ context.Context, id string) (*entity.EmpresaColaboradora, error) {
	defer r.l.acquire()()
	row, ok := r.st.empresas[id]
	if !ok {
		return nil, nil
	}
	e := row.e
	return &e, nil
}

func (r *EmpresaRepo) List(_ context.Context, limit, offset int) ([]*entity.EmpresaColaboradora, int, error) {
	defer r.l.acquire()()
	rows := make([]empresaRow, 0, len(r.st.empresas))
	for _, row := range r.st.empresas {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq > rows[j].seq })
	total := len(rows)
	list := make([]*entity.EmpresaColaboradora, 0, max(limit, 0))
	for i := max(offset, 0); i < total && len(list) < limit; i++ {
		e := rows[i].e
		list = append(list, &e)
	}
	return list, total, nil
}

// ContactoRepo contactos de empresa en memoria.
type ContactoRepo struct {
	st *Store
	l  lock
}

func (r *ContactoRepo) Create(_ context.Context, c *entity.ContactoEmpresa) error {
	defer r.l.acquire()()
	r.st.contactos = append(r.st.contactos, *c)
	return nil
}

func (r *ContactoRepo) ListByEmpresa(_ context.Context, empresaID string) ([]*entity.ContactoEmpresa, error) {
	defer r.l.acquire()()
	var list []*entity.ContactoEmpresa
	for i := range r.st.contactos {
		if r.st.contactos[i].EmpresaID == empresaID {
			c := r.st.contactos[i]
			list = append(list, &c)
		}
	}
	return list, nil
}
