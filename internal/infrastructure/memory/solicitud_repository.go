package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/practicas-api/internal/domain"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
)

var _ repository.EmpresaSolicitudRepository = (*SolicitudRepo)(nil)

// SolicitudRepo solicitudes en memoria.
type SolicitudRepo struct {
	st *Store
	l  lock
}

// Create inserta la solicitud; token y portal token deben ser únicos entre todas.
func (r *SolicitudRepo) Create(_ context.Context, s *entity.EmpresaSolicitud) error {
	defer r.l.acquire()()
	if _, ok := r.st.solicitudes[s.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, row := range r.st.solicitudes {
		if row.s.Token == s.Token || row.s.PortalToken == s.PortalToken ||
			row.s.Token == s.PortalToken || row.s.PortalToken == s.Token {
			return domain.ErrDuplicate
		}
	}
	r.st.solicitudes[s.ID] = solicitudRow{seq: r.st.next(), s: *s}
	return nil
}

func (r *SolicitudRepo) GetByID(_ context.Context, id string) (*entity.EmpresaSolicitud, error) {
	defer r.l.acquire()()
	row, ok := r.st.solicitudes[id]
	if !ok {
		return nil, nil
	}
	s := row.s
	return &s, nil
}

// GetByIDForUpdate equivale a GetByID: dentro de Store.Run el mutex ya serializa.
func (r *SolicitudRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.EmpresaSolicitud, error) {
	return r.GetByID(ctx, id)
}

func (r *SolicitudRepo) GetByToken(_ context.Context, token string) (*entity.EmpresaSolicitud, error) {
	return r.find(func(s *entity.EmpresaSolicitud) bool { return s.Token == token })
}

// GetByTokenForUpdate equivale a GetByToken (ver GetByIDForUpdate).
func (r *SolicitudRepo) GetByTokenForUpdate(ctx context.Context, token string) (*entity.EmpresaSolicitud, error) {
	return r.GetByToken(ctx, token)
}

func (r *SolicitudRepo) GetByPortalToken(_ context.Context, portalToken string) (*entity.EmpresaSolicitud, error) {
	return r.find(func(s *entity.EmpresaSolicitud) bool { return s.PortalToken == portalToken })
}

func (r *SolicitudRepo) find(match func(*entity.EmpresaSolicitud) bool) (*entity.EmpresaSolicitud, error) {
	defer r.l.acquire()()
	for _, row := range r.st.solicitudes {
		if match(&row.s) {
			s := row.s
			return &s, nil
		}
	}
	return nil, nil
}

// Update reemplaza los campos mutables. Los tokens no cambian nunca.
func (r *SolicitudRepo) Update(_ context.Context, s *entity.EmpresaSolicitud) error {
	defer r.l.acquire()()
	row, ok := r.st.solicitudes[s.ID]
	if !ok {
		return domain.ErrNotFound
	}
	updated := *s
	updated.Token = row.s.Token
	updated.PortalToken = row.s.PortalToken
	updated.CreatedAt = row.s.CreatedAt
	row.s = updated
	r.st.solicitudes[s.ID] = row
	return nil
}

// List más recientes primero.
func (r *SolicitudRepo) List(_ context.Context, filter repository.SolicitudFilter, limit, offset int) ([]*entity.EmpresaSolicitud, int, error) {
	defer r.l.acquire()()
	rows := make([]solicitudRow, 0, len(r.st.solicitudes))
	for _, row := range r.st.solicitudes {
		if filter.Estado != "" && row.s.Estado != filter.Estado {
			continue
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].s.CreatedAt.Equal(rows[j].s.CreatedAt) {
			return rows[i].s.CreatedAt.After(rows[j].s.CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})
	total := len(rows)
	list := make([]*entity.EmpresaSolicitud, 0, max(limit, 0))
	for i := max(offset, 0); i < total && len(list) < limit; i++ {
		s := rows[i].s
		list = append(list, &s)
	}
	return list, total, nil
}
