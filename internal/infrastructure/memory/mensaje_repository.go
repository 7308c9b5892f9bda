package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
)

var _ repository.EmpresaMensajeRepository = (*MensajeRepo)(nil)

// MensajeRepo hilo de mensajes en memoria.
type MensajeRepo struct {
	st *Store
	l  lock
}

func (r *MensajeRepo) Create(_ context.Context, m *entity.EmpresaMensaje) error {
	defer r.l.acquire()()
	r.st.mensajes[m.SolicitudID] = append(r.st.mensajes[m.SolicitudID], *m)
	return nil
}

// ListBySolicitud orden ascendente por fecha; a igual fecha, orden de inserción.
func (r *MensajeRepo) ListBySolicitud(_ context.Context, solicitudID string) ([]*entity.EmpresaMensaje, error) {
	defer r.l.acquire()()
	src := r.st.mensajes[solicitudID]
	list := make([]*entity.EmpresaMensaje, 0, len(src))
	for i := range src {
		m := src[i]
		list = append(list, &m)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}
