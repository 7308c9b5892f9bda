// Package memory implementa los puertos de persistencia en memoria (STORAGE=memory).
// Sirve para demos locales y para los tests de casos de uso y HTTP.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/practicas-api/internal/application/solicitud"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
)

var _ solicitud.TxRunner = (*Store)(nil)

// Store guarda todas las tablas tras un único mutex. Las transacciones toman el mutex
// completo y restauran una copia si la función falla.
type Store struct {
	mu sync.Mutex
	tables
}

type tables struct {
	seq         int64
	solicitudes map[string]solicitudRow
	mensajes    map[string][]entity.EmpresaMensaje // por solicitud, en orden de inserción
	empresas    map[string]empresaRow
	contactos   []entity.ContactoEmpresa
	users       map[string]entity.User
}

type solicitudRow struct {
	seq int64
	s   entity.EmpresaSolicitud
}

type empresaRow struct {
	seq int64
	e   entity.EmpresaColaboradora
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{tables: tables{
		solicitudes: make(map[string]solicitudRow),
		mensajes:    make(map[string][]entity.EmpresaMensaje),
		empresas:    make(map[string]empresaRow),
		users:       make(map[string]entity.User),
	}}
}

func (t *tables) clone() tables {
	c := tables{
		seq:         t.seq,
		solicitudes: make(map[string]solicitudRow, len(t.solicitudes)),
		mensajes:    make(map[string][]entity.EmpresaMensaje, len(t.mensajes)),
		empresas:    make(map[string]empresaRow, len(t.empresas)),
		contactos:   append([]entity.ContactoEmpresa(nil), t.contactos...),
		users:       make(map[string]entity.User, len(t.users)),
	}
	for k, v := range t.solicitudes {
		c.solicitudes[k] = v
	}
	for k, v := range t.mensajes {
		c.mensajes[k] = append([]entity.EmpresaMensaje(nil), v...)
	}
	for k, v := range t.empresas {
		c.empresas[k] = v
	}
	for k, v := range t.users {
		c.users[k] = v
	}
	return c
}

func (t *tables) next() int64 {
	t.seq++
	return t.seq
}

// lock es no-op para los repositorios creados dentro de una transacción (el mutex ya está tomado).
type lock struct {
	mu *sync.Mutex
}

func (l lock) acquire() func() {
	if l.mu == nil {
		return func() {}
	}
	l.mu.Lock()
	return l.mu.Unlock
}

// Run ejecuta fn con repositorios atados a la transacción. Si fn falla se descartan sus cambios.
func (st *Store) Run(ctx context.Context, fn func(
	solicitudRepo repository.EmpresaSolicitudRepository,
	empresaRepo repository.EmpresaRepository,
	contactoRepo repository.ContactoEmpresaRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	snapshot := st.tables.clone()
	tx := lock{}
	err := fn(
		&SolicitudRepo{st: st, l: tx},
		&EmpresaRepo{st: st, l: tx},
		&ContactoRepo{st: st, l: tx},
	)
	if err != nil {
		st.tables = snapshot
		return err
	}
	return nil
}

// Repositorios fuera de transacción.

func (st *Store) Solicitudes() *SolicitudRepo { return &SolicitudRepo{st: st, l: lock{mu: &st.mu}} }
func (st *Store) Mensajes() *MensajeRepo      { return &MensajeRepo{st: st, l: lock{mu: &st.mu}} }
func (st *Store) Empresas() *EmpresaRepo      { return &EmpresaRepo{st: st, l: lock{mu: &st.mu}} }
func (st *Store) Contactos() *ContactoRepo    { return &ContactoRepo{st: st, l: lock{mu: &st.mu}} }
func (st *Store) Users() *UserRepo            { return &UserRepo{st: st, l: lock{mu: &st.mu}} }
