package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/practicas-api/internal/domain"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
	"github.com/jhoicas/practicas-api/internal/infrastructure/memory"
)

func nuevaSolicitud(id, tok, portal string, at time.Time) *entity.EmpresaSolicitud {
	return &entity.EmpresaSolicitud{
		ID: id, NombreEmpresa: "Empresa " + id, ContactoNombre: "Jane",
		Token: tok, PortalToken: portal, Estado: entity.EstadoPendiente,
		CreatedAt: at, UpdatedAt: at,
	}
}

func TestRun_ErrorDescartaCambios(t *testing.T) {
	st := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, st.Solicitudes().Create(ctx, nuevaSolicitud("s1", "t1", "p1", time.Now())))

	boom := errors.New("boom")
	err := st.Run(ctx, func(s repository.EmpresaSolicitudRepository, e repository.EmpresaRepository, c repository.ContactoEmpresaRepository) error {
		require.NoError(t, e.Create(ctx, &entity.EmpresaColaboradora{ID: "e1", Nombre: "Acme"}))
		require.NoError(t, c.Create(ctx, &entity.ContactoEmpresa{ID: "c1", EmpresaID: "e1"}))
		sol, err := s.GetByIDForUpdate(ctx, "s1")
		require.NoError(t, err)
		sol.Estado = entity.EstadoAprobada
		require.NoError(t, s.Update(ctx, sol))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := st.Solicitudes().GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPendiente, got.Estado)
	e, err := st.Empresas().GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Nil(t, e)
	cs, err := st.Contactos().ListByEmpresa(ctx, "e1")
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestRun_ExitoPersiste(t *testing.T) {
	st := memory.NewStore()
	ctx := context.Background()

	err := st.Run(ctx, func(_ repository.EmpresaSolicitudRepository, e repository.EmpresaRepository, _ repository.ContactoEmpresaRepository) error {
		return e.Create(ctx, &entity.EmpresaColaboradora{ID: "e1", Nombre: "Acme"})
	})
	require.NoError(t, err)

	e, err := st.Empresas().GetByID(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "Acme", e.Nombre)
}

func TestSolicitudRepo_TokensUnicos(t *testing.T) {
	st := memory.NewStore()
	ctx := context.Background()
	repo := st.Solicitudes()
	require.NoError(t, repo.Create(ctx, nuevaSolicitud("s1", "t1", "p1", time.Now())))

	assert.ErrorIs(t, repo.Create(ctx, nuevaSolicitud("s2", "t1", "p2", time.Now())), domain.ErrDuplicate)
	assert.ErrorIs(t, repo.Create(ctx, nuevaSolicitud("s3", "p1", "p3", time.Now())), domain.ErrDuplicate,
		"un token no puede coincidir con el portal token de otra solicitud")
}

func TestSolicitudRepo_NoEncontradaEsNil(t *testing.T) {
	repo := memory.NewStore().Solicitudes()
	s, err := repo.GetByToken(context.Background(), "x")
	require.NoError(t, err)
	assert.Nil(t, s)

	err = repo.Update(context.Background(), nuevaSolicitud("x", "a", "b", time.Now()))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSolicitudRepo_ListFiltraYOrdena(t *testing.T) {
	st := memory.NewStore()
	ctx := context.Background()
	repo := st.Solicitudes()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, nuevaSolicitud("a", "ta", "pa", base)))
	require.NoError(t, repo.Create(ctx, nuevaSolicitud("b", "tb", "pb", base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, nuevaSolicitud("c", "tc", "pc", base.Add(time.Hour))))

	list, total, err := repo.List(ctx, repository.SolicitudFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{list[0].ID, list[1].ID, list[2].ID})

	list, total, err = repo.List(ctx, repository.SolicitudFilter{Estado: entity.EstadoRechazada}, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)
}

func TestMensajeRepo_OrdenDeInsercion(t *testing.T) {
	repo := memory.NewStore().Mensajes()
	ctx := context.Background()
	at := time.Now()
	for _, id := range []string{"m1", "m2", "m3"} {
		require.NoError(t, repo.Create(ctx, &entity.EmpresaMensaje{ID: id, SolicitudID: "s", Autor: entity.AutorEmpresa, Contenido: id, CreatedAt: at}))
	}
	list, err := repo.ListBySolicitud(ctx, "s")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "m1", list[0].ID)
	assert.Equal(t, "m3", list[2].ID)
}
