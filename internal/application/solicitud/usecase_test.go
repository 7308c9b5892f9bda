package solicitud_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/practicas-api/internal/application/dto"
	"github.com/jhoicas/practicas-api/internal/application/ports"
	"github.com/jhoicas/practicas-api/internal/application/solicitud"
	"github.com/jhoicas/practicas-api/internal/domain"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
	"github.com/jhoicas/practicas-api/internal/infrastructure/memory"
	"github.com/jhoicas/practicas-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type recordingMailer struct {
	mu   sync.Mutex
	sent []ports.Email
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg ports.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.err
}

func (m *recordingMailer) subjects() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.sent))
	for _, e := range m.sent {
		out = append(out, e.Subject)
	}
	return out
}

type countingMetrics struct {
	mu          sync.Mutex
	transitions map[string]int
	mensajes    map[string]int
}

func (c *countingMetrics) SolicitudTransicion(t string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transitions[t]++
}

func (c *countingMetrics) MensajePublicado(a string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mensajes[a]++
}

type fixture struct {
	uc      *solicitud.UseCase
	store   *memory.Store
	mailer  *recordingMailer
	metrics *countingMetrics
	clock   *time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	now := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	f := &fixture{
		store:   memory.NewStore(),
		mailer:  &recordingMailer{},
		metrics: &countingMetrics{transitions: map[string]int{}, mensajes: map[string]int{}},
		clock:   &now,
	}
	f.uc = solicitud.NewUseCase(solicitud.Deps{
		Solicitudes: f.store.Solicitudes(),
		Mensajes:    f.store.Mensajes(),
		TxRunner:    f.store,
		Mailer:      f.mailer,
		Links:       config.PortalConfig{PublicBaseURL: "http://api.test", PortalBaseURL: "http://portal.test"},
		Metrics:     f.metrics,
		Logger:      zerolog.Nop(),
		Now:         func() time.Time { return *f.clock },
	})
	return f
}

func (f *fixture) tick() { *f.clock = f.clock.Add(time.Minute) }

func acme() dto.CreateSolicitudRequest {
	return dto.CreateSolicitudRequest{
		NombreEmpresa:  "Acme",
		Sector:         "Industria",
		Ciudad:         "Valencia",
		Descripcion:    "Fabricamos de todo.",
		ContactoNombre: "Jane",
		ContactoEmail:  "jane@acme.test",
	}
}

func (f *fixture) crear(t *testing.T) *dto.SolicitudCreadaResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), acme(), solicitud.OrigenPublico)
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_PendienteConTokensDistintos(t *testing.T) {
	f := newFixture(t)
	a := f.crear(t)
	b := f.crear(t)

	assert.Equal(t, entity.EstadoPendiente, a.Estado)
	assert.Len(t, a.Token, 64)
	assert.Len(t, a.PortalToken, 64)
	assert.NotEqual(t, a.Token, a.PortalToken)
	assert.NotEqual(t, a.Token, b.Token)
	assert.NotEqual(t, a.PortalToken, b.PortalToken)
	assert.Nil(t, a.EmailVerificadoEn)
	assert.Nil(t, a.AprobadoEn)
	assert.Equal(t, 2, f.metrics.transitions[solicitud.TransicionCreada])
}

func TestCreate_PublicoEnviaVerificacion(t *testing.T) {
	f := newFixture(t)
	out := f.crear(t)

	require.Len(t, f.mailer.sent, 1)
	msg := f.mailer.sent[0]
	assert.Equal(t, "jane@acme.test", msg.To.Address)
	assert.Contains(t, msg.Text, "http://api.test/registro-empresa/confirmar?token="+out.Token)
	assert.Contains(t, msg.Text, "http://portal.test/portal/solicitudes/"+out.PortalToken)
}

func TestCreate_PublicoExigeContacto(t *testing.T) {
	f := newFixture(t)
	in := acme()
	in.ContactoEmail = ""

	_, err := f.uc.Create(context.Background(), in, solicitud.OrigenPublico)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.mailer.sent)
}

func TestCreate_NombreObligatorio(t *testing.T) {
	f := newFixture(t)
	in := acme()
	in.NombreEmpresa = "   "

	_, err := f.uc.Create(context.Background(), in, solicitud.OrigenInterno)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_InternoContactoPorDefecto(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Create(context.Background(), dto.CreateSolicitudRequest{NombreEmpresa: " Globex "}, solicitud.OrigenInterno)
	require.NoError(t, err)

	assert.Equal(t, "Globex", out.NombreEmpresa)
	assert.Equal(t, solicitud.ContactoPorDefecto, out.ContactoNombre)
	assert.Empty(t, out.ContactoEmail)
	assert.Empty(t, f.mailer.sent, "el alta interna no envía verificación")
}

func TestCreate_InternoEmailInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(context.Background(), dto.CreateSolicitudRequest{
		NombreEmpresa: "Globex", ContactoEmail: "no-es-correo",
	}, solicitud.OrigenInterno)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_FalloDeCorreoNoFallaLaPeticion(t *testing.T) {
	f := newFixture(t)
	f.mailer.err = errors.New("smtp caído")

	out, err := f.uc.Create(context.Background(), acme(), solicitud.OrigenPublico)
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
}

func TestCreate_ReintentaColisionDeToken(t *testing.T) {
	store := memory.NewStore()
	// Primera solicitud ocupa "a"/"b"; la segunda recibe "a"/"b" otra vez y luego "c"/"d".
	seq := []string{"a", "b", "a", "b", "c", "d"}
	i := 0
	uc := solicitud.NewUseCase(solicitud.Deps{
		Solicitudes: store.Solicitudes(),
		Mensajes:    store.Mensajes(),
		TxRunner:    store,
		Logger:      zerolog.Nop(),
		NewToken: func() (string, error) {
			tok := seq[i]
			i++
			return tok, nil
		},
	})

	first, err := uc.Create(context.Background(), acme(), solicitud.OrigenInterno)
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), acme(), solicitud.OrigenInterno)
	require.NoError(t, err)

	assert.Equal(t, "a", first.Token)
	assert.Equal(t, "c", second.Token)
	assert.Equal(t, "d", second.PortalToken)
}

func TestCreate_ColisionPersistenteDevuelveDuplicate(t *testing.T) {
	store := memory.NewStore()
	uc := solicitud.NewUseCase(solicitud.Deps{
		Solicitudes: store.Solicitudes(),
		Mensajes:    store.Mensajes(),
		TxRunner:    store,
		Logger:      zerolog.Nop(),
		NewToken:    func() (string, error) { return "siempre-igual", nil },
	})

	_, err := uc.Create(context.Background(), acme(), solicitud.OrigenInterno)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Verify
// ──────────────────────────────────────────────────────────────────────────────

func TestVerify_PendienteAVerificadoEIdempotente(t *testing.T) {
	f := newFixture(t)
	out := f.crear(t)
	f.tick()
	verificadoEn := *f.clock

	res, err := f.uc.Verify(context.Background(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoEmailVerificado, res.Estado)

	f.tick()
	res, err = f.uc.Verify(context.Background(), out.Token)
	require.NoError(t, err, "re-presentar el token no es un error")
	assert.Equal(t, entity.EstadoEmailVerificado, res.Estado)

	got, err := f.uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, got.EmailVerificadoEn)
	assert.True(t, got.EmailVerificadoEn.Equal(verificadoEn), "la segunda verificación no cambia la fecha")
	assert.True(t, got.UpdatedAt.Equal(verificadoEn))
	assert.Equal(t, 1, f.metrics.transitions[solicitud.TransicionVerificada])
}

func TestVerify_TokenVacioYDesconocido(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Verify(context.Background(), "desconocido")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerify_PortalTokenNoVerifica(t *testing.T) {
	f := newFixture(t)
	out := f.crear(t)

	_, err := f.uc.Verify(context.Background(), out.PortalToken)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerify_RechazadaNoSeResucita(t *testing.T) {
	f := newFixture(t)
	out := f.crear(t)
	_, err := f.uc.Reject(context.Background(), out.ID, "No encaja")
	require.NoError(t, err)

	res, err := f.uc.Verify(context.Background(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoRechazada, res.Estado)
}

// staleReadRepo aprueba la solicitud justo después de que alguien la lea por token
// fuera de transacción, para dejar en manos del lector una copia desactualizada.
type staleReadRepo struct {
	repository.EmpresaSolicitudRepository
	onRead func()
}

func (r staleReadRepo) GetByToken(ctx context.Context, tok string) (*entity.EmpresaSolicitud, error) {
	s, err := r.EmpresaSolicitudRepository.GetByToken(ctx, tok)
	if r.onRead != nil {
		r.onRead()
	}
	return s, err
}

// beforeTx ejecuta hook antes de abrir cada transacción.
type beforeTx struct {
	inner solicitud.TxRunner
	hook  func()
}

func (b beforeTx) Run(ctx context.Context, fn func(
	repository.EmpresaSolicitudRepository,
	repository.EmpresaRepository,
	repository.ContactoEmpresaRepository,
) error) error {
	if b.hook != nil {
		b.hook()
	}
	return b.inner.Run(ctx, fn)
}

func TestVerify_NoPisaUnaAprobacionConcurrente(t *testing.T) {
	store := memory.NewStore()
	approver := solicitud.NewUseCase(solicitud.Deps{
		Solicitudes: store.Solicitudes(),
		Mensajes:    store.Mensajes(),
		TxRunner:    store,
		Logger:      zerolog.Nop(),
	})
	out, err := approver.Create(context.Background(), acme(), solicitud.OrigenInterno)
	require.NoError(t, err)

	aprobar := func() {
		_, err := approver.Approve(context.Background(), out.ID)
		require.NoError(t, err)
	}
	once := func(f func()) func() {
		var o sync.Once
		return func() { o.Do(f) }
	}
	hook := once(aprobar)
	verifier := solicitud.NewUseCase(solicitud.Deps{
		Solicitudes: staleReadRepo{EmpresaSolicitudRepository: store.Solicitudes(), onRead: hook},
		Mensajes:    store.Mensajes(),
		TxRunner:    beforeTx{inner: store, hook: hook},
		Logger:      zerolog.Nop(),
	})

	res, err := verifier.Verify(context.Background(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoAprobada, res.Estado)

	got, err := approver.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoAprobada, got.Estado)
	assert.NotNil(t, got.AprobadoEn)
	assert.NotNil(t, got.EmpresaID)
	assert.Nil(t, got.EmailVerificadoEn)

	_, err = approver.Approve(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, total, err := store.Empresas().List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestVerify_ConcurrenteConAprobar(t *testing.T) {
	for i := 0; i < 20; i++ {
		f := newFixture(t)
		out := f.crear(t)

		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, _ = f.uc.Verify(context.Background(), out.Token)
		}()
		go func() {
			defer wg.Done()
			_, _ = f.uc.Approve(context.Background(), out.ID)
		}()
		go func() {
			defer wg.Done()
			_, _ = f.uc.Verify(context.Background(), out.Token)
		}()
		wg.Wait()

		got, err := f.uc.GetByID(context.Background(), out.ID)
		require.NoError(t, err)
		require.Equal(t, entity.EstadoAprobada, got.Estado, "una verificación nunca deshace la aprobación")
		require.NotNil(t, got.EmpresaID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Approve
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_CreaEmpresaYContactoUnaSolaVez(t *testing.T) {
	f := newFixture(t)
	out := f.crear(t)
	_, err := f.uc.Verify(context.Background(), out.Token)
	require.NoError(t, err)
	f.tick()

	res, err := f.uc.Approve(context.Background(), out.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoAprobada, res.Solicitud.Estado)
	require.NotNil(t, res.Solicitud.AprobadoEn)
	assert.True(t, res.Solicitud.AprobadoEn.Equal(*f.clock))
	require.NotNil(t, res.Solicitud.EmpresaID)
	assert.Equal(t, res.Empresa.ID, *res.Solicitud.EmpresaID)
	assert.Nil(t, res.Solicitud.RejectionReason)

	assert.Equal(t, "Acme", res.Empresa.Nombre)
	assert.Equal(t, "Industria", res.Empresa.Sector)
	assert.Equal(t, "jane@acme.test", res.Empresa.Email)
	assert.Equal(t, entity.ColaboracionPendiente, res.Empresa.EstadoColaboracion)
	assert.True(t, strings.HasPrefix(res.Empresa.Observaciones, "Alta generada desde la solicitud de registro "+out.ID))
	assert.Contains(t, res.Empresa.Observaciones, "Fabricamos de todo.")

	assert.Equal(t, res.Empresa.ID, res.Contacto.EmpresaID)
	assert.Equal(t, "Jane", res.Contacto.Nombre)
	assert.True(t, res.Contacto.EsPrincipal)
	assert.False(t, res.Contacto.EsTutor)
	assert.Equal(t, "Contacto de registro", res.Contacto.Cargo)

	_, err = f.uc.Approve(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	empresas, total, err := f.store.Empresas().List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	contactos, err := f.store.Contactos().ListByEmpresa(context.Background(), empresas[0].ID)
	require.NoError(t, err)
	assert.Len(t, contactos, 1)

	assert.Contains(t, f.mailer.subjects(), "Solicitud de registro aprobada")
	assert.Equal(t, 1, f.metrics.transitions[solicitud.TransicionAprobada])
}

func TestApprove_DesdePendienteYDesdeRechazada(t *testing.T) {
	f := newFixture(t)

	pendiente := f.crear(t)
	_, err := f.uc.Approve(context.Background(), pendiente.ID)
	require.NoError(t, err, "no hace falta verificar el correo para aprobar")

	rechazada := f.crear(t)
	_, err = f.uc.Reject(context.Background(), rechazada.ID, "Faltan datos")
	require.NoError(t, err)
	res, err := f.uc.Approve(context.Background(), rechazada.ID)
	require.NoError(t, err)
	assert.Nil(t, res.Solicitud.RejectionReason, "aprobar limpia el motivo de rechazo")
}

func TestApprove_NoExiste(t *testing.T) {
	f := newFixture(t)
	for _, id := range []string{"no-existe", uuid.NewString(), ""} {
		_, err := f.uc.Approve(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrNotFound, id)
	}
}

func TestIDMalFormadoEsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.GetByID(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.Reject(ctx, "abc", "motivo")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.ListMensajes(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.PostMensaje(ctx, "abc", dto.CreateMensajeRequest{Autor: entity.AutorCentro, Contenido: "hola"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// failingTx ejecuta la transacción real pero hace fallar la creación del contacto.
type failingTx struct {
	inner solicitud.TxRunner
}

type failingContactos struct{}

func (failingContactos) Create(context.Context, *entity.ContactoEmpresa) error {
	return errors.New("disco lleno")
}

func (failingContactos) ListByEmpresa(context.Context, string) ([]*entity.ContactoEmpresa, error) {
	return nil, nil
}

func (f failingTx) Run(ctx context.Context, fn func(
	repository.EmpresaSolicitudRepository,
	repository.EmpresaRepository,
	repository.ContactoEmpresaRepository,
) error) error {
	return f.inner.Run(ctx, func(s repository.EmpresaSolicitudRepository, e repository.EmpresaRepository, _ repository.ContactoEmpresaRepository) error {
		return fn(s, e, failingContactos{})
	})
}

func TestApprove_FalloRevierteTodo(t *testing.T) {
	store := memory.NewStore()
	uc := solicitud.NewUseCase(solicitud.Deps{
		Solicitudes: store.Solicitudes(),
		Mensajes:    store.Mensajes(),
		TxRunner:    failingTx{inner: store},
		Logger:      zerolog.Nop(),
	})
	out, err := uc.Create(context.Background(), acme(), solicitud.OrigenInterno)
	require.NoError(t, err)

	_, err = uc.Approve(context.Background(), out.ID)
	require.Error(t, err)

	_, total, err := store.Empresas().List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total, "la empresa creada dentro de la transacción se descarta")

	got, err := uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPendiente, got.Estado)
}

func TestApprove_ConcurrenteSoloUnaGana(t *testing.T) {
	f := newFixture(t)
	out := f.crear(t)

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Approve(context.Background(), out.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok, conflicts := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrConflict):
			conflicts++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)

	_, total, err := f.store.Empresas().List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reject
// ──────────────────────────────────────────────────────────────────────────────

func TestReject_MotivoObligatorio(t *testing.T) {
	f := newFixture(t)
	out := f.crear(t)

	_, err := f.uc.Reject(context.Background(), out.ID, " \n\t ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := f.uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPendiente, got.Estado)
}

func TestReject_GuardaMotivoYNoCreaEmpresa(t *testing.T) {
	f := newFixture(t)
	out := f.crear(t)

	res, err := f.uc.Reject(context.Background(), out.ID, "  Sector fuera de ámbito  ")
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoRechazada, res.Estado)
	require.NotNil(t, res.RejectionReason)
	assert.Equal(t, "Sector fuera de ámbito", *res.RejectionReason)
	assert.Nil(t, res.EmpresaID)

	_, total, err := f.store.Empresas().List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Contains(t, f.mailer.subjects(), "Solicitud de registro rechazada")

	res, err = f.uc.Reject(context.Background(), out.ID, "Otro motivo")
	require.NoError(t, err, "volver a rechazar sobrescribe el motivo")
	assert.Equal(t, "Otro motivo", *res.RejectionReason)
}

func TestReject_AprobadaEsConflicto(t *testing.T) {
	f := newFixture(t)
	out := f.crear(t)
	_, err := f.uc.Approve(context.Background(), out.ID)
	require.NoError(t, err)

	_, err = f.uc.Reject(context.Background(), out.ID, "demasiado tarde")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReject_NoExiste(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Reject(context.Background(), "no-existe", "motivo")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / Get / Portal
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltraPaginaYOrdena(t *testing.T) {
	f := newFixture(t)
	var ids []string
	for i := 0; i < 5; i++ {
		out, err := f.uc.Create(context.Background(), dto.CreateSolicitudRequest{NombreEmpresa: fmt.Sprintf("E%d", i)}, solicitud.OrigenInterno)
		require.NoError(t, err)
		ids = append(ids, out.ID)
		f.tick()
	}
	_, err := f.uc.Reject(context.Background(), ids[1], "no")
	require.NoError(t, err)

	all, err := f.uc.List(context.Background(), "", dto.PageRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, all.Page.Total)
	require.Len(t, all.Items, 2)
	assert.Equal(t, "E4", all.Items[0].NombreEmpresa, "más recientes primero")
	assert.Equal(t, "E3", all.Items[1].NombreEmpresa)

	last, err := f.uc.List(context.Background(), "", dto.PageRequest{Page: 3, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, last.Items, 1)
	assert.Equal(t, "E0", last.Items[0].NombreEmpresa)

	rech, err := f.uc.List(context.Background(), entity.EstadoRechazada, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, rech.Page.Total)
	assert.Equal(t, dto.DefaultPerPage, rech.Page.PerPage)
	assert.Equal(t, 1, rech.Page.Page)

	_, err = f.uc.List(context.Background(), "archivada", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_PerPageSeRecorta(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.List(context.Background(), "", dto.PageRequest{Page: -3, PerPage: 5000})
	require.NoError(t, err)
	assert.Equal(t, dto.MaxPerPage, out.Page.PerPage)
	assert.Equal(t, 1, out.Page.Page)
	assert.Empty(t, out.Items)
}

func TestList_PaginaEnormeDevuelveVacio(t *testing.T) {
	f := newFixture(t)
	f.crear(t)

	out, err := f.uc.List(context.Background(), "", dto.PageRequest{Page: 1 << 62, PerPage: 100})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, 1, out.Page.Total)
	assert.Equal(t, dto.MaxPage, out.Page.Page)
}

func TestGetPortal_VistaDeLaEmpresa(t *testing.T) {
	f := newFixture(t)
	out := f.crear(t)

	p, err := f.uc.GetPortal(context.Background(), out.PortalToken)
	require.NoError(t, err)
	assert.Equal(t, "Acme", p.NombreEmpresa)
	assert.Equal(t, entity.EstadoPendiente, p.Estado)

	_, err = f.uc.GetPortal(context.Background(), out.Token)
	assert.ErrorIs(t, err, domain.ErrNotFound, "el token de verificación no abre el portal")

	_, err = f.uc.GetPortal(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
