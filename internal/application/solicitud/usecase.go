package solicitud

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/practicas-api/internal/application/dto"
	"github.com/jhoicas/practicas-api/internal/application/ports"
	"github.com/jhoicas/practicas-api/internal/domain"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
	"github.com/jhoicas/practicas-api/pkg/token"
)

// Origen indica por qué vía llega el alta de una solicitud.
type Origen int

const (
	// OrigenPublico formulario público de registro: contacto obligatorio y correo de verificación.
	OrigenPublico Origen = iota
	// OrigenInterno alta hecha por el personal: contacto opcional, tokens en la respuesta.
	OrigenInterno
)

// ContactoPorDefecto nombre de contacto cuando el alta interna no lo indica.
const ContactoPorDefecto = "Sin especificar"

const maxTokenIntentos = 3

// Deps dependencias del caso de uso. Metrics, Now y NewToken son opcionales.
type Deps struct {
	Solicitudes repository.EmpresaSolicitudRepository
	Mensajes    repository.EmpresaMensajeRepository
	TxRunner    TxRunner
	Mailer      ports.Mailer
	Links       Links
	Metrics     Metrics
	Logger      zerolog.Logger
	Now         func() time.Time
	NewToken    token.Generator
}

// UseCase orquesta el ciclo de vida de las solicitudes de registro de empresas
// (alta, verificación de correo, aprobación, rechazo) y su hilo de mensajes.
type UseCase struct {
	solicitudes repository.EmpresaSolicitudRepository
	mensajes    repository.EmpresaMensajeRepository
	txRunner    TxRunner
	mailer      ports.Mailer
	links       Links
	metrics     Metrics
	log         zerolog.Logger
	now         func() time.Time
	newToken    token.Generator
}

// NewUseCase construye el caso de uso.
func NewUseCase(d Deps) *UseCase {
	uc := &UseCase{
		solicitudes: d.Solicitudes,
		mensajes:    d.Mensajes,
		txRunner:    d.TxRunner,
		mailer:      d.Mailer,
		links:       d.Links,
		metrics:     d.Metrics,
		log:         d.Logger,
		now:         d.Now,
		newToken:    d.NewToken,
	}
	if uc.metrics == nil {
		uc.metrics = nopMetrics{}
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.newToken == nil {
		uc.newToken = token.New
	}
	return uc
}

// Create registra una nueva solicitud en estado pendiente con sus dos tokens.
// Desde el registro público envía además el correo con el enlace de verificación.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateSolicitudRequest, origen Origen) (*dto.SolicitudCreadaResponse, error) {
	s, err := uc.buildSolicitud(in, origen)
	if err != nil {
		return nil, err
	}

	for intento := 1; ; intento++ {
		if s.Token, err = uc.newToken(); err != nil {
			return nil, fmt.Errorf("solicitud: generar token: %w", err)
		}
		if s.PortalToken, err = uc.newToken(); err != nil {
			return nil, fmt.Errorf("solicitud: generar portal token: %w", err)
		}
		if s.Token == s.PortalToken {
			err = domain.ErrDuplicate
		} else {
			err = uc.solicitudes.Create(ctx, s)
		}
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicate) || intento >= maxTokenIntentos {
			return nil, err
		}
		uc.log.Warn().Int("intento", intento).Msg("colisión de token al crear solicitud, se regenera")
	}

	uc.metrics.SolicitudTransicion(TransicionCreada)
	uc.log.Info().Str("solicitud_id", s.ID).Int("origen", int(origen)).Msg("solicitud de registro creada")

	if origen == OrigenPublico {
		uc.notify(ctx, s, emailVerificacion(s, uc.links))
	}

	return &dto.SolicitudCreadaResponse{
		SolicitudResponse: *toSolicitudResponse(s),
		Token:             s.Token,
		PortalToken:       s.PortalToken,
	}, nil
}

func (uc *UseCase) buildSolicitud(in dto.CreateSolicitudRequest, origen Origen) (*entity.EmpresaSolicitud, error) {
	nombre := strings.TrimSpace(in.NombreEmpresa)
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombreEmpresa es obligatorio", domain.ErrInvalidInput)
	}
	contactoNombre := strings.TrimSpace(in.ContactoNombre)
	contactoEmail := strings.TrimSpace(in.ContactoEmail)

	if origen == OrigenPublico {
		if contactoNombre == "" || contactoEmail == "" {
			return nil, fmt.Errorf("%w: contactoNombre y contactoEmail son obligatorios", domain.ErrInvalidInput)
		}
	} else if contactoNombre == "" {
		contactoNombre = ContactoPorDefecto
	}
	if contactoEmail != "" {
		if _, err := mail.ParseAddress(contactoEmail); err != nil {
			return nil, fmt.Errorf("%w: contactoEmail no es un correo válido", domain.ErrInvalidInput)
		}
	}

	now := uc.now()
	return &entity.EmpresaSolicitud{
		ID:               uuid.New().String(),
		NombreEmpresa:    nombre,
		Sector:           strings.TrimSpace(in.Sector),
		Ciudad:           strings.TrimSpace(in.Ciudad),
		Web:              strings.TrimSpace(in.Web),
		Descripcion:      strings.TrimSpace(in.Descripcion),
		ContactoNombre:   contactoNombre,
		ContactoEmail:    contactoEmail,
		ContactoTelefono: strings.TrimSpace(in.ContactoTelefono),
		Estado:           entity.EstadoPendiente,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Verify consume el token de verificación de correo. Es idempotente: si la solicitud ya no está
// pendiente responde con su estado actual sin modificarla. Lee y escribe bajo bloqueo de fila para
// no pisar una aprobación o un rechazo concurrentes.
func (uc *UseCase) Verify(ctx context.Context, tok string) (*dto.VerificacionResponse, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return nil, fmt.Errorf("%w: token es obligatorio", domain.ErrInvalidInput)
	}
	var (
		sol      *entity.EmpresaSolicitud
		cambiado bool
	)
	err := uc.txRunner.Run(ctx, func(
		solicitudRepo repository.EmpresaSolicitudRepository,
		_ repository.EmpresaRepository,
		_ repository.ContactoEmpresaRepository,
	) error {
		s, err := solicitudRepo.GetByTokenForUpdate(ctx, tok)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		sol = s
		if !s.MarcarEmailVerificado(uc.now()) {
			return nil
		}
		cambiado = true
		return solicitudRepo.Update(ctx, s)
	})
	if err != nil {
		return nil, err
	}
	if cambiado {
		uc.metrics.SolicitudTransicion(TransicionVerificada)
		uc.log.Info().Str("solicitud_id", sol.ID).Msg("correo de solicitud verificado")
	}

	return &dto.VerificacionResponse{Message: mensajeVerificacion(sol.Estado), Estado: sol.Estado}, nil
}

func mensajeVerificacion(estado string) string {
	switch estado {
	case entity.EstadoAprobada:
		return "La solicitud ya fue aprobada."
	case entity.EstadoRechazada:
		return "La solicitud fue rechazada; no requiere más verificación."
	default:
		return "Correo verificado. El centro revisará la solicitud."
	}
}

// Approve aprueba la solicitud y crea, en la misma transacción, la empresa colaboradora y su
// contacto de registro. Aprobar una solicitud ya aprobada devuelve domain.ErrConflict.
func (uc *UseCase) Approve(ctx context.Context, id string) (*dto.AprobacionResponse, error) {
	if !entity.IDValido(id) {
		return nil, domain.ErrNotFound
	}
	var (
		sol      *entity.EmpresaSolicitud
		empresa  *entity.EmpresaColaboradora
		contacto *entity.ContactoEmpresa
	)
	err := uc.txRunner.Run(ctx, func(
		solicitudRepo repository.EmpresaSolicitudRepository,
		empresaRepo repository.EmpresaRepository,
		contactoRepo repository.ContactoEmpresaRepository,
	) error {
		s, err := solicitudRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		if s.Estado == entity.EstadoAprobada {
			return fmt.Errorf("%w: la solicitud ya está aprobada", domain.ErrConflict)
		}

		now := uc.now()
		e := empresaDesdeSolicitud(s, now)
		if err := empresaRepo.Create(ctx, e); err != nil {
			return err
		}
		c := contactoDesdeSolicitud(s, e.ID, now)
		if err := contactoRepo.Create(ctx, c); err != nil {
			return err
		}
		if err := s.Aprobar(now, e.ID); err != nil {
			return err
		}
		if err := solicitudRepo.Update(ctx, s); err != nil {
			return err
		}
		sol, empresa, contacto = s, e, c
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.SolicitudTransicion(TransicionAprobada)
	uc.log.Info().Str("solicitud_id", sol.ID).Str("empresa_id", empresa.ID).Msg("solicitud aprobada")
	uc.notify(ctx, sol, emailAprobacion(sol, uc.links))

	return &dto.AprobacionResponse{
		Solicitud: *toSolicitudResponse(sol),
		Empresa:   *ToEmpresaResponse(empresa),
		Contacto:  *ToContactoResponse(contacto),
	}, nil
}

func empresaDesdeSolicitud(s *entity.EmpresaSolicitud, now time.Time) *entity.EmpresaColaboradora {
	obs := fmt.Sprintf("Alta generada desde la solicitud de registro %s.", s.ID)
	if s.Descripcion != "" {
		obs += "\nDescripción aportada por la empresa: " + s.Descripcion
	}
	return &entity.EmpresaColaboradora{
		ID:                 uuid.New().String(),
		Nombre:             s.NombreEmpresa,
		Sector:             s.Sector,
		Ciudad:             s.Ciudad,
		Email:              s.ContactoEmail,
		Telefono:           s.ContactoTelefono,
		Web:                s.Web,
		EstadoColaboracion: entity.ColaboracionPendiente,
		Observaciones:      obs,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func contactoDesdeSolicitud(s *entity.EmpresaSolicitud, empresaID string, now time.Time) *entity.ContactoEmpresa {
	return &entity.ContactoEmpresa{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		Nombre:      s.ContactoNombre,
		Email:       s.ContactoEmail,
		Telefono:    s.ContactoTelefono,
		Cargo:       "Contacto de registro",
		EsTutor:     false,
		EsPrincipal: true,
		CreatedAt:   now,
	}
}

// Reject rechaza la solicitud con un motivo obligatorio. No se puede rechazar una aprobada.
func (uc *UseCase) Reject(ctx context.Context, id, motivo string) (*dto.SolicitudResponse, error) {
	if strings.TrimSpace(motivo) == "" {
		return nil, fmt.Errorf("%w: el motivo de rechazo es obligatorio", domain.ErrInvalidInput)
	}
	if !entity.IDValido(id) {
		return nil, domain.ErrNotFound
	}
	var sol *entity.EmpresaSolicitud
	err := uc.txRunner.Run(ctx, func(
		solicitudRepo repository.EmpresaSolicitudRepository,
		_ repository.EmpresaRepository,
		_ repository.ContactoEmpresaRepository,
	) error {
		s, err := solicitudRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		if err := s.Rechazar(uc.now(), motivo); err != nil {
			return err
		}
		if err := solicitudRepo.Update(ctx, s); err != nil {
			return err
		}
		sol = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.SolicitudTransicion(TransicionRechazada)
	uc.log.Info().Str("solicitud_id", sol.ID).Msg("solicitud rechazada")
	uc.notify(ctx, sol, emailRechazo(sol, uc.links))

	return toSolicitudResponse(sol), nil
}

// List lista solicitudes paginadas, opcionalmente filtradas por estado.
func (uc *UseCase) List(ctx context.Context, estado string, page dto.PageRequest) (*dto.SolicitudListResponse, error) {
	estado = strings.TrimSpace(estado)
	if estado != "" && !entity.EstadoValido(estado) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, estado)
	}
	page.Normalize()
	list, total, err := uc.solicitudes.List(ctx, repository.SolicitudFilter{Estado: estado}, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.SolicitudResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSolicitudResponse(s))
	}
	return &dto.SolicitudListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PerPage: page.PerPage, Total: total},
	}, nil
}

// GetByID detalle de una solicitud para el personal.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.SolicitudResponse, error) {
	s, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSolicitudResponse(s), nil
}

// GetPortal estado de la solicitud visto por la empresa a través de su portal token.
func (uc *UseCase) GetPortal(ctx context.Context, portalToken string) (*dto.PortalSolicitudResponse, error) {
	s, err := uc.mustGetPortal(ctx, portalToken)
	if err != nil {
		return nil, err
	}
	return &dto.PortalSolicitudResponse{
		NombreEmpresa:     s.NombreEmpresa,
		ContactoNombre:    s.ContactoNombre,
		ContactoEmail:     s.ContactoEmail,
		Estado:            s.Estado,
		EmailVerificadoEn: s.EmailVerificadoEn,
		AprobadoEn:        s.AprobadoEn,
		RejectionReason:   s.RejectionReason,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}, nil
}

func (uc *UseCase) mustGet(ctx context.Context, id string) (*entity.EmpresaSolicitud, error) {
	if !entity.IDValido(id) {
		return nil, domain.ErrNotFound
	}
	s, err := uc.solicitudes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (uc *UseCase) mustGetPortal(ctx context.Context, portalToken string) (*entity.EmpresaSolicitud, error) {
	if strings.TrimSpace(portalToken) == "" {
		return nil, domain.ErrNotFound
	}
	s, err := uc.solicitudes.GetByPortalToken(ctx, portalToken)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// notify envía un correo a la empresa. Un fallo de envío solo se registra.
func (uc *UseCase) notify(ctx context.Context, s *entity.EmpresaSolicitud, msg *ports.Email) {
	if uc.mailer == nil || msg == nil {
		return
	}
	if err := uc.mailer.Send(ctx, *msg); err != nil {
		uc.log.Error().Err(err).Str("solicitud_id", s.ID).Str("asunto", msg.Subject).Msg("envío de correo a la empresa")
	}
}

func toSolicitudResponse(s *entity.EmpresaSolicitud) *dto.SolicitudResponse {
	return &dto.SolicitudResponse{
		ID:                s.ID,
		NombreEmpresa:     s.NombreEmpresa,
		Sector:            s.Sector,
		Ciudad:            s.Ciudad,
		Web:               s.Web,
		Descripcion:       s.Descripcion,
		ContactoNombre:    s.ContactoNombre,
		ContactoEmail:     s.ContactoEmail,
		ContactoTelefono:  s.ContactoTelefono,
		Estado:            s.Estado,
		EmpresaID:         s.EmpresaID,
		EmailVerificadoEn: s.EmailVerificadoEn,
		AprobadoEn:        s.AprobadoEn,
		RejectionReason:   s.RejectionReason,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// ToEmpresaResponse mapea una empresa colaboradora a su DTO.
func ToEmpresaResponse(e *entity.EmpresaColaboradora) *dto.EmpresaResponse {
	return &dto.EmpresaResponse{
		ID:                 e.ID,
		Nombre:             e.Nombre,
		Sector:             e.Sector,
		Ciudad:             e.Ciudad,
		Email:              e.Email,
		Telefono:           e.Telefono,
		Web:                e.Web,
		EstadoColaboracion: e.EstadoColaboracion,
		Observaciones:      e.Observaciones,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// ToContactoResponse mapea un contacto a su DTO.
func ToContactoResponse(c *entity.ContactoEmpresa) *dto.ContactoEmpresaResponse {
	return &dto.ContactoEmpresaResponse{
		ID:          c.ID,
		EmpresaID:   c.EmpresaID,
		Nombre:      c.Nombre,
		Email:       c.Email,
		Telefono:    c.Telefono,
		Cargo:       c.Cargo,
		EsTutor:     c.EsTutor,
		EsPrincipal: c.EsPrincipal,
		CreatedAt:   c.CreatedAt,
	}
}
