package solicitud

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jhoicas/practicas-api/internal/application/dto"
	"github.com/jhoicas/practicas-api/internal/domain"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
)

// ListMensajes hilo completo de una solicitud (vista del personal).
func (uc *UseCase) ListMensajes(ctx context.Context, solicitudID string) ([]dto.MensajeResponse, error) {
	s, err := uc.mustGet(ctx, solicitudID)
	if err != nil {
		return nil, err
	}
	return uc.listMensajes(ctx, s.ID)
}

// PostMensaje añade un mensaje desde la API interna; el autor debe ser empresa o centro.
func (uc *UseCase) PostMensaje(ctx context.Context, solicitudID string, in dto.CreateMensajeRequest) (*dto.MensajeResponse, error) {
	autor := strings.TrimSpace(in.Autor)
	if autor != entity.AutorEmpresa && autor != entity.AutorCentro {
		return nil, fmt.Errorf("%w: autor debe ser %q o %q", domain.ErrInvalidInput, entity.AutorEmpresa, entity.AutorCentro)
	}
	s, err := uc.mustGet(ctx, solicitudID)
	if err != nil {
		return nil, err
	}
	m, err := uc.appendMensaje(ctx, s, autor, in.Contenido)
	if err != nil {
		return nil, err
	}
	if autor == entity.AutorCentro {
		uc.notify(ctx, s, emailNuevoMensaje(s, m, uc.links))
	}
	return toMensajeResponse(m), nil
}

// ListMensajesPortal hilo completo visto desde el portal de la empresa.
func (uc *UseCase) ListMensajesPortal(ctx context.Context, portalToken string) ([]dto.MensajeResponse, error) {
	s, err := uc.mustGetPortal(ctx, portalToken)
	if err != nil {
		return nil, err
	}
	return uc.listMensajes(ctx, s.ID)
}

// PostMensajePortal añade un mensaje desde el portal. Siempre queda con autor empresa,
// diga lo que diga la petición.
func (uc *UseCase) PostMensajePortal(ctx context.Context, portalToken string, in dto.CreateMensajeRequest) (*dto.MensajeResponse, error) {
	s, err := uc.mustGetPortal(ctx, portalToken)
	if err != nil {
		return nil, err
	}
	m, err := uc.appendMensaje(ctx, s, entity.AutorEmpresa, in.Contenido)
	if err != nil {
		return nil, err
	}
	return toMensajeResponse(m), nil
}

func (uc *UseCase) appendMensaje(ctx context.Context, s *entity.EmpresaSolicitud, autor, contenido string) (*entity.EmpresaMensaje, error) {
	contenido = strings.TrimSpace(contenido)
	if contenido == "" {
		return nil, fmt.Errorf("%w: el contenido del mensaje es obligatorio", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(contenido) > entity.MaxMensajeLen {
		return nil, fmt.Errorf("%w: el mensaje supera %d caracteres", domain.ErrInvalidInput, entity.MaxMensajeLen)
	}
	m := &entity.EmpresaMensaje{
		ID:          uuid.New().String(),
		SolicitudID: s.ID,
		Autor:       autor,
		Contenido:   contenido,
		CreatedAt:   uc.now(),
	}
	if err := uc.mensajes.Create(ctx, m); err != nil {
		return nil, err
	}
	uc.metrics.MensajePublicado(autor)
	return m, nil
}

func (uc *UseCase) listMensajes(ctx context.Context, solicitudID string) ([]dto.MensajeResponse, error) {
	list, err := uc.mensajes.ListBySolicitud(ctx, solicitudID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MensajeResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMensajeResponse(m))
	}
	return out, nil
}

func toMensajeResponse(m *entity.EmpresaMensaje) *dto.MensajeResponse {
	return &dto.MensajeResponse{
		ID:        m.ID,
		Autor:     m.Autor,
		Contenido: m.Contenido,
		CreatedAt: m.CreatedAt,
	}
}
