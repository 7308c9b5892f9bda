package solicitud

import (
	"context"
	"fmt"

	"github.com/jhoicas/practicas-api/internal/domain"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
	"github.com/jhoicas/practicas-api/pkg/slug"
)

// PDFUseCase genera la ficha PDF de una solicitud para el personal del centro.
type PDFUseCase struct {
	solicitudes repository.EmpresaSolicitudRepository
	mensajes    repository.EmpresaMensajeRepository
	links       Links
	generator   FichaPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	solicitudes repository.EmpresaSolicitudRepository,
	mensajes repository.EmpresaMensajeRepository,
	links Links,
	generator FichaPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		solicitudes: solicitudes,
		mensajes:    mensajes,
		links:       links,
		generator:   generator,
	}
}

// DownloadFichaPDF devuelve los bytes del PDF y un nombre de archivo legible.
//
// Retorna domain.ErrNotFound si la solicitud no existe.
func (uc *PDFUseCase) DownloadFichaPDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	if !entity.IDValido(id) {
		return nil, "", domain.ErrNotFound
	}
	s, err := uc.solicitudes.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener solicitud: %w", err)
	}
	if s == nil {
		return nil, "", domain.ErrNotFound
	}
	mensajes, err := uc.mensajes.ListBySolicitud(ctx, s.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener mensajes: %w", err)
	}

	portalURL := ""
	if uc.links != nil {
		portalURL = uc.links.SolicitudURL(s.PortalToken)
	}
	pdfBytes, err = uc.generator.GenerateFichaPDF(ctx, s, portalURL, mensajes)
	if err != nil {
		return nil, "", err
	}

	name := slug.Make(s.NombreEmpresa)
	if name == "" {
		name = s.ID
	}
	return pdfBytes, fmt.Sprintf("solicitud-%s.pdf", name), nil
}
