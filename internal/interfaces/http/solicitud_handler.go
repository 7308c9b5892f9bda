package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/practicas-api/internal/application/dto"
	"github.com/jhoicas/practicas-api/internal/application/solicitud"
)

// SolicitudHandler API interna del personal sobre las solicitudes de registro.
type SolicitudHandler struct {
	uc    *solicitud.UseCase
	pdfUC *solicitud.PDFUseCase
}

// NewSolicitudHandler construye el handler inyectando los casos de uso.
func NewSolicitudHandler(uc *solicitud.UseCase, pdfUC *solicitud.PDFUseCase) *SolicitudHandler {
	return &SolicitudHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Alta interna de una solicitud
// @Description  Contacto opcional. La respuesta incluye token y portalToken.
// @Tags         empresa-solicitudes
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body  dto.CreateSolicitudRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.SolicitudCreadaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/empresa-solicitudes [post]
func (h *SolicitudHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSolicitudRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in, solicitud.OrigenInterno)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar solicitudes
// @Tags         empresa-solicitudes
// @Produce      json
// @Security     BasicAuth
// @Param        estado   query  string  false  "pendiente | email_verificado | aprobada | rechazada"
// @Param        page     query  int     false  "Página"       default(1)
// @Param        perPage  query  int     false  "Por página"   default(20)
// @Success      200      {object}  dto.SolicitudListResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/empresa-solicitudes [get]
func (h *SolicitudHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("perPage", dto.DefaultPerPage),
	}
	out, err := h.uc.List(c.UserContext(), c.Query("estado"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una solicitud
// @Tags         empresa-solicitudes
// @Produce      json
// @Security     BasicAuth
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.SolicitudResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresa-solicitudes/{id} [get]
func (h *SolicitudHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Aprobar godoc
// @Summary      Aprobar solicitud
// @Description  Crea la empresa colaboradora y su contacto principal en la misma transacción.
// @Tags         empresa-solicitudes
// @Produce      json
// @Security     BasicAuth
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      201  {object}  dto.AprobacionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/empresa-solicitudes/{id}/aprobar [post]
func (h *SolicitudHandler) Aprobar(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Rechazar godoc
// @Summary      Rechazar solicitud
// @Tags         empresa-solicitudes
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        id    path  string                        true  "ID de la solicitud"
// @Param        body  body  dto.RechazarSolicitudRequest  true  "Motivo del rechazo"
// @Success      200   {object}  dto.SolicitudResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empresa-solicitudes/{id}/rechazar [post]
func (h *SolicitudHandler) Rechazar(c *fiber.Ctx) error {
	var in dto.RechazarSolicitudRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Reject(c.UserContext(), c.Params("id"), in.Motivo)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListMensajes godoc
// @Summary      Hilo de mensajes de una solicitud
// @Tags         empresa-solicitudes
// @Produce      json
// @Security     BasicAuth
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {array}   dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresa-solicitudes/{id}/mensajes [get]
func (h *SolicitudHandler) ListMensajes(c *fiber.Ctx) error {
	out, err := h.uc.ListMensajes(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PostMensaje godoc
// @Summary      Publicar mensaje (personal)
// @Tags         empresa-solicitudes
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        id    path  string                    true  "ID de la solicitud"
// @Param        body  body  dto.CreateMensajeRequest  true  "autor (empresa | centro) y contenido"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/empresa-solicitudes/{id}/mensajes [post]
func (h *SolicitudHandler) PostMensaje(c *fiber.Ctx) error {
	var in dto.CreateMensajeRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.PostMensaje(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DownloadPDF godoc
// @Summary      Ficha PDF de la solicitud
// @Tags         empresa-solicitudes
// @Produce      application/pdf
// @Security     BasicAuth
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresa-solicitudes/{id}/pdf [get]
func (h *SolicitudHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadFichaPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
