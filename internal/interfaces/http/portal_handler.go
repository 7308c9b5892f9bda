package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/practicas-api/internal/application/dto"
	"github.com/jhoicas/practicas-api/internal/application/solicitud"
)

// PortalHandler acceso de la empresa a su solicitud mediante el portal token (sin login).
type PortalHandler struct {
	uc *solicitud.UseCase
}

func NewPortalHandler(uc *solicitud.UseCase) *PortalHandler {
	return &PortalHandler{uc: uc}
}

// Get godoc
// @Summary      Estado de la solicitud (portal)
// @Tags         portal
// @Produce      json
// @Param        portalToken  path  string  true  "Portal token"
// @Success      200  {object}  dto.PortalSolicitudResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /portal/solicitudes/{portalToken} [get]
func (h *PortalHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetPortal(c.UserContext(), c.Params("portalToken"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListMensajes godoc
// @Summary      Hilo de mensajes (portal)
// @Tags         portal
// @Produce      json
// @Param        portalToken  path  string  true  "Portal token"
// @Success      200  {array}   dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /portal/solicitudes/{portalToken}/mensajes [get]
func (h *PortalHandler) ListMensajes(c *fiber.Ctx) error {
	out, err := h.uc.ListMensajesPortal(c.UserContext(), c.Params("portalToken"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PostMensaje godoc
// @Summary      Publicar mensaje (portal)
// @Description  El autor siempre queda como "empresa".
// @Tags         portal
// @Accept       json
// @Produce      json
// @Param        portalToken  path  string                    true  "Portal token"
// @Param        body         body  dto.CreateMensajeRequest  true  "contenido"
// @Success      201  {object}  dto.MensajeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /portal/solicitudes/{portalToken}/mensajes [post]
func (h *PortalHandler) PostMensaje(c *fiber.Ctx) error {
	var in dto.CreateMensajeRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.PostMensajePortal(c.UserContext(), c.Params("portalToken"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
