package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/practicas-api/internal/application/dto"
	"github.com/jhoicas/practicas-api/internal/application/solicitud"
)

// RegistroHandler endpoints públicos del formulario de registro de empresas.
type RegistroHandler struct {
	uc *solicitud.UseCase
}

// NewRegistroHandler construye el handler inyectando el caso de uso.
func NewRegistroHandler(uc *solicitud.UseCase) *RegistroHandler {
	return &RegistroHandler{uc: uc}
}

// Registrar godoc
// @Summary      Enviar solicitud de registro de empresa
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PublicRegistroRequest  true  "Datos de la empresa y del contacto"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /registro-empresa [post]
func (h *RegistroHandler) Registrar(c *fiber.Ctx) error {
	var in dto.PublicRegistroRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if _, err := h.uc.Create(c.UserContext(), in.ToCreate(), solicitud.OrigenPublico); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "Solicitud recibida. Revisa tu correo para confirmar la dirección.",
	})
}

// Confirmar godoc
// @Summary      Confirmar correo de la solicitud
// @Tags         registro
// @Produce      json
// @Param        token  query  string  true  "Token de verificación recibido por correo"
// @Success      200    {object}  dto.VerificacionResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /registro-empresa/confirmar [get]
func (h *RegistroHandler) Confirmar(c *fiber.Ctx) error {
	tok := c.Query("token")
	if tok == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token es requerido"})
	}
	out, err := h.uc.Verify(c.UserContext(), tok)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
