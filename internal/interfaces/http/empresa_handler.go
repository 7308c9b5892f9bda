package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/practicas-api/internal/application/dto"
	"github.com/jhoicas/practicas-api/internal/application/usecase"
)

// EmpresaHandler maneja las peticiones HTTP para las empresas colaboradoras.
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

// NewEmpresaHandler construye el handler inyectando el caso de uso.
func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// List godoc
// @Summary      Listar empresas colaboradoras
// @Tags         empresas
// @Produce      json
// @Security     BasicAuth
// @Param        page     query  int  false  "Página"      default(1)
// @Param        perPage  query  int  false  "Por página"  default(20)
// @Success      200      {object}  dto.EmpresaListResponse
// @Router       /api/empresas [get]
func (h *EmpresaHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("perPage", dto.DefaultPerPage),
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         empresas
// @Produce      json
// @Security     BasicAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.EmpresaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [get]
func (h *EmpresaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListContactos godoc
// @Summary      Contactos de una empresa
// @Tags         empresas
// @Produce      json
// @Security     BasicAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {array}   dto.ContactoEmpresaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id}/contactos [get]
func (h *EmpresaHandler) ListContactos(c *fiber.Ctx) error {
	out, err := h.uc.ListContactos(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
