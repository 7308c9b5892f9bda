package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/practicas-api/internal/application/auth"
	"github.com/jhoicas/practicas-api/internal/application/solicitud"
	"github.com/jhoicas/practicas-api/internal/application/usecase"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SolicitudUC *solicitud.UseCase
	PDFUC       *solicitud.PDFUseCase
	EmpresaUC   *usecase.EmpresaUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Registro público y portal de la empresa (sin login)
	registro := NewRegistroHandler(deps.SolicitudUC)
	app.Post("/registro-empresa", registro.Registrar)
	app.Get("/registro-empresa/confirmar", registro.Confirmar)

	portal := app.Group("/portal/solicitudes")
	portalHandler := NewPortalHandler(deps.SolicitudUC)
	portal.Get("/:portalToken", portalHandler.Get)
	portal.Get("/:portalToken/mensajes", portalHandler.ListMensajes)
	portal.Post("/:portalToken/mensajes", portalHandler.PostMensaje)

	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas del personal (Basic o Bearer)
	staff := StaffAuth(deps.AuthUC, deps.JWTSecret)
	api.Get("/auth/me", staff, authHandler.Me)

	solicitudes := api.Group("/empresa-solicitudes", staff)
	solicitudHandler := NewSolicitudHandler(deps.SolicitudUC, deps.PDFUC)
	solicitudes.Post("/", solicitudHandler.Create)
	solicitudes.Get("/", solicitudHandler.List)
	solicitudes.Get("/:id", solicitudHandler.GetByID)
	solicitudes.Get("/:id/pdf", solicitudHandler.DownloadPDF)
	solicitudes.Get("/:id/mensajes", solicitudHandler.ListMensajes)
	solicitudes.Post("/:id/mensajes", solicitudHandler.PostMensaje)

	decide := RequireRole(entity.RoleAdmin, entity.RoleCoordinador)
	solicitudes.Post("/:id/aprobar", decide, solicitudHandler.Aprobar)
	solicitudes.Post("/:id/rechazar", decide, solicitudHandler.Rechazar)

	empresas := api.Group("/empresas", staff)
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Get("/", empresaHandler.List)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Get("/:id/contactos", empresaHandler.ListContactos)
}
