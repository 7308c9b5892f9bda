package solicitud

import (
	"context"

	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
// Si fn devuelve error no queda nada persistido (aprobación = solicitud + empresa + contacto).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		solicitudRepo repository.EmpresaSolicitudRepository,
		empresaRepo repository.EmpresaRepository,
		contactoRepo repository.ContactoEmpresaRepository,
	) error) error
}

// Links construye las URLs públicas que reciben las empresas por correo.
type Links interface {
	ConfirmURL(token string) string
	SolicitudURL(portalToken string) string
}

// Metrics registra los eventos de negocio del flujo de registro.
type Metrics interface {
	SolicitudTransicion(transicion string)
	MensajePublicado(autor string)
}

// FichaPDFGenerator genera la ficha PDF de una solicitud.
type FichaPDFGenerator interface {
	GenerateFichaPDF(ctx context.Context, s *entity.EmpresaSolicitud, portalURL string, mensajes []*entity.EmpresaMensaje) ([]byte, error)
}

// Nombres de transición que se reportan a Metrics.
const (
	TransicionCreada     = "creada"
	TransicionVerificada = "verificada"
	TransicionAprobada   = "aprobada"
	TransicionRechazada  = "rechazada"
)

type nopMetrics struct{}

func (nopMetrics) SolicitudTransicion(string) {}
func (nopMetrics) MensajePublicado(string)    {}
