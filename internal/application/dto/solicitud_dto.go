package dto

import "time"

// CreateSolicitudRequest alta de una solicitud de registro de empresa.
// En el registro público contactoNombre y contactoEmail son obligatorios; desde la API interna no.
type CreateSolicitudRequest struct {
	NombreEmpresa    string `json:"nombreEmpresa" validate:"required,max=200"`
	Sector           string `json:"sector" validate:"omitempty,max=120"`
	Ciudad           string `json:"ciudad" validate:"omitempty,max=120"`
	Web              string `json:"web" validate:"omitempty,max=255"`
	Descripcion      string `json:"descripcion" validate:"omitempty,max=5000"`
	ContactoNombre   string `json:"contactoNombre" validate:"omitempty,max=200"`
	ContactoEmail    string `json:"contactoEmail" validate:"omitempty,email,max=255"`
	ContactoTelefono string `json:"contactoTelefono" validate:"omitempty,max=40"`
}

// PublicRegistroRequest cuerpo de POST /registro-empresa.
type PublicRegistroRequest struct {
	NombreEmpresa    string `json:"nombreEmpresa" validate:"required,max=200"`
	Sector           string `json:"sector" validate:"omitempty,max=120"`
	Ciudad           string `json:"ciudad" validate:"omitempty,max=120"`
	Web              string `json:"web" validate:"omitempty,max=255"`
	Descripcion      string `json:"descripcion" validate:"omitempty,max=5000"`
	ContactoNombre   string `json:"contactoNombre" validate:"required,max=200"`
	ContactoEmail    string `json:"contactoEmail" validate:"required,email,max=255"`
	ContactoTelefono string `json:"contactoTelefono" validate:"omitempty,max=40"`
}

// ToCreate convierte el registro público en la entrada común del caso de uso.
func (r PublicRegistroRequest) ToCreate() CreateSolicitudRequest {
	return CreateSolicitudRequest(r)
}

// RechazarSolicitudRequest cuerpo de POST /api/empresa-solicitudes/{id}/rechazar.
type RechazarSolicitudRequest struct {
	Motivo string `json:"motivo"`
}

// SolicitudResponse vista del personal del centro (sin el token de verificación).
type SolicitudResponse struct {
	ID                string     `json:"id"`
	NombreEmpresa     string     `json:"nombreEmpresa"`
	Sector            string     `json:"sector"`
	Ciudad            string     `json:"ciudad"`
	Web               string     `json:"web"`
	Descripcion       string     `json:"descripcion"`
	ContactoNombre    string     `json:"contactoNombre"`
	ContactoEmail     string     `json:"contactoEmail"`
	ContactoTelefono  string     `json:"contactoTelefono"`
	Estado            string     `json:"estado"`
	EmpresaID         *string    `json:"empresaId,omitempty"`
	EmailVerificadoEn *time.Time `json:"emailVerificadoEn,omitempty"`
	AprobadoEn        *time.Time `json:"aprobadoEn,omitempty"`
	RejectionReason   *string    `json:"rejectionReason,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// SolicitudCreadaResponse respuesta del alta interna: incluye ambos tokens.
type SolicitudCreadaResponse struct {
	SolicitudResponse
	Token       string `json:"token"`
	PortalToken string `json:"portalToken"`
}

// SolicitudListResponse lista paginada de solicitudes.
type SolicitudListResponse struct {
	Items []SolicitudResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// PortalSolicitudResponse vista de la propia empresa en el portal.
type PortalSolicitudResponse struct {
	NombreEmpresa     string     `json:"nombreEmpresa"`
	ContactoNombre    string     `json:"contactoNombre"`
	ContactoEmail     string     `json:"contactoEmail"`
	Estado            string     `json:"estado"`
	EmailVerificadoEn *time.Time `json:"emailVerificadoEn,omitempty"`
	AprobadoEn        *time.Time `json:"aprobadoEn,omitempty"`
	RejectionReason   *string    `json:"rejectionReason,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// VerificacionResponse resultado de /registro-empresa/confirmar.
type VerificacionResponse struct {
	Message string `json:"message"`
	Estado  string `json:"estado"`
}

// AprobacionResponse resultado de aprobar: la solicitud y el agregado creado.
type AprobacionResponse struct {
	Solicitud SolicitudResponse       `json:"solicitud"`
	Empresa   EmpresaResponse         `json:"empresa"`
	Contacto  ContactoEmpresaResponse `json:"contacto"`
}
