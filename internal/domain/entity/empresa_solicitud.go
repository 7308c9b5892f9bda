package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/practicas-api/internal/domain"
)

// Estados de una solicitud de registro de empresa.
const (
	EstadoPendiente       = "pendiente"
	EstadoEmailVerificado = "email_verificado"
	EstadoAprobada        = "aprobada"
	EstadoRechazada       = "rechazada"
)

// EstadoValido informa si s es uno de los estados conocidos.
func EstadoValido(s string) bool {
	switch s {
	case EstadoPendiente, EstadoEmailVerificado, EstadoAprobada, EstadoRechazada:
		return true
	}
	return false
}

// EmpresaSolicitud es la petición de alta que envía una empresa antes de ser colaboradora.
// Token solo viaja por correo; PortalToken da acceso de larga duración al portal de la empresa.
type EmpresaSolicitud struct {
	ID                string
	NombreEmpresa     string
	Sector            string
	Ciudad            string
	Web               string
	Descripcion       string
	ContactoNombre    string
	ContactoEmail     string
	ContactoTelefono  string
	Token             string
	PortalToken       string
	Estado            string
	EmpresaID         *string // empresa creada al aprobar
	EmailVerificadoEn *time.Time
	AprobadoEn        *time.Time
	RejectionReason   *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EsTerminal informa si la solicitud ya no admite transiciones de verificación.
func (s *EmpresaSolicitud) EsTerminal() bool {
	return s.Estado == EstadoAprobada || s.Estado == EstadoRechazada
}

// MarcarEmailVerificado pasa de pendiente a email_verificado. Devuelve false si no hubo cambio.
func (s *EmpresaSolicitud) MarcarEmailVerificado(now time.Time) bool {
	if s.Estado != EstadoPendiente {
		return false
	}
	s.Estado = EstadoEmailVerificado
	s.EmailVerificadoEn = &now
	s.UpdatedAt = now
	return true
}

// Aprobar marca la solicitud como aprobada y enlaza la empresa creada.
// Aprobar dos veces es un conflicto.
func (s *EmpresaSolicitud) Aprobar(now time.Time, empresaID string) error {
	if s.Estado == EstadoAprobada {
		return fmt.Errorf("%w: la solicitud ya está aprobada", domain.ErrConflict)
	}
	s.Estado = EstadoAprobada
	s.AprobadoEn = &now
	s.RejectionReason = nil
	s.EmpresaID = &empresaID
	s.UpdatedAt = now
	return nil
}

// Rechazar guarda el motivo y deja la solicitud en rechazada.
func (s *EmpresaSolicitud) Rechazar(now time.Time, motivo string) error {
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return fmt.Errorf("%w: el motivo de rechazo es obligatorio", domain.ErrInvalidInput)
	}
	if s.Estado == EstadoAprobada {
		return fmt.Errorf("%w: no se puede rechazar una solicitud aprobada", domain.ErrConflict)
	}
	s.Estado = EstadoRechazada
	s.RejectionReason = &motivo
	s.UpdatedAt = now
	return nil
}
