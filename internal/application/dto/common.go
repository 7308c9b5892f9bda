package dto

import "math"

// Límites de paginación de los listados. MaxPage acota el offset a un int32 positivo.
const (
	DefaultPerPage = 20
	MaxPerPage     = 100
	MaxPage        = math.MaxInt32 / MaxPerPage
)

// PageRequest paginación por página para listados.
type PageRequest struct {
	Page    int `query:"page"`
	PerPage int `query:"perPage"`
}

// Normalize aplica valores por defecto y recorta Page y PerPage a sus máximos.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
}

// Offset desplazamiento equivalente a la página (requiere Normalize).
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
	Total   int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// MessageResponse respuesta simple con un mensaje para el usuario.
type MessageResponse struct {
	Message string `json:"message"`
}
