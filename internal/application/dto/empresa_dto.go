package dto

import "time"

// EmpresaResponse salida de una empresa colaboradora.
type EmpresaResponse struct {
	ID                 string    `json:"id"`
	Nombre             string    `json:"nombre"`
	Sector             string    `json:"sector"`
	Ciudad             string    `json:"ciudad"`
	Email              string    `json:"email"`
	Telefono           string    `json:"telefono"`
	Web                string    `json:"web"`
	EstadoColaboracion string    `json:"estadoColaboracion"`
	Observaciones      string    `json:"observaciones"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// EmpresaListResponse lista paginada de empresas.
type EmpresaListResponse struct {
	Items []EmpresaResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ContactoEmpresaResponse salida de un contacto.
type ContactoEmpresaResponse struct {
	ID          string    `json:"id"`
	EmpresaID   string    `json:"empresaId"`
	Nombre      string    `json:"nombre"`
	Email       string    `json:"email"`
	Telefono    string    `json:"telefono"`
	Cargo       string    `json:"cargo"`
	EsTutor     bool      `json:"esTutor"`
	EsPrincipal bool      `json:"esPrincipal"`
	CreatedAt   time.Time `json:"createdAt"`
}
