package entity

import "time"

// Estados de colaboración de una empresa.
const (
	ColaboracionPendiente = "pendiente"
	ColaboracionActiva    = "activa"
	ColaboracionInactiva  = "inactiva"
)

// EmpresaColaboradora es una empresa dada de alta en el centro (tras aprobar su solicitud).
type EmpresaColaboradora struct {
	ID                 string
	Nombre             string
	Sector             string
	Ciudad             string
	Email              string
	Telefono           string
	Web                string
	EstadoColaboracion string
	Observaciones      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ContactoEmpresa persona de contacto de una empresa colaboradora.
// Solo referencia a la empresa por ID; la empresa no mantiene la lista.
type ContactoEmpresa struct {
	ID          string
	EmpresaID   string
	Nombre      string
	Email       string
	Telefono    string
	Cargo       string
	EsTutor     bool
	EsPrincipal bool
	CreatedAt   time.Time
}
