package entity

import "time"

// Roles válidos para User (personal del centro).
const (
	RoleAdmin       = "admin"
	RoleCoordinador = "coordinador"
	RoleTutor       = "tutor"
)

// User representa un miembro del personal con acceso a la API interna.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	Role         string // admin, coordinador, tutor
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleValido informa si r es un rol conocido.
func RoleValido(r string) bool {
	return r == RoleAdmin || r == RoleCoordinador || r == RoleTutor
}
