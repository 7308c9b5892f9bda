package entity

import "github.com/google/uuid"

// IDValido informa si id tiene formato UUID. Los ids de todas las entidades lo son,
// así que un id mal formado equivale a uno inexistente.
func IDValido(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
