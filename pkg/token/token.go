// Package token genera los secretos opacos de las solicitudes de registro
// (token de verificación de correo y token de acceso al portal).
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// DefaultBytes entropía de cada token: 32 bytes = 64 caracteres hex.
const DefaultBytes = 32

// Generator produce tokens aleatorios. Se inyecta en los casos de uso para poder sustituirlo en tests.
type Generator func() (string, error)

// New devuelve un token hex de DefaultBytes bytes leídos de crypto/rand.
func New() (string, error) {
	return NewN(DefaultBytes)
}

// NewN devuelve un token hex de n bytes aleatorios.
func NewN(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("token: longitud inválida %d", n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("token: leer aleatorio: %w", err)
	}
	return hex.EncodeToString(b), nil
}
