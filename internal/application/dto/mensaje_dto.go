package dto

import "time"

// CreateMensajeRequest cuerpo para publicar un mensaje. Autor solo se respeta en la API interna.
type CreateMensajeRequest struct {
	Autor     string `json:"autor"`
	Contenido string `json:"contenido"`
}

// MensajeResponse salida de un mensaje del hilo.
type MensajeResponse struct {
	ID        string    `json:"id"`
	Autor     string    `json:"autor"`
	Contenido string    `json:"contenido"`
	CreatedAt time.Time `json:"createdAt"`
}
