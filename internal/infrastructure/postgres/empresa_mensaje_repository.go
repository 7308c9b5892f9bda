package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
)

var _ repository.EmpresaMensajeRepository = (*EmpresaMensajeRepo)(nil)

// EmpresaMensajeRepo hilo de mensajes de una solicitud.
type EmpresaMensajeRepo struct {
	db Querier
}

func NewEmpresaMensajeRepository(db Querier) *EmpresaMensajeRepo {
	return &EmpresaMensajeRepo{db: db}
}

func (r *EmpresaMensajeRepo) Create(ctx context.Context, m *entity.EmpresaMensaje) error {
	query := `
		INSERT INTO empresa_mensajes (id, solicitud_id, autor, contenido, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Exec(ctx, query, m.ID, m.SolicitudID, m.Autor, m.Contenido, m.CreatedAt); err != nil {
		return fmt.Errorf("insert empresa_mensaje: %w", err)
	}
	return nil
}

// ListBySolicitud desempata por seq para mensajes con el mismo timestamp.
func (r *EmpresaMensajeRepo) ListBySolicitud(ctx context.Context, solicitudID string) ([]*entity.EmpresaMensaje, error) {
	query := `
		SELECT id, solicitud_id, autor, contenido, created_at
		FROM empresa_mensajes WHERE solicitud_id = $1
		ORDER BY created_at ASC, seq ASC`
	rows, err := r.db.Query(ctx, query, solicitudID)
	if err != nil {
		return nil, fmt.Errorf("list empresa_mensajes: %w", err)
	}
	defer rows.Close()
	var list []*entity.EmpresaMensaje
	for rows.Next() {
		var m entity.EmpresaMensaje
		if err := rows.Scan(&m.ID, &m.SolicitudID, &m.Autor, &m.Contenido, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa_mensaje: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
