package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/practicas-api/internal/domain"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
)

var _ repository.EmpresaSolicitudRepository = (*EmpresaSolicitudRepo)(nil)

const solicitudColumns = `id, nombre_empresa, sector, ciudad, web, descripcion,
	contacto_nombre, contacto_email, contacto_telefono, token, portal_token, estado,
	empresa_id, email_verificado_en, aprobado_en, rejection_reason, created_at, updated_at`

// EmpresaSolicitudRepo implementación del puerto EmpresaSolicitudRepository sobre PostgreSQL.
type EmpresaSolicitudRepo struct {
	db Querier
}

// NewEmpresaSolicitudRepository acepta el pool o una tx.
func NewEmpresaSolicitudRepository(db Querier) *EmpresaSolicitudRepo {
	return &EmpresaSolicitudRepo{db: db}
}

// Create persiste una nueva solicitud. Una colisión de token devuelve domain.ErrDuplicate.
func (r *EmpresaSolicitudRepo) Create(ctx context.Context, s *entity.EmpresaSolicitud) error {
	query := `INSERT INTO empresa_solicitudes (` + solicitudColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.NombreEmpresa, s.Sector, s.Ciudad, s.Web, s.Descripcion,
		s.ContactoNombre, s.ContactoEmail, s.ContactoTelefono, s.Token, s.PortalToken, s.Estado,
		s.EmpresaID, s.EmailVerificadoEn, s.AprobadoEn, s.RejectionReason, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa_solicitud: %w", err)
	}
	return nil
}

func (r *EmpresaSolicitudRepo) GetByID(ctx context.Context, id string) (*entity.EmpresaSolicitud, error) {
	return r.getOne(ctx, `SELECT `+solicitudColumns+` FROM empresa_solicitudes WHERE id = $1`, id)
}

// GetByIDForUpdate solo tiene efecto dentro de una transacción.
func (r *EmpresaSolicitudRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.EmpresaSolicitud, error) {
	return r.getOne(ctx, `SELECT `+solicitudColumns+` FROM empresa_solicitudes WHERE id = $1 FOR UPDATE`, id)
}

func (r *EmpresaSolicitudRepo) GetByToken(ctx context.Context, token string) (*entity.EmpresaSolicitud, error) {
	return r.getOne(ctx, `SELECT `+solicitudColumns+` FROM empresa_solicitudes WHERE token = $1`, token)
}

// GetByTokenForUpdate solo tiene efecto dentro de una transacción.
func (r *EmpresaSolicitudRepo) GetByTokenForUpdate(ctx context.Context, token string) (*entity.EmpresaSolicitud, error) {
	return r.getOne(ctx, `SELECT `+solicitudColumns+` FROM empresa_solicitudes WHERE token = $1 FOR UPDATE`, token)
}

func (r *EmpresaSolicitudRepo) GetByPortalToken(ctx context.Context, portalToken string) (*entity.EmpresaSolicitud, error) {
	return r.getOne(ctx, `SELECT `+solicitudColumns+` FROM empresa_solicitudes WHERE portal_token = $1`, portalToken)
}

func (r *EmpresaSolicitudRepo) getOne(ctx context.Context, query string, arg any) (*entity.EmpresaSolicitud, error) {
	s, err := scanSolicitud(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa_solicitud: %w", err)
	}
	return s, nil
}

// Update actualiza estado y campos de seguimiento. Tokens y datos del alta no se tocan.
func (r *EmpresaSolicitudRepo) Update(ctx context.Context, s *entity.EmpresaSolicitud) error {
	query := `
		UPDATE empresa_solicitudes
		SET estado = $2, empresa_id = $3, email_verificado_en = $4, aprobado_en = $5,
			rejection_reason = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		s.ID, s.Estado, s.EmpresaID, s.EmailVerificadoEn, s.AprobadoEn, s.RejectionReason, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update empresa_solicitud: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List más recientes primero, con el total para paginar.
func (r *EmpresaSolicitudRepo) List(ctx context.Context, filter repository.SolicitudFilter, limit, offset int) ([]*entity.EmpresaSolicitud, int, error) {
	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM empresa_solicitudes WHERE ($1 = '' OR estado = $1)`, filter.Estado,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count empresa_solicitudes: %w", err)
	}

	query := `SELECT ` + solicitudColumns + ` FROM empresa_solicitudes
		WHERE ($1 = '' OR estado = $1)
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, filter.Estado, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list empresa_solicitudes: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.EmpresaSolicitud, 0, limit)
	for rows.Next() {
		s, err := scanSolicitud(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan empresa_solicitud: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

func scanSolicitud(row pgx.Row) (*entity.EmpresaSolicitud, error) {
	var s entity.EmpresaSolicitud
	err := row.Scan(
		&s.ID, &s.NombreEmpresa, &s.Sector, &s.Ciudad, &s.Web, &s.Descripcion,
		&s.ContactoNombre, &s.ContactoEmail, &s.ContactoTelefono, &s.Token, &s.PortalToken, &s.Estado,
		&s.EmpresaID, &s.EmailVerificadoEn, &s.AprobadoEn, &s.RejectionReason, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
