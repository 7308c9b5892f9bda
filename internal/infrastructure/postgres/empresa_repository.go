package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/practicas-api/internal/domain"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
)

var (
	_ repository.EmpresaRepository         = (*EmpresaRepo)(nil)
	_ repository.ContactoEmpresaRepository = (*ContactoEmpresaRepo)(nil)
)

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	db Querier
}

// NewEmpresaRepository construye el adaptador de persistencia para empresas colaboradoras.
func NewEmpresaRepository(db Querier) *EmpresaRepo {
	return &EmpresaRepo{db: db}
}

// Create persiste una nueva empresa.
func (r *EmpresaRepo) Create(ctx context.Context, e *entity.EmpresaColaboradora) error {
	query := `
		INSERT INTO empresas_colaboradoras
			(id, nombre, sector, ciudad, email, telefono, web, estado_colaboracion, observaciones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.Nombre, e.Sector, e.Ciudad, e.Email, e.Telefono, e.Web,
		e.EstadoColaboracion, e.Observaciones, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *EmpresaRepo) GetByID(ctx context.Context, id string) (*entity.EmpresaColaboradora, error) {
	query := `
		SELECT id, nombre, sector, ciudad, email, telefono, web, estado_colaboracion, observaciones, created_at, updated_at
		FROM empresas_colaboradoras WHERE id = $1`
	var e entity.EmpresaColaboradora
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Nombre, &e.Sector, &e.Ciudad, &e.Email, &e.Telefono, &e.Web,
		&e.EstadoColaboracion, &e.Observaciones, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// List lista empresas con paginación (más recientes primero).
func (r *EmpresaRepo) List(ctx context.Context, limit, offset int) ([]*entity.EmpresaColaboradora, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM empresas_colaboradoras`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count empresas: %w", err)
	}
	query := `
		SELECT id, nombre, sector, ciudad, email, telefono, web, estado_colaboracion, observaciones, created_at, updated_at
		FROM empresas_colaboradoras ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()
	var list []*entity.EmpresaColaboradora
	for rows.Next() {
		var e entity.EmpresaColaboradora
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Sector, &e.Ciudad, &e.Email, &e.Telefono, &e.Web,
			&e.EstadoColaboracion, &e.Observaciones, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, total, rows.Err()
}

// ContactoEmpresaRepo implementación del puerto ContactoEmpresaRepository sobre PostgreSQL.
type ContactoEmpresaRepo struct {
	db Querier
}

func NewContactoEmpresaRepository(db Querier) *ContactoEmpresaRepo {
	return &ContactoEmpresaRepo{db: db}
}

func (r *ContactoEmpresaRepo) Create(ctx context.Context, c *entity.ContactoEmpresa) error {
	query := `
		INSERT INTO contactos_empresa (id, empresa_id, nombre, email, telefono, cargo, es_tutor, es_principal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.EmpresaID, c.Nombre, c.Email, c.Telefono, c.Cargo, c.EsTutor, c.EsPrincipal, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contacto_empresa: %w", err)
	}
	return nil
}

func (r *ContactoEmpresaRepo) ListByEmpresa(ctx context.Context, empresaID string) ([]*entity.ContactoEmpresa, error) {
	query := `
		SELECT id, empresa_id, nombre, email, telefono, cargo, es_tutor, es_principal, created_at
		FROM contactos_empresa WHERE empresa_id = $1
		ORDER BY es_principal DESC, created_at ASC`
	rows, err := r.db.Query(ctx, query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list contactos_empresa: %w", err)
	}
	defer rows.Close()
	var list []*entity.ContactoEmpresa
	for rows.Next() {
		var c entity.ContactoEmpresa
		if err := rows.Scan(&c.ID, &c.EmpresaID, &c.Nombre, &c.Email, &c.Telefono, &c.Cargo,
			&c.EsTutor, &c.EsPrincipal, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contacto_empresa: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
