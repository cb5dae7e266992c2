package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/erp-pro/erp-pro-api/internal/domain"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
)

var _ repository.AllowedEmailRepository = (*AllowedEmailRepo)(nil)

// AllowedEmailRepo implementación del puerto AllowedEmailRepository sobre PostgreSQL.
type AllowedEmailRepo struct {
	q Querier
}

// NewAllowedEmailRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAllowedEmailRepository(q Querier) *AllowedEmailRepo {
	return &AllowedEmailRepo{q: q}
}

// Create persiste una concesión de acceso. Email duplicado => ErrDuplicate.
func (r *AllowedEmailRepo) Create(ctx context.Context, grant *entity.AllowedEmail) error {
	query := `
		INSERT INTO allowed_emails (id, email, role, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, grant.ID, grant.Email, grant.Role, grant.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert allowed email: %w", err)
	}
	return nil
}

// GetByEmail obtiene la concesión de un email (en minúsculas).
func (r *AllowedEmailRepo) GetByEmail(ctx context.Context, email string) (*entity.AllowedEmail, error) {
	query := `SELECT id, email, role, created_at FROM allowed_emails WHERE email = $1`
	var g entity.AllowedEmail
	err := r.q.QueryRow(ctx, query, email).Scan(&g.ID, &g.Email, &g.Role, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get allowed email: %w", err)
	}
	return &g, nil
}

// List devuelve las concesiones ordenadas por fecha.
func (r *AllowedEmailRepo) List(ctx context.Context) ([]*entity.AllowedEmail, error) {
	query := `SELECT id, email, role, created_at FROM allowed_emails ORDER BY created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list allowed emails: %w", err)
	}
	defer rows.Close()

	var grants []*entity.AllowedEmail
	for rows.Next() {
		var g entity.AllowedEmail
		if err := rows.Scan(&g.ID, &g.Email, &g.Role, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan allowed email: %w", err)
		}
		grants = append(grants, &g)
	}
	return grants, rows.Err()
}

// Delete elimina una concesión.
func (r *AllowedEmailRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM allowed_emails WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete allowed email: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
