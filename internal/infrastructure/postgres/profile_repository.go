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

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

const profileColumns = `id, email, full_name, password_hash, role, created_at, updated_at`

// Create persiste un perfil.
func (r *ProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, email, full_name, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		profile.ID, profile.Email, profile.FullName, profile.PasswordHash,
		profile.Role, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	return r.getBy(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
}

// GetByEmail obtiene un perfil por email (en minúsculas).
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return r.getBy(ctx, `SELECT `+profileColumns+` FROM profiles WHERE email = $1`, email)
}

// List devuelve los perfiles ordenados por fecha de creación.
func (r *ProfileRepo) List(ctx context.Context) ([]*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.PasswordHash, &p.Role, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, &p)
	}
	return profiles, rows.Err()
}

// UpdateRole cambia el rol de un perfil.
func (r *ProfileRepo) UpdateRole(ctx context.Context, id, role string) error {
	query := `UPDATE profiles SET role = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, role)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *ProfileRepo) getBy(ctx context.Context, query string, arg any) (*entity.Profile, error) {
	var p entity.Profile
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Email, &p.FullName, &p.PasswordHash, &p.Role, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}
