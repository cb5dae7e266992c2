package repository

import (
	"context"

	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
)

// AllowedEmailRepository define el puerto de persistencia para la lista de
// acceso por email.
type AllowedEmailRepository interface {
	// Create devuelve ErrDuplicate si el email ya tiene una concesión.
	Create(ctx context.Context, grant *entity.AllowedEmail) error
	GetByEmail(ctx context.Context, email string) (*entity.AllowedEmail, error)
	List(ctx context.Context) ([]*entity.AllowedEmail, error)
	Delete(ctx context.Context, id string) error
}
