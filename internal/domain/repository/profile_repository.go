package repository

import (
	"context"

	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia para perfiles de usuario.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	List(ctx context.Context) ([]*entity.Profile, error)
	// UpdateRole cambia solo el rol; bloquear a un usuario es asignarle
	// el rol "blocked".
	UpdateRole(ctx context.Context, id, role string) error
}
