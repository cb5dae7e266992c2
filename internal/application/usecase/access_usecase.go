package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/erp-pro/erp-pro-api/internal/application/dto"
	"github.com/erp-pro/erp-pro-api/internal/domain"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
)

// AccessUseCase administración de usuarios: concesiones de acceso por email
// y cambio de roles. Solo accesible para administradores.
type AccessUseCase struct {
	grants   repository.AllowedEmailRepository
	profiles repository.ProfileRepository
}

// NewAccessUseCase construye el caso de uso.
func NewAccessUseCase(grants repository.AllowedEmailRepository, profiles repository.ProfileRepository) *AccessUseCase {
	return &AccessUseCase{grants: grants, profiles: profiles}
}

// GrantAccess concede acceso a un email. Si no se indica rol se concede
// como vendedor. Devuelve ErrDuplicate si ya existe la concesión.
func (uc *AccessUseCase) GrantAccess(ctx context.Context, in dto.CreateAllowedEmailRequest) (*dto.AllowedEmailResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleSeller
	}
	if !entity.IsValidRole(role) || role == entity.RoleBlocked {
		return nil, domain.ErrInvalidInput
	}
	grant := &entity.AllowedEmail{
		ID:        uuid.New().String(),
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := uc.grants.Create(ctx, grant); err != nil {
		return nil, err
	}
	return toAllowedEmailResponse(grant), nil
}

// RevokeAccess elimina una concesión. No bloquea sesiones ya abiertas;
// para eso está el rol "blocked" sobre el perfil.
func (uc *AccessUseCase) RevokeAccess(ctx context.Context, id string) error {
	return uc.grants.Delete(ctx, id)
}

// ListGrants devuelve las concesiones de acceso.
func (uc *AccessUseCase) ListGrants(ctx context.Context) (*dto.AllowedEmailListResponse, error) {
	grants, err := uc.grants.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AllowedEmailResponse, 0, len(grants))
	for _, g := range grants {
		items = append(items, *toAllowedEmailResponse(g))
	}
	return &dto.AllowedEmailListResponse{Items: items, Total: len(items)}, nil
}

// ListProfiles devuelve los perfiles registrados.
func (uc *AccessUseCase) ListProfiles(ctx context.Context) (*dto.ProfileListResponse, error) {
	profiles, err := uc.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, *toProfileResponse(p))
	}
	return &dto.ProfileListResponse{Items: items, Total: len(items)}, nil
}

// UpdateProfileRole cambia el rol de un perfil. Asignar "blocked" revoca el
// acceso: el próximo login del usuario será rechazado.
func (uc *AccessUseCase) UpdateProfileRole(ctx context.Context, id string, in dto.UpdateRoleRequest) (*dto.ProfileResponse, error) {
	if !entity.IsValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.profiles.UpdateRole(ctx, id, in.Role); err != nil {
		return nil, err
	}
	profile.Role = in.Role
	return toProfileResponse(profile), nil
}

func toAllowedEmailResponse(g *entity.AllowedEmail) *dto.AllowedEmailResponse {
	return &dto.AllowedEmailResponse{
		ID:        g.ID,
		Email:     g.Email,
		Role:      g.Role,
		CreatedAt: g.CreatedAt,
	}
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
	}
}
