// Package auth implementa registro y login con lista de acceso por email.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/erp-pro/erp-pro-api/internal/application/dto"
	"github.com/erp-pro/erp-pro-api/internal/domain"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
	"github.com/erp-pro/erp-pro-api/pkg/jwt"
)

// Config parámetros de emisión de tokens.
type Config struct {
	JWTSecret  string
	Issuer     string
	ExpMinutes int
}

// UseCase registro y login. El registro está cerrado: solo prospera si el
// email figura en la lista de acceso, y el rol del perfil se copia de la
// concesión en ese momento.
type UseCase struct {
	profiles repository.ProfileRepository
	grants   repository.AllowedEmailRepository
	cfg      Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(profiles repository.ProfileRepository, grants repository.AllowedEmailRepository, cfg Config) *UseCase {
	return &UseCase{profiles: profiles, grants: grants, cfg: cfg}
}

// Register crea un perfil para un email autorizado y devuelve sesión iniciada.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}

	grant, err := uc.grants.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrEmailNotAllowed
		}
		return nil, err
	}

	if existing, err := uc.profiles.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := grant.Role
	if role == "" {
		role = entity.RoleSeller
	}
	now := time.Now()
	profile := &entity.Profile{
		ID:           uuid.New().String(),
		Email:        email,
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return uc.session(profile)
}

// Login valida credenciales y devuelve un token. Un perfil con rol "blocked"
// no puede iniciar sesión aunque sus credenciales sean correctas.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	profile, err := uc.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if profile.Role == entity.RoleBlocked {
		return nil, domain.ErrUserBlocked
	}
	return uc.session(profile)
}

// Me devuelve el perfil del usuario autenticado.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt,
	}, nil
}

func (uc *UseCase) session(p *entity.Profile) (*dto.AuthResponse, error) {
	role := p.Role
	if role == "" {
		role = entity.RoleSeller
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, p.ID, p.Email, role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		Profile: dto.ProfileResponse{
			ID:        p.ID,
			Email:     p.Email,
			FullName:  p.FullName,
			Role:      role,
			CreatedAt: p.CreatedAt,
		},
	}, nil
}
