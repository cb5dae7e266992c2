package dto

import "time"

// RegisterRequest entrada para registrar un usuario. Solo prospera si el
// email figura en la lista de acceso.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse salida de login/registro: token JWT más el perfil.
type AuthResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

// ProfileResponse salida de un perfil de usuario.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileListResponse lista de perfiles.
type ProfileListResponse struct {
	Items []ProfileResponse `json:"items"`
	Total int               `json:"total"`
}

// UpdateRoleRequest entrada para cambiar el rol de un perfil.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// CreateAllowedEmailRequest entrada para conceder acceso a un email.
type CreateAllowedEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"`
}

// AllowedEmailResponse salida de una concesión de acceso.
type AllowedEmailResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AllowedEmailListResponse lista de concesiones de acceso.
type AllowedEmailListResponse struct {
	Items []AllowedEmailResponse `json:"items"`
	Total int                    `json:"total"`
}
