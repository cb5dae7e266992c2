package entity

import "time"

// Roles del sistema. RoleBlocked no es un rol operativo: marca una identidad
// a la que se le revocó el acceso y se rechaza en el login.
const (
	RoleAdmin   = "admin"
	RoleSeller  = "seller"
	RoleBlocked = "blocked"
)

// IsValidRole indica si el rol es uno de los conocidos por el sistema.
func IsValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleBlocked:
		return true
	}
	return false
}

// Profile es la identidad de un usuario del sistema con su rol.
type Profile struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Role         string // admin | seller | blocked
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
