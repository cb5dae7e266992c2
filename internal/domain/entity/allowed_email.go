package entity

import "time"

// AllowedEmail es una concesión de acceso: solo los emails presentes en esta
// lista pueden registrarse. Eliminar la concesión solo bloquea registros
// futuros, no cierra sesiones existentes.
type AllowedEmail struct {
	ID        string
	Email     string // único, siempre en minúsculas
	Role      string // rol que recibirá el perfil al registrarse
	CreatedAt time.Time
}
