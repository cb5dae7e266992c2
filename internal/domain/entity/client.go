package entity

import "time"

// Client es un comprador registrado. CRUD puro, sin invariantes derivados.
type Client struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
