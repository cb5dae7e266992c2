package dto

import "time"

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateClientRequest entrada para actualizar un cliente.
type UpdateClientRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ClientResponse salida de un cliente. Phone viene ya formateado para
// mostrar (formato local +998).
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientListResponse lista de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Total int              `json:"total"`
}
