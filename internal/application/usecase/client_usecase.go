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
	"github.com/erp-pro/erp-pro-api/pkg/format"
	"github.com/erp-pro/erp-pro-api/pkg/search"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update actualiza un cliente.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		client.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		client.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente. Las ventas que lo referencian conservan el id.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List devuelve los clientes, con filtro opcional por nombre o teléfono.
func (uc *ClientUseCase) List(ctx context.Context, query string) (*dto.ClientListResponse, error) {
	clients, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		if query != "" && !search.ContainsAny(query, c.Name, c.Phone) {
			continue
		}
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{Items: items, Total: len(items)}, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     format.PhoneNumber(c.Phone),
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
