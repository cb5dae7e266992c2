package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erp-pro/erp-pro-api/internal/application/dto"
	"github.com/erp-pro/erp-pro-api/internal/domain"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso para gastos del negocio.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto. El monto debe ser positivo y la categoría
// pertenecer a la lista fija.
func (uc *ExpenseUseCase) Create(ctx context.Context, createdBy string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidExpenseCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		CreatedBy:   createdBy,
		ExpenseDate: time.Now(),
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(&entity.ExpenseWithProfile{Expense: *expense}), nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List devuelve el historial de gastos junto con las categorías disponibles.
func (uc *ExpenseUseCase) List(ctx context.Context) (*dto.ExpenseListResponse, error) {
	expenses, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{
		Items:      items,
		Categories: entity.ExpenseCategories,
		Total:      len(items),
	}, nil
}

func toExpenseResponse(e *entity.ExpenseWithProfile) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            e.ID,
		Amount:        e.Amount,
		Category:      e.Category,
		Description:   e.Description,
		CreatedBy:     e.CreatedBy,
		CreatedByName: e.CreatedByName,
		ExpenseDate:   e.ExpenseDate,
	}
}
