package repository

import (
	"context"

	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	Delete(ctx context.Context, id string) error
	// List devuelve los gastos con el nombre de quien los registró ya unido,
	// ordenados por fecha descendente.
	List(ctx context.Context) ([]*entity.ExpenseWithProfile, error)
}
