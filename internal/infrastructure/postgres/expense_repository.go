package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/erp-pro/erp-pro-api/internal/domain"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un gasto.
func (r *ExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, amount, category, description, created_by, expense_date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		expense.ID, expense.Amount, expense.Category, expense.Description,
		expense.CreatedBy, expense.ExpenseDate,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	query := `SELECT id, amount, category, description, created_by, expense_date FROM expenses WHERE id = $1`
	var e entity.Expense
	err := r.q.QueryRow(ctx, query, id).Scan(&e.ID, &e.Amount, &e.Category, &e.Description, &e.CreatedBy, &e.ExpenseDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// Delete elimina un gasto.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los gastos con el nombre de quien los registró, más recientes primero.
func (r *ExpenseRepo) List(ctx context.Context) ([]*entity.ExpenseWithProfile, error) {
	query := `
		SELECT e.id, e.amount, e.category, e.description, e.created_by, e.expense_date,
		       COALESCE(p.full_name, '')
		FROM expenses e
		LEFT JOIN profiles p ON p.id = e.created_by
		ORDER BY e.expense_date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*entity.ExpenseWithProfile
	for rows.Next() {
		var e entity.ExpenseWithProfile
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &e.Description, &e.CreatedBy, &e.ExpenseDate, &e.CreatedByName); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, &e)
	}
	return expenses, rows.Err()
}
