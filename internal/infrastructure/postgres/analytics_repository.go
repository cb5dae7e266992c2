package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only del dashboard sobre PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// SalesTotal suma de totales de venta. COALESCE para devolver 0 sin filas.
func (r *AnalyticsRepo) SalesTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(total_amount), 0) FROM sales`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sales total: %w", err)
	}
	return total, nil
}

// ExpensesTotal suma de montos de gasto.
func (r *AnalyticsRepo) ExpensesTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("expenses total: %w", err)
	}
	return total, nil
}

// CountClients cantidad de clientes registrados.
func (r *AnalyticsRepo) CountClients(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return count, nil
}

// RecentSales últimas limit ventas con el nombre del cliente. Las ventas de
// mostrador salen como "Umumiy xaridor", igual que en el historial.
func (r *AnalyticsRepo) RecentSales(ctx context.Context, limit int) ([]*entity.SaleWithClient, error) {
	query := `
		SELECT s.id, s.client_id, s.seller_id, s.total_amount, s.discount, s.payment_type, s.created_at,
		       COALESCE(c.name, 'Umumiy xaridor')
		FROM sales s
		LEFT JOIN clients c ON c.id = s.client_id
		ORDER BY s.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.SaleWithClient
	for rows.Next() {
		var s entity.SaleWithClient
		if err := rows.Scan(&s.ID, &s.ClientID, &s.SellerID, &s.TotalAmount, &s.Discount, &s.PaymentType, &s.CreatedAt, &s.ClientName); err != nil {
			return nil, fmt.Errorf("scan recent sale: %w", err)
		}
		sales = append(sales, &s)
	}
	return sales, rows.Err()
}

// RecentExpenses últimos limit gastos con el nombre de quien los registró.
func (r *AnalyticsRepo) RecentExpenses(ctx context.Context, limit int) ([]*entity.ExpenseWithProfile, error) {
	query := `
		SELECT e.id, e.amount, e.category, e.description, e.created_by, e.expense_date,
		       COALESCE(p.full_name, '')
		FROM expenses e
		LEFT JOIN profiles p ON p.id = e.created_by
		ORDER BY e.expense_date DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*entity.ExpenseWithProfile
	for rows.Next() {
		var e entity.ExpenseWithProfile
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &e.Description, &e.CreatedBy, &e.ExpenseDate, &e.CreatedByName); err != nil {
			return nil, fmt.Errorf("scan recent expense: %w", err)
		}
		expenses = append(expenses, &e)
	}
	return expenses, rows.Err()
}
