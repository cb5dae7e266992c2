package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
)

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// SalesTotal devuelve la suma de totales de venta (0 si no hay ventas).
	SalesTotal(ctx context.Context) (decimal.Decimal, error)
	// ExpensesTotal devuelve la suma de montos de gasto (0 si no hay gastos).
	ExpensesTotal(ctx context.Context) (decimal.Decimal, error)
	// CountClients devuelve la cantidad de clientes registrados.
	CountClients(ctx context.Context) (int64, error)
	// RecentSales devuelve las últimas limit ventas, más recientes primero.
	RecentSales(ctx context.Context, limit int) ([]*entity.SaleWithClient, error)
	// RecentExpenses devuelve los últimos limit gastos, más recientes primero.
	RecentExpenses(ctx context.Context, limit int) ([]*entity.ExpenseWithProfile, error)
}
