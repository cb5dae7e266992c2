package analytics

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
)

type stubAnalyticsRepo struct {
	salesTotal    decimal.Decimal
	expensesTotal decimal.Decimal
	clientCount   int64
	recentSales   []*entity.SaleWithClient
	recentExp     []*entity.ExpenseWithProfile
}

func (f *stubAnalyticsRepo) SalesTotal(_ context.Context) (decimal.Decimal, error) {
	return f.salesTotal, nil
}
func (f *stubAnalyticsRepo) ExpensesTotal(_ context.Context) (decimal.Decimal, error) {
	return f.expensesTotal, nil
}
func (f *stubAnalyticsRepo) CountClients(_ context.Context) (int64, error) {
	return f.clientCount, nil
}
func (f *stubAnalyticsRepo) RecentSales(_ context.Context, limit int) ([]*entity.SaleWithClient, error) {
	if len(f.recentSales) > limit {
		return f.recentSales[:limit], nil
	}
	return f.recentSales, nil
}
func (f *stubAnalyticsRepo) RecentExpenses(_ context.Context, limit int) ([]*entity.ExpenseWithProfile, error) {
	if len(f.recentExp) > limit {
		return f.recentExp[:limit], nil
	}
	return f.recentExp, nil
}

type stubLowStockRepo struct {
	low []*entity.Product
}

func (f *stubLowStockRepo) Create(_ context.Context, _ *entity.Product) error  { return nil }
func (f *stubLowStockRepo) GetByID(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}
func (f *stubLowStockRepo) Update(_ context.Context, _ *entity.Product) error { return nil }
func (f *stubLowStockRepo) Delete(_ context.Context, _ string) error          { return nil }
func (f *stubLowStockRepo) List(_ context.Context) ([]*entity.Product, error) { return nil, nil }
func (f *stubLowStockRepo) ListInStock(_ context.Context) ([]*entity.Product, error) {
	return nil, nil
}
func (f *stubLowStockRepo) ListLowStock(_ context.Context, threshold int64, limit int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range f.low {
		if p.Stock < threshold && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *stubLowStockRepo) IncrementStock(_ context.Context, _ string, _ int64) error { return nil }
func (f *stubLowStockRepo) DecrementStock(_ context.Context, _ string, _ int64) (bool, error) {
	return true, nil
}

func TestGetSummary(t *testing.T) {
	analyticsRepo := &stubAnalyticsRepo{
		salesTotal:    decimal.NewFromInt(500),
		expensesTotal: decimal.NewFromInt(120),
		clientCount:   7,
		recentSales: []*entity.SaleWithClient{
			{Sale: entity.Sale{ID: "s1", TotalAmount: decimal.NewFromInt(22)}, ClientName: "Akmal"},
		},
		recentExp: []*entity.ExpenseWithProfile{
			{Expense: entity.Expense{ID: "e1", Amount: decimal.NewFromInt(30), Category: "Ijara"}},
		},
	}
	productRepo := &stubLowStockRepo{low: []*entity.Product{
		{ID: "p1", Name: "Casi agotado", Stock: 2},
		{ID: "p2", Name: "Suficiente", Stock: 50},
	}}

	uc := NewDashboardUseCase(analyticsRepo, productRepo, Config{
		LowStockThreshold: 10,
		RecentLimit:       5,
		LowStockLimit:     5,
	})

	resp, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.TotalSales.Equal(decimal.NewFromInt(500)))
	assert.True(t, resp.TotalExpenses.Equal(decimal.NewFromInt(120)))
	assert.True(t, resp.NetBalance.Equal(decimal.NewFromInt(380)))
	assert.Equal(t, int64(7), resp.ClientCount)

	// solo productos bajo el umbral
	require.Len(t, resp.LowStock, 1)
	assert.Equal(t, "p1", resp.LowStock[0].ID)

	require.Len(t, resp.RecentSales, 1)
	assert.Equal(t, "Akmal", resp.RecentSales[0].ClientName)
	require.Len(t, resp.RecentExpenses, 1)
	assert.Equal(t, "Ijara", resp.RecentExpenses[0].Category)
}

func TestGetSummary_TotalesRedondeados(t *testing.T) {
	analyticsRepo := &stubAnalyticsRepo{
		salesTotal:    decimal.RequireFromString("100.005"),
		expensesTotal: decimal.RequireFromString("40.001"),
	}
	productRepo := &stubLowStockRepo{}

	uc := NewDashboardUseCase(analyticsRepo, productRepo, Config{
		LowStockThreshold: 10,
		RecentLimit:       5,
		LowStockLimit:     5,
	})

	resp, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	// los totales salen con 2 decimales
	assert.True(t, resp.TotalSales.Equal(decimal.RequireFromString("100.01")), resp.TotalSales.String())
	assert.True(t, resp.TotalExpenses.Equal(decimal.RequireFromString("40.00")), resp.TotalExpenses.String())
	assert.True(t, resp.NetBalance.Equal(decimal.RequireFromString("60.00")), resp.NetBalance.String())
}
