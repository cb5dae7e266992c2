// Package analytics contiene el caso de uso del resumen de negocio para la
// pantalla principal.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/erp-pro/erp-pro-api/internal/application/dto"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
)

// Config límites del resumen. LowStockThreshold marca desde qué stock un
// producto se considera "por agotarse".
type Config struct {
	LowStockThreshold int64
	RecentLimit       int
	LowStockLimit     int
}

// DashboardUseCase genera el resumen del negocio: totales acumulados,
// balance, productos por agotarse y actividad reciente.
//
// Fuente de datos: AnalyticsRepository y ProductRepository (read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
	cfg           Config
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, productRepo repository.ProductRepository, cfg Config) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, productRepo: productRepo, cfg: cfg}
}

// GetSummary construye el DashboardResponse.
//
// Seis consultas en paralelo:
//  1. SalesTotal       → TotalSales
//  2. ExpensesTotal    → TotalExpenses
//  3. CountClients     → ClientCount
//  4. ListLowStock     → LowStock (stock ascendente)
//  5. RecentSales      → RecentSales
//  6. RecentExpenses   → RecentExpenses
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	type totalResult struct {
		value decimal.Decimal
		err   error
	}
	type countResult struct {
		value int64
		err   error
	}
	type lowStockResult struct {
		products []*entity.Product
		err      error
	}
	type salesResult struct {
		sales []*entity.SaleWithClient
		err   error
	}
	type expensesResult struct {
		expenses []*entity.ExpenseWithProfile
		err      error
	}

	salesCh := make(chan totalResult, 1)
	expensesCh := make(chan totalResult, 1)
	clientsCh := make(chan countResult, 1)
	lowStockCh := make(chan lowStockResult, 1)
	recentSalesCh := make(chan salesResult, 1)
	recentExpensesCh := make(chan expensesResult, 1)

	go func() {
		v, err := uc.analyticsRepo.SalesTotal(ctx)
		salesCh <- totalResult{v, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.ExpensesTotal(ctx)
		expensesCh <- totalResult{v, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.CountClients(ctx)
		clientsCh <- countResult{v, err}
	}()
	go func() {
		p, err := uc.productRepo.ListLowStock(ctx, uc.cfg.LowStockThreshold, uc.cfg.LowStockLimit)
		lowStockCh <- lowStockResult{p, err}
	}()
	go func() {
		s, err := uc.analyticsRepo.RecentSales(ctx, uc.cfg.RecentLimit)
		recentSalesCh <- salesResult{s, err}
	}()
	go func() {
		e, err := uc.analyticsRepo.RecentExpenses(ctx, uc.cfg.RecentLimit)
		recentExpensesCh <- expensesResult{e, err}
	}()

	sales := <-salesCh
	expenses := <-expensesCh
	clients := <-clientsCh
	lowStock := <-lowStockCh
	recentSales := <-recentSalesCh
	recentExpenses := <-recentExpensesCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: total de ventas: %w", sales.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("dashboard: total de gastos: %w", expenses.err)
	}
	if clients.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de clientes: %w", clients.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}
	if recentSales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", recentSales.err)
	}
	if recentExpenses.err != nil {
		return nil, fmt.Errorf("dashboard: gastos recientes: %w", recentExpenses.err)
	}

	// los totales se presentan redondeados a 2 decimales
	resp := &dto.DashboardResponse{
		TotalSales:    sales.value.Round(2),
		TotalExpenses: expenses.value.Round(2),
		NetBalance:    sales.value.Sub(expenses.value).Round(2),
		ClientCount:   clients.value,
	}
	for _, p := range lowStock.products {
		resp.LowStock = append(resp.LowStock, dto.ProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Stock:    p.Stock,
		})
	}
	for _, s := range recentSales.sales {
		resp.RecentSales = append(resp.RecentSales, dto.SaleResponse{
			ID:          s.ID,
			ClientID:    s.ClientID,
			ClientName:  s.ClientName,
			SellerID:    s.SellerID,
			TotalAmount: s.TotalAmount,
			Discount:    s.Discount,
			PaymentType: s.PaymentType,
			CreatedAt:   s.CreatedAt,
		})
	}
	for _, e := range recentExpenses.expenses {
		resp.RecentExpenses = append(resp.RecentExpenses, dto.ExpenseResponse{
			ID:            e.ID,
			Amount:        e.Amount,
			Category:      e.Category,
			Description:   e.Description,
			CreatedBy:     e.CreatedBy,
			CreatedByName: e.CreatedByName,
			ExpenseDate:   e.ExpenseDate,
		})
	}
	return resp, nil
}
