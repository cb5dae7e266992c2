package dto

import "github.com/shopspring/decimal"

// DashboardResponse resumen del negocio para la pantalla principal.
type DashboardResponse struct {
	TotalSales      decimal.Decimal   `json:"total_sales"`
	TotalExpenses   decimal.Decimal   `json:"total_expenses"`
	NetBalance      decimal.Decimal   `json:"net_balance"`
	ClientCount     int64             `json:"client_count"`
	LowStock        []ProductResponse `json:"low_stock"`
	RecentSales     []SaleResponse    `json:"recent_sales"`
	RecentExpenses  []ExpenseResponse `json:"recent_expenses"`
}
