package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para registrar un gasto.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
}

// ExpenseResponse salida de un gasto con el nombre de quien lo registró.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	CreatedBy     string          `json:"created_by"`
	CreatedByName string          `json:"created_by_name,omitempty"`
	ExpenseDate   time.Time       `json:"expense_date"`
}

// ExpenseListResponse lista de gastos con las categorías disponibles.
type ExpenseListResponse struct {
	Items      []ExpenseResponse `json:"items"`
	Categories []string          `json:"categories"`
	Total      int               `json:"total"`
}
