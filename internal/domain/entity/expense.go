package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategories es la lista fija de categorías de gasto del negocio.
var ExpenseCategories = []string{
	"Ijara",
	"Oylik maosh",
	"Soliqlar",
	"Kommunal",
	"Transport",
	"Kanselyariya",
	"Boshqa",
}

// IsValidExpenseCategory indica si la categoría pertenece a la lista fija.
func IsValidExpenseCategory(c string) bool {
	for _, v := range ExpenseCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Expense es un gasto registrado por un usuario del sistema.
type Expense struct {
	ID          string
	Amount      decimal.Decimal // siempre > 0
	Category    string
	Description string
	CreatedBy   string // id del perfil que lo registró
	ExpenseDate time.Time
}

// ExpenseWithProfile es la fila del historial de gastos con el nombre de
// quien lo registró ya unido.
type ExpenseWithProfile struct {
	Expense
	CreatedByName string
}
