package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrEmailNotAllowed    = errors.New("el email no tiene acceso concedido")
	ErrUserBlocked        = errors.New("usuario bloqueado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrStockConflict      = errors.New("el stock ya fue consumido, no se puede revertir")
	ErrEmptyCart          = errors.New("el carrito está vacío")
)
