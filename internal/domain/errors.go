package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Errores del motor de valoración FIFO. Todos son condiciones recuperables
	// de cara al usuario, nunca fatales para el proceso.
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInvalidCost       = errors.New("costo unitario inválido")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrUnknownItem       = errors.New("artículo no encontrado")
)
