package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound  = errors.New("recurso no encontrado")
	ErrDuplicate = errors.New("recurso duplicado")

	// ErrDomain es la raíz de toda violación de invariantes de construcción.
	// Los errores concretos lo envuelven para poder detectarlos con errors.Is.
	ErrDomain = errors.New("error de dominio")

	ErrNegativeIdentifier  = fmt.Errorf("%w: el identificador no puede ser negativo", ErrDomain)
	ErrNonPositiveQuantity = fmt.Errorf("%w: la cantidad debe ser mayor que cero", ErrDomain)
	ErrInvalidDateRange    = fmt.Errorf("%w: el inicio del rango debe ser anterior al fin", ErrDomain)
)

// ConflictError indica que un pedido con el mismo identificador ya existe en el
// almacenamiento. Es un resultado esperado del caso de uso de ingesta, no un bug:
// los llamadores lo distinguen con errors.As.
type ConflictError struct {
	OrderID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("el pedido %d ya existe", e.OrderID)
}

// ParsingError indica que una línea del dataset no es JSON válido.
// Lleva el número de línea (base 1) y el texto crudo para diagnóstico.
type ParsingError struct {
	Line int
	Raw  string
	Err  error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("línea %d: JSON inválido: %v", e.Line, e.Err)
}

func (e *ParsingError) Unwrap() error { return e.Err }

// MissingFieldError indica que un registro JSON válido carece de un campo
// obligatorio. Se valida una sola vez en la frontera del parser en lugar de
// dejar que la ausencia se filtre como un acceso fallido más adelante.
type MissingFieldError struct {
	Line  int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("línea %d: falta el campo obligatorio %q", e.Line, e.Field)
}
