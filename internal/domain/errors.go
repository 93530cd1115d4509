package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("no existe")
	ErrDuplicateIdentity = errors.New("ya existe")
	ErrInvalidQuantity   = errors.New("la cantidad no puede ser negativa")
	ErrInvalidInput      = errors.New("entrada inválida")
)

// ItemError es el único tipo de fallo que devuelven las operaciones de un repositorio.
// Err siempre es uno de los sentinelas de arriba; se compara con errors.Is.
type ItemError struct {
	Op  string // add, get, remove, update, adjust, load
	ID  int
	Err error
}

// NewItemError construye el error de una operación sobre el artículo id.
func NewItemError(op string, id int, err error) *ItemError {
	return &ItemError{Op: op, ID: id, Err: err}
}

func (e *ItemError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidQuantity):
		return fmt.Sprintf("%s: artículo con ID %d: %v", e.Op, e.ID, e.Err)
	default:
		return fmt.Sprintf("%s: el artículo con ID %d %v", e.Op, e.ID, e.Err)
	}
}

func (e *ItemError) Unwrap() error { return e.Err }
