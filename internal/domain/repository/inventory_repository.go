package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// InventoryRepository define el puerto de almacenamiento de una categoría de artículos (DIP).
// Todas las operaciones son síncronas; los fallos son *domain.ItemError.
type InventoryRepository[T entity.Item[T]] interface {
	// AddItem inserta item. domain.ErrDuplicateIdentity si el ID ya existe.
	AddItem(item T) error
	// GetByID devuelve una copia del artículo. domain.ErrNotFound si no existe.
	GetByID(id int) (T, error)
	// RemoveItem elimina el artículo. domain.ErrNotFound si no existe.
	RemoveItem(id int) error
	// UpdateQuantity reemplaza la cantidad. domain.ErrInvalidQuantity si es negativa
	// (se valida antes que la existencia), si no domain.ErrNotFound.
	UpdateQuantity(id, newQuantity int) error
	// ReplaceQuantity igual que UpdateQuantity, pero devuelve el artículo actualizado.
	ReplaceQuantity(id, newQuantity int) (T, error)
	// AdjustQuantity suma delta a la cantidad actual en una sola operación atómica.
	AdjustQuantity(id, delta int) (T, error)
	// GetAllItems devuelve una copia de todos los artículos, ordenados por ID.
	GetAllItems() []T
	Len() int
}
