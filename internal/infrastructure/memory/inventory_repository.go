// Package memory implementa el repositorio de inventario en memoria, uno por categoría.
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var (
	_ repository.InventoryRepository[entity.Electronic]     = (*InventoryRepository[entity.Electronic])(nil)
	_ repository.InventoryRepository[entity.PerishableGood] = (*InventoryRepository[entity.PerishableGood])(nil)
)

// Operaciones reportadas en domain.ItemError.
const (
	opAdd    = "add"
	opGet    = "get"
	opRemove = "remove"
	opUpdate = "update"
	opAdjust = "adjust"
)

// InventoryRepository guarda los artículos de una sola categoría indexados por ID.
// Es el único dueño de sus valores: todo lo que entrega son copias.
type InventoryRepository[T entity.Item[T]] struct {
	mu    sync.RWMutex
	items map[int]T
}

// NewInventoryRepository crea un repositorio vacío.
func NewInventoryRepository[T entity.Item[T]]() *InventoryRepository[T] {
	return &InventoryRepository[T]{items: make(map[int]T)}
}

// AddItem inserta el artículo. Rechaza cantidades iniciales negativas antes de mirar el ID.
func (r *InventoryRepository[T]) AddItem(item T) error {
	id := item.GetID()
	if item.GetQuantity() < 0 {
		return domain.NewItemError(opAdd, id, domain.ErrInvalidQuantity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; exists {
		return domain.NewItemError(opAdd, id, domain.ErrDuplicateIdentity)
	}
	r.items[id] = item
	return nil
}

// GetByID devuelve el artículo con ese ID.
func (r *InventoryRepository[T]) GetByID(id int) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, domain.NewItemError(opGet, id, domain.ErrNotFound)
	}
	return item, nil
}

// RemoveItem elimina el artículo de forma irreversible.
func (r *InventoryRepository[T]) RemoveItem(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.NewItemError(opRemove, id, domain.ErrNotFound)
	}
	delete(r.items, id)
	return nil
}

// UpdateQuantity reemplaza la cantidad almacenada.
// Una cantidad negativa falla con ErrInvalidQuantity aunque el ID no exista.
func (r *InventoryRepository[T]) UpdateQuantity(id, newQuantity int) error {
	_, err := r.ReplaceQuantity(id, newQuantity)
	return err
}

// ReplaceQuantity es UpdateQuantity devolviendo el artículo tal como quedó guardado.
func (r *InventoryRepository[T]) ReplaceQuantity(id, newQuantity int) (T, error) {
	var zero T
	if newQuantity < 0 {
		return zero, domain.NewItemError(opUpdate, id, domain.ErrInvalidQuantity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return zero, domain.NewItemError(opUpdate, id, domain.ErrNotFound)
	}
	updated := item.WithQuantity(newQuantity)
	r.items[id] = updated
	return updated, nil
}

// AdjustQuantity lee y escribe bajo el mismo lock, así dos incrementos concurrentes
// no pierden actualizaciones. Falla sin mutar si el ID no existe o si el resultado es negativo.
func (r *InventoryRepository[T]) AdjustQuantity(id, delta int) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	item, ok := r.items[id]
	if !ok {
		return zero, domain.NewItemError(opAdjust, id, domain.ErrNotFound)
	}
	next := item.GetQuantity() + delta
	if next < 0 {
		return zero, domain.NewItemError(opAdjust, id, domain.ErrInvalidQuantity)
	}
	updated := item.WithQuantity(next)
	r.items[id] = updated
	return updated, nil
}

// GetAllItems devuelve una foto de los artículos actuales ordenada por ID.
func (r *InventoryRepository[T]) GetAllItems() []T {
	r.mu.RLock()
	list := make([]T, 0, len(r.items))
	for _, item := range r.items {
		list = append(list, item)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].GetID() < list[j].GetID() })
	return list
}

// Len devuelve cuántos artículos hay guardados.
func (r *InventoryRepository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
