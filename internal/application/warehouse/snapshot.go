package warehouse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// SaveCategory serializa todos los artículos de repo y los guarda como la foto actual de su categoría.
func SaveCategory[T entity.Item[T]](ctx context.Context, m *Manager, store SnapshotStore, repo repository.InventoryRepository[T]) (*Snapshot, error) {
	items := repo.GetAllItems()
	snap := &Snapshot{
		ID:       uuid.New().String(),
		Category: categoryOf[T](),
		TakenAt:  m.now().UTC(),
		Records:  make([]Record, 0, len(items)),
	}
	for _, it := range items {
		payload, err := json.Marshal(it)
		if err != nil {
			return nil, fmt.Errorf("serializar artículo %d: %w", it.GetID(), err)
		}
		snap.Records = append(snap.Records, Record{ID: it.GetID(), Payload: payload})
	}
	if err := store.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("guardar snapshot %s: %w", snap.Category, err)
	}
	m.log.Info().
		Str("category", snap.Category).
		Str("snapshot_id", snap.ID).
		Int("items", len(snap.Records)).
		Msg("snapshot guardado")
	return snap, nil
}

// LoadCategory lee la foto de la categoría de T y reinserta cada artículo con AddItem.
// Antes de insertar, cada registro pasa por Validate y su ID debe coincidir con el del
// artículo. Los rechazos (campos inválidos, ID duplicado, cantidad negativa) se reportan
// y se omiten. Devuelve cuántos entraron.
func LoadCategory[T entity.Item[T]](ctx context.Context, m *Manager, store SnapshotStore, repo repository.InventoryRepository[T]) (int, error) {
	category := categoryOf[T]()
	snap, err := store.Load(ctx, category)
	if err != nil {
		return 0, err
	}
	loaded := 0
	for _, rec := range snap.Records {
		var item T
		if err := json.Unmarshal(rec.Payload, &item); err != nil {
			return loaded, fmt.Errorf("deserializar artículo %d: %w", rec.ID, err)
		}
		if err := checkRecord(rec, item); err != nil {
			m.reportFailure(category, rec.ID, domain.NewItemError(opLoad, rec.ID, err))
			continue
		}
		if err := AddItem(m, repo, item); err != nil {
			continue
		}
		loaded++
	}
	m.log.Info().
		Str("category", category).
		Str("snapshot_id", snap.ID).
		Int("items", loaded).
		Msg("snapshot cargado")
	return loaded, nil
}

const opLoad = "load"

// checkRecord aplica al artículo leído las reglas de su constructor.
func checkRecord[T entity.Item[T]](rec Record, item T) error {
	if rec.ID != item.GetID() {
		return domain.ErrInvalidInput
	}
	return item.Validate()
}

// SaveAll guarda la foto de ambas categorías.
func (m *Manager) SaveAll(ctx context.Context, store SnapshotStore) ([]*Snapshot, error) {
	electronics, err := SaveCategory(ctx, m, store, m.electronics)
	if err != nil {
		return nil, err
	}
	groceries, err := SaveCategory(ctx, m, store, m.groceries)
	if err != nil {
		return nil, err
	}
	return []*Snapshot{electronics, groceries}, nil
}

// LoadAll carga ambas categorías. found es false si ninguna tenía snapshot guardado;
// en ese caso el llamador suele sembrar datos de ejemplo.
func (m *Manager) LoadAll(ctx context.Context, store SnapshotStore) (found bool, err error) {
	if _, err := LoadCategory(ctx, m, store, m.electronics); err == nil {
		found = true
	} else if !errors.Is(err, ErrSnapshotNotFound) {
		return false, err
	}
	if _, err := LoadCategory(ctx, m, store, m.groceries); err == nil {
		found = true
	} else if !errors.Is(err, ErrSnapshotNotFound) {
		return found, err
	}
	return found, nil
}

// Listing convierte los artículos de repo en filas para el listado imprimible.
func Listing[T entity.Item[T]](repo repository.InventoryRepository[T]) []ListingRow {
	items := repo.GetAllItems()
	rows := make([]ListingRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, ListingRow{ID: it.GetID(), Name: it.GetName(), Quantity: it.GetQuantity()})
	}
	return rows
}
