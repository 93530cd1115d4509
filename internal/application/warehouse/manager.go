package warehouse

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

// Nombres de categoría usados en logs, rutas y snapshots.
const (
	CategoryElectronics = "electronics"
	CategoryGroceries   = "groceries"
)

// Manager orquesta un repositorio por categoría. Las categorías nunca se mezclan:
// cada operación genérica recibe el repositorio sobre el que actúa.
type Manager struct {
	electronics repository.InventoryRepository[entity.Electronic]
	groceries   repository.InventoryRepository[entity.PerishableGood]

	outMu sync.Mutex
	out   io.Writer
	log   *logger.Logger
	now   func() time.Time
}

// NewManager construye el orquestador. out recibe las líneas de reporte (consola, buffer);
// log recibe los eventos estructurados.
func NewManager(
	electronics repository.InventoryRepository[entity.Electronic],
	groceries repository.InventoryRepository[entity.PerishableGood],
	out io.Writer,
	log *logger.Logger,
) *Manager {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{
		electronics: electronics,
		groceries:   groceries,
		out:         out,
		log:         log,
		now:         time.Now,
	}
}

// Electronics devuelve el repositorio de electrónicos.
func (m *Manager) Electronics() repository.InventoryRepository[entity.Electronic] {
	return m.electronics
}

// Groceries devuelve el repositorio de perecederos.
func (m *Manager) Groceries() repository.InventoryRepository[entity.PerishableGood] {
	return m.groceries
}

// SeedData carga los artículos de ejemplo en ambas categorías. Conveniencia del llamador:
// un ID repetido se reporta y se sigue con el resto.
func (m *Manager) SeedData(now time.Time) {
	electronics := []entity.Electronic{
		{ID: 1, Name: "Laptop", Quantity: 10, Brand: "Lenovo", WarrantyMonths: 24},
		{ID: 2, Name: "TV", Quantity: 5, Brand: "Samsung", WarrantyMonths: 36},
	}
	groceries := []entity.PerishableGood{
		{ID: 1, Name: "Milk", Quantity: 20, ExpiryDate: now.AddDate(0, 0, 10)},
		{ID: 2, Name: "Bread", Quantity: 15, ExpiryDate: now.AddDate(0, 0, 5)},
	}
	for _, e := range electronics {
		_ = AddItem(m, m.electronics, e)
	}
	for _, g := range groceries {
		_ = AddItem(m, m.groceries, g)
	}
	m.log.Info().
		Int(CategoryElectronics, m.electronics.Len()).
		Int(CategoryGroceries, m.groceries.Len()).
		Msg("datos de ejemplo cargados")
}

// AddItem inserta item en repo; el fallo se reporta y se devuelve sin abortar.
func AddItem[T entity.Item[T]](m *Manager, repo repository.InventoryRepository[T], item T) error {
	if err := repo.AddItem(item); err != nil {
		m.reportFailure(categoryOf[T](), item.GetID(), err)
		return err
	}
	m.log.Debug().Str("category", categoryOf[T]()).Int("id", item.GetID()).Msg("artículo agregado")
	return nil
}

// PrintAllItems escribe una línea por artículo de repo con ID, nombre y cantidad. Sólo lectura.
func PrintAllItems[T entity.Item[T]](m *Manager, repo repository.InventoryRepository[T]) {
	items := repo.GetAllItems()

	m.outMu.Lock()
	defer m.outMu.Unlock()
	for _, it := range items {
		fmt.Fprintf(m.out, "ID: %d, Nombre: %s, Cantidad: %d\n", it.GetID(), it.GetName(), it.GetQuantity())
	}
}

// IncreaseStock suma delta a la cantidad del artículo id y devuelve el artículo
// actualizado. Si no existe o el resultado sería negativo, reporta el fallo, no muta
// nada y devuelve el error. La lectura y la escritura ocurren bajo el lock del
// repositorio (AdjustQuantity).
func IncreaseStock[T entity.Item[T]](m *Manager, repo repository.InventoryRepository[T], id, delta int) (T, error) {
	updated, err := repo.AdjustQuantity(id, delta)
	if err != nil {
		m.reportFailure(categoryOf[T](), id, err)
		return updated, err
	}
	m.printf("Stock incrementado para %s. Nueva cantidad: %d\n", updated.GetName(), updated.GetQuantity())
	m.log.Info().
		Str("category", categoryOf[T]()).
		Int("id", id).
		Int("delta", delta).
		Int("quantity", updated.GetQuantity()).
		Msg("stock incrementado")
	return updated, nil
}

// RemoveItemByID elimina el artículo id de repo; el fallo se reporta sin abortar.
func RemoveItemByID[T entity.Item[T]](m *Manager, repo repository.InventoryRepository[T], id int) error {
	if err := repo.RemoveItem(id); err != nil {
		m.reportFailure(categoryOf[T](), id, err)
		return err
	}
	m.printf("Artículo con ID %d eliminado.\n", id)
	m.log.Info().Str("category", categoryOf[T]()).Int("id", id).Msg("artículo eliminado")
	return nil
}

// UpdateQuantity reemplaza la cantidad del artículo id y devuelve cómo quedó; el fallo
// se reporta sin abortar.
func UpdateQuantity[T entity.Item[T]](m *Manager, repo repository.InventoryRepository[T], id, quantity int) (T, error) {
	updated, err := repo.ReplaceQuantity(id, quantity)
	if err != nil {
		m.reportFailure(categoryOf[T](), id, err)
		return updated, err
	}
	m.log.Info().Str("category", categoryOf[T]()).Int("id", id).Int("quantity", quantity).Msg("cantidad actualizada")
	return updated, nil
}

func (m *Manager) reportFailure(category string, id int, err error) {
	m.printf("Error: %v\n", err)
	m.log.Warn().Err(err).Str("category", category).Int("id", id).Msg("operación de inventario rechazada")
}

func (m *Manager) printf(format string, args ...any) {
	m.outMu.Lock()
	defer m.outMu.Unlock()
	fmt.Fprintf(m.out, format, args...)
}

// categoryOf resuelve el nombre de categoría de la variante T.
func categoryOf[T entity.Item[T]]() string {
	var zero T
	switch any(zero).(type) {
	case entity.Electronic:
		return CategoryElectronics
	case entity.PerishableGood:
		return CategoryGroceries
	default:
		return fmt.Sprintf("%T", zero)
	}
}
