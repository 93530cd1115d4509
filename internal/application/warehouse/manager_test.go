package warehouse_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/warehouse"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/memory"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

var seedTime = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

// newSeededManager construye un Manager con repositorios en memoria y los datos de ejemplo.
func newSeededManager(t *testing.T) (*warehouse.Manager, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	m := warehouse.NewManager(
		memory.NewInventoryRepository[entity.Electronic](),
		memory.NewInventoryRepository[entity.PerishableGood](),
		&out,
		logger.Nop(),
	)
	m.SeedData(seedTime)
	out.Reset()
	return m, &out
}

func TestSeedData(t *testing.T) {
	m, _ := newSeededManager(t)

	assert.Equal(t, 2, m.Electronics().Len())
	assert.Equal(t, 2, m.Groceries().Len())

	milk, err := m.Groceries().GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Milk", milk.Name)
	assert.Equal(t, seedTime.AddDate(0, 0, 10), milk.ExpiryDate)
}

func TestPrintAllItems(t *testing.T) {
	m, out := newSeededManager(t)

	warehouse.PrintAllItems(m, m.Electronics())

	assert.Equal(t,
		"ID: 1, Nombre: Laptop, Cantidad: 10\nID: 2, Nombre: TV, Cantidad: 5\n",
		out.String())
	assert.Equal(t, 2, m.Electronics().Len(), "imprimir no cambia el estado")
}

// Escenario 2: incrementar 5 sobre 10 deja 15; un ID inexistente se reporta sin crear nada.
func TestIncreaseStock(t *testing.T) {
	m, out := newSeededManager(t)

	updated, err := warehouse.IncreaseStock(m, m.Electronics(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Quantity)
	laptop, _ := m.Electronics().GetByID(1)
	assert.Equal(t, 15, laptop.Quantity)
	assert.Contains(t, out.String(), "Stock incrementado para Laptop. Nueva cantidad: 15")

	out.Reset()
	_, err = warehouse.IncreaseStock(m, m.Electronics(), 999, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, strings.HasPrefix(out.String(), "Error: "), "el fallo se reporta como mensaje")
	assert.Equal(t, 2, m.Electronics().Len())
}

func TestIncreaseStock_ResultadoNegativoNoMuta(t *testing.T) {
	m, _ := newSeededManager(t)

	_, err := warehouse.IncreaseStock(m, m.Groceries(), 2, -100)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	bread, _ := m.Groceries().GetByID(2)
	assert.Equal(t, 15, bread.Quantity)
}

// Escenario 4: eliminar un ID inexistente se reporta y el proceso continúa.
func TestRemoveItemByID(t *testing.T) {
	m, out := newSeededManager(t)

	err := warehouse.RemoveItemByID(m, m.Groceries(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, out.String(), "Error: remove: el artículo con ID 999 no existe")
	assert.Equal(t, 2, m.Groceries().Len())

	out.Reset()
	require.NoError(t, warehouse.RemoveItemByID(m, m.Groceries(), 1))
	assert.Equal(t, "Artículo con ID 1 eliminado.\n", out.String())
	assert.Equal(t, 1, m.Groceries().Len())
}

func TestAddItem_DuplicadoSeReporta(t *testing.T) {
	m, out := newSeededManager(t)

	err := warehouse.AddItem(m, m.Electronics(), entity.Electronic{ID: 1, Name: "Speaker", Quantity: 5, Brand: "Sony", WarrantyMonths: 12})
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)
	assert.Contains(t, out.String(), "ya existe")

	laptop, _ := m.Electronics().GetByID(1)
	assert.Equal(t, "Laptop", laptop.Name)
}

func TestUpdateQuantity_NegativaSeReporta(t *testing.T) {
	m, out := newSeededManager(t)

	_, err := warehouse.UpdateQuantity(m, m.Electronics(), 2, -10)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Contains(t, out.String(), "la cantidad no puede ser negativa")

	tv, _ := m.Electronics().GetByID(2)
	assert.Equal(t, 5, tv.Quantity)
}

func TestUpdateQuantity_DevuelveArticuloActualizado(t *testing.T) {
	m, _ := newSeededManager(t)

	updated, err := warehouse.UpdateQuantity(m, m.Electronics(), 2, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)
	assert.Equal(t, "Samsung", updated.Brand)
}

func TestListing(t *testing.T) {
	m, _ := newSeededManager(t)

	rows := warehouse.Listing(m.Groceries())
	require.Len(t, rows, 2)
	assert.Equal(t, warehouse.ListingRow{ID: 1, Name: "Milk", Quantity: 20}, rows[0])
	assert.Equal(t, warehouse.ListingRow{ID: 2, Name: "Bread", Quantity: 15}, rows[1])
}
