package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

func TestNewElectronic(t *testing.T) {
	e, err := entity.NewElectronic(1, "Laptop", 10, "Lenovo", 24)
	require.NoError(t, err)
	assert.Equal(t, 1, e.GetID())
	assert.Equal(t, "Laptop", e.GetName())
	assert.Equal(t, 10, e.GetQuantity())

	_, err = entity.NewElectronic(1, "Laptop", -1, "Lenovo", 24)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = entity.NewElectronic(1, "Laptop", 1, "Lenovo", -24)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewElectronic(1, "  ", 1, "Lenovo", 24)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewPerishableGood(t *testing.T) {
	expiry := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	p, err := entity.NewPerishableGood(1, "Milk", 20, expiry)
	require.NoError(t, err)
	assert.Equal(t, expiry, p.ExpiryDate)

	_, err = entity.NewPerishableGood(1, "Milk", -1, expiry)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = entity.NewPerishableGood(1, "Milk", 1, time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidate_ValoresSinConstructor(t *testing.T) {
	assert.NoError(t, entity.Electronic{ID: 1, Name: "Laptop", Quantity: 0, WarrantyMonths: 0}.Validate())
	assert.ErrorIs(t, entity.Electronic{ID: 5, Name: "X", Quantity: 1, WarrantyMonths: -3}.Validate(), domain.ErrInvalidInput)
	assert.ErrorIs(t, entity.Electronic{ID: 5, Name: "X", Quantity: -1}.Validate(), domain.ErrInvalidQuantity)

	assert.ErrorIs(t, entity.PerishableGood{ID: 9, Quantity: 1}.Validate(), domain.ErrInvalidInput)
	assert.ErrorIs(t, entity.PerishableGood{ID: 9, Name: "Milk", Quantity: 1}.Validate(), domain.ErrInvalidInput)
	assert.NoError(t, entity.PerishableGood{ID: 9, Name: "Milk", Quantity: 1, ExpiryDate: time.Now()}.Validate())
}

func TestWithQuantity_NoMutaOriginal(t *testing.T) {
	e := entity.Electronic{ID: 1, Name: "Laptop", Quantity: 10, Brand: "Lenovo", WarrantyMonths: 24}
	updated := e.WithQuantity(3)

	assert.Equal(t, 10, e.Quantity)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, e.Brand, updated.Brand)
}

func TestPerishableGood_IsExpired(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	bread := entity.PerishableGood{ID: 2, Name: "Bread", Quantity: 15, ExpiryDate: now.AddDate(0, 0, 5)}

	assert.False(t, bread.IsExpired(now))
	assert.True(t, bread.IsExpired(now.AddDate(0, 0, 5)))
}

func TestItemError_Mensaje(t *testing.T) {
	err := domain.NewItemError("remove", 999, domain.ErrNotFound)
	assert.Equal(t, "remove: el artículo con ID 999 no existe", err.Error())

	err = domain.NewItemError("update", 2, domain.ErrInvalidQuantity)
	assert.Equal(t, "update: artículo con ID 2: la cantidad no puede ser negativa", err.Error())
}
