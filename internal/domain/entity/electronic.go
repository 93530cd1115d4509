package entity

import (
	"strings"

	"github.com/jhoicas/Bodega-api/internal/domain"
)

var _ Item[Electronic] = Electronic{}

// Electronic representa un artículo electrónico (marca y garantía inmutables).
type Electronic struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	Brand          string `json:"brand"`
	WarrantyMonths int    `json:"warranty_months"`
}

// NewElectronic valida los campos de construcción y devuelve el artículo.
func NewElectronic(id int, name string, quantity int, brand string, warrantyMonths int) (Electronic, error) {
	e := Electronic{
		ID:             id,
		Name:           name,
		Quantity:       quantity,
		Brand:          brand,
		WarrantyMonths: warrantyMonths,
	}
	if err := e.Validate(); err != nil {
		return Electronic{}, err
	}
	return e, nil
}

// Validate revisa las reglas de construcción: cantidad y garantía no negativas, nombre no vacío.
func (e Electronic) Validate() error {
	if e.Quantity < 0 {
		return domain.ErrInvalidQuantity
	}
	if strings.TrimSpace(e.Name) == "" || e.WarrantyMonths < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func (e Electronic) GetID() int       { return e.ID }
func (e Electronic) GetName() string  { return e.Name }
func (e Electronic) GetQuantity() int { return e.Quantity }

// WithQuantity devuelve una copia con la cantidad indicada.
func (e Electronic) WithQuantity(q int) Electronic {
	e.Quantity = q
	return e
}
