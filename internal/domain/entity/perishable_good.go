package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/Bodega-api/internal/domain"
)

var _ Item[PerishableGood] = PerishableGood{}

// PerishableGood representa un artículo perecedero de mercado con fecha de vencimiento.
type PerishableGood struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	ExpiryDate time.Time `json:"expiry_date"`
}

// NewPerishableGood valida los campos de construcción y devuelve el artículo.
func NewPerishableGood(id int, name string, quantity int, expiry time.Time) (PerishableGood, error) {
	p := PerishableGood{
		ID:         id,
		Name:       name,
		Quantity:   quantity,
		ExpiryDate: expiry,
	}
	if err := p.Validate(); err != nil {
		return PerishableGood{}, err
	}
	return p, nil
}

// Validate exige cantidad no negativa, nombre y fecha de vencimiento.
func (p PerishableGood) Validate() error {
	if p.Quantity < 0 {
		return domain.ErrInvalidQuantity
	}
	if strings.TrimSpace(p.Name) == "" || p.ExpiryDate.IsZero() {
		return domain.ErrInvalidInput
	}
	return nil
}

func (p PerishableGood) GetID() int       { return p.ID }
func (p PerishableGood) GetName() string  { return p.Name }
func (p PerishableGood) GetQuantity() int { return p.Quantity }

// WithQuantity devuelve una copia con la cantidad indicada.
func (p PerishableGood) WithQuantity(q int) PerishableGood {
	p.Quantity = q
	return p
}

// IsExpired indica si el artículo ya venció en el instante now.
func (p PerishableGood) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiryDate)
}
