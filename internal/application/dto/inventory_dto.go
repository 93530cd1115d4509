package dto

import "time"

// CreateElectronicRequest body para POST /api/electronics.
type CreateElectronicRequest struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	Brand          string `json:"brand"`
	WarrantyMonths int    `json:"warranty_months"`
}

// CreatePerishableRequest body para POST /api/groceries. expiry_date en RFC 3339.
type CreatePerishableRequest struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	ExpiryDate time.Time `json:"expiry_date"`
}

// UpdateQuantityRequest body para PUT /api/{categoria}/{id}/quantity.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// IncreaseStockRequest body para POST /api/{categoria}/{id}/stock.
type IncreaseStockRequest struct {
	Delta *int `json:"delta"`
}

// ElectronicResponse salida de un artículo electrónico.
type ElectronicResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	Brand          string `json:"brand"`
	WarrantyMonths int    `json:"warranty_months"`
}

// PerishableResponse salida de un perecedero; expired se calcula al responder.
type PerishableResponse struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	ExpiryDate time.Time `json:"expiry_date"`
	Expired    bool      `json:"expired"`
}

// ItemListResponse lista paginada de artículos de una categoría.
type ItemListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}

// SnapshotResponse resumen de un snapshot guardado.
type SnapshotResponse struct {
	ID       string    `json:"id"`
	Category string    `json:"category"`
	TakenAt  time.Time `json:"taken_at"`
	Items    int       `json:"items"`
}
