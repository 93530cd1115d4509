package warehouse

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrSnapshotNotFound lo devuelven los SnapshotStore cuando la categoría nunca se guardó.
var ErrSnapshotNotFound = errors.New("snapshot no encontrado")

// Record es un artículo serializado dentro de un snapshot.
type Record struct {
	ID      int             `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// Snapshot foto completa de una categoría en un instante.
type Snapshot struct {
	ID       string    `json:"id"`
	Category string    `json:"category"`
	TakenAt  time.Time `json:"taken_at"`
	Records  []Record  `json:"records"`
}

// SnapshotStore persiste la última foto de cada categoría (archivo, PostgreSQL, Redis).
// Save reemplaza la foto anterior de snap.Category.
type SnapshotStore interface {
	Save(ctx context.Context, snap *Snapshot) error
	Load(ctx context.Context, category string) (*Snapshot, error)
}

// ListingRow fila del listado imprimible de una categoría.
type ListingRow struct {
	ID       int
	Name     string
	Quantity int
}

// ListingGenerator genera el listado de una categoría en PDF.
type ListingGenerator interface {
	GenerateListing(ctx context.Context, title string, rows []ListingRow) ([]byte, error)
}
