package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Bodega-api/internal/application/warehouse"
)

var _ warehouse.SnapshotStore = (*SnapshotStore)(nil)

// DefaultRetention cuántas fotos por categoría se conservan.
const DefaultRetention = 5

var schemaSQL = []string{
	`CREATE TABLE IF NOT EXISTS inventory_snapshots (
		id        UUID PRIMARY KEY,
		category  TEXT        NOT NULL,
		taken_at  TIMESTAMPTZ NOT NULL,
		records   JSONB       NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_snapshots_category_taken
		ON inventory_snapshots (category, taken_at DESC)`,
}

// SnapshotStore implementa warehouse.SnapshotStore sobre PostgreSQL. Cada Save agrega
// una fila y poda las más viejas de la categoría; Load devuelve la más reciente.
type SnapshotStore struct {
	pool      *pgxpool.Pool
	tx        *TxRunner
	retention int
}

// NewSnapshotStore construye el adaptador. retention <= 0 usa DefaultRetention.
func NewSnapshotStore(pool *pgxpool.Pool, retention int) *SnapshotStore {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &SnapshotStore{pool: pool, tx: NewTxRunner(pool), retention: retention}
}

// EnsureSchema crea la tabla si no existe.
func (s *SnapshotStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaSQL {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema de snapshots: %w", err)
		}
	}
	return nil
}

// Save inserta la foto y poda el historial en la misma transacción.
func (s *SnapshotStore) Save(ctx context.Context, snap *warehouse.Snapshot) error {
	return s.tx.Run(ctx, func(tx pgx.Tx) error {
		insert := `
			INSERT INTO inventory_snapshots (id, category, taken_at, records)
			VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, insert, snap.ID, snap.Category, snap.TakenAt, snap.Records); err != nil {
			return fmt.Errorf("insert snapshot: %w", err)
		}
		prune := `
			DELETE FROM inventory_snapshots
			WHERE category = $1 AND id NOT IN (
				SELECT id FROM inventory_snapshots
				WHERE category = $1
				ORDER BY taken_at DESC
				LIMIT $2)`
		if _, err := tx.Exec(ctx, prune, snap.Category, s.retention); err != nil {
			return fmt.Errorf("podar snapshots: %w", err)
		}
		return nil
	})
}

// Load obtiene la foto más reciente de category.
func (s *SnapshotStore) Load(ctx context.Context, category string) (*warehouse.Snapshot, error) {
	query := `
		SELECT id::text, category, taken_at, records
		FROM inventory_snapshots
		WHERE category = $1
		ORDER BY taken_at DESC
		LIMIT 1`
	var snap warehouse.Snapshot
	err := s.pool.QueryRow(ctx, query, category).Scan(&snap.ID, &snap.Category, &snap.TakenAt, &snap.Records)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, warehouse.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return &snap, nil
}
