package postgres_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/warehouse"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Bodega-api/pkg/config"
)

// setupStore conecta a la base indicada en TEST_DATABASE_URL; sin ella el test se omite.
func setupStore(t *testing.T) (*postgres.SnapshotStore, string) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido, se omite el test de PostgreSQL")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	if err != nil {
		t.Skipf("PostgreSQL no disponible: %v", err)
	}
	t.Cleanup(pool.Close)

	store := postgres.NewSnapshotStore(pool, 2)
	require.NoError(t, store.EnsureSchema(ctx))

	category := "test-" + uuid.NewString()
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DELETE FROM inventory_snapshots WHERE category = $1", category)
	})
	return store, category
}

func snapshotAt(category string, at time.Time, qty int) *warehouse.Snapshot {
	payload, _ := json.Marshal(map[string]any{"id": 1, "name": "Laptop", "quantity": qty})
	return &warehouse.Snapshot{
		ID:       uuid.NewString(),
		Category: category,
		TakenAt:  at,
		Records:  []warehouse.Record{{ID: 1, Payload: payload}},
	}
}

func TestSnapshotStore_Postgres_UltimaFoto(t *testing.T) {
	store, category := setupStore(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(ctx, snapshotAt(category, base.Add(time.Duration(i)*time.Minute), 10+i)))
	}
	last := snapshotAt(category, base.Add(time.Hour), 99)
	require.NoError(t, store.Save(ctx, last))

	got, err := store.Load(ctx, category)
	require.NoError(t, err)
	assert.Equal(t, last.ID, got.ID)
	require.Len(t, got.Records, 1)
	assert.JSONEq(t, string(last.Records[0].Payload), string(got.Records[0].Payload))
}

func TestSnapshotStore_Postgres_NoExiste(t *testing.T) {
	store, category := setupStore(t)

	_, err := store.Load(context.Background(), category)
	assert.ErrorIs(t, err, warehouse.ErrSnapshotNotFound)
}
