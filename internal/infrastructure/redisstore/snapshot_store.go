// Package redisstore guarda la última foto de cada categoría en una clave de Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Bodega-api/internal/application/warehouse"
	"github.com/jhoicas/Bodega-api/pkg/config"
)

const snapshotKeyPrefix = "snapshot:"

var _ warehouse.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore implementa warehouse.SnapshotStore sobre Redis (un JSON por clave).
type SnapshotStore struct {
	client redis.UniversalClient
	prefix string
}

// NewClient abre el cliente con la configuración de la app y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewSnapshotStore construye el adaptador. namespace se antepone a las claves (puede ir vacío).
func NewSnapshotStore(client redis.UniversalClient, namespace string) *SnapshotStore {
	return &SnapshotStore{client: client, prefix: namespace + snapshotKeyPrefix}
}

func (s *SnapshotStore) key(category string) string {
	return s.prefix + category
}

// Save reemplaza la foto de snap.Category. Sin TTL.
func (s *SnapshotStore) Save(ctx context.Context, snap *warehouse.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key(snap.Category), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Load lee la foto de category.
func (s *SnapshotStore) Load(ctx context.Context, category string) (*warehouse.Snapshot, error) {
	data, err := s.client.Get(ctx, s.key(category)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, warehouse.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var snap warehouse.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decodificar snapshot %s: %w", category, err)
	}
	return &snap, nil
}
