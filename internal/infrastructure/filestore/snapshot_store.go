// Package filestore guarda los snapshots de inventario como un archivo JSON por categoría.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/Bodega-api/internal/application/warehouse"
)

var _ warehouse.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore implementa warehouse.SnapshotStore sobre el sistema de archivos.
type SnapshotStore struct {
	dir string
}

// NewSnapshotStore crea el directorio si no existe.
func NewSnapshotStore(dir string) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de snapshots: %w", err)
	}
	return &SnapshotStore{dir: dir}, nil
}

func (s *SnapshotStore) path(category string) string {
	return filepath.Join(s.dir, category+".json")
}

// Save escribe en un archivo temporal y lo renombra, así un fallo a mitad no deja JSON truncado.
func (s *SnapshotStore) Save(_ context.Context, snap *warehouse.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, snap.Category+"-*.tmp")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(snap.Category)); err != nil {
		return fmt.Errorf("reemplazar snapshot: %w", err)
	}
	return nil
}

// Load lee la última foto guardada de category.
func (s *SnapshotStore) Load(_ context.Context, category string) (*warehouse.Snapshot, error) {
	data, err := os.ReadFile(s.path(category))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, warehouse.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	var snap warehouse.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decodificar snapshot %s: %w", category, err)
	}
	return &snap, nil
}
