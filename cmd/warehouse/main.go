// Command warehouse ejecuta la demostración de consola del inventario: siembra ambas
// categorías, las imprime y recorre los tres casos de error sin abortar.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Bodega-api/internal/application/warehouse"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/filestore"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/memory"
	"github.com/jhoicas/Bodega-api/pkg/config"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	// La consola es el reporte; los logs sólo si se piden con LOG_LEVEL=debug.
	log := logger.Nop()
	if cfg.App.LogLevel == "debug" {
		log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	}

	mgr := warehouse.NewManager(
		memory.NewInventoryRepository[entity.Electronic](),
		memory.NewInventoryRepository[entity.PerishableGood](),
		os.Stdout, log,
	)
	mgr.SeedData(time.Now())

	fmt.Println("Inventario de perecederos:")
	warehouse.PrintAllItems(mgr, mgr.Groceries())

	fmt.Println("\nInventario de electrónicos:")
	warehouse.PrintAllItems(mgr, mgr.Electronics())

	fmt.Println("\n--- Casos de error ---")

	// ID repetido: el Laptop existente no cambia.
	_ = warehouse.AddItem(mgr, mgr.Electronics(), entity.Electronic{ID: 1, Name: "Speaker", Quantity: 5, Brand: "Sony", WarrantyMonths: 12})

	// Eliminar un ID que no existe.
	_ = warehouse.RemoveItemByID(mgr, mgr.Groceries(), 999)

	// Cantidad negativa: el TV conserva 5.
	_, _ = warehouse.UpdateQuantity(mgr, mgr.Electronics(), 2, -10)

	if cfg.Snapshot.Driver != config.SnapshotFile {
		return
	}
	store, err := filestore.NewSnapshotStore(cfg.Snapshot.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "snapshots:", err)
		os.Exit(1)
	}
	snaps, err := mgr.SaveAll(context.Background(), store)
	if err != nil {
		fmt.Fprintln(os.Stderr, "guardar snapshot:", err)
		os.Exit(1)
	}
	fmt.Println()
	for _, s := range snaps {
		fmt.Printf("Snapshot %s guardado: %s (%d artículos)\n", s.Category, s.ID, len(s.Records))
	}
}
