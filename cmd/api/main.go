// @title        Bodega API
// @version      1.0
// @description  Inventario de bodega por categorías (electrónicos y perecederos).
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/Bodega-api/docs"
	"github.com/jhoicas/Bodega-api/internal/application/warehouse"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/filestore"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Bodega-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/Bodega-api/internal/interfaces/http"
	"github.com/jhoicas/Bodega-api/pkg/config"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("snapshot_driver", cfg.Snapshot.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	mgr := warehouse.NewManager(
		memory.NewInventoryRepository[entity.Electronic](),
		memory.NewInventoryRepository[entity.PerishableGood](),
		nil, log,
	)

	store, closeStore, err := openSnapshotStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de snapshots")
	}
	defer closeStore()

	found := false
	if store != nil {
		found, err = mgr.LoadAll(ctx, store)
		if err != nil {
			log.Fatal().Err(err).Msg("cargar snapshot")
		}
	}
	if !found && cfg.App.Seed {
		mgr.SeedData(time.Now())
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "ok",
			"service":     cfg.App.Name,
			"electronics": mgr.Electronics().Len(),
			"groceries":   mgr.Groceries().Len(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Manager:   mgr,
		Listing:   infrapdf.NewMarotoListingGenerator(),
		Snapshots: store,
		Logger:    log,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Última foto antes de salir, para que la próxima sesión arranque donde quedó esta.
	if store != nil {
		if _, err := mgr.SaveAll(shutdownCtx, store); err != nil {
			log.Error().Err(err).Msg("guardar snapshot al apagar")
		}
	}

	log.Info().Msg("aplicación detenida")
}

// openSnapshotStore abre el almacén según SNAPSHOT_DRIVER. Con "none" devuelve nil.
func openSnapshotStore(ctx context.Context, cfg *config.Config) (warehouse.SnapshotStore, func(), error) {
	noop := func() {}
	switch cfg.Snapshot.Driver {
	case config.SnapshotFile:
		store, err := filestore.NewSnapshotStore(cfg.Snapshot.Path)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	case config.SnapshotPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		store := postgres.NewSnapshotStore(pool, postgres.DefaultRetention)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return store, pool.Close, nil
	case config.SnapshotRedis:
		client, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		return redisstore.NewSnapshotStore(client, cfg.App.Name+":"), func() { _ = client.Close() }, nil
	default:
		return nil, noop, nil
	}
}
