package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/warehouse"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/pkg/jwt"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Manager   *warehouse.Manager
	Listing   warehouse.ListingGenerator // nil: /report.pdf responde 503
	Snapshots warehouse.SnapshotStore    // nil: /api/snapshots responde 503
	Logger    *logger.Logger
	JWTSecret string
	Now       func() time.Time
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	auth := AuthMiddleware(deps.JWTSecret)

	// Electrónicos y perecederos: lectura pública, escritura con rol
	registerCategory(api.Group("/"+warehouse.CategoryElectronics), auth,
		NewElectronicsHandler(deps.Manager, deps.Listing))
	registerCategory(api.Group("/"+warehouse.CategoryGroceries), auth,
		NewGroceriesHandler(deps.Manager, deps.Listing, deps.Now))

	// Snapshots (sólo admin)
	snapshotHandler := NewSnapshotHandler(deps.Manager, deps.Snapshots, deps.Logger)
	api.Post("/snapshots", auth, RequireRole(jwt.RoleAdmin), snapshotHandler.Save)
}

// registerCategory monta las rutas de una categoría. /report.pdf va antes de /:id.
func registerCategory[T entity.Item[T]](g fiber.Router, auth fiber.Handler, h *InventoryHandler[T]) {
	writers := RequireRole(jwt.RoleAdmin, jwt.RoleBodeguero)

	g.Get("/", h.List)
	g.Get("/report.pdf", h.Report)
	g.Get("/:id", h.GetByID)
	g.Post("/", auth, writers, h.Create)
	g.Put("/:id/quantity", auth, writers, h.UpdateQuantity)
	g.Post("/:id/stock", auth, writers, h.IncreaseStock)
	g.Delete("/:id", auth, RequireRole(jwt.RoleAdmin), h.Delete)
}
