package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/warehouse"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

const maxPageLimit = 100

// InventoryHandler expone por HTTP las operaciones de una categoría. Cada instancia
// trabaja sobre un único repositorio; las categorías nunca se mezclan.
type InventoryHandler[T entity.Item[T]] struct {
	mgr      *warehouse.Manager
	repo     repository.InventoryRepository[T]
	listing  warehouse.ListingGenerator
	title    string
	category string

	// decode arma el artículo desde el body validando los campos de construcción.
	decode func(c *fiber.Ctx) (T, error)
	// view convierte el artículo al DTO de salida.
	view func(T) any
}

// NewElectronicsHandler construye el handler de /api/electronics.
func NewElectronicsHandler(mgr *warehouse.Manager, listing warehouse.ListingGenerator) *InventoryHandler[entity.Electronic] {
	return &InventoryHandler[entity.Electronic]{
		mgr:      mgr,
		repo:     mgr.Electronics(),
		listing:  listing,
		title:    "Inventario de electrónicos",
		category: warehouse.CategoryElectronics,
		decode: func(c *fiber.Ctx) (entity.Electronic, error) {
			var in dto.CreateElectronicRequest
			if err := c.BodyParser(&in); err != nil {
				return entity.Electronic{}, errInvalidBody
			}
			return entity.NewElectronic(in.ID, in.Name, in.Quantity, in.Brand, in.WarrantyMonths)
		},
		view: func(e entity.Electronic) any {
			return dto.ElectronicResponse{
				ID:             e.ID,
				Name:           e.Name,
				Quantity:       e.Quantity,
				Brand:          e.Brand,
				WarrantyMonths: e.WarrantyMonths,
			}
		},
	}
}

// NewGroceriesHandler construye el handler de /api/groceries. now decide el campo expired.
func NewGroceriesHandler(mgr *warehouse.Manager, listing warehouse.ListingGenerator, now func() time.Time) *InventoryHandler[entity.PerishableGood] {
	if now == nil {
		now = time.Now
	}
	return &InventoryHandler[entity.PerishableGood]{
		mgr:      mgr,
		repo:     mgr.Groceries(),
		listing:  listing,
		title:    "Inventario de perecederos",
		category: warehouse.CategoryGroceries,
		decode: func(c *fiber.Ctx) (entity.PerishableGood, error) {
			var in dto.CreatePerishableRequest
			if err := c.BodyParser(&in); err != nil {
				return entity.PerishableGood{}, errInvalidBody
			}
			return entity.NewPerishableGood(in.ID, in.Name, in.Quantity, in.ExpiryDate)
		},
		view: func(p entity.PerishableGood) any {
			return dto.PerishableResponse{
				ID:         p.ID,
				Name:       p.Name,
				Quantity:   p.Quantity,
				ExpiryDate: p.ExpiryDate,
				Expired:    p.IsExpired(now()),
			}
		},
	}
}

// List godoc
// @Summary      Listar artículos de la categoría
// @Tags         inventory
// @Produce      json
// @Param        category  path   string  true   "electronics | groceries"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ItemListResponse[any]
// @Router       /api/{category} [get]
func (h *InventoryHandler[T]) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	page.DefaultPage()
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}

	items := h.repo.GetAllItems()
	total := len(items)
	start := min(page.Offset, total)
	end := min(start+page.Limit, total)

	out := make([]any, 0, end-start)
	for _, it := range items[start:end] {
		out = append(out, h.view(it))
	}
	return c.JSON(dto.ItemListResponse[any]{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         inventory
// @Produce      json
// @Param        category  path  string  true  "electronics | groceries"
// @Param        id        path  int     true  "ID del artículo"
// @Success      200  {object}  dto.ElectronicResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{category}/{id} [get]
func (h *InventoryHandler[T]) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}
	item, err := h.repo.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.view(item))
}

// Create godoc
// @Summary      Agregar artículo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        category  path  string  true  "electronics | groceries"
// @Param        body      body  dto.CreateElectronicRequest  true  "Artículo (o dto.CreatePerishableRequest)"
// @Success      201  {object}  dto.ElectronicResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/{category} [post]
func (h *InventoryHandler[T]) Create(c *fiber.Ctx) error {
	item, err := h.decode(c)
	if errors.Is(err, errInvalidBody) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err != nil {
		return writeError(c, err)
	}
	if err := warehouse.AddItem(h.mgr, h.repo, item); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.view(item))
}

// UpdateQuantity godoc
// @Summary      Reemplazar la cantidad de un artículo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        category  path  string  true  "electronics | groceries"
// @Param        id        path  int     true  "ID del artículo"
// @Param        body      body  dto.UpdateQuantityRequest  true  "Nueva cantidad"
// @Success      200  {object}  dto.ElectronicResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/{category}/{id}/quantity [put]
func (h *InventoryHandler[T]) UpdateQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity es requerido"})
	}
	item, err := warehouse.UpdateQuantity(h.mgr, h.repo, id, *in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.view(item))
}

// IncreaseStock godoc
// @Summary      Sumar (o restar) stock a un artículo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        category  path  string  true  "electronics | groceries"
// @Param        id        path  int     true  "ID del artículo"
// @Param        body      body  dto.IncreaseStockRequest  true  "Delta a aplicar"
// @Success      200  {object}  dto.ElectronicResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/{category}/{id}/stock [post]
func (h *InventoryHandler[T]) IncreaseStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}
	var in dto.IncreaseStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Delta == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "delta es requerido"})
	}
	item, err := warehouse.IncreaseStock(h.mgr, h.repo, id, *in.Delta)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.view(item))
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         inventory
// @Security     Bearer
// @Param        category  path  string  true  "electronics | groceries"
// @Param        id        path  int     true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{category}/{id} [delete]
func (h *InventoryHandler[T]) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}
	if err := warehouse.RemoveItemByID(h.mgr, h.repo, id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Report godoc
// @Summary      Listado PDF de la categoría
// @Tags         inventory
// @Produce      application/pdf
// @Param        category  path  string  true  "electronics | groceries"
// @Success      200  {file}  binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/{category}/report.pdf [get]
func (h *InventoryHandler[T]) Report(c *fiber.Ctx) error {
	if h.listing == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "PDF_DISABLED", Message: "generador de PDF no configurado"})
	}
	data, err := h.listing.GenerateListing(c.UserContext(), h.title, warehouse.Listing(h.repo))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", h.category+".pdf"))
	return c.Send(data)
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero"})
}
