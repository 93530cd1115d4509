package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/warehouse"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

// SnapshotHandler guarda bajo demanda la foto de ambas categorías.
type SnapshotHandler struct {
	mgr   *warehouse.Manager
	store warehouse.SnapshotStore
	log   *logger.Logger
}

// NewSnapshotHandler construye el handler. store nil deja la ruta respondiendo 503.
func NewSnapshotHandler(mgr *warehouse.Manager, store warehouse.SnapshotStore, log *logger.Logger) *SnapshotHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &SnapshotHandler{mgr: mgr, store: store, log: log}
}

// Save godoc
// @Summary      Guardar snapshot del inventario
// @Tags         snapshots
// @Security     Bearer
// @Produce      json
// @Success      201  {array}   dto.SnapshotResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/snapshots [post]
func (h *SnapshotHandler) Save(c *fiber.Ctx) error {
	if h.store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SNAPSHOTS_DISABLED", Message: "SNAPSHOT_DRIVER=none"})
	}
	snaps, err := h.mgr.SaveAll(c.UserContext(), h.store)
	if err != nil {
		h.log.Error().Err(err).Str("subject", GetSubject(c)).Msg("guardar snapshot")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SNAPSHOT_ERROR", Message: err.Error()})
	}
	out := make([]dto.SnapshotResponse, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, dto.SnapshotResponse{ID: s.ID, Category: s.Category, TakenAt: s.TakenAt, Items: len(s.Records)})
	}
	h.log.Info().Str("subject", GetSubject(c)).Int("snapshots", len(out)).Msg("snapshot manual")
	return c.Status(fiber.StatusCreated).JSON(out)
}
