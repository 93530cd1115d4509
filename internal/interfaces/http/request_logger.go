package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/Bodega-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, estado y latencia.
// Debe ir después de requestid.New() para incluir el request_id.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		reqLog := log
		if rid, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok && rid != "" {
			reqLog = log.WithStr("request_id", rid)
		}
		status := c.Response().StatusCode()
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("subject", GetSubject(c)).
			Msg("petición HTTP")
		return err
	}
}
