package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/crm-ventas-api/pkg/metrics"
)

// LocalRequestID clave de c.Locals donde requestid guarda el id de la petición.
const LocalRequestID = "requestid"

func requestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}

// RequestLogger registra una línea por petición con zerolog.
// 5xx se registran como error y 4xx como warn.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// Deja que el ErrorHandler escriba la respuesta antes de leer el status.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		var event *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			event = log.Error()
		case status >= fiber.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Str("request_id", requestID(c)).
			Msg("request")
		return nil
	}
}

// MetricsMiddleware alimenta los contadores de pkg/metrics. La ruta se etiqueta con el
// patrón registrado (/api/ventas/:id) para no crear una serie por id.
func MetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		done := m.Begin()
		defer done()
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.Observe(c.Method(), c.Route().Path, strconv.Itoa(status), time.Since(start).Seconds())
		return err
	}
}
