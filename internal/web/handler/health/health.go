// Package health implements the liveness endpoint the load balancer
// polls. During graceful shutdown it flips to 503 so the LB drains this
// instance before the listener stops.
package health

import (
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/coachly/coach-backend/internal/web/handler"
)

// Path is the health check path.
const Path = "/health"

// Service is the health handler service.
type Service struct {
	alive *atomic.Bool
}

// Handler is the health handler.
var Handler = Service{}

// Init registers the health route. The alive flag is owned by the web
// service and cleared when shutdown starts.
func (s *Service) Init(app *fiber.App, alive *atomic.Bool) {
	if app == nil || alive == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.alive = alive

	app.Get(Path, s.Get)
}

// Get reports liveness.
func (s *Service) Get(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "shutting down",
		})
	}

	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
