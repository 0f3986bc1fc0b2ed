package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Banner is the body of GET /.
const Banner = "Plate share server is available"

// Pinger reports whether the store answers. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Root answers with a plain-text banner.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString(Banner)
	}
}

// HealthCheck godoc
// @Summary Store health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 while the process is up.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
