package routes

import (
	"complaint-trends-service/internal/controller"

	"github.com/gofiber/fiber/v2"
)

// Register attaches all HTTP routes to the Fiber app.
func Register(app *fiber.App, trendController controller.TrendController) {
	app.Get("/alerts/trends", trendController.GetTrendAlerts)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
