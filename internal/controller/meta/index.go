package meta

import (
	"github.com/gofiber/fiber/v2"

	"github.com/peoplelens/attritiond/internal/pkg/bininfo"
)

func RegisterIndex(app *fiber.App) {
	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the attritiond API",
			"version": bininfo.Version,
			"endpoints": []string{
				"/api/v1/filters",
				"/api/v1/dashboard",
				"/api/v1/kpis",
				"/api/v1/groups/:dimension",
				"/api/v1/correlation",
				"/api/v1/distributions/:column",
			},
		})
	})
}
