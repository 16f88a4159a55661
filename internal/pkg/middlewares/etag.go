package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/peoplelens/attritiond/internal/pkg/cachectrl"
)

// NotModified answers 304 when the handler set an ETag the client already holds.
func NotModified() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead {
			return nil
		}
		if c.Response().StatusCode() != fiber.StatusOK {
			return nil
		}
		if cachectrl.Fresh(c) {
			c.Status(fiber.StatusNotModified)
			c.Response().ResetBody()
		}
		return nil
	}
}
