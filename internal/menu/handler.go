package menu

import "github.com/gofiber/fiber/v2"

// -------------------------------------------------
// GET /api/menu
// -------------------------------------------------
func ListHandler(catalog *Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(catalog.Items())
	}
}
