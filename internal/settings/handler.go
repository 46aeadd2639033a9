package settings

import (
	"salon-backend/internal/state"

	"github.com/gofiber/fiber/v2"
)

type ThemeRequest struct {
	DarkMode bool `json:"dark_mode"`
}

type ThemeResponse struct {
	DarkMode bool `json:"dark_mode"`
}

// -------------------------------------------------
// GET /api/settings/theme
// -------------------------------------------------
func GetThemeHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		app.Lock()
		defer app.Unlock()

		return c.JSON(ThemeResponse{DarkMode: app.DarkMode})
	}
}

// -------------------------------------------------
// PUT /api/settings/theme
// -------------------------------------------------
func SetThemeHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ThemeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		app.Lock()
		defer app.Unlock()

		app.DarkMode = body.DarkMode
		app.SaveDarkMode()
		return c.JSON(ThemeResponse{DarkMode: app.DarkMode})
	}
}
