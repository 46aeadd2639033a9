package tables

import (
	"errors"
	"fmt"
	"log"
	"time"

	"salon-backend/internal/audit"
	"salon-backend/internal/auth"
	"salon-backend/internal/billing"
	"salon-backend/internal/menu"
	"salon-backend/internal/models"
	"salon-backend/internal/order"
	"salon-backend/internal/state"

	"github.com/gofiber/fiber/v2"
)

type CreateTablesRequest struct {
	Count int `json:"count"`
}

type DeleteTableRequest struct {
	Password string `json:"password"`
}

type SetGuestsRequest struct {
	GuestCount int `json:"guest_count"`
}

type SetDiscountRequest struct {
	Discount float64 `json:"discount"`
}

type AddItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// httpError: Alan hatalarını HTTP durum kodlarına çevirir.
func httpError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidCount),
		errors.Is(err, ErrInvalidGuests),
		errors.Is(err, ErrInvalidDiscount),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, menu.ErrUnknownItem):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, order.ErrGuestsRequired):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, ErrTableNotFound), errors.Is(err, order.ErrLineNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrUnauthorized):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}

// -------------------------------------------------
// GET /api/tables
// -------------------------------------------------
func ListTablesHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		app.Lock()
		defer app.Unlock()

		if app.Tables == nil {
			return c.JSON([]*models.Table{})
		}
		return c.JSON(app.Tables)
	}
}

// -------------------------------------------------
// POST /api/tables
// -------------------------------------------------
func CreateTablesHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTablesRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		app.Lock()
		defer app.Unlock()

		created, err := CreateTables(app, body.Count)
		if err != nil {
			return httpError(err)
		}

		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// -------------------------------------------------
// DELETE /api/tables/:id  (parola korumalı)
// -------------------------------------------------
func DeleteTableHandler(app *state.App, az auth.Authorizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}

		var body DeleteTableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		app.Lock()
		defer app.Unlock()

		deleted, err := DeleteTable(app, id, body.Password, az)
		if err != nil {
			return httpError(err)
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "table",
			EntityID:    deleted.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Masa silindi: %d", deleted.ID),
			Data:        deleted,
		}); logErr != nil {
			// Log hatası kritik değil, sadece log'la
			log.Printf("Audit log yazılamadı: %v", logErr)
		}

		return c.JSON(fiber.Map{"deleted": deleted.ID})
	}
}

// -------------------------------------------------
// PUT /api/tables/:id/guests
// -------------------------------------------------
func SetGuestsHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}

		var body SetGuestsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		app.Lock()
		defer app.Unlock()

		t, err := SetGuestCount(app, id, body.GuestCount)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(t)
	}
}

// -------------------------------------------------
// PUT /api/tables/:id/discount
// -------------------------------------------------
func SetDiscountHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}

		var body SetDiscountRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		app.Lock()
		defer app.Unlock()

		t, err := SetDiscount(app, id, body.Discount)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(t)
	}
}

// -------------------------------------------------
// POST /api/tables/:id/items
// -------------------------------------------------
func AddItemHandler(app *state.App, catalog *menu.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}

		var body AddItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		app.Lock()
		defer app.Unlock()

		t, err := AddOrderLine(app, catalog, id, body.Name, body.Quantity, time.Now())
		if err != nil {
			return httpError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}

// -------------------------------------------------
// PUT /api/tables/:id/items/:index
// -------------------------------------------------
func UpdateItemHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}
		index, err := c.ParamsInt("index")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz satır index")
		}

		var body UpdateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		app.Lock()
		defer app.Unlock()

		t, err := UpdateOrderLine(app, id, index, body.Quantity)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(t)
	}
}

// -------------------------------------------------
// POST /api/tables/:id/items/:index/toggle
// -------------------------------------------------
func ToggleItemHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}
		index, err := c.ParamsInt("index")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz satır index")
		}

		app.Lock()
		defer app.Unlock()

		t, err := ToggleOrderLine(app, id, index)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(t)
	}
}

// -------------------------------------------------
// DELETE /api/tables/:id/items/:index
// -------------------------------------------------
func RemoveItemHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}
		index, err := c.ParamsInt("index")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz satır index")
		}

		app.Lock()
		defer app.Unlock()

		t, err := RemoveOrderLine(app, id, index)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(t)
	}
}

// -------------------------------------------------
// GET /api/tables/:id/bill
// Parasal özet her istekte yeniden hesaplanır, masada saklanmaz.
// -------------------------------------------------
func GetBillHandler(app *state.App, taxRate float64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}

		app.Lock()
		defer app.Unlock()

		t := app.FindTable(id)
		if t == nil {
			return httpError(ErrTableNotFound)
		}

		return c.JSON(billing.Calculate(t, taxRate).Rounded())
	}
}

// -------------------------------------------------
// POST /api/tables/:id/checkout
// Yanıt PDF adisyonun kendisidir; masa sıfırlanır, defter güncellenir.
// -------------------------------------------------
func CheckoutHandler(app *state.App, taxRate float64, sink BillSink) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}

		app.Lock()
		defer app.Unlock()

		inv, doc, err := Checkout(app, id, taxRate, sink, time.Now())
		if err != nil {
			return httpError(err)
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "table",
			EntityID:    inv.TableID,
			Action:      models.AuditActionCheckout,
			Description: fmt.Sprintf("Hesap kapandı: masa %d - %.2f", inv.TableID, inv.GrandTotal),
			Data:        inv,
		}); logErr != nil {
			log.Printf("Audit log yazılamadı: %v", logErr)
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="Bill_Table_%d.pdf"`, inv.TableID))
		return c.Send(doc)
	}
}
