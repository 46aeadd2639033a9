package ledger

import (
	"fmt"
	"log"
	"time"

	"salon-backend/internal/audit"
	"salon-backend/internal/billing"
	"salon-backend/internal/models"
	"salon-backend/internal/state"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type SalesHistoryResponse struct {
	TotalRevenue float64              `json:"total_revenue"`
	TotalBills   int                  `json:"total_bills"`
	Records      []models.SalesRecord `json:"records"`
}

type SalesSummaryResponse struct {
	TotalRevenue float64     `json:"total_revenue"`
	TotalBills   int         `json:"total_bills"`
	Tables       []TableStat `json:"tables"`
}

// -------------------------------------------------
// GET /api/sales-history
// -------------------------------------------------
func ListSalesHistoryHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		app.Lock()
		defer app.Unlock()

		records := app.History
		if records == nil {
			records = []models.SalesRecord{}
		}

		return c.JSON(SalesHistoryResponse{
			TotalRevenue: billing.Round2(TotalRevenue(app.History)),
			TotalBills:   len(app.History),
			Records:      records,
		})
	}
}

// -------------------------------------------------
// GET /api/sales-history/summary
// Masa bazlı toplu görünüm, masa id'sine göre sıralı.
// -------------------------------------------------
func SalesSummaryHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		app.Lock()
		defer app.Unlock()

		stats := AggregateByTable(app.History)
		for i := range stats {
			stats[i].TotalSales = billing.Round2(stats[i].TotalSales)
		}

		return c.JSON(SalesSummaryResponse{
			TotalRevenue: billing.Round2(TotalRevenue(app.History)),
			TotalBills:   len(app.History),
			Tables:       stats,
		})
	}
}

// -------------------------------------------------
// DELETE /api/sales-history
// -------------------------------------------------
func ClearSalesHistoryHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		app.Lock()
		defer app.Unlock()

		revenue := TotalRevenue(app.History)
		cleared := Clear(app)

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "sales_history",
			Action:      models.AuditActionClear,
			Description: fmt.Sprintf("Satış geçmişi temizlendi: %d kayıt, toplam %.2f", cleared, revenue),
			Data:        fiber.Map{"cleared": cleared, "total_revenue": revenue},
		}); logErr != nil {
			// Log hatası kritik değil, sadece log'la
			log.Printf("Audit log yazılamadı: %v", logErr)
		}

		return c.JSON(fiber.Map{"cleared": cleared})
	}
}

// -------------------------------------------------
// GET /api/sales-history/export
// Defteri .xlsx dosyası olarak indirir.
// -------------------------------------------------
func ExportSalesHistoryHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		app.Lock()
		records := make([]models.SalesRecord, len(app.History))
		copy(records, app.History)
		app.Unlock()

		f := excelize.NewFile()
		defer f.Close()

		sheet := f.GetSheetName(0)
		headers := []string{"Bill ID", "Table", "Guests", "Items", "Subtotal", "Discount %", "Discount", "Tax", "Grand Total", "Issued At"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, rec := range records {
			values := []any{
				rec.BillID,
				rec.TableID,
				rec.GuestCount,
				rec.ItemCount,
				billing.Round2(rec.Subtotal),
				rec.DiscountPercent,
				billing.Round2(rec.DiscountAmount),
				billing.Round2(rec.Tax),
				billing.Round2(rec.GrandTotal),
				rec.IssuedAt.Format(time.RFC3339),
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales_history.xlsx"`)
		return c.Send(buf.Bytes())
	}
}
