package main

import (
	"log"
	"strings"

	"salon-backend/internal/audit"
	"salon-backend/internal/auth"
	"salon-backend/internal/config"
	"salon-backend/internal/database"
	"salon-backend/internal/ledger"
	"salon-backend/internal/menu"
	"salon-backend/internal/pdf"
	"salon-backend/internal/settings"
	"salon-backend/internal/state"
	"salon-backend/internal/storage"
	"salon-backend/internal/tables"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	// Veritabanı yoksa uygulama ölmez; durum yalnızca bellekte tutulur ve
	// süreç sonlandığında kaybolur.
	if err := database.Init(cfg); err != nil {
		log.Printf("[WARN] Kalıcılaştırma devre dışı, bellek-içi modda devam ediliyor: %v", err)
	}

	appState := state.New(storage.New(database.DB))
	appState.Load()

	catalog := menu.Default()
	authorizer := auth.StaticPassword{Plain: cfg.DeletePassword, Hash: cfg.DeletePasswordHash}
	billSink := pdf.Renderer{TaxRate: cfg.TaxRate, Currency: cfg.Currency}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Menü
	api.Get("/menu", menu.ListHandler(catalog))

	// Masalar
	api.Get("/tables", tables.ListTablesHandler(appState))
	api.Post("/tables", tables.CreateTablesHandler(appState))
	api.Delete("/tables/:id", tables.DeleteTableHandler(appState, authorizer))
	api.Put("/tables/:id/guests", tables.SetGuestsHandler(appState))
	api.Put("/tables/:id/discount", tables.SetDiscountHandler(appState))

	// Adisyon satırları
	api.Post("/tables/:id/items", tables.AddItemHandler(appState, catalog))
	api.Put("/tables/:id/items/:index", tables.UpdateItemHandler(appState))
	api.Post("/tables/:id/items/:index/toggle", tables.ToggleItemHandler(appState))
	api.Delete("/tables/:id/items/:index", tables.RemoveItemHandler(appState))

	// Fatura ve hesap kapama
	api.Get("/tables/:id/bill", tables.GetBillHandler(appState, cfg.TaxRate))
	api.Post("/tables/:id/checkout", tables.CheckoutHandler(appState, cfg.TaxRate, billSink))

	// Satış geçmişi
	api.Get("/sales-history", ledger.ListSalesHistoryHandler(appState))
	api.Get("/sales-history/summary", ledger.SalesSummaryHandler(appState))
	api.Get("/sales-history/export", ledger.ExportSalesHistoryHandler(appState))
	api.Delete("/sales-history", ledger.ClearSalesHistoryHandler(appState))

	// Tema
	api.Get("/settings/theme", settings.GetThemeHandler(appState))
	api.Put("/settings/theme", settings.SetThemeHandler(appState))

	// Audit logs
	api.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
