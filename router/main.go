package router

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mindanaodata/edu-portal/handlers"
	portal_handlers "github.com/mindanaodata/edu-portal/handlers/portal"
	table_handlers "github.com/mindanaodata/edu-portal/handlers/table"
	"github.com/mindanaodata/edu-portal/services"
	"github.com/mindanaodata/edu-portal/utils/middleware"
)

func SetupRoutes(app *fiber.App, datasets *services.DatasetService, exports *services.ExportService) {
	// Apply security middleware. The portal is a deliberate scraping target,
	// so the rate limit is generous.
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    os.Getenv("ALLOWED_ORIGINS"),
		RateLimitRequests: 300,
		RateLimitWindow:   1 * time.Minute,
	})

	// Initialize handlers
	portalHandler := portal_handlers.NewHandler(datasets)
	tableHandler := table_handlers.NewHandler(datasets, exports)

	// Health check endpoint (public)
	app.Get("/ping", handlers.HandleCheckHealth(datasets))

	// ==================== HTML portal ====================

	app.Get("/", portalHandler.Home)
	app.Get("/cities/:city", portalHandler.CityDashboard)
	app.Get("/tables", tableHandler.Index)
	app.Get("/tables/:name", tableHandler.Show)

	// Exports
	app.Get("/tables/:name/export.csv", tableHandler.ExportCSV)
	app.Get("/tables/:name/export.xlsx", tableHandler.ExportXLSX)
	app.Get("/export.xlsx", tableHandler.ExportWorkbook)

	// ==================== JSON API v1 ====================

	api := app.Group("/api/v1")
	api.Get("/tables", tableHandler.APIList)
	api.Get("/tables/:name", tableHandler.APIShow)
	api.Get("/summary", portalHandler.APISummary)
	api.Get("/cities", portalHandler.APICities)
}
