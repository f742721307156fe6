package routes

import (
	"app/config"
	"app/handlers"
	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Health stays open; the reporting endpoints are guarded when a JWT
	// secret is configured.
	api.Get("/health", handlers.HandleHealth)

	reports := api.Group("")
	if config.AppConfig.JWTSecret != "" {
		reports.Use(middleware.Authenticate)
	}

	reports.Get("/insights", handlers.HandleInsights)
	reports.Get("/forecast/:sku", handlers.HandleForecast)
	reports.Get("/anomalies", handlers.HandleAnomalies)
	reports.Post("/chat", handlers.HandleChat)
}
