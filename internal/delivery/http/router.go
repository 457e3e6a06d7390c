package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thermora/backend/internal/service"
)

// SetupRoutes configures all HTTP routes. A nil limiter disables rate limiting.
func SetupRoutes(app *fiber.App, thermalSvc *service.ThermalService, limiter *IPRateLimiter) {
	handler := NewHandler(thermalSvc)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	if limiter != nil {
		api.Use(limiter.Handler())
	}
	{
		api.Get("/dashboard", handler.GetDashboard)
		api.Get("/readings/current", handler.GetCurrentReadings)
		api.Get("/stats", handler.GetStats)
		api.Get("/evolution", handler.GetEvolution)
		api.Get("/hotspots", handler.GetHotspots)

		api.Get("/devices", handler.GetDevices)
		api.Get("/devices/:deviceId", handler.GetDeviceDetails)

		// Topology
		api.Get("/routes", handler.GetRoutes)
		api.Get("/stops", handler.GetBusStops)
		api.Get("/neighborhoods", handler.GetNeighborhoods)
		api.Get("/neighborhoods/heat", handler.GetNeighborhoodHeat)
		api.Get("/buses", handler.GetBusPositions)
	}
}

// ErrorHandler renders every error as {"error": true, "message": ...}.
// Errors that are not *fiber.Error become a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
