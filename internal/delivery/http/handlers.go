package http

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/thermora/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	thermalSvc *service.ThermalService
}

// NewHandler creates a new handler
func NewHandler(thermalSvc *service.ThermalService) *Handler {
	return &Handler{thermalSvc: thermalSvc}
}

func success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func list[T any](c *fiber.Ctx, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

func internalError(what string, err error) error {
	log.Printf("Failed to fetch %s: %v", what, err)
	return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch "+what)
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	status := "ok"
	code := fiber.StatusOK
	if err := h.thermalSvc.Health(c.UserContext()); err != nil {
		log.Printf("Health check failed: %v", err)
		status = "degraded"
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"service": "thermora-backend",
		"version": "1.0.0",
	})
}

// GetCurrentReadings returns the readings of the last five minutes
func (h *Handler) GetCurrentReadings(c *fiber.Ctx) error {
	readings, err := h.thermalSvc.CurrentReadings(c.UserContext())
	if err != nil {
		return internalError("readings", err)
	}
	return list(c, readings)
}

// GetStats returns the headline temperature statistics
func (h *Handler) GetStats(c *fiber.Ctx) error {
	stats, err := h.thermalSvc.TemperatureStats(c.UserContext())
	if err != nil {
		return internalError("temperature stats", err)
	}
	return success(c, stats)
}

// GetEvolution returns the 24h evolution next to the historical curve
func (h *Handler) GetEvolution(c *fiber.Ctx) error {
	evolution, err := h.thermalSvc.Evolution(c.UserContext())
	if err != nil {
		return internalError("evolution", err)
	}
	return success(c, evolution)
}

// GetHotspots returns today's hotspots, hottest first
func (h *Handler) GetHotspots(c *fiber.Ctx) error {
	hotspots, err := h.thermalSvc.Hotspots(c.UserContext())
	if err != nil {
		return internalError("hotspots", err)
	}
	return list(c, hotspots)
}

// GetDevices returns the status of every device
func (h *Handler) GetDevices(c *fiber.Ctx) error {
	devices, err := h.thermalSvc.Devices(c.UserContext())
	if err != nil {
		return internalError("devices", err)
	}
	return list(c, devices)
}

// GetDeviceDetails returns one device or 404
func (h *Handler) GetDeviceDetails(c *fiber.Ctx) error {
	deviceID := c.Params("deviceId")

	detail, err := h.thermalSvc.DeviceDetails(c.UserContext(), deviceID)
	if err != nil {
		return internalError("device details", err)
	}
	if detail == nil {
		return fiber.NewError(fiber.StatusNotFound, "Device not found: "+deviceID)
	}
	return success(c, detail)
}

// GetRoutes returns the active routes
func (h *Handler) GetRoutes(c *fiber.Ctx) error {
	routes, err := h.thermalSvc.Routes(c.UserContext())
	if err != nil {
		return internalError("routes", err)
	}
	return list(c, routes)
}

// GetBusStops returns every bus stop
func (h *Handler) GetBusStops(c *fiber.Ctx) error {
	stops, err := h.thermalSvc.BusStops(c.UserContext())
	if err != nil {
		return internalError("bus stops", err)
	}
	return list(c, stops)
}

// GetNeighborhoods returns the active neighborhoods
func (h *Handler) GetNeighborhoods(c *fiber.Ctx) error {
	neighborhoods, err := h.thermalSvc.Neighborhoods(c.UserContext())
	if err != nil {
		return internalError("neighborhoods", err)
	}
	return list(c, neighborhoods)
}

// GetNeighborhoodHeat returns current heat per neighborhood
func (h *Handler) GetNeighborhoodHeat(c *fiber.Ctx) error {
	heat, err := h.thermalSvc.NeighborhoodHeat(c.UserContext())
	if err != nil {
		return internalError("neighborhood heat", err)
	}
	return list(c, heat)
}

// GetBusPositions returns where the demo buses are now
func (h *Handler) GetBusPositions(c *fiber.Ctx) error {
	positions, err := h.thermalSvc.BusPositions(c.UserContext())
	if err != nil {
		return internalError("bus positions", err)
	}
	return list(c, positions)
}

// GetDashboard returns the combined dashboard view
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.thermalSvc.Dashboard(c.UserContext())
	if err != nil {
		return internalError("dashboard data", err)
	}
	return success(c, data)
}
