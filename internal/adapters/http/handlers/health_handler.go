package handlers

import (
	"time"

	"gateway-discoveries/internal/config"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Version is the API version reported by the health endpoint
const Version = "1.0.0"

// HealthHandler handles the health check endpoint
type HealthHandler struct {
	cfg *config.Config
	db  *gorm.DB
}

// NewHealthHandler creates a new health handler. db may be nil when the
// in-memory store is active.
func NewHealthHandler(cfg *config.Config, db *gorm.DB) *HealthHandler {
	return &HealthHandler{cfg: cfg, db: db}
}

// Check handles GET /api/health (public)
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	store := "memory"
	if h.db != nil {
		store = "postgres"
		if err := config.DatabaseHealthCheck(h.db); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":    "DEGRADED",
				"message":   "Database unreachable",
				"timestamp": time.Now().Format(time.RFC3339),
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":      "OK",
		"message":     "Gateway Discoveries Backend is running!",
		"timestamp":   time.Now().Format(time.RFC3339),
		"environment": h.cfg.AppMode,
		"version":     Version,
		"store":       store,
	})
}
