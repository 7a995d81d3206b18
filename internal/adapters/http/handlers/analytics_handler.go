package handlers

import (
	"errors"

	"gateway-discoveries/internal/core/domain"
	"gateway-discoveries/internal/core/services"
	"gateway-discoveries/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles interaction recording and the admin
// analytics/dashboard endpoints
type AnalyticsHandler struct {
	analytics *services.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// RecordInteraction handles POST /api/analytics/interactions (public,
// the kiosks fire these unauthenticated)
func (h *AnalyticsHandler) RecordInteraction(c *fiber.Ctx) error {
	var in services.RecordInteractionInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Interaction type is required")
	}

	interaction, err := h.analytics.RecordInteraction(c.Context(), &in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Interaction type is required")
		}
		return response.InternalServerError(c, "Failed to record interaction")
	}
	return c.Status(fiber.StatusCreated).JSON(interaction)
}

// Summary handles GET /api/analytics (admin)
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.analytics.Summary(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch analytics")
	}
	return c.JSON(summary)
}

// Destinations handles GET /api/analytics/destinations (admin)
func (h *AnalyticsHandler) Destinations(c *fiber.Ctx) error {
	analytics, err := h.analytics.DestinationAnalytics(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch destination analytics")
	}
	return c.JSON(analytics)
}

// Dashboard handles GET /api/admin/dashboard (admin)
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := h.analytics.Dashboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch dashboard")
	}
	return c.JSON(dashboard)
}
