package handlers

import (
	"errors"

	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/core/domain"
	"gateway-discoveries/internal/core/services"
	"gateway-discoveries/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SightingHandler handles wildlife sighting endpoints
type SightingHandler struct {
	sightings *services.SightingService
}

// NewSightingHandler creates a new sighting handler
func NewSightingHandler(sightings *services.SightingService) *SightingHandler {
	return &SightingHandler{sightings: sightings}
}

// Recent handles GET /api/animal-sightings/recent (public). Serves the
// signage rotation; limit defaults to 10.
func (h *SightingHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", services.DefaultRecentLimit)

	sightings, err := h.sightings.ListRecent(c.Context(), limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch recent animal sightings")
	}
	return c.JSON(sightings)
}

// List handles GET /api/animal-sightings (staff)
func (h *SightingHandler) List(c *fiber.Ctx) error {
	sightings, err := h.sightings.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch animal sightings")
	}
	return c.JSON(sightings)
}

// Get handles GET /api/animal-sightings/:id (public)
func (h *SightingHandler) Get(c *fiber.Ctx) error {
	sighting, err := h.sightings.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSightingNotFound) {
			return response.NotFound(c, "Animal sighting not found")
		}
		return response.InternalServerError(c, "Failed to fetch animal sighting")
	}
	return c.JSON(sighting)
}

// Create handles POST /api/animal-sightings (staff)
func (h *SightingHandler) Create(c *fiber.Ctx) error {
	var in services.CreateSightingInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Species, location, and gate are required")
	}

	sighting, err := h.sightings.Create(c.Context(), &in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Species, location, and gate are required")
		}
		return response.InternalServerError(c, "Failed to create animal sighting")
	}
	return c.Status(fiber.StatusCreated).JSON(sighting)
}

// Update handles PUT /api/animal-sightings/:id (staff)
func (h *SightingHandler) Update(c *fiber.Ctx) error {
	var upd models.SightingUpdate
	if err := c.BodyParser(&upd); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	sighting, err := h.sightings.Update(c.Context(), c.Params("id"), &upd)
	if err != nil {
		if errors.Is(err, domain.ErrSightingNotFound) {
			return response.NotFound(c, "Animal sighting not found")
		}
		return response.InternalServerError(c, "Failed to update animal sighting")
	}
	return c.JSON(sighting)
}

// Delete handles DELETE /api/animal-sightings/:id (staff). Responds with
// a confirmation plus an echo of the removed record.
func (h *SightingHandler) Delete(c *fiber.Ctx) error {
	sighting, err := h.sightings.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSightingNotFound) {
			return response.NotFound(c, "Animal sighting not found")
		}
		return response.InternalServerError(c, "Failed to delete animal sighting")
	}

	return c.JSON(fiber.Map{
		"message":          "Animal sighting deleted successfully",
		"deleted_sighting": sighting,
	})
}

// Stats handles GET /api/animal-sightings/stats (staff)
func (h *SightingHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.sightings.Stats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch animal sighting statistics")
	}
	return c.JSON(stats)
}
