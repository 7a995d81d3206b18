package handlers

import (
	"errors"

	"gateway-discoveries/internal/core/domain"
	"gateway-discoveries/internal/core/services"
	"gateway-discoveries/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles the kiosk reference-data endpoints
type CatalogHandler struct {
	catalog *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListDestinations handles GET /api/destinations
func (h *CatalogHandler) ListDestinations(c *fiber.Ctx) error {
	destinations, err := h.catalog.ListDestinations(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch destinations")
	}
	return c.JSON(destinations)
}

// GetDestination handles GET /api/destinations/:id
func (h *CatalogHandler) GetDestination(c *fiber.Ctx) error {
	destination, err := h.catalog.GetDestination(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrDestinationNotFound) {
			return response.NotFound(c, "Destination not found")
		}
		return response.InternalServerError(c, "Failed to fetch destination")
	}
	return c.JSON(destination)
}

// ListAccommodations handles GET /api/accommodations
func (h *CatalogHandler) ListAccommodations(c *fiber.Ctx) error {
	accommodations, err := h.catalog.ListAccommodations(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch accommodations")
	}
	return c.JSON(accommodations)
}

// GetAccommodation handles GET /api/accommodations/:id
func (h *CatalogHandler) GetAccommodation(c *fiber.Ctx) error {
	accommodation, err := h.catalog.GetAccommodation(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAccommodationNotFound) {
			return response.NotFound(c, "Accommodation not found")
		}
		return response.InternalServerError(c, "Failed to fetch accommodation")
	}
	return c.JSON(accommodation)
}

// CreateAccommodation handles POST /api/accommodations (admin)
func (h *CatalogHandler) CreateAccommodation(c *fiber.Ctx) error {
	var in services.CreateAccommodationInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Name, type, and location are required")
	}

	accommodation, err := h.catalog.CreateAccommodation(c.Context(), &in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Name, type, and location are required")
		}
		return response.InternalServerError(c, "Failed to create accommodation")
	}
	return c.Status(fiber.StatusCreated).JSON(accommodation)
}

// ListFlights handles GET /api/flights with optional origin/destination
// airport-code filters ("all" disables a filter)
func (h *CatalogHandler) ListFlights(c *fiber.Ctx) error {
	flights, err := h.catalog.ListFlights(c.Context(), c.Query("origin"), c.Query("destination"))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch flights")
	}
	return c.JSON(flights)
}

// GetFlight handles GET /api/flights/:id
func (h *CatalogHandler) GetFlight(c *fiber.Ctx) error {
	flight, err := h.catalog.GetFlight(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			return response.NotFound(c, "Flight not found")
		}
		return response.InternalServerError(c, "Failed to fetch flight")
	}
	return c.JSON(flight)
}
