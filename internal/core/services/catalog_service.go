package services

import (
	"context"
	"strings"
	"time"

	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/adapters/persistence/repositories"
	"gateway-discoveries/internal/core/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Accommodation defaults applied when the admin omits optional fields
const (
	defaultAccommodationImage  = "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800"
	defaultAccommodationRating = 4.0
	defaultAccommodationPrice  = "R1,000"
)

// CreateAccommodationInput carries the fields for a new listing.
// Name, Type and Location are required.
type CreateAccommodationInput struct {
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	Location      string         `json:"location"`
	Description   string         `json:"description"`
	ImageURL      string         `json:"imageUrl"`
	Rating        float64        `json:"rating"`
	PricePerNight string         `json:"pricePerNight"`
	Amenities     []string       `json:"amenities"`
	Contact       models.Contact `json:"contact"`
}

// CatalogService serves the kiosk's read-mostly reference data:
// destinations, accommodations and flights.
type CatalogService struct {
	destinations   repositories.DestinationRepository
	accommodations repositories.AccommodationRepository
	flights        repositories.FlightRepository
	log            *logrus.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	destinations repositories.DestinationRepository,
	accommodations repositories.AccommodationRepository,
	flights repositories.FlightRepository,
	log *logrus.Logger,
) *CatalogService {
	return &CatalogService{
		destinations:   destinations,
		accommodations: accommodations,
		flights:        flights,
		log:            log,
	}
}

// ListDestinations returns every destination
func (s *CatalogService) ListDestinations(ctx context.Context) ([]*models.Destination, error) {
	return s.destinations.List(ctx)
}

// GetDestination returns a single destination
func (s *CatalogService) GetDestination(ctx context.Context, id string) (*models.Destination, error) {
	return s.destinations.GetByID(ctx, id)
}

// ListAccommodations returns every accommodation
func (s *CatalogService) ListAccommodations(ctx context.Context) ([]*models.Accommodation, error) {
	return s.accommodations.List(ctx)
}

// GetAccommodation returns a single accommodation
func (s *CatalogService) GetAccommodation(ctx context.Context, id string) (*models.Accommodation, error) {
	return s.accommodations.GetByID(ctx, id)
}

// CreateAccommodation adds a listing, filling optional fields with the
// kiosk defaults
func (s *CatalogService) CreateAccommodation(ctx context.Context, in *CreateAccommodationInput) (*models.Accommodation, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Type) == "" ||
		strings.TrimSpace(in.Location) == "" {
		return nil, domain.ErrInvalidInput
	}

	accommodation := &models.Accommodation{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Type:          in.Type,
		Location:      in.Location,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
		Rating:        in.Rating,
		PricePerNight: in.PricePerNight,
		Amenities:     in.Amenities,
		Contact:       in.Contact,
		CreatedAt:     time.Now(),
	}
	if accommodation.ImageURL == "" {
		accommodation.ImageURL = defaultAccommodationImage
	}
	if accommodation.Rating == 0 {
		accommodation.Rating = defaultAccommodationRating
	}
	if accommodation.PricePerNight == "" {
		accommodation.PricePerNight = defaultAccommodationPrice
	}
	if accommodation.Amenities == nil {
		accommodation.Amenities = []string{}
	}

	if err := s.accommodations.Create(ctx, accommodation); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"accommodation_id": accommodation.ID,
		"name":             accommodation.Name,
	}).Info("accommodation created")

	return accommodation, nil
}

// ListFlights returns flights, optionally filtered by origin and
// destination airport codes. Empty or "all" leaves a side unfiltered.
func (s *CatalogService) ListFlights(ctx context.Context, originCode, destinationCode string) ([]*models.Flight, error) {
	return s.flights.List(ctx, originCode, destinationCode)
}

// GetFlight returns a single flight
func (s *CatalogService) GetFlight(ctx context.Context, id string) (*models.Flight, error) {
	return s.flights.GetByID(ctx, id)
}
