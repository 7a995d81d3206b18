package services

import (
	"context"
	"strings"
	"time"

	"gateway-discoveries/internal/adapters/cache"
	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/adapters/persistence/repositories"
	"gateway-discoveries/internal/core/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultRecentLimit caps the public recent-sightings feed
const DefaultRecentLimit = 10

// CreateSightingInput carries the fields a ranger submits for a new
// sighting. Species, Location and Gate are required; the rest default.
type CreateSightingInput struct {
	Species    string `json:"species"`
	Location   string `json:"location"`
	Gate       string `json:"gate"`
	Count      int    `json:"count"`
	Confidence int    `json:"confidence"`
	Status     string `json:"status"`
	ImageURL   string `json:"image"`
}

// SightingService handles wildlife sighting reads and staff mutations.
// Every mutation invalidates the recent-feed cache and publishes a
// change event; both are best-effort and never fail the request.
type SightingService struct {
	sightings repositories.SightingRepository
	cache     *cache.Cache
	log       *logrus.Logger
}

// NewSightingService creates a new sighting service
func NewSightingService(sightings repositories.SightingRepository, c *cache.Cache, log *logrus.Logger) *SightingService {
	return &SightingService{sightings: sightings, cache: c, log: log}
}

// ListRecent returns the newest recent/active sightings, newest first.
// limit <= 0 falls back to DefaultRecentLimit. Only the default-limit
// feed is served from cache; custom limits always hit the store.
func (s *SightingService) ListRecent(ctx context.Context, limit int) ([]*models.AnimalSighting, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	if limit == DefaultRecentLimit {
		if cached, ok := s.cache.GetRecent(ctx); ok {
			return cached, nil
		}
	}

	sightings, err := s.sightings.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	if limit == DefaultRecentLimit {
		s.cache.SetRecent(ctx, sightings)
	}
	return sightings, nil
}

// List returns every sighting regardless of status, newest first
func (s *SightingService) List(ctx context.Context) ([]*models.AnimalSighting, error) {
	return s.sightings.List(ctx)
}

// GetByID returns a single sighting
func (s *SightingService) GetByID(ctx context.Context, id string) (*models.AnimalSighting, error) {
	return s.sightings.GetByID(ctx, id)
}

// Create records a new sighting. Missing optional fields take the
// standard defaults and the report timestamp is set server-side.
func (s *SightingService) Create(ctx context.Context, in *CreateSightingInput) (*models.AnimalSighting, error) {
	if strings.TrimSpace(in.Species) == "" ||
		strings.TrimSpace(in.Location) == "" ||
		strings.TrimSpace(in.Gate) == "" {
		return nil, domain.ErrInvalidInput
	}

	sighting := &models.AnimalSighting{
		ID:         uuid.New().String(),
		Species:    in.Species,
		Location:   in.Location,
		Gate:       in.Gate,
		Count:      in.Count,
		Confidence: in.Confidence,
		Status:     in.Status,
		ImageURL:   in.ImageURL,
		ReportedAt: time.Now(),
	}
	if sighting.Count <= 0 {
		sighting.Count = models.DefaultSightingCount
	}
	if sighting.Confidence <= 0 {
		sighting.Confidence = models.DefaultSightingConfidence
	}
	if sighting.Status == "" {
		sighting.Status = models.DefaultSightingStatus
	}

	if err := s.sightings.Create(ctx, sighting); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"sighting_id": sighting.ID,
		"species":     sighting.Species,
		"gate":        sighting.Gate,
	}).Info("sighting reported")

	s.cache.Invalidate(ctx)
	s.cache.Publish(ctx, cache.Event{
		Action:     "created",
		SightingID: sighting.ID,
		Species:    sighting.Species,
		OccurredAt: time.Now(),
	})
	return sighting, nil
}

// Update rewrites a sighting's fields
func (s *SightingService) Update(ctx context.Context, id string, upd *models.SightingUpdate) (*models.AnimalSighting, error) {
	sighting, err := s.sightings.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.cache.Publish(ctx, cache.Event{
		Action:     "updated",
		SightingID: sighting.ID,
		Species:    sighting.Species,
		OccurredAt: time.Now(),
	})
	return sighting, nil
}

// Delete removes a sighting and returns the deleted record
func (s *SightingService) Delete(ctx context.Context, id string) (*models.AnimalSighting, error) {
	sighting, err := s.sightings.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"sighting_id": sighting.ID,
		"species":     sighting.Species,
	}).Info("sighting deleted")

	s.cache.Invalidate(ctx)
	s.cache.Publish(ctx, cache.Event{
		Action:     "deleted",
		SightingID: sighting.ID,
		Species:    sighting.Species,
		OccurredAt: time.Now(),
	})
	return sighting, nil
}

// Stats returns aggregate sighting counts
func (s *SightingService) Stats(ctx context.Context) (*models.SightingStats, error) {
	return s.sightings.Stats(ctx)
}

// WarmRecentCache re-primes the recent-sightings cache entry. Used by
// the background warmer so kiosk reads rarely see a cold cache.
func (s *SightingService) WarmRecentCache(ctx context.Context) error {
	if !s.cache.Enabled() {
		return nil
	}

	sightings, err := s.sightings.ListRecent(ctx, DefaultRecentLimit)
	if err != nil {
		return err
	}
	s.cache.SetRecent(ctx, sightings)
	return nil
}
