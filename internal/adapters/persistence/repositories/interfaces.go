package repositories

import (
	"context"
	"time"

	"gateway-discoveries/internal/adapters/persistence/models"
)

// Repositories return domain.ErrNotFound (or an entity-specific wrapper
// of it) for missing records so callers stay backend-agnostic across the
// Postgres and in-memory implementations.

// UserRepository is the credential store
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetActiveByEmail(ctx context.Context, email string) (*models.User, error)
	RecordLogin(ctx context.Context, id string, at time.Time) error
	Count(ctx context.Context) (int64, error)
}

// SightingRepository is the wildlife-sighting store
type SightingRepository interface {
	Create(ctx context.Context, sighting *models.AnimalSighting) error
	GetByID(ctx context.Context, id string) (*models.AnimalSighting, error)
	List(ctx context.Context) ([]*models.AnimalSighting, error)
	ListRecent(ctx context.Context, limit int) ([]*models.AnimalSighting, error)
	Update(ctx context.Context, id string, upd *models.SightingUpdate) (*models.AnimalSighting, error)
	Delete(ctx context.Context, id string) (*models.AnimalSighting, error)
	Stats(ctx context.Context) (*models.SightingStats, error)
	Count(ctx context.Context) (int64, error)
}

// DestinationRepository holds kiosk destination reference data
type DestinationRepository interface {
	Create(ctx context.Context, destination *models.Destination) error
	List(ctx context.Context) ([]*models.Destination, error)
	GetByID(ctx context.Context, id string) (*models.Destination, error)
	IncrementViews(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// AccommodationRepository holds lodging reference data
type AccommodationRepository interface {
	Create(ctx context.Context, accommodation *models.Accommodation) error
	List(ctx context.Context) ([]*models.Accommodation, error)
	GetByID(ctx context.Context, id string) (*models.Accommodation, error)
	Count(ctx context.Context) (int64, error)
}

// FlightRepository holds flight reference data
type FlightRepository interface {
	Create(ctx context.Context, flight *models.Flight) error
	// List filters by origin/destination code; empty or "all" means no filter.
	List(ctx context.Context, originCode, destinationCode string) ([]*models.Flight, error)
	GetByID(ctx context.Context, id string) (*models.Flight, error)
	Count(ctx context.Context) (int64, error)
}

// InteractionRepository records kiosk interactions for analytics
type InteractionRepository interface {
	Create(ctx context.Context, interaction *models.Interaction) error
	Count(ctx context.Context) (int64, error)
	CountByType(ctx context.Context, interactionType string) (int64, error)
	DailyCounts(ctx context.Context, days int) ([]models.DailyCount, error)
}
