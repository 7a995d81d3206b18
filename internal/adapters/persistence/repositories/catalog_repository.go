package repositories

import (
	"context"
	"errors"

	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Destinations
// ============================================================

type destinationRepository struct {
	db *gorm.DB
}

// NewDestinationRepository creates a new destination repository
func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Create(ctx context.Context, destination *models.Destination) error {
	return r.db.WithContext(ctx).Create(destination).Error
}

func (r *destinationRepository) List(ctx context.Context) ([]*models.Destination, error) {
	var destinations []*models.Destination
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&destinations).Error
	return destinations, err
}

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*models.Destination, error) {
	var destination models.Destination
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&destination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDestinationNotFound
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.Destination{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
}

func (r *destinationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Destination{}).Count(&count).Error
	return count, err
}

// ============================================================
// Accommodations
// ============================================================

type accommodationRepository struct {
	db *gorm.DB
}

// NewAccommodationRepository creates a new accommodation repository
func NewAccommodationRepository(db *gorm.DB) AccommodationRepository {
	return &accommodationRepository{db: db}
}

func (r *accommodationRepository) Create(ctx context.Context, accommodation *models.Accommodation) error {
	return r.db.WithContext(ctx).Create(accommodation).Error
}

func (r *accommodationRepository) List(ctx context.Context) ([]*models.Accommodation, error) {
	var accommodations []*models.Accommodation
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&accommodations).Error
	return accommodations, err
}

func (r *accommodationRepository) GetByID(ctx context.Context, id string) (*models.Accommodation, error) {
	var accommodation models.Accommodation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&accommodation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccommodationNotFound
		}
		return nil, err
	}
	return &accommodation, nil
}

func (r *accommodationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Accommodation{}).Count(&count).Error
	return count, err
}

// ============================================================
// Flights
// ============================================================

type flightRepository struct {
	db *gorm.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *gorm.DB) FlightRepository {
	return &flightRepository{db: db}
}

func (r *flightRepository) Create(ctx context.Context, flight *models.Flight) error {
	return r.db.WithContext(ctx).Create(flight).Error
}

func (r *flightRepository) List(ctx context.Context, originCode, destinationCode string) ([]*models.Flight, error) {
	q := r.db.WithContext(ctx).Model(&models.Flight{})
	if originCode != "" && originCode != "all" {
		q = q.Where("origin_code = ?", originCode)
	}
	if destinationCode != "" && destinationCode != "all" {
		q = q.Where("destination_code = ?", destinationCode)
	}

	var flights []*models.Flight
	err := q.Order("id ASC").Find(&flights).Error
	return flights, err
}

func (r *flightRepository) GetByID(ctx context.Context, id string) (*models.Flight, error) {
	var flight models.Flight
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&flight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return &flight, nil
}

func (r *flightRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Flight{}).Count(&count).Error
	return count, err
}
