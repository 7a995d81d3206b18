package repositories

import (
	"context"
	"errors"
	"time"

	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/core/domain"

	"gorm.io/gorm"
)

// sightingRepository implements SightingRepository on Postgres. This is
// the canonical contract: update is a full field replacement and the
// reported timestamp refreshes when the status changes.
type sightingRepository struct {
	db *gorm.DB
}

// NewSightingRepository creates a new sighting repository
func NewSightingRepository(db *gorm.DB) SightingRepository {
	return &sightingRepository{db: db}
}

// Create inserts a new sighting
func (r *sightingRepository) Create(ctx context.Context, sighting *models.AnimalSighting) error {
	return r.db.WithContext(ctx).Create(sighting).Error
}

// GetByID gets a sighting by ID
func (r *sightingRepository) GetByID(ctx context.Context, id string) (*models.AnimalSighting, error) {
	var sighting models.AnimalSighting
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&sighting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSightingNotFound
		}
		return nil, err
	}
	return &sighting, nil
}

// List returns all sightings, newest-reported first. Ties on reported_at
// break by insertion order.
func (r *sightingRepository) List(ctx context.Context) ([]*models.AnimalSighting, error) {
	var sightings []*models.AnimalSighting
	err := r.db.WithContext(ctx).
		Order("reported_at DESC, created_at DESC").
		Find(&sightings).Error
	return sightings, err
}

// ListRecent returns sightings with status recent or active, newest
// first, bounded to limit. Historical sightings are never included.
func (r *sightingRepository) ListRecent(ctx context.Context, limit int) ([]*models.AnimalSighting, error) {
	var sightings []*models.AnimalSighting
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{models.SightingStatusRecent, models.SightingStatusActive}).
		Order("reported_at DESC, created_at DESC").
		Limit(limit).
		Find(&sightings).Error
	return sightings, err
}

// Update replaces the sighting's fields. The reported timestamp is
// refreshed only when the new status differs from the stored status.
func (r *sightingRepository) Update(ctx context.Context, id string, upd *models.SightingUpdate) (*models.AnimalSighting, error) {
	sighting, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Status != sighting.Status {
		sighting.ReportedAt = time.Now()
	}
	sighting.Species = upd.Species
	sighting.Location = upd.Location
	sighting.Gate = upd.Gate
	sighting.Count = upd.Count
	sighting.Confidence = upd.Confidence
	sighting.Status = upd.Status

	if err := r.db.WithContext(ctx).Save(sighting).Error; err != nil {
		return nil, err
	}
	return sighting, nil
}

// Delete permanently removes a sighting and returns the removed record
func (r *sightingRepository) Delete(ctx context.Context, id string) (*models.AnimalSighting, error) {
	sighting, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&models.AnimalSighting{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return sighting, nil
}

// Stats computes the sighting summary counts
func (r *sightingRepository) Stats(ctx context.Context) (*models.SightingStats, error) {
	stats := &models.SightingStats{}

	if err := r.db.WithContext(ctx).Model(&models.AnimalSighting{}).
		Count(&stats.TotalSightings).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.AnimalSighting{}).
		Where("status = ?", models.SightingStatusRecent).
		Count(&stats.RecentCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.AnimalSighting{}).
		Where("status = ?", models.SightingStatusActive).
		Count(&stats.ActiveCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.AnimalSighting{}).
		Where("species IN ?", models.BigFiveSpecies).
		Count(&stats.BigFiveCount).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// Count counts all sightings
func (r *sightingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AnimalSighting{}).Count(&count).Error
	return count, err
}
