package repositories

import (
	"context"
	"sort"
	"sync"

	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/core/domain"
)

// memorySightingRepository implements SightingRepository as an owned
// in-memory store, used when no database is configured. It keeps the
// fallback store's historical quirks: update merges only the fields the
// caller supplied and never touches the reported timestamp.
type memorySightingRepository struct {
	mu        sync.RWMutex
	sightings []*models.AnimalSighting // head = most recently inserted
}

// NewMemorySightingRepository creates an in-memory sighting repository
func NewMemorySightingRepository() SightingRepository {
	return &memorySightingRepository{}
}

func (r *memorySightingRepository) Create(ctx context.Context, sighting *models.AnimalSighting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := *sighting
	r.sightings = append([]*models.AnimalSighting{&s}, r.sightings...)
	return nil
}

func (r *memorySightingRepository) GetByID(ctx context.Context, id string) (*models.AnimalSighting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sightings {
		if s.ID == id {
			out := *s
			return &out, nil
		}
	}
	return nil, domain.ErrSightingNotFound
}

func (r *memorySightingRepository) List(ctx context.Context) ([]*models.AnimalSighting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshotOrdered(func(*models.AnimalSighting) bool { return true }, 0), nil
}

func (r *memorySightingRepository) ListRecent(ctx context.Context, limit int) ([]*models.AnimalSighting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshotOrdered(func(s *models.AnimalSighting) bool {
		return s.Status == models.SightingStatusRecent || s.Status == models.SightingStatusActive
	}, limit), nil
}

// snapshotOrdered copies matching records newest-reported first. The
// stable sort preserves insertion order (head-first) for equal timestamps.
// Callers must hold at least the read lock.
func (r *memorySightingRepository) snapshotOrdered(match func(*models.AnimalSighting) bool, limit int) []*models.AnimalSighting {
	out := make([]*models.AnimalSighting, 0, len(r.sightings))
	for _, s := range r.sightings {
		if match(s) {
			c := *s
			out = append(out, &c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReportedAt.After(out[j].ReportedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r *memorySightingRepository) Update(ctx context.Context, id string, upd *models.SightingUpdate) (*models.AnimalSighting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.sightings {
		if s.ID != id {
			continue
		}

		// Partial merge: zero-valued fields keep their prior values,
		// and the reported timestamp is left as-is.
		if upd.Species != "" {
			s.Species = upd.Species
		}
		if upd.Location != "" {
			s.Location = upd.Location
		}
		if upd.Gate != "" {
			s.Gate = upd.Gate
		}
		if upd.Count != 0 {
			s.Count = upd.Count
		}
		if upd.Confidence != 0 {
			s.Confidence = upd.Confidence
		}
		if upd.Status != "" {
			s.Status = upd.Status
		}

		out := *s
		return &out, nil
	}
	return nil, domain.ErrSightingNotFound
}

func (r *memorySightingRepository) Delete(ctx context.Context, id string) (*models.AnimalSighting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.sightings {
		if s.ID == id {
			out := *s
			r.sightings = append(r.sightings[:i], r.sightings[i+1:]...)
			return &out, nil
		}
	}
	return nil, domain.ErrSightingNotFound
}

func (r *memorySightingRepository) Stats(ctx context.Context) (*models.SightingStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &models.SightingStats{TotalSightings: int64(len(r.sightings))}
	for _, s := range r.sightings {
		switch s.Status {
		case models.SightingStatusRecent:
			stats.RecentCount++
		case models.SightingStatusActive:
			stats.ActiveCount++
		}
		if s.IsBigFive() {
			stats.BigFiveCount++
		}
	}
	return stats, nil
}

func (r *memorySightingRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.sightings)), nil
}
