package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/core/domain"
)

// ============================================================
// Destinations
// ============================================================

type memoryDestinationRepository struct {
	mu           sync.RWMutex
	destinations []*models.Destination
}

// NewMemoryDestinationRepository creates an in-memory destination repository
func NewMemoryDestinationRepository() DestinationRepository {
	return &memoryDestinationRepository{}
}

func (r *memoryDestinationRepository) Create(ctx context.Context, destination *models.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := *destination
	r.destinations = append(r.destinations, &d)
	return nil
}

func (r *memoryDestinationRepository) List(ctx context.Context) ([]*models.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Destination, 0, len(r.destinations))
	for _, d := range r.destinations {
		c := *d
		out = append(out, &c)
	}
	return out, nil
}

func (r *memoryDestinationRepository) GetByID(ctx context.Context, id string) (*models.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.destinations {
		if d.ID == id {
			c := *d
			return &c, nil
		}
	}
	return nil, domain.ErrDestinationNotFound
}

func (r *memoryDestinationRepository) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.destinations {
		if d.ID == id {
			d.Views++
			return nil
		}
	}
	return domain.ErrDestinationNotFound
}

func (r *memoryDestinationRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.destinations)), nil
}

// ============================================================
// Accommodations
// ============================================================

type memoryAccommodationRepository struct {
	mu             sync.RWMutex
	accommodations []*models.Accommodation
}

// NewMemoryAccommodationRepository creates an in-memory accommodation repository
func NewMemoryAccommodationRepository() AccommodationRepository {
	return &memoryAccommodationRepository{}
}

func (r *memoryAccommodationRepository) Create(ctx context.Context, accommodation *models.Accommodation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := *accommodation
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	r.accommodations = append(r.accommodations, &a)
	return nil
}

func (r *memoryAccommodationRepository) List(ctx context.Context) ([]*models.Accommodation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Accommodation, 0, len(r.accommodations))
	for _, a := range r.accommodations {
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

func (r *memoryAccommodationRepository) GetByID(ctx context.Context, id string) (*models.Accommodation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.accommodations {
		if a.ID == id {
			c := *a
			return &c, nil
		}
	}
	return nil, domain.ErrAccommodationNotFound
}

func (r *memoryAccommodationRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.accommodations)), nil
}

// ============================================================
// Flights
// ============================================================

type memoryFlightRepository struct {
	mu      sync.RWMutex
	flights []*models.Flight
}

// NewMemoryFlightRepository creates an in-memory flight repository
func NewMemoryFlightRepository() FlightRepository {
	return &memoryFlightRepository{}
}

func (r *memoryFlightRepository) Create(ctx context.Context, flight *models.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := *flight
	r.flights = append(r.flights, &f)
	return nil
}

func (r *memoryFlightRepository) List(ctx context.Context, originCode, destinationCode string) ([]*models.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		if originCode != "" && originCode != "all" && f.OriginCode != originCode {
			continue
		}
		if destinationCode != "" && destinationCode != "all" && f.DestinationCode != destinationCode {
			continue
		}
		c := *f
		out = append(out, &c)
	}
	return out, nil
}

func (r *memoryFlightRepository) GetByID(ctx context.Context, id string) (*models.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.flights {
		if f.ID == id {
			c := *f
			return &c, nil
		}
	}
	return nil, domain.ErrFlightNotFound
}

func (r *memoryFlightRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.flights)), nil
}

// ============================================================
// Interactions
// ============================================================

type memoryInteractionRepository struct {
	mu           sync.RWMutex
	interactions []*models.Interaction
}

// NewMemoryInteractionRepository creates an in-memory interaction repository
func NewMemoryInteractionRepository() InteractionRepository {
	return &memoryInteractionRepository{}
}

func (r *memoryInteractionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := *interaction
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}
	r.interactions = append(r.interactions, &i)
	return nil
}

func (r *memoryInteractionRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.interactions)), nil
}

func (r *memoryInteractionRepository) CountByType(ctx context.Context, interactionType string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, i := range r.interactions {
		if i.InteractionType == interactionType {
			count++
		}
	}
	return count, nil
}

func (r *memoryInteractionRepository) DailyCounts(ctx context.Context, days int) ([]models.DailyCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := time.Now().AddDate(0, 0, -days)
	byDay := make(map[string]int64)
	var order []time.Time
	for _, i := range r.interactions {
		if !i.CreatedAt.After(cutoff) {
			continue
		}
		day := i.CreatedAt.Truncate(24 * time.Hour)
		key := day.Format("2006-01-02")
		if _, seen := byDay[key]; !seen {
			order = append(order, day)
		}
		byDay[key]++
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })
	out := make([]models.DailyCount, 0, len(order))
	for _, day := range order {
		out = append(out, models.DailyCount{
			Date:  day.Format("Mon"),
			Value: byDay[day.Format("2006-01-02")],
		})
	}
	return out, nil
}
