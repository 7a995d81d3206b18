package repositories

import (
	"gorm.io/gorm"
)

// Repositories bundles every store behind a single constructor
type Repositories struct {
	Users          UserRepository
	Sightings      SightingRepository
	Destinations   DestinationRepository
	Accommodations AccommodationRepository
	Flights        FlightRepository
	Interactions   InteractionRepository
}

// New selects the storage backend: Postgres when db is non-nil, the
// in-memory fallback store otherwise.
func New(db *gorm.DB) *Repositories {
	if db == nil {
		return &Repositories{
			Users:          NewMemoryUserRepository(),
			Sightings:      NewMemorySightingRepository(),
			Destinations:   NewMemoryDestinationRepository(),
			Accommodations: NewMemoryAccommodationRepository(),
			Flights:        NewMemoryFlightRepository(),
			Interactions:   NewMemoryInteractionRepository(),
		}
	}

	return &Repositories{
		Users:          NewUserRepository(db),
		Sightings:      NewSightingRepository(db),
		Destinations:   NewDestinationRepository(db),
		Accommodations: NewAccommodationRepository(db),
		Flights:        NewFlightRepository(db),
		Interactions:   NewInteractionRepository(db),
	}
}
