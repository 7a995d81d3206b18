package config

import (
	"context"
	"time"

	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/adapters/persistence/repositories"
	"gateway-discoveries/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Seeder loads the kiosk demo dataset. It works through the repository
// interfaces so both backends get the same records, and it is idempotent:
// a collection that already has rows is left alone.
type Seeder struct {
	repos *repositories.Repositories
	log   *logrus.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(repos *repositories.Repositories, log *logrus.Logger) *Seeder {
	return &Seeder{repos: repos, log: log}
}

// Run executes all seeders
func (s *Seeder) Run(ctx context.Context) error {
	s.log.Info("Running seeders")

	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	if err := s.seedSightings(ctx); err != nil {
		return err
	}
	if err := s.seedDestinations(ctx); err != nil {
		return err
	}
	if err := s.seedAccommodations(ctx); err != nil {
		return err
	}
	if err := s.seedFlights(ctx); err != nil {
		return err
	}

	s.log.Info("Seeding completed")
	return nil
}

// seedUsers creates the demo accounts. Credentials are stored as bcrypt
// hashes; login verifies them the same way as any provisioned account.
func (s *Seeder) seedUsers(ctx context.Context) error {
	count, err := s.repos.Users.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	demo := []struct {
		email, pass, name, role string
	}{
		{"admin@gatewaydiscoveries.com", "admin123", "System Administrator", models.RoleAdmin},
		{"ranger@kruger.co.za", "kruger123", "Kruger Park Ranger", models.RoleKrugerStaff},
	}

	for _, d := range demo {
		hash, err := password.Hash(d.pass)
		if err != nil {
			return err
		}
		user := &models.User{
			ID:           uuid.New().String(),
			Email:        d.email,
			Name:         d.name,
			PasswordHash: hash,
			Role:         d.role,
			Status:       models.UserStatusActive,
		}
		if err := s.repos.Users.Create(ctx, user); err != nil {
			return err
		}
		s.log.WithField("email", d.email).Info("Seeded demo user")
	}
	return nil
}

func (s *Seeder) seedSightings(ctx context.Context) error {
	count, err := s.repos.Sightings.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	now := time.Now()
	sightings := []*models.AnimalSighting{
		{
			ID:         uuid.New().String(),
			Species:    "African Lion",
			Location:   "Skukuza Rest Camp Area",
			Gate:       "Paul Kruger Gate",
			Count:      3,
			Confidence: 95,
			Status:     models.SightingStatusRecent,
			ImageURL:   "https://images.unsplash.com/photo-1546182990-dffeafbe841d?w=400",
			ReportedAt: now.Add(-45 * time.Minute),
		},
		{
			ID:         uuid.New().String(),
			Species:    "African Elephant",
			Location:   "Lower Sabie River",
			Gate:       "Crocodile Bridge",
			Count:      12,
			Confidence: 98,
			Status:     models.SightingStatusActive,
			ImageURL:   "https://images.unsplash.com/photo-1557050543-4d5f4e07ef46?w=400",
			ReportedAt: now.Add(-2 * time.Hour),
		},
	}

	for _, sighting := range sightings {
		if err := s.repos.Sightings.Create(ctx, sighting); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedDestinations(ctx context.Context) error {
	count, err := s.repos.Destinations.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	destinations := []*models.Destination{
		{
			ID:                "kruger",
			Name:              "Kruger National Park",
			Country:           "South Africa",
			Description:       "One of Africa's largest game reserves with high density of wild animals including the Big 5.",
			ImageURL:          "https://images.unsplash.com/photo-1516426122078-c23e76319801?w=800",
			Rating:            4.8,
			Category:          "Wildlife & Nature",
			AvgCost:           "R2,500 - R8,000",
			BestTime:          "May - September",
			Activities:        []string{"Game Drives", "Bird Watching", "Bush Walks", "Photography", "Camping"},
			HasAnimalTracking: true,
			Views:             15420,
			Scans:             3245,
			EmailsSent:        876,
		},
		{
			ID:                "blyde",
			Name:              "Blyde River Canyon",
			Country:           "South Africa",
			Description:       "A spectacular natural landmark with dramatic scenery, waterfalls, and panoramic views.",
			ImageURL:          "https://images.unsplash.com/photo-1574784912348-5c1d915b0f6c?w=800",
			Rating:            4.7,
			Category:          "Nature & Scenery",
			AvgCost:           "R1,200 - R4,000",
			BestTime:          "March - October",
			Activities:        []string{"Hiking", "Boat Trips", "Photography", "Viewpoints", "Nature Walks"},
			HasAnimalTracking: false,
			Views:             8920,
			Scans:             1876,
			EmailsSent:        543,
		},
	}

	for _, destination := range destinations {
		if err := s.repos.Destinations.Create(ctx, destination); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedAccommodations(ctx context.Context) error {
	count, err := s.repos.Accommodations.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	accommodations := []*models.Accommodation{
		{
			ID:            "acc1",
			Name:          "Singita Lebombo Lodge",
			Type:          "lodge",
			Location:      "Kruger National Park",
			Description:   "Luxury lodge perched on the cliffs overlooking the N'wanetsi River with stunning views and exclusive safari experiences.",
			ImageURL:      "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800",
			Rating:        4.9,
			PricePerNight: "R12,500",
			Amenities:     []string{"Swimming Pool", "Spa", "Fine Dining", "Game Drives", "WiFi", "Air Conditioning"},
			Contact: models.Contact{
				Phone:   "+27 13 735 5500",
				Email:   "reservations@singita.com",
				Website: "singita.com",
			},
		},
		{
			ID:            "acc2",
			Name:          "Jock Safari Lodge",
			Type:          "lodge",
			Location:      "Kruger National Park",
			Description:   "Historic safari lodge offering authentic African experiences with professional guides and luxurious accommodations.",
			ImageURL:      "https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b?w=800",
			Rating:        4.7,
			PricePerNight: "R8,200",
			Amenities:     []string{"Swimming Pool", "Restaurant", "Bar", "Game Drives", "Bush Walks", "Spa"},
			Contact: models.Contact{
				Phone:   "+27 13 781 9900",
				Email:   "info@jocksafarilodge.com",
				Website: "jocksafarilodge.com",
			},
		},
	}

	for _, accommodation := range accommodations {
		if err := s.repos.Accommodations.Create(ctx, accommodation); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedFlights(ctx context.Context) error {
	count, err := s.repos.Flights.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	flights := []*models.Flight{
		{
			ID:              "f1",
			FlightNumber:    "SA345",
			Airline:         "South African Airways",
			Origin:          "Johannesburg (JNB)",
			OriginCode:      "JNB",
			Destination:     "Nelspruit (MQP)",
			DestinationCode: "MQP",
			DepartureTime:   "08:15",
			ArrivalTime:     "09:30",
			Duration:        "1h 15m",
			Status:          "On Time",
			Gate:            "A12",
			Price:           "R1,850",
		},
		{
			ID:              "f2",
			FlightNumber:    "FA208",
			Airline:         "FlySafair",
			Origin:          "Cape Town (CPT)",
			OriginCode:      "CPT",
			Destination:     "Nelspruit (MQP)",
			DestinationCode: "MQP",
			DepartureTime:   "11:45",
			ArrivalTime:     "14:00",
			Duration:        "2h 15m",
			Status:          "On Time",
			Gate:            "B07",
			Price:           "R2,150",
		},
	}

	for _, flight := range flights {
		if err := s.repos.Flights.Create(ctx, flight); err != nil {
			return err
		}
	}
	return nil
}
