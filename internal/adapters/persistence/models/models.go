package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User status values
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// Roles used for route-level authorization. The role set is open-ended;
// these are the two the kiosk ships with.
const (
	RoleAdmin       = "admin"
	RoleKrugerStaff = "kruger_staff"
)

// User represents the users table
type User struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Role         string     `gorm:"size:30;not null" json:"role"`
	Status       string     `gorm:"size:20;not null;default:'active'" json:"status"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser is the identity payload returned by login
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

func (u *User) ToPublic() *PublicUser {
	return &PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
		Name:  u.Name,
	}
}

// Profile is the profile endpoint payload
type Profile struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
}

func (u *User) ToProfile() *Profile {
	return &Profile{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

// ============================================================
// Animal Sightings
// ============================================================

// Sighting status values
const (
	SightingStatusRecent     = "recent"
	SightingStatusActive     = "active"
	SightingStatusHistorical = "historical"
)

// Sighting field defaults applied on create
const (
	DefaultSightingCount      = 1
	DefaultSightingConfidence = 90
	DefaultSightingStatus     = SightingStatusActive
)

// BigFiveSpecies is the fixed checklist used for the big_five_count
// statistic. Matching is case-sensitive exact match on species.
var BigFiveSpecies = []string{
	"African Lion",
	"African Elephant",
	"Leopard",
	"Cape Buffalo",
	"White Rhinoceros",
	"Black Rhinoceros",
}

// AnimalSighting represents the animal_sightings table
type AnimalSighting struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Species    string    `gorm:"size:100;not null" json:"species"`
	Location   string    `gorm:"size:200;not null" json:"location"`
	Gate       string    `gorm:"size:100;not null" json:"gate"`
	Count      int       `gorm:"not null;default:1" json:"count"`
	Confidence int       `gorm:"not null;default:90" json:"confidence"`
	Status     string    `gorm:"size:20;not null;default:'active';index" json:"status"`
	ImageURL   string    `gorm:"size:500" json:"image"`
	ReportedAt time.Time `gorm:"not null;index" json:"reported_at"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AnimalSighting) TableName() string {
	return "animal_sightings"
}

// IsBigFive reports whether the species is on the Big Five checklist
func (s *AnimalSighting) IsBigFive() bool {
	for _, sp := range BigFiveSpecies {
		if s.Species == sp {
			return true
		}
	}
	return false
}

// SightingUpdate carries the replacement fields for an update. The
// relational store treats it as a full replacement; the in-memory store
// merges only non-zero fields and leaves the rest untouched.
type SightingUpdate struct {
	Species    string `json:"species"`
	Location   string `json:"location"`
	Gate       string `json:"gate"`
	Count      int    `json:"count"`
	Confidence int    `json:"confidence"`
	Status     string `json:"status"`
}

// SightingStats is the stats endpoint payload
type SightingStats struct {
	TotalSightings int64 `json:"total_sightings"`
	RecentCount    int64 `json:"recent_count"`
	ActiveCount    int64 `json:"active_count"`
	BigFiveCount   int64 `json:"big_five_count"`
}

// ============================================================
// Kiosk Catalog (read-mostly reference data)
// ============================================================

// Destination represents the destinations table
type Destination struct {
	ID                string    `gorm:"primaryKey;size:50" json:"id"`
	Name              string    `gorm:"size:100;not null" json:"name"`
	Country           string    `gorm:"size:100" json:"country"`
	Description       string    `gorm:"type:text" json:"description"`
	ImageURL          string    `gorm:"size:500" json:"imageUrl"`
	Rating            float64   `gorm:"type:decimal(3,1)" json:"rating"`
	Category          string    `gorm:"size:100" json:"category"`
	AvgCost           string    `gorm:"size:50" json:"avgCost"`
	BestTime          string    `gorm:"size:50" json:"bestTime"`
	Activities        []string  `gorm:"serializer:json" json:"activities"`
	HasAnimalTracking bool      `json:"hasAnimalTracking"`
	Views             int64     `gorm:"not null;default:0" json:"views"`
	Scans             int64     `gorm:"not null;default:0" json:"scans"`
	EmailsSent        int64     `gorm:"not null;default:0" json:"emailsSent"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Destination) TableName() string {
	return "destinations"
}

// Contact holds accommodation contact details
type Contact struct {
	Phone   string `gorm:"size:50" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Website string `gorm:"size:100" json:"website"`
}

// Accommodation represents the accommodations table
type Accommodation struct {
	ID            string    `gorm:"primaryKey;size:50" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Type          string    `gorm:"size:50;not null" json:"type"`
	Location      string    `gorm:"size:200;not null" json:"location"`
	Description   string    `gorm:"type:text" json:"description"`
	ImageURL      string    `gorm:"size:500" json:"imageUrl"`
	Rating        float64   `gorm:"type:decimal(3,1)" json:"rating"`
	PricePerNight string    `gorm:"size:50" json:"pricePerNight"`
	Amenities     []string  `gorm:"serializer:json" json:"amenities"`
	Contact       Contact   `gorm:"embedded;embeddedPrefix:contact_" json:"contact"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Accommodation) TableName() string {
	return "accommodations"
}

// Flight represents the flights table
type Flight struct {
	ID              string `gorm:"primaryKey;size:50" json:"id"`
	FlightNumber    string `gorm:"size:20;not null" json:"flightNumber"`
	Airline         string `gorm:"size:100" json:"airline"`
	Origin          string `gorm:"size:100" json:"origin"`
	OriginCode      string `gorm:"size:10;index" json:"originCode"`
	Destination     string `gorm:"size:100" json:"destination"`
	DestinationCode string `gorm:"size:10;index" json:"destinationCode"`
	DepartureTime   string `gorm:"size:10" json:"departureTime"`
	ArrivalTime     string `gorm:"size:10" json:"arrivalTime"`
	Duration        string `gorm:"size:20" json:"duration"`
	Status          string `gorm:"size:30" json:"status"`
	Gate            string `gorm:"size:10" json:"gate"`
	Price           string `gorm:"size:20" json:"price"`
}

func (Flight) TableName() string {
	return "flights"
}

// ============================================================
// Analytics
// ============================================================

// Interaction represents the kiosk interactions table
type Interaction struct {
	ID              string                 `gorm:"primaryKey;size:36" json:"id"`
	DeviceID        string                 `gorm:"size:50;index" json:"device_id"`
	SessionID       string                 `gorm:"size:50" json:"session_id"`
	InteractionType string                 `gorm:"size:50;not null;index" json:"interaction_type"`
	DestinationID   string                 `gorm:"size:50" json:"destination_id,omitempty"`
	AccommodationID string                 `gorm:"size:50" json:"accommodation_id,omitempty"`
	FlightID        string                 `gorm:"size:50" json:"flight_id,omitempty"`
	UserData        map[string]interface{} `gorm:"serializer:json" json:"user_data,omitempty"`
	CreatedAt       time.Time              `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Interaction) TableName() string {
	return "interactions"
}

// DeviceStatus summarizes the signage fleet for the dashboard
type DeviceStatus struct {
	Online      int `json:"online"`
	Offline     int `json:"offline"`
	Maintenance int `json:"maintenance"`
}

// DailyCount is one day of interaction volume
type DailyCount struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

// DestinationShare is one slice of the top-destinations breakdown
type DestinationShare struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// AnalyticsSummary is the admin analytics payload
type AnalyticsSummary struct {
	TotalInteractions int64              `json:"totalInteractions"`
	TotalScans        int64              `json:"totalScans"`
	TotalEmails       int64              `json:"totalEmails"`
	AvgEngagementTime string             `json:"avgEngagementTime"`
	DeviceStatus      DeviceStatus       `json:"deviceStatus"`
	DailyInteractions []DailyCount       `json:"dailyInteractions"`
	TopDestinations   []DestinationShare `json:"topDestinations"`
}

// DestinationAnalytics is one row of the per-destination analytics view
type DestinationAnalytics struct {
	Name         string `json:"name"`
	Interactions int64  `json:"interactions"`
	Scans        int64  `json:"scans"`
	Emails       int64  `json:"emails"`
}

// DashboardSummary is the admin dashboard payload
type DashboardSummary struct {
	TotalDestinations   int64  `json:"totalDestinations"`
	TotalAccommodations int64  `json:"totalAccommodations"`
	TotalFlights        int64  `json:"totalFlights"`
	TotalSightings      int64  `json:"totalSightings"`
	RecentSightings     int64  `json:"recentSightings"`
	OnlineDevices       int    `json:"onlineDevices"`
	SystemUptime        string `json:"systemUptime"`
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates the tables when running against Postgres
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&AnimalSighting{},
		&Destination{},
		&Accommodation{},
		&Flight{},
		&Interaction{},
	)
}
