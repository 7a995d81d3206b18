package routes

import (
	"gateway-discoveries/internal/adapters/cache"
	"gateway-discoveries/internal/adapters/http/handlers"
	"gateway-discoveries/internal/adapters/http/middleware"
	"gateway-discoveries/internal/adapters/persistence/repositories"
	"gateway-discoveries/internal/config"
	"gateway-discoveries/internal/core/services"
	"gateway-discoveries/internal/metrics"
	"gateway-discoveries/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Setup wires repositories, services, handlers and routes. It returns
// the sighting service so the caller can attach the cache warmer.
func Setup(app *fiber.App, repos *repositories.Repositories, db *gorm.DB, rdb *redis.Client, cfg *config.Config, log *logrus.Logger) *services.SightingService {
	// Initialize services
	recentCache := cache.New(rdb, cfg.Redis.RecentTTL, log)
	authService := services.NewAuthService(repos.Users, cfg.JWT.Secret, cfg.JWT.TokenTTL, log)
	sightingService := services.NewSightingService(repos.Sightings, recentCache, log)
	catalogService := services.NewCatalogService(repos.Destinations, repos.Accommodations, repos.Flights, log)
	analyticsService := services.NewAnalyticsService(repos.Interactions, repos.Destinations, repos.Accommodations, repos.Flights, repos.Sightings, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg, db)
	authHandler := handlers.NewAuthHandler(authService)
	sightingHandler := handlers.NewSightingHandler(sightingService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	authenticate := middleware.Authenticate(cfg)

	// Prometheus scrape endpoint, outside the API group
	app.Get("/metrics", metrics.PrometheusHandler())

	api := app.Group("/api")

	// Health
	api.Get("/health", healthHandler.Check)

	// Authentication
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/profile", authenticate, authHandler.Profile)
	auth.Get("/verify", authenticate, authHandler.Verify)

	// Animal sightings. The fixed paths must register before the :id
	// routes so "recent" and "stats" are not captured as ids.
	sightings := api.Group("/animal-sightings")
	sightings.Get("/recent", sightingHandler.Recent)
	sightings.Get("/stats", authenticate, middleware.StaffOnly(), sightingHandler.Stats)
	sightings.Get("/", authenticate, middleware.StaffOnly(), sightingHandler.List)
	sightings.Post("/", authenticate, middleware.StaffOnly(), sightingHandler.Create)
	sightings.Get("/:id", sightingHandler.Get)
	sightings.Put("/:id", authenticate, middleware.StaffOnly(), sightingHandler.Update)
	sightings.Delete("/:id", authenticate, middleware.StaffOnly(), sightingHandler.Delete)

	// Kiosk catalog
	api.Get("/destinations", catalogHandler.ListDestinations)
	api.Get("/destinations/:id", catalogHandler.GetDestination)
	api.Get("/accommodations", catalogHandler.ListAccommodations)
	api.Post("/accommodations", authenticate, middleware.AdminOnly(), catalogHandler.CreateAccommodation)
	api.Get("/accommodations/:id", catalogHandler.GetAccommodation)
	api.Get("/flights", catalogHandler.ListFlights)
	api.Get("/flights/:id", catalogHandler.GetFlight)

	// Analytics
	api.Post("/analytics/interactions", analyticsHandler.RecordInteraction)
	api.Get("/analytics", authenticate, middleware.AdminOnly(), analyticsHandler.Summary)
	api.Get("/analytics/destinations", authenticate, middleware.AdminOnly(), analyticsHandler.Destinations)
	api.Get("/admin/dashboard", authenticate, middleware.AdminOnly(), analyticsHandler.Dashboard)

	// Unmatched API paths get the {error, path} envelope
	api.Use(func(c *fiber.Ctx) error {
		return response.NotFoundPath(c, "API endpoint not found")
	})

	return sightingService
}
