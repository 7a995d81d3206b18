package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	recentSightingsKey = "sightings:recent"
	eventsChannel      = "sightings:events"
)

// Event describes a sighting change published to subscribers (signage
// screens poll or subscribe to refresh their feeds).
type Event struct {
	Action     string    `json:"action"`
	SightingID string    `json:"sighting_id"`
	Species    string    `json:"species,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Cache wraps Redis for the recent-sightings feed. A nil client disables
// every operation, so callers never need to branch on whether Redis is
// configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

// New creates a cache wrapper. client may be nil.
func New(client *redis.Client, ttl time.Duration, log *logrus.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, log: log}
}

// Enabled reports whether a Redis client is attached
func (c *Cache) Enabled() bool {
	return c.client != nil
}

// GetRecent returns the cached recent-sightings feed, or (nil, false)
// on miss or when the cache is disabled.
func (c *Cache) GetRecent(ctx context.Context) ([]*models.AnimalSighting, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, recentSightingsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			metrics.RecordCacheOperation("get", "error")
			c.log.WithError(err).Warn("recent sightings cache read failed")
		} else {
			metrics.RecordCacheOperation("get", "miss")
		}
		return nil, false
	}

	var sightings []*models.AnimalSighting
	if err := json.Unmarshal(raw, &sightings); err != nil {
		metrics.RecordCacheOperation("get", "error")
		c.log.WithError(err).Warn("recent sightings cache entry corrupt, dropping")
		c.client.Del(ctx, recentSightingsKey)
		return nil, false
	}

	metrics.RecordCacheOperation("get", "hit")
	return sightings, true
}

// SetRecent stores the recent-sightings feed with the configured TTL
func (c *Cache) SetRecent(ctx context.Context, sightings []*models.AnimalSighting) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(sightings)
	if err != nil {
		metrics.RecordCacheOperation("set", "error")
		c.log.WithError(err).Warn("recent sightings cache encode failed")
		return
	}

	if err := c.client.Set(ctx, recentSightingsKey, raw, c.ttl).Err(); err != nil {
		metrics.RecordCacheOperation("set", "error")
		c.log.WithError(err).Warn("recent sightings cache write failed")
		return
	}
	metrics.RecordCacheOperation("set", "ok")
}

// Invalidate drops the cached feed after any sighting mutation
func (c *Cache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, recentSightingsKey).Err(); err != nil {
		metrics.RecordCacheOperation("invalidate", "error")
		c.log.WithError(err).Warn("recent sightings cache invalidation failed")
		return
	}
	metrics.RecordCacheOperation("invalidate", "ok")
}

// Publish broadcasts a sighting change event. Failures are logged and
// swallowed; event delivery is best-effort.
func (c *Cache) Publish(ctx context.Context, event Event) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(event)
	if err != nil {
		c.log.WithError(err).Warn("sighting event encode failed")
		return
	}

	if err := c.client.Publish(ctx, eventsChannel, raw).Err(); err != nil {
		metrics.RecordCacheOperation("publish", "error")
		c.log.WithError(err).WithField("action", event.Action).Warn("sighting event publish failed")
		return
	}
	metrics.RecordCacheOperation("publish", "ok")
}
