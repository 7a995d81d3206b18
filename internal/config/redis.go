package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ConnectRedis creates a Redis client for the recent-sightings cache and
// change-event fan-out. Returns nil when no address is configured; all
// cache consumers treat a nil client as "cache disabled".
func ConnectRedis(cfg *Config, log *logrus.Logger) (*redis.Client, error) {
	if cfg.Redis.Address == "" {
		log.Info("Redis not configured, cache and event fan-out disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Address,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.Database,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.WithFields(logrus.Fields{
		"address": cfg.Redis.Address,
		"db":      cfg.Redis.Database,
	}).Info("Connected to Redis")

	return rdb, nil
}
