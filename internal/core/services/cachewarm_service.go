package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const warmSchedule = "@every 1m"

// CacheWarmService periodically re-primes the recent-sightings cache so
// signage reads rarely hit the store directly. It is a no-op scheduler
// when Redis is not configured.
type CacheWarmService struct {
	sightings *SightingService
	cron      *cron.Cron
	log       *logrus.Logger
}

// NewCacheWarmService creates a new cache warm service
func NewCacheWarmService(sightings *SightingService, log *logrus.Logger) *CacheWarmService {
	return &CacheWarmService{
		sightings: sightings,
		cron:      cron.New(),
		log:       log,
	}
}

// Start schedules the warmer and primes the cache once immediately
func (s *CacheWarmService) Start() error {
	if _, err := s.cron.AddFunc(warmSchedule, s.warm); err != nil {
		return err
	}
	s.cron.Start()
	s.warm()
	s.log.WithField("schedule", warmSchedule).Info("recent sightings cache warmer started")
	return nil
}

// Stop halts the scheduler and waits for a running job to finish
func (s *CacheWarmService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *CacheWarmService) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.sightings.WarmRecentCache(ctx); err != nil {
		s.log.WithError(err).Warn("recent sightings cache warm failed")
	}
}
