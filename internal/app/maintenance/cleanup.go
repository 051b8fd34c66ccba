package maintenance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cerahati/backend/internal/models"
	"github.com/cerahati/backend/pkg/logger"
)

const defaultCacheSpec = "@hourly"

// Cleaner periodically purges expired cache rows from the database-backed
// store. The store itself only removes an expired row when that exact key is
// read again, so keys that are never re-read (item keys of deleted resources,
// per-user scoped keys, stale rate-limit counters) would otherwise accumulate.
type Cleaner struct {
	db   *gorm.DB
	cron *cron.Cron
	now  func() time.Time
	log  *zap.Logger

	cacheSchedule string
}

// Option customises the Cleaner.
type Option func(*Cleaner)

// WithCron injects a preconfigured cron instance, primarily for testing.
func WithCron(c *cron.Cron) Option {
	return func(cleaner *Cleaner) {
		if c != nil {
			cleaner.cron = c
		}
	}
}

// WithNow overrides the clock used for expiry comparisons.
func WithNow(now func() time.Time) Option {
	return func(cleaner *Cleaner) {
		if now != nil {
			cleaner.now = now
		}
	}
}

// WithCacheSchedule overrides the cron specification for the cache purge.
func WithCacheSchedule(spec string) Option {
	return func(cleaner *Cleaner) {
		if spec != "" {
			cleaner.cacheSchedule = spec
		}
	}
}

// NewCleaner constructs a Cleaner with sensible defaults. A nil db results in
// the purge job being skipped.
func NewCleaner(db *gorm.DB, opts ...Option) *Cleaner {
	cleaner := &Cleaner{
		db:            db,
		now:           time.Now,
		cacheSchedule: defaultCacheSpec,
		log:           logger.WithModule("maintenance"),
	}

	for _, opt := range opts {
		opt(cleaner)
	}

	if cleaner.cron == nil {
		cleaner.cron = cron.New(cron.WithLogger(cron.DiscardLogger))
	}

	return cleaner
}

// Start registers the purge job with the cron scheduler and launches it.
func (c *Cleaner) Start() error {
	if c.db == nil {
		return nil
	}

	if _, err := c.cron.AddFunc(c.cacheSchedule, func() {
		if _, err := CleanupCacheEntries(context.Background(), c.db, c.now()); err != nil {
			c.log.Warn("cache cleanup failed", zap.Error(err))
		}
	}); err != nil {
		return err
	}

	c.cron.Start()
	return nil
}

// Stop halts the underlying scheduler, waiting for any running jobs to complete.
func (c *Cleaner) Stop() context.Context {
	if c.cron == nil {
		return context.Background()
	}
	return c.cron.Stop()
}

// RunOnce executes the purge immediately. Primarily used in tests and during
// graceful shutdown.
func (c *Cleaner) RunOnce(ctx context.Context) error {
	if c.db == nil {
		return nil
	}
	_, err := CleanupCacheEntries(ctx, c.db, c.now())
	return err
}

// CleanupCacheEntries removes cache rows whose expiry has passed. Rows with a
// zero expiry never expire and are kept.
func CleanupCacheEntries(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	if db == nil {
		return 0, errors.New("cleanup cache entries: db is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	result := db.WithContext(ctx).
		Where("expires_at < ? AND expires_at > ?", now, time.Time{}).
		Delete(&models.CacheEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("cleanup cache entries: %w", result.Error)
	}
	return result.RowsAffected, nil
}
