package services

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cerahati/backend/internal/cache"
	"github.com/cerahati/backend/internal/models"
	appErrors "github.com/cerahati/backend/pkg/errors"
	"github.com/cerahati/backend/pkg/logger"
)

// LeaderboardService maintains the cached donor ranking. The ranking is never
// persisted; it lives in the cache under a single fixed key and is rebuilt
// from completed donations on demand.
type LeaderboardService struct {
	db    *gorm.DB
	store cache.Store
}

// NewLeaderboardService constructs a leaderboard service.
func NewLeaderboardService(db *gorm.DB, store cache.Store) (*LeaderboardService, error) {
	if db == nil {
		return nil, errors.New("leaderboard service: db is required")
	}
	if store == nil {
		return nil, errors.New("leaderboard service: store is required")
	}
	return &LeaderboardService{db: db, store: store}, nil
}

// Get returns the donor ranking, serving the cached copy when present and
// rebuilding it from the database otherwise.
func (s *LeaderboardService) Get(ctx context.Context) (*Resolved[[]models.LeaderboardEntry], error) {
	return readThrough(ctx, s.store, "leaderboard", cache.LeaderboardKey, cache.LeaderboardTTL,
		func(ctx context.Context) ([]models.LeaderboardEntry, error) {
			return s.aggregate(ctx)
		})
}

// Refresh recomputes the ranking and unconditionally replaces the cached copy.
func (s *LeaderboardService) Refresh(ctx context.Context) ([]models.LeaderboardEntry, error) {
	ctx = ensuredContext(ctx)

	entries, err := s.aggregate(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.put(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Overwrite installs a caller-supplied ranking as the cache entry, replacing
// whatever is there. Ranks are reassigned 1-based in input order.
func (s *LeaderboardService) Overwrite(ctx context.Context, entries []models.LeaderboardEntry) error {
	ctx = ensuredContext(ctx)

	if len(entries) == 0 {
		return appErrors.ErrBadRequest
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return s.put(ctx, entries)
}

// aggregate runs the ranking query: completed donations grouped per user,
// ordered by total amount descending, ranks assigned in result order.
func (s *LeaderboardService) aggregate(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	err := s.db.WithContext(ctx).
		Table("donation").
		Select("users.id AS user_id, users.username, COUNT(donation.id) AS donation_count, SUM(donation.amount) AS total_donations").
		Joins("JOIN users ON users.id = donation.user_id").
		Where("donation.status = ?", models.DonationStatusCompleted).
		Group("users.id, users.username").
		Order("total_donations DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, appErrors.ErrLeaderboardEmpty
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func (s *LeaderboardService) put(ctx context.Context, entries []models.LeaderboardEntry) error {
	encoded, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, cache.LeaderboardKey, encoded, cache.LeaderboardTTL); err != nil {
		logger.WithModule("cache").Error("leaderboard cache write failed",
			zap.String("key", cache.LeaderboardKey), zap.Error(err))
		return err
	}
	return nil
}
