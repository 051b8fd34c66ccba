package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cerahati/backend/internal/database/testutil"
	"github.com/cerahati/backend/internal/models"
)

func seedCacheEntry(t *testing.T, db *gorm.DB, key string, expiresAt time.Time) {
	t.Helper()

	entry := models.CacheEntry{Key: key, Value: []byte("{}"), ExpiresAt: expiresAt}
	require.NoError(t, db.Create(&entry).Error)
}

func TestCleanupCacheEntriesPurgesExpiredRows(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	now := time.Now()

	seedCacheEntry(t, db, "cerahati:orphanages", now.Add(-time.Minute))
	seedCacheEntry(t, db, "cerahati:donations:user:3", now.Add(-time.Hour))
	seedCacheEntry(t, db, "cerahati:donatur:leaderboard", now.Add(time.Hour))
	seedCacheEntry(t, db, "cerahati:pinned", time.Time{})

	removed, err := CleanupCacheEntries(context.Background(), db, now)
	require.NoError(t, err)
	require.EqualValues(t, 2, removed)

	var keys []string
	require.NoError(t, db.Model(&models.CacheEntry{}).Order("key").Pluck("key", &keys).Error)
	require.Equal(t, []string{"cerahati:donatur:leaderboard", "cerahati:pinned"}, keys)
}

func TestCleanerRunOnce(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	now := time.Now()

	seedCacheEntry(t, db, "cerahati:users", now.Add(-time.Second))

	cleaner := NewCleaner(db, WithNow(func() time.Time { return now }))
	require.NoError(t, cleaner.RunOnce(context.Background()))

	var count int64
	require.NoError(t, db.Model(&models.CacheEntry{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCleanerStartAndStop(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())

	cleaner := NewCleaner(db, WithCacheSchedule("@every 1h"))
	require.NoError(t, cleaner.Start())
	<-cleaner.Stop().Done()
}

func TestCleanupCacheEntriesRequiresDB(t *testing.T) {
	_, err := CleanupCacheEntries(context.Background(), nil, time.Now())
	require.Error(t, err)
}
