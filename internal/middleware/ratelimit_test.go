package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/cerahati/backend/internal/cache"
	"github.com/cerahati/backend/internal/database/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimitBlocksAfterThreshold(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(2, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestLoginRateLimitUsesStore(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	store := NewCacheRateStore(cache.NewDatabaseStore(db))

	r := gin.New()
	r.POST("/login", LoginRateLimit(store, 5, 15*time.Minute), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Contains(t, w.Body.String(), "Too many login attempts")
}

func TestLoginRateLimitNilStorePassesThrough(t *testing.T) {
	r := gin.New()
	r.POST("/login", LoginRateLimit(nil, 5, time.Minute), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMemoryRateStoreIncrements(t *testing.T) {
	store := NewMemoryRateStore()

	count, ttl, err := store.Increment(nil, "k", time.Minute)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Greater(t, ttl, time.Duration(0))

	count, _, err = store.Increment(nil, "k", time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}
