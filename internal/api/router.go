package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/cerahati/backend/internal/app"
	"github.com/cerahati/backend/internal/cache"
	"github.com/cerahati/backend/internal/captcha"
	"github.com/cerahati/backend/internal/handlers"
	"github.com/cerahati/backend/internal/middleware"
	"github.com/cerahati/backend/internal/services"
)

// NewRouter builds the Gin engine, wires middleware and registers all routes.
func NewRouter(db *gorm.DB, store cache.Store, cfg *app.Config) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if store == nil {
		return nil, fmt.Errorf("cache store must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}

	orphanageSvc, err := services.NewOrphanageService(db)
	if err != nil {
		return nil, err
	}
	userSvc, err := services.NewUserService(db)
	if err != nil {
		return nil, err
	}
	donationSvc, err := services.NewDonationService(db)
	if err != nil {
		return nil, err
	}
	bookmarkSvc, err := services.NewBookmarkService(db)
	if err != nil {
		return nil, err
	}
	prayerSvc, err := services.NewPrayerService(db)
	if err != nil {
		return nil, err
	}
	cacheSvc, err := services.NewResourceCacheService(store, orphanageSvc, userSvc, donationSvc, bookmarkSvc, prayerSvc)
	if err != nil {
		return nil, err
	}
	leaderboardSvc, err := services.NewLeaderboardService(db, store)
	if err != nil {
		return nil, err
	}

	captchaOpts := []captcha.Option{}
	if cfg.Captcha.VerifyURL != "" {
		captchaOpts = append(captchaOpts, captcha.WithVerifyURL(cfg.Captcha.VerifyURL))
	}
	verifier := captcha.NewVerifier(cfg.Captcha.Secret, captchaOpts...)

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	// Basic rate limiting: 100 requests/minute per IP+path
	r.Use(middleware.RateLimit(100, time.Minute))

	r.NoRoute(middleware.NotFoundHandler)

	if cfg.Monitoring.Health.Enabled {
		r.GET("/health", handlers.Health(db))
	}
	if cfg.Monitoring.Prometheus.Enabled {
		endpoint := cfg.Monitoring.Prometheus.Endpoint
		if endpoint == "" {
			endpoint = "/metrics"
		}
		r.GET(endpoint, gin.WrapH(promhttp.Handler()))
	}

	loginWindow := cfg.Auth.LoginWindow
	if loginWindow <= 0 {
		loginWindow = 15 * time.Minute
	}
	loginLimiter := middleware.LoginRateLimit(
		middleware.NewCacheRateStore(store),
		cfg.Auth.LoginMaxAttempts,
		loginWindow,
	)

	registerAuthRoutes(r, handlers.NewAuthHandler(userSvc, verifier), loginLimiter)
	registerOrphanageRoutes(r, handlers.NewOrphanageHandler(orphanageSvc))
	registerUserRoutes(r, handlers.NewUserHandler(userSvc))
	registerDonationRoutes(r, handlers.NewDonationHandler(donationSvc))
	registerBookmarkRoutes(r, handlers.NewBookmarkHandler(bookmarkSvc))
	registerPrayerRoutes(r, handlers.NewPrayerHandler(prayerSvc))
	registerCacheRoutes(r, handlers.NewCacheHandler(cacheSvc), handlers.NewLeaderboardHandler(leaderboardSvc))

	return r, nil
}
