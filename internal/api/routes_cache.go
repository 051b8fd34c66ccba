package api

import (
	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/handlers"
)

func registerCacheRoutes(r *gin.Engine, cached *handlers.CacheHandler, leaderboard *handlers.LeaderboardHandler) {
	group := r.Group("/cache")
	{
		group.GET("/rumah-yatim", cached.Orphanages)
		group.GET("/rumah-yatim/:id", cached.Orphanage)

		group.GET("/users", cached.Users)
		group.GET("/users/:id", cached.User)

		group.GET("/donation", cached.Donations)
		group.GET("/donation/users/:userId", cached.DonationsByUser)
		group.GET("/donation/:id", cached.Donation)

		group.GET("/bookmark", cached.Bookmarks)
		group.GET("/bookmark/:id", cached.Bookmark)

		group.GET("/doa", cached.Prayers)
		group.GET("/doa/:id", cached.Prayer)

		group.GET("/leaderboard", leaderboard.Get)
		group.POST("/leaderboard", leaderboard.Overwrite)
		group.POST("/leaderboard/refresh", leaderboard.Refresh)
	}
}
