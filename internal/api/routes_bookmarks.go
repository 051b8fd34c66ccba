package api

import (
	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/handlers"
)

func registerBookmarkRoutes(r *gin.Engine, handler *handlers.BookmarkHandler) {
	bookmarks := r.Group("/bookmark")
	{
		bookmarks.GET("", handler.List)
		bookmarks.POST("", handler.Create)
		bookmarks.GET("/user/:userId", handler.ByUser)
		bookmarks.GET("/orphanage/:orphanageId", handler.ByOrphanage)
		bookmarks.GET("/:id", handler.Get)
		bookmarks.PUT("/:id", handler.Update)
		bookmarks.DELETE("/:id", handler.Delete)
	}
}
