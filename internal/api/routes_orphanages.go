package api

import (
	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/handlers"
)

func registerOrphanageRoutes(r *gin.Engine, handler *handlers.OrphanageHandler) {
	orphanages := r.Group("/rumah_yatim")
	{
		orphanages.GET("", handler.List)
		orphanages.POST("", handler.Create)
		orphanages.GET("/search", handler.Search)
		orphanages.GET("/city/:city", handler.ByCity)
		orphanages.GET("/:id", handler.Get)
		orphanages.PUT("/:id", handler.Update)
		orphanages.DELETE("/:id", handler.Delete)
	}
}
