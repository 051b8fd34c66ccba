package api

import (
	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/handlers"
)

func registerPrayerRoutes(r *gin.Engine, handler *handlers.PrayerHandler) {
	prayers := r.Group("/doa")
	{
		prayers.GET("", handler.List)
		prayers.POST("", handler.Create)
		prayers.GET("/:id", handler.Get)
		prayers.PUT("/:id", handler.Update)
		prayers.DELETE("/:id", handler.Delete)
	}
}
