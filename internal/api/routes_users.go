package api

import (
	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/handlers"
)

func registerUserRoutes(r *gin.Engine, handler *handlers.UserHandler) {
	users := r.Group("/users")
	{
		users.GET("", handler.List)
		users.POST("", handler.Create)
		users.GET("/profile/:userId", handler.Profile)
		users.GET("/activity/:userId", handler.Activity)
		users.GET("/monthly-donations/:userId", handler.MonthlyDonations)
		users.GET("/engagement/:userId", handler.Engagement)
		users.GET("/:id", handler.Get)
		users.PUT("/:id", handler.Update)
		users.DELETE("/:id", handler.Delete)
	}
}
