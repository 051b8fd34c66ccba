package api

import (
	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/handlers"
)

func registerAuthRoutes(r *gin.Engine, handler *handlers.AuthHandler, loginLimiter gin.HandlerFunc) {
	r.POST("/login", loginLimiter, handler.Login)
	r.POST("/register", handler.Register)
}
