package api

import (
	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/handlers"
)

func registerDonationRoutes(r *gin.Engine, handler *handlers.DonationHandler) {
	donations := r.Group("/donation")
	{
		donations.GET("", handler.List)
		donations.POST("", handler.Create)
		donations.GET("/user/:userId", handler.ByUser)
		donations.GET("/orphanage/:orphanageId", handler.ByOrphanage)
		donations.GET("/payment-trends", handler.PaymentTrends)
		donations.GET("/impact-analysis/:orphanageId", handler.Impact)
		donations.GET("/timeline/:orphanageId", handler.Timeline)
		donations.GET("/:id", handler.Get)
		donations.PUT("/:id", handler.Update)
		donations.DELETE("/:id", handler.Delete)
	}
}
