package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cerahati/backend/pkg/response"
)

// Health returns a simple status payload useful for readiness checks. The
// database connection is pinged so load balancers see real readiness.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		code := http.StatusOK

		if db != nil {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(requestContext(c))
			}
			if err != nil {
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}

		response.Data(c, code, gin.H{"status": status})
	}
}
