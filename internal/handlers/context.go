package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
)

// requestContext returns the request context carried into the service layer,
// with a background fallback when handlers run outside a real request (tests).
func requestContext(c *gin.Context) context.Context {
	if c == nil {
		return context.Background()
	}
	if req := c.Request; req != nil {
		return req.Context()
	}
	return context.Background()
}
