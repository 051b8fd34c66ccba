package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/cerahati/backend/pkg/errors"
)

// Data source labels reported by cached read endpoints.
const (
	SourceCache    = "cache"
	SourceDatabase = "database"
)

// CachedPayload is the body shape of every /cache read endpoint.
type CachedPayload struct {
	Source string      `json:"source"`
	Data   interface{} `json:"data"`
}

// Data writes a raw JSON payload. CRUD reads return rows without an envelope.
func Data(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

// Cached writes a cached read payload tagged with its data source.
func Cached(c *gin.Context, source string, data interface{}) {
	c.JSON(http.StatusOK, CachedPayload{Source: source, Data: data})
}

// Message writes a `{message}` acknowledgement.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Created writes a `{message, id}` acknowledgement for newly inserted rows.
func Created(c *gin.Context, message string, id uint) {
	c.JSON(http.StatusCreated, gin.H{"message": message, "id": id})
}

// Error writes a JSON error body derived from an AppError.
func Error(c *gin.Context, err error) {
	if err == nil {
		err = appErrors.ErrServer
	}

	appErr := appErrors.FromError(err)
	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{"error": appErr.Message})
}
