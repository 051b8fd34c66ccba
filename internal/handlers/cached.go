package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/services"
	"github.com/cerahati/backend/pkg/response"
)

// CacheHandler exposes the cached read endpoints. Responses carry a source tag
// telling the client whether the payload came from the cache or the database.
type CacheHandler struct {
	svc *services.ResourceCacheService
}

// NewCacheHandler constructs a handler using the provided service.
func NewCacheHandler(svc *services.ResourceCacheService) *CacheHandler {
	return &CacheHandler{svc: svc}
}

// Orphanages serves the cached orphanage listing.
func (h *CacheHandler) Orphanages(c *gin.Context) {
	result, err := h.svc.Orphanages(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, result.Source, result.Data)
}

// Orphanage serves one cached orphanage.
func (h *CacheHandler) Orphanage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.svc.Orphanage(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, result.Source, result.Data)
}

// Users serves the cached user listing.
func (h *CacheHandler) Users(c *gin.Context) {
	result, err := h.svc.Users(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, result.Source, result.Data)
}

// User serves one cached user.
func (h *CacheHandler) User(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.svc.User(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, result.Source, result.Data)
}

// Donations serves the cached donation listing.
func (h *CacheHandler) Donations(c *gin.Context) {
	result, err := h.svc.Donations(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, result.Source, result.Data)
}

// Donation serves one cached donation.
func (h *CacheHandler) Donation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.svc.Donation(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, result.Source, result.Data)
}

// DonationsByUser serves a user's cached donation history.
func (h *CacheHandler) DonationsByUser(c *gin.Context) {
	id, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	result, err := h.svc.DonationsByUser(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, result.Source, result.Data)
}

// Bookmarks serves the cached bookmark listing.
func (h *CacheHandler) Bookmarks(c *gin.Context) {
	result, err := h.svc.Bookmarks(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, result.Source, result.Data)
}

// Bookmark serves one cached bookmark.
func (h *CacheHandler) Bookmark(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.svc.Bookmark(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, result.Source, result.Data)
}

// Prayers serves the cached prayer listing.
func (h *CacheHandler) Prayers(c *gin.Context) {
	result, err := h.svc.Prayers(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, result.Source, result.Data)
}

// Prayer serves one cached prayer.
func (h *CacheHandler) Prayer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.svc.Prayer(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, result.Source, result.Data)
}
