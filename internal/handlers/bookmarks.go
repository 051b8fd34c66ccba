package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/services"
	"github.com/cerahati/backend/pkg/response"
)

// BookmarkHandler exposes the bookmark CRUD APIs.
type BookmarkHandler struct {
	svc *services.BookmarkService
}

// NewBookmarkHandler constructs a handler using the provided service.
func NewBookmarkHandler(svc *services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{svc: svc}
}

type bookmarkPayload struct {
	UserID       uint `json:"user_id" validate:"required"`
	RumahYatimID uint `json:"rumah_yatim_id" validate:"required"`
}

// List returns every bookmark.
func (h *BookmarkHandler) List(c *gin.Context) {
	rows, err := h.svc.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, rows)
}

// Get returns one bookmark by id.
func (h *BookmarkHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	row, err := h.svc.Get(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, row)
}

// Create stores a new bookmark.
func (h *BookmarkHandler) Create(c *gin.Context) {
	var payload bookmarkPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	row, err := h.svc.Create(requestContext(c), services.BookmarkInput{
		UserID:       payload.UserID,
		RumahYatimID: payload.RumahYatimID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Bookmark created successfully", row.ID)
}

// Update repoints an existing bookmark.
func (h *BookmarkHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload bookmarkPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	err := h.svc.Update(requestContext(c), id, services.BookmarkInput{
		UserID:       payload.UserID,
		RumahYatimID: payload.RumahYatimID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Bookmark updated successfully")
}

// ByUser lists a user's bookmarks joined with orphanage details.
func (h *BookmarkHandler) ByUser(c *gin.Context) {
	id, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	rows, err := h.svc.ListByUser(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, rows)
}

// ByOrphanage lists the bookmarks pointing at an orphanage.
func (h *BookmarkHandler) ByOrphanage(c *gin.Context) {
	id, ok := parseIDParam(c, "orphanageId")
	if !ok {
		return
	}

	rows, err := h.svc.ListByOrphanage(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, rows)
}

// Delete removes a bookmark.
func (h *BookmarkHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(requestContext(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Bookmark deleted successfully")
}
