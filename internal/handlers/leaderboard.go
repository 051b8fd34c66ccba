package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/models"
	"github.com/cerahati/backend/internal/services"
	"github.com/cerahati/backend/pkg/response"
)

// LeaderboardHandler exposes the cached donor ranking endpoints.
type LeaderboardHandler struct {
	svc *services.LeaderboardService
}

// NewLeaderboardHandler constructs a handler using the provided service.
func NewLeaderboardHandler(svc *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

// Get serves the ranking, cached or freshly aggregated.
func (h *LeaderboardHandler) Get(c *gin.Context) {
	result, err := h.svc.Get(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, result.Source, result.Data)
}

type overwriteLeaderboardPayload struct {
	Data []leaderboardEntryPayload `json:"data" validate:"required,min=1,dive"`
}

type leaderboardEntryPayload struct {
	UserID         uint    `json:"user_id" validate:"required"`
	Username       string  `json:"username" validate:"required"`
	DonationCount  int64   `json:"donation_count" validate:"min=0"`
	TotalDonations float64 `json:"total_donations" validate:"min=0"`
}

// Overwrite installs a precomputed ranking as the cached value.
func (h *LeaderboardHandler) Overwrite(c *gin.Context) {
	var payload overwriteLeaderboardPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	entries := make([]models.LeaderboardEntry, 0, len(payload.Data))
	for _, e := range payload.Data {
		entries = append(entries, models.LeaderboardEntry{
			UserID:         e.UserID,
			Username:       e.Username,
			DonationCount:  e.DonationCount,
			TotalDonations: e.TotalDonations,
		})
	}

	if err := h.svc.Overwrite(requestContext(c), entries); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Leaderboard cache updated successfully")
}

// Refresh recomputes the ranking and replaces the cached value.
func (h *LeaderboardHandler) Refresh(c *gin.Context) {
	entries, err := h.svc.Refresh(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, response.SourceDatabase, entries)
}
