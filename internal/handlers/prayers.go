package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/services"
	"github.com/cerahati/backend/pkg/response"
)

// PrayerHandler exposes the doa CRUD APIs.
type PrayerHandler struct {
	svc *services.PrayerService
}

// NewPrayerHandler constructs a handler using the provided service.
func NewPrayerHandler(svc *services.PrayerService) *PrayerHandler {
	return &PrayerHandler{svc: svc}
}

type prayerPayload struct {
	Nama string `json:"nama" validate:"required,max=255"`
	Isi  string `json:"isi" validate:"required"`
}

// List returns every prayer.
func (h *PrayerHandler) List(c *gin.Context) {
	rows, err := h.svc.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, rows)
}

// Get returns one prayer by id.
func (h *PrayerHandler) Get(c *gin.Context) {
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

// Create inserts a new prayer.
func (h *PrayerHandler) Create(c *gin.Context) {
	var payload prayerPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	row, err := h.svc.Create(requestContext(c), services.PrayerInput{
		Nama: payload.Nama,
		Isi:  payload.Isi,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Prayer created successfully", row.ID)
}

// Update replaces a prayer's title and body.
func (h *PrayerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload prayerPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	err := h.svc.Update(requestContext(c), id, services.PrayerInput{
		Nama: payload.Nama,
		Isi:  payload.Isi,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Prayer updated successfully")
}

// Delete removes a prayer.
func (h *PrayerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(requestContext(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Prayer deleted successfully")
}
