package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/services"
	appErrors "github.com/cerahati/backend/pkg/errors"
	"github.com/cerahati/backend/pkg/response"
)

// OrphanageHandler exposes the rumah yatim CRUD APIs.
type OrphanageHandler struct {
	svc *services.OrphanageService
}

// NewOrphanageHandler constructs a handler using the provided service.
func NewOrphanageHandler(svc *services.OrphanageService) *OrphanageHandler {
	return &OrphanageHandler{svc: svc}
}

type orphanagePayload struct {
	NamaPanti    string  `json:"nama_panti" validate:"required,max=255"`
	NamaKota     string  `json:"nama_kota" validate:"required,max=255"`
	NamaPengurus string  `json:"nama_pengurus" validate:"max=255"`
	Alamat       string  `json:"alamat"`
	Foto         string  `json:"foto"`
	Deskripsi    string  `json:"deskripsi"`
	JumlahAnak   int     `json:"jumlah_anak" validate:"min=0"`
	Kapasitas    int     `json:"kapasitas" validate:"min=0"`
	Kontak       string  `json:"kontak"`
	Latitude     float64 `json:"latitude"`
	Longtitude   float64 `json:"longtitude"`
}

func (p orphanagePayload) toInput() services.OrphanageInput {
	return services.OrphanageInput{
		NamaPanti:    p.NamaPanti,
		NamaKota:     p.NamaKota,
		NamaPengurus: p.NamaPengurus,
		Alamat:       p.Alamat,
		Foto:         p.Foto,
		Deskripsi:    p.Deskripsi,
		JumlahAnak:   p.JumlahAnak,
		Kapasitas:    p.Kapasitas,
		Kontak:       p.Kontak,
		Latitude:     p.Latitude,
		Longtitude:   p.Longtitude,
	}
}

// List returns every orphanage as a raw array.
func (h *OrphanageHandler) List(c *gin.Context) {
	rows, err := h.svc.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, rows)
}

// Get returns one orphanage by id.
func (h *OrphanageHandler) Get(c *gin.Context) {
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

// Create inserts a new orphanage.
func (h *OrphanageHandler) Create(c *gin.Context) {
	var payload orphanagePayload
	if !bindAndValidate(c, &payload) {
		return
	}

	row, err := h.svc.Create(requestContext(c), payload.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Orphanage created successfully", row.ID)
}

// Update replaces an orphanage's fields.
func (h *OrphanageHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload orphanagePayload
	if !bindAndValidate(c, &payload) {
		return
	}

	if err := h.svc.Update(requestContext(c), id, payload.toInput()); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Orphanage updated successfully")
}

// Delete removes an orphanage.
func (h *OrphanageHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(requestContext(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Orphanage deleted successfully")
}

// Search finds orphanages by name or city.
func (h *OrphanageHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.Error(c, appErrors.NewBadRequest("q is required"))
		return
	}

	rows, err := h.svc.Search(requestContext(c), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, rows)
}

// ByCity lists orphanages in one city.
func (h *OrphanageHandler) ByCity(c *gin.Context) {
	city := strings.TrimSpace(c.Param("city"))
	if city == "" {
		response.Error(c, appErrors.NewBadRequest("city is required"))
		return
	}

	rows, err := h.svc.ListByCity(requestContext(c), city)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, rows)
}
