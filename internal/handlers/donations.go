package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/services"
	"github.com/cerahati/backend/pkg/response"
)

// DonationHandler exposes the donation CRUD APIs.
type DonationHandler struct {
	svc *services.DonationService
}

// NewDonationHandler constructs a handler using the provided service.
func NewDonationHandler(svc *services.DonationService) *DonationHandler {
	return &DonationHandler{svc: svc}
}

type donationPayload struct {
	UserID        uint    `json:"user_id" validate:"required"`
	RumahYatimID  uint    `json:"rumah_yatim_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"max=50"`
	Status        string  `json:"status" validate:"omitempty,oneof=Pending Completed Failed"`
}

// List returns every donation.
func (h *DonationHandler) List(c *gin.Context) {
	rows, err := h.svc.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, rows)
}

// Get returns one donation by id.
func (h *DonationHandler) Get(c *gin.Context) {
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

// Create records a new donation.
func (h *DonationHandler) Create(c *gin.Context) {
	var payload donationPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	row, err := h.svc.Create(requestContext(c), services.DonationInput{
		UserID:        payload.UserID,
		RumahYatimID:  payload.RumahYatimID,
		Amount:        payload.Amount,
		PaymentMethod: payload.PaymentMethod,
		Status:        payload.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Donation created successfully", row.ID)
}

// Update replaces a donation's fields, typically its status after payment
// confirmation.
func (h *DonationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload donationPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	err := h.svc.Update(requestContext(c), id, services.DonationInput{
		UserID:        payload.UserID,
		RumahYatimID:  payload.RumahYatimID,
		Amount:        payload.Amount,
		PaymentMethod: payload.PaymentMethod,
		Status:        payload.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Donation status updated successfully")
}

// Delete removes a donation.
func (h *DonationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(requestContext(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Donation deleted successfully")
}

// ByUser lists a user's donations joined with donor and orphanage names.
func (h *DonationHandler) ByUser(c *gin.Context) {
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

// ByOrphanage lists the donations an orphanage has received.
func (h *DonationHandler) ByOrphanage(c *gin.Context) {
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

// PaymentTrends rolls up donations by payment method and month.
func (h *DonationHandler) PaymentTrends(c *gin.Context) {
	trends, err := h.svc.PaymentTrends(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, trends)
}

// Impact reports the donation impact summary for an orphanage.
func (h *DonationHandler) Impact(c *gin.Context) {
	id, ok := parseIDParam(c, "orphanageId")
	if !ok {
		return
	}

	impact, err := h.svc.ImpactAnalysis(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, impact)
}

// Timeline reports an orphanage's month-by-month donation history.
func (h *DonationHandler) Timeline(c *gin.Context) {
	id, ok := parseIDParam(c, "orphanageId")
	if !ok {
		return
	}

	entries, err := h.svc.Timeline(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, entries)
}
