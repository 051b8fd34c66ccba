package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/services"
	"github.com/cerahati/backend/pkg/response"
)

// UserHandler exposes the user CRUD and summary APIs.
type UserHandler struct {
	svc *services.UserService
}

// NewUserHandler constructs a handler using the provided service.
func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type createUserPayload struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type updateUserPayload struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// List returns every registered user.
func (h *UserHandler) List(c *gin.Context) {
	rows, err := h.svc.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, rows)
}

// Get returns one user by id.
func (h *UserHandler) Get(c *gin.Context) {
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

// Create registers a new user.
func (h *UserHandler) Create(c *gin.Context) {
	var payload createUserPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	row, err := h.svc.Create(requestContext(c), services.UserInput{
		Username: payload.Username,
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "User added successfully", row.ID)
}

// Update replaces a user's profile fields.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload updateUserPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	err := h.svc.Update(requestContext(c), id, services.UserInput{
		Username: payload.Username,
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "User updated successfully")
}

// Delete removes a user.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(requestContext(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "User deleted successfully")
}

// Profile returns a user's giving summary.
func (h *UserHandler) Profile(c *gin.Context) {
	id, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	profile, err := h.svc.Profile(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, profile)
}

// Activity returns a user's recent donations and bookmarks.
func (h *UserHandler) Activity(c *gin.Context) {
	id, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	activity, err := h.svc.Activity(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, activity)
}

// MonthlyDonations returns a user's month-by-month giving history.
func (h *UserHandler) MonthlyDonations(c *gin.Context) {
	id, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	months, err := h.svc.MonthlyDonations(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, months)
}

// Engagement returns a user's engagement summary.
func (h *UserHandler) Engagement(c *gin.Context) {
	id, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	engagement, err := h.svc.Engagement(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, engagement)
}
