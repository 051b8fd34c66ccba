package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cerahati/backend/internal/captcha"
	"github.com/cerahati/backend/internal/services"
	appErrors "github.com/cerahati/backend/pkg/errors"
	"github.com/cerahati/backend/pkg/metrics"
	"github.com/cerahati/backend/pkg/response"
)

// AuthHandler exposes login and registration.
type AuthHandler struct {
	users    *services.UserService
	verifier *captcha.Verifier
}

// NewAuthHandler constructs a handler using the provided service and verifier.
func NewAuthHandler(users *services.UserService, verifier *captcha.Verifier) *AuthHandler {
	return &AuthHandler{users: users, verifier: verifier}
}

type loginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login verifies a username/password pair. The success body carries only the
// username; session handling is up to the client.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload loginPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	user, err := h.users.Authenticate(requestContext(c), payload.Username, payload.Password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		response.Error(c, err)
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	response.Data(c, http.StatusOK, gin.H{"username": user.Username})
}

type registerPayload struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Token    string `json:"token"`
}

// Register verifies the reCAPTCHA token and creates the user.
func (h *AuthHandler) Register(c *gin.Context) {
	var payload registerPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	ctx := requestContext(c)

	if h.verifier.Enabled() {
		ok, err := h.verifier.Verify(ctx, payload.Token)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, "Server error during registration"))
			return
		}
		if !ok {
			response.Error(c, appErrors.ErrCaptchaFailed)
			return
		}
	}

	user, err := h.users.Create(ctx, services.UserInput{
		Username: payload.Username,
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		response.Error(c, appErrors.Wrap(err, "Server error during registration"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}
