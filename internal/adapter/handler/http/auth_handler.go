package http

import (
	"net/http"
	"time"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/elitemotors/storefront/internal/core/ports"
	"github.com/elitemotors/storefront/internal/core/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type LoginRequest struct {
	Username string `json:"username" example:"jdoe"`
	Password string `json:"password" example:"secret"`
}

type RegisterRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Username string `json:"username" example:"jdoe"`
	Password string `json:"password" example:"secret"`
	FullName string `json:"full_name" example:"Jane Doe"`
}

func NewAuthHandler(
	authService *services.AuthService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Log in
// @Description Exchanges credentials for a storefront session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} services.LoginResult "Logged in"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Wrong credentials"
// @Failure 502 {object} errorResponse "Dealership service unavailable"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in login", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &domain.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if domain.IsUnauthenticated(err) {
			// the login page itself; no redirect hint
			newErrorResponse(c, http.StatusUnauthorized, domain.Reason(err, "Invalid username or password"))
			return
		}
		handleError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Register
// @Description Creates a customer account and logs it in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account"
// @Success 201 {object} services.LoginResult "Registered"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 502 {object} errorResponse "Dealership service unavailable"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in register", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &domain.Registration{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		handleError(c, err, "Registration failed")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// @Summary Log out
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} messageResponse "Logged out"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		handleError(c, domain.ErrUnauthenticated, "Unauthorized")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), payload); err != nil {
		handleError(c, err, "Logout failed")
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}

// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Identity "Current user"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity := h.authService.CurrentUser(optionalSession(c))
	if identity == nil {
		handleError(c, domain.ErrUnauthenticated, "Unauthorized")
		return
	}

	c.JSON(http.StatusOK, identity)
}
