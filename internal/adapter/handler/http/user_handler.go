package http

import (
	"net/http"
	"time"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/elitemotors/storefront/internal/core/ports"
	"github.com/elitemotors/storefront/internal/core/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type RoleRequest struct {
	Role string `json:"role" binding:"required" example:"owner"`
}

func NewUserHandler(
	userService *services.UserService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary List users
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param role query string false "customer, owner, admin or all"
// @Param search query string false "Username, email or full name"
// @Success 200 {object} services.UserList "Users"
// @Failure 400 {object} errorResponse "Unknown role"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Admin access required"
// @Router /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	list, err := h.userService.List(c.Request.Context(), optionalSession(c), services.UserFilter{
		Role:   domain.UserRole(c.Query("role")),
		Search: c.Query("search"),
	})
	if err != nil {
		handleError(c, err, "Failed to get users")
		return
	}

	c.JSON(http.StatusOK, list)
}

// @Summary Change user role
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID" example:"7"
// @Param request body RoleRequest true "New role"
// @Success 200 {object} messageResponse "Role updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Admin access required"
// @Router /admin/users/{id}/role [put]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in change role", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if err := h.userService.ChangeRole(c.Request.Context(), optionalSession(c), userID, domain.UserRole(req.Role)); err != nil {
		handleError(c, err, "Failed to update role")
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Role updated"})
}

// @Summary Delete user
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID" example:"8"
// @Success 200 {object} messageResponse "User deleted"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Admin access required"
// @Router /admin/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), optionalSession(c), userID); err != nil {
		handleError(c, err, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "User deleted"})
}
