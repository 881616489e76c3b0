package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/elitemotors/storefront/internal/core/domain"

	"github.com/gin-gonic/gin"
)

const loginPath = "/login"

type errorResponse struct {
	Error    string `json:"error" example:"Unauthorized"`
	Redirect string `json:"redirect,omitempty" example:"/login"`
}

type messageResponse struct {
	Message string `json:"message" example:"Car deleted successfully"`
}

type successResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Test drive requested"`
	Data    interface{} `json:"data,omitempty"`
}

func newSuccessResponse(c *gin.Context, status int, msg string, data interface{}) {
	c.JSON(status, successResponse{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

func newErrorResponse(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}

// handleError maps a domain error class to a status. fallback is used when
// the error carries no user-facing reason.
func handleError(c *gin.Context, err error, fallback string) {
	switch {
	case domain.IsUnauthenticated(err):
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{
			Error:    "Unauthorized",
			Redirect: loginPath,
		})
	case errors.Is(err, domain.ErrAuth):
		newErrorResponse(c, http.StatusForbidden, domain.Reason(err, "Access denied"))
	case errors.Is(err, domain.ErrValidation):
		newErrorResponse(c, http.StatusBadRequest, domain.Reason(err, fallback))
	case errors.Is(err, domain.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrNetwork):
		newErrorResponse(c, http.StatusBadGateway, "Dealership service unavailable")
	default:
		newErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		newErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}
