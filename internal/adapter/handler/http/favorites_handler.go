package http

import (
	"net/http"
	"time"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/elitemotors/storefront/internal/core/ports"
	"github.com/elitemotors/storefront/internal/core/services"

	"github.com/gin-gonic/gin"
)

type FavoritesHandler struct {
	favoritesService *services.FavoritesService
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
}

type FavoritesResponse struct {
	Favorites []*domain.Favorite `json:"favorites"`
	Count     int                `json:"count"`
}

type FavoriteToggleResponse struct {
	VehicleID  int64 `json:"vehicle_id" example:"1"`
	IsFavorite bool  `json:"is_favorite" example:"true"`
}

func NewFavoritesHandler(
	favoritesService *services.FavoritesService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesService: favoritesService,
		logger:           logger,
		metrics:          metrics,
	}
}

// @Summary My favorites
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {object} FavoritesResponse "Saved cars"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Customers only"
// @Router /favorites [get]
func (h *FavoritesHandler) List(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	favorites, err := h.favoritesService.List(c.Request.Context(), optionalSession(c))
	if err != nil {
		handleError(c, err, "Failed to get favorites")
		return
	}

	c.JSON(http.StatusOK, FavoritesResponse{
		Favorites: favorites,
		Count:     len(favorites),
	})
}

// @Summary Save car
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Param car_id path int true "Car ID" example:"1"
// @Success 200 {object} FavoriteToggleResponse "Saved"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Customers only"
// @Failure 502 {object} errorResponse "Dealership service unavailable"
// @Router /favorites/{car_id} [post]
func (h *FavoritesHandler) Add(c *gin.Context) {
	h.toggle(c, true)
}

// @Summary Unsave car
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Param car_id path int true "Car ID" example:"1"
// @Success 200 {object} FavoriteToggleResponse "Removed"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Customers only"
// @Failure 502 {object} errorResponse "Dealership service unavailable"
// @Router /favorites/{car_id} [delete]
func (h *FavoritesHandler) Remove(c *gin.Context) {
	h.toggle(c, false)
}

func (h *FavoritesHandler) toggle(c *gin.Context, add bool) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	carID, ok := parseIDParam(c, "car_id")
	if !ok {
		return
	}

	session := optionalSession(c)
	var err error
	if add {
		err = h.favoritesService.Add(c.Request.Context(), session, carID)
	} else {
		err = h.favoritesService.Remove(c.Request.Context(), session, carID)
	}
	if err != nil {
		handleError(c, err, "Failed to update favorites")
		return
	}

	c.JSON(http.StatusOK, FavoriteToggleResponse{
		VehicleID:  carID,
		IsFavorite: add,
	})
}
