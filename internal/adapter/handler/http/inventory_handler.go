package http

import (
	"net/http"
	"time"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/elitemotors/storefront/internal/core/inventory"
	"github.com/elitemotors/storefront/internal/core/ports"
	"github.com/elitemotors/storefront/internal/core/services"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
}

type ReloadResponse struct {
	Vehicles int              `json:"vehicles" example:"24"`
	Facets   inventory.Facets `json:"facets"`
}

func NewInventoryHandler(
	inventoryService *services.InventoryService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		logger:           logger,
		metrics:          metrics,
	}
}

func (h *InventoryHandler) parseFilter(c *gin.Context) domain.FilterState {
	filter, err := inventory.ParseFilterState(c.Request.URL.Query())
	if err != nil {
		h.logger.Debug("Ignoring malformed filter values", map[string]interface{}{
			"error": err.Error(),
			"query": c.Request.URL.RawQuery,
		})
	}
	return filter
}

// @Summary Browse inventory
// @Description Fetches the catalog and renders it through the filter. Malformed filter values are ignored.
// @Tags inventory
// @Produce json
// @Param brand query string false "Brand or all"
// @Param price_min query int false "Minimum price"
// @Param price_max query int false "Maximum price"
// @Param year_min query int false "Minimum year"
// @Param year_max query int false "Maximum year"
// @Param mileage_max query int false "Maximum mileage"
// @Param fuel query string false "Fuel type or all"
// @Param transmission query string false "Transmission or all"
// @Param engine_size query string false "small, medium, large or all"
// @Param color query string false "Color or all"
// @Param sort query string false "newest, price-low, price-high, year-old, year-new, mileage-low, mileage-high"
// @Success 200 {object} services.InventoryView "Inventory page"
// @Router /inventory [get]
func (h *InventoryHandler) Browse(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	view := h.inventoryService.Browse(c.Request.Context(), h.parseFilter(c), optionalSession(c))
	c.JSON(http.StatusOK, view)
}

// @Summary Refilter inventory
// @Description Renders the already loaded catalog through a new filter without fetching.
// @Tags inventory
// @Produce json
// @Param sort query string false "Sort key"
// @Success 200 {object} services.InventoryView "Inventory page"
// @Router /inventory/filter [get]
func (h *InventoryHandler) Refilter(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	view := h.inventoryService.Refilter(c.Request.Context(), h.parseFilter(c), optionalSession(c))
	c.JSON(http.StatusOK, view)
}

// @Summary Filter options
// @Tags inventory
// @Produce json
// @Success 200 {object} inventory.Facets "Facet options"
// @Router /inventory/facets [get]
func (h *InventoryHandler) Facets(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	c.JSON(http.StatusOK, h.inventoryService.Facets(c.Request.Context()))
}

// @Summary Reload catalog
// @Description Fetches the catalog again and replaces the facet options.
// @Tags inventory
// @Produce json
// @Success 200 {object} ReloadResponse "Catalog reloaded"
// @Router /inventory/reload [post]
func (h *InventoryHandler) Reload(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	facets, count := h.inventoryService.Reload(c.Request.Context())
	c.JSON(http.StatusOK, ReloadResponse{
		Vehicles: count,
		Facets:   facets,
	})
}
