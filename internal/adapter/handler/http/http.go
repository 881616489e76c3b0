package http

import (
	"net/http"
	"time"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/elitemotors/storefront/internal/core/ports"
	"github.com/elitemotors/storefront/internal/core/services"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	carService *services.CarService
	logger     ports.LoggerPort
	metrics    ports.MetricsPort
}

// CarRequest is the owner car form. Color left out stays unset.
type CarRequest struct {
	Name         string  `json:"name" binding:"required" example:"2023 BMW M5"`
	Price        int     `json:"price" example:"78000"`
	Year         int     `json:"year" binding:"required" example:"2023"`
	Mileage      int     `json:"mileage" example:"1200"`
	ImageURL     string  `json:"image_url" example:"https://cdn.example.com/m5.jpg"`
	Featured     bool    `json:"featured" example:"true"`
	Description  string  `json:"description" example:"Competition package"`
	Color        *string `json:"color,omitempty" example:"Black"`
	Engine       string  `json:"engine" example:"4.4L V8"`
	Transmission string  `json:"transmission" example:"Automatic"`
	Fuel         string  `json:"fuel" example:"Gasoline"`
}

type CarListResponse struct {
	Cars  []domain.Vehicle `json:"cars"`
	Count int              `json:"count"`
}

func NewCarHandler(
	carService *services.CarService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *CarHandler {
	return &CarHandler{
		carService: carService,
		logger:     logger,
		metrics:    metrics,
	}
}

func (r CarRequest) vehicle(id int64) *domain.Vehicle {
	return &domain.Vehicle{
		ID:          id,
		Name:        r.Name,
		Price:       r.Price,
		Year:        r.Year,
		Mileage:     r.Mileage,
		ImageURL:    r.ImageURL,
		Featured:    r.Featured,
		Description: r.Description,
		Color:       r.Color,
		Specs: domain.Specs{
			Engine:       r.Engine,
			Transmission: r.Transmission,
			Fuel:         r.Fuel,
		},
	}
}

// @Summary Get car
// @Description Car details by ID
// @Tags cars
// @Produce json
// @Param id path int true "Car ID" example:"1"
// @Success 200 {object} domain.Vehicle "Car found"
// @Failure 400 {object} errorResponse "Invalid id"
// @Failure 404 {object} errorResponse "Car not found"
// @Failure 502 {object} errorResponse "Dealership service unavailable"
// @Router /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	carID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	car, err := h.carService.GetCar(c.Request.Context(), carID)
	if err != nil {
		h.logger.Error("Failed to get car", map[string]interface{}{
			"error":  err.Error(),
			"car_id": carID,
		})
		handleError(c, err, "Failed to get car")
		return
	}

	c.JSON(http.StatusOK, car)
}

// @Summary Featured cars
// @Description Cars shown on the home page. Empty when the API is unavailable.
// @Tags cars
// @Produce json
// @Success 200 {object} CarListResponse "Featured cars"
// @Router /cars/featured [get]
func (h *CarHandler) Featured(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	cars := h.carService.Featured(c.Request.Context())
	c.JSON(http.StatusOK, CarListResponse{
		Cars:  cars,
		Count: len(cars),
	})
}

// @Summary List cars for management
// @Tags owner
// @Security BearerAuth
// @Produce json
// @Success 200 {object} CarListResponse "Inventory"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Router /owner/cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to ListCars", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		handleError(c, domain.ErrUnauthenticated, "Unauthorized")
		return
	}

	cars, err := h.carService.ListForOwner(c.Request.Context(), payload)
	if err != nil {
		handleError(c, err, "Failed to get cars")
		return
	}

	c.JSON(http.StatusOK, CarListResponse{
		Cars:  cars,
		Count: len(cars),
	})
}

// @Summary Create car
// @Tags owner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CarRequest true "Car form"
// @Success 201 {object} domain.Vehicle "Car created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Router /owner/cars [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to CreateCar", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		handleError(c, domain.ErrUnauthenticated, "Unauthorized")
		return
	}

	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create car", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	created, err := h.carService.CreateCar(c.Request.Context(), payload, req.vehicle(0))
	if err != nil {
		handleError(c, err, "Failed to create car")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Update car
// @Tags owner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Car ID" example:"1"
// @Param request body CarRequest true "Car form"
// @Success 200 {object} domain.Vehicle "Car updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Car not found"
// @Router /owner/cars/{id} [put]
func (h *CarHandler) UpdateCar(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to UpdateCar", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		handleError(c, domain.ErrUnauthenticated, "Unauthorized")
		return
	}

	carID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update car", map[string]interface{}{
			"error":  err.Error(),
			"car_id": carID,
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	updated, err := h.carService.UpdateCar(c.Request.Context(), payload, req.vehicle(carID))
	if err != nil {
		handleError(c, err, "Failed to update car")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete car
// @Tags owner
// @Security BearerAuth
// @Produce json
// @Param id path int true "Car ID" example:"1"
// @Success 200 {object} messageResponse "Car deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Car not found"
// @Router /owner/cars/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to DeleteCar", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		handleError(c, domain.ErrUnauthenticated, "Unauthorized")
		return
	}

	carID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.carService.DeleteCar(c.Request.Context(), payload, carID); err != nil {
		handleError(c, err, "Failed to delete car")
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Car deleted successfully"})
}
