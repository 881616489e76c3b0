package http

import (
	"net/http"
	"time"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/elitemotors/storefront/internal/core/ports"
	"github.com/elitemotors/storefront/internal/core/services"

	"github.com/gin-gonic/gin"
)

type TestDriveHandler struct {
	testDriveService *services.TestDriveService
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
}

type TestDriveRequest struct {
	VehicleID int64  `json:"vehicle_id" example:"1"`
	Date      string `json:"date" example:"2025-06-01"`
	Time      string `json:"time" example:"10:30"`
	Phone     string `json:"phone" example:"555-0100"`
	Message   string `json:"message,omitempty" example:"Weekend if possible"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required" example:"approved"`
}

type TestDrivesResponse struct {
	TestDrives []*domain.TestDrive `json:"test_drives"`
	Count      int                 `json:"count"`
}

func NewTestDriveHandler(
	testDriveService *services.TestDriveService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *TestDriveHandler {
	return &TestDriveHandler{
		testDriveService: testDriveService,
		logger:           logger,
		metrics:          metrics,
	}
}

// @Summary Request test drive
// @Tags test-drives
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body TestDriveRequest true "Test drive request"
// @Success 201 {object} successResponse "Test drive requested"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Customers only"
// @Router /test-drives [post]
func (h *TestDriveHandler) Submit(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to Submit", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		handleError(c, domain.ErrUnauthenticated, "Unauthorized")
		return
	}

	var req TestDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in submit test drive", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	drive, err := h.testDriveService.Submit(c.Request.Context(), payload, &domain.TestDriveRequest{
		VehicleID: req.VehicleID,
		Date:      req.Date,
		Time:      req.Time,
		Phone:     req.Phone,
		Message:   req.Message,
	})
	if err != nil {
		handleError(c, err, "Failed to request test drive")
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Test drive requested", drive)
}

// @Summary My test drives
// @Tags test-drives
// @Security BearerAuth
// @Produce json
// @Success 200 {object} TestDrivesResponse "Requests"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /test-drives/my [get]
func (h *TestDriveHandler) ListMine(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	drives, err := h.testDriveService.ListMine(c.Request.Context(), optionalSession(c))
	if err != nil {
		handleError(c, err, "Failed to get test drives")
		return
	}

	c.JSON(http.StatusOK, TestDrivesResponse{
		TestDrives: drives,
		Count:      len(drives),
	})
}

// @Summary All test drives
// @Tags owner
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, approved, completed or cancelled"
// @Success 200 {object} TestDrivesResponse "Requests"
// @Failure 400 {object} errorResponse "Unknown status"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Router /owner/test-drives [get]
func (h *TestDriveHandler) ListAll(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	status := domain.TestDriveStatus(c.Query("status"))
	if status == domain.All {
		status = ""
	}

	drives, err := h.testDriveService.ListAll(c.Request.Context(), optionalSession(c), status)
	if err != nil {
		handleError(c, err, "Failed to get test drives")
		return
	}

	c.JSON(http.StatusOK, TestDrivesResponse{
		TestDrives: drives,
		Count:      len(drives),
	})
}

// @Summary Change test drive status
// @Tags owner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Test drive ID" example:"3"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} messageResponse "Status updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Test drive not found"
// @Router /owner/test-drives/{id}/status [put]
func (h *TestDriveHandler) UpdateStatus(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	driveID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update status", map[string]interface{}{
			"error":         err.Error(),
			"test_drive_id": driveID,
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	err := h.testDriveService.UpdateStatus(c.Request.Context(), optionalSession(c), driveID, domain.TestDriveStatus(req.Status))
	if err != nil {
		handleError(c, err, "Failed to update status")
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Status updated"})
}

// @Summary Owner dashboard
// @Tags owner
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.DashboardStats "Counts"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Router /owner/dashboard [get]
func (h *TestDriveHandler) Dashboard(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	stats, err := h.testDriveService.Dashboard(c.Request.Context(), optionalSession(c))
	if err != nil {
		handleError(c, err, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, stats)
}
