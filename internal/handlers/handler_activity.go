package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/mma_audit/internal/core/ports/services"
	"github.com/SscSPs/mma_audit/internal/dto"
	"github.com/SscSPs/mma_audit/internal/middleware"
	"github.com/gin-gonic/gin"
)

// activityHandler handles HTTP requests for the activity feed.
type activityHandler struct {
	activityReporter portssvc.ActivityReporterSvc
	auditWriter      portssvc.AuditWriterSvc
}

// newActivityHandler creates a new activityHandler.
func newActivityHandler(reporter portssvc.ActivityReporterSvc, writer portssvc.AuditWriterSvc) *activityHandler {
	return &activityHandler{
		activityReporter: reporter,
		auditWriter:      writer,
	}
}

// RegisterActivityRoutes registers routes related to the activity feed.
func RegisterActivityRoutes(rg *gin.RouterGroup, reporter portssvc.ActivityReporterSvc, writer portssvc.AuditWriterSvc) {
	h := newActivityHandler(reporter, writer)

	activities := rg.Group("/activities")
	{
		activities.GET("", h.listActivities)
		activities.POST("", h.createActivity)
		activities.GET("/:entryID", h.getActivity)
	}
}

// listActivities godoc
// @Summary List activities
// @Description Retrieves a page of the caller's activity, newest first
// @Tags activities
// @Produce  json
// @Param   page query int false "Page number (default 1)"
// @Param   pageSize query int false "Page size (default 10, max 100)"
// @Param   search query string false "Case-insensitive match on title, description or integrity token"
// @Param   category query string false "Category, or 'All Activities'"
// @Param   status query string false "Status, or 'All Status'"
// @Success 200 {object} dto.ListActivitiesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /activities [get]
func (h *activityHandler) listActivities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListActivitiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListActivities", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page := h.activityReporter.List(c.Request.Context(), userID, params.ToFilter(), params.Page, params.PageSize)

	logger.Debug("Activities listed", slog.Int("count", len(page.Items)), slog.Int("total", page.Total))
	c.JSON(http.StatusOK, dto.ToListActivitiesResponse(page))
}

// getActivity godoc
// @Summary Get an activity
// @Description Retrieves a single activity belonging to the caller
// @Tags activities
// @Produce  json
// @Param   entryID path int true "Entry ID"
// @Success 200 {object} dto.ActivityResponse
// @Failure 400 {object} map[string]string "Invalid entry ID"
// @Failure 404 {object} map[string]string "Activity not found"
// @Security BearerAuth
// @Router /activities/{entryID} [get]
func (h *activityHandler) getActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entryID, err := strconv.ParseInt(c.Param("entryID"), 10, 64)
	if err != nil || entryID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID must be a positive integer"})
		return
	}

	item, found := h.activityReporter.Detail(c.Request.Context(), userID, entryID)
	if !found {
		logger.Warn("Activity not found", slog.Int64("entry_id", entryID))
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(*item))
}

// createActivity godoc
// @Summary Record an activity
// @Description Appends an entry to the caller's activity ledger
// @Tags activities
// @Accept  json
// @Produce  json
// @Param   activity body dto.CreateActivityRequest true "Activity details"
// @Success 201 {object} dto.CreateActivityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} dto.CreateActivityResponse "Activity could not be stored"
// @Security BearerAuth
// @Router /activities [post]
func (h *activityHandler) createActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateActivity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if !h.auditWriter.Append(c.Request.Context(), req.ToAuditEntry(userID)) {
		c.JSON(http.StatusInternalServerError, dto.CreateActivityResponse{Recorded: false})
		return
	}

	logger.Info("Activity recorded", slog.String("category", req.Category))
	c.JSON(http.StatusCreated, dto.CreateActivityResponse{Recorded: true})
}
