package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guttosm/trainpulse/internal/middleware"
	"github.com/guttosm/trainpulse/internal/service"
	"github.com/guttosm/trainpulse/internal/storage"
)

// Handler provides HTTP handlers for the dashboard, target and goal endpoints.
//
// Responsibilities:
//   - Validate incoming query parameters and bodies
//   - Delegate to the service layer
//   - Map service errors to HTTP status codes and dto.ErrorResponse bodies
type Handler struct {
	dashboard service.DashboardService
	targets   service.TargetsService
	goals     service.GoalService
}

// NewHandler constructs a new Handler instance.
func NewHandler(dashboard service.DashboardService, targets service.TargetsService, goals service.GoalService) *Handler {
	return &Handler{dashboard: dashboard, targets: targets, goals: goals}
}

// GetHours godoc
// @Summary      Training hours series
// @Description  Buckets approved training sessions for the selected period and returns the comparison target
// @Tags         dashboard
// @Produce      json
// @Param        competitor_id  query     string  false  "Competitor UUID"
// @Param        modality_id    query     string  false  "Modality UUID"
// @Param        filter         query     string  false  "Period filter: day:YYYY-MM, day:, quarter, semester or year" example(day:2024-02)
// @Success      200            {object}  models.HoursSeries
// @Failure      400            {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500            {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/hours [get]
func (h *Handler) GetHours(c *gin.Context) {
	competitorID, ok := optionalUUID(c, "competitor_id")
	if !ok {
		return
	}
	modalityID, ok := optionalUUID(c, "modality_id")
	if !ok {
		return
	}

	series, err := h.dashboard.HoursSeries(c.Request.Context(), service.HoursQuery{
		CompetitorID: competitorID,
		ModalityID:   modalityID,
		Filter:       c.Query("filter"),
	})
	if err != nil {
		writeError(c, "failed to build hours series", err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetFilters godoc
// @Summary      Period filter options
// @Description  Lists the last 12 months followed by the quarterly, semester and annual windows
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  models.FilterOption
// @Router       /api/v1/filters [get]
func (h *Handler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.FilterOptions(c.Request.Context()))
}

// GetExamProgress godoc
// @Summary      Average score per exam
// @Description  Compares each exam's average score with the overall average
// @Tags         progress
// @Produce      json
// @Param        competitor_id  query     string  false  "Competitor UUID"
// @Success      200            {array}   models.ProgressPoint
// @Failure      400            {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500            {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/progress/exams [get]
func (h *Handler) GetExamProgress(c *gin.Context) {
	competitorID, ok := optionalUUID(c, "competitor_id")
	if !ok {
		return
	}
	points, err := h.dashboard.ExamProgress(c.Request.Context(), competitorID)
	if err != nil {
		writeError(c, "failed to compute exam progress", err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetCompetitorSummary godoc
// @Summary      Average score per competitor
// @Description  Compares each competitor's average score with the score target
// @Tags         progress
// @Produce      json
// @Param        modality_id  query     string  false  "Modality UUID"
// @Success      200          {array}   models.ProgressPoint
// @Failure      400          {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500          {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/progress/competitors [get]
func (h *Handler) GetCompetitorSummary(c *gin.Context) {
	modalityID, ok := optionalUUID(c, "modality_id")
	if !ok {
		return
	}
	points, err := h.dashboard.CompetitorSummary(c.Request.Context(), modalityID)
	if err != nil {
		writeError(c, "failed to compute competitor summary", err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// optionalUUID reads a query parameter that, when present, must be a UUID.
// It writes a 400 and returns ok=false otherwise.
func optionalUUID(c *gin.Context, name string) (string, bool) {
	v := strings.TrimSpace(c.Query(name))
	if !checkUUID(c, name, v) {
		return "", false
	}
	return v, true
}

// checkUUID accepts an empty value. Anything else must parse as a UUID or the
// request is aborted with 400.
func checkUUID(c *gin.Context, name, v string) bool {
	if v == "" {
		return true
	}
	if _, err := uuid.Parse(v); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, name+" must be a UUID", err)
		return false
	}
	return true
}

// writeError maps service and storage errors to HTTP responses.
func writeError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, storage.ErrInvalidReference):
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, storage.ErrNotFound):
		middleware.AbortWithError(c, http.StatusNotFound, "not found", err)
	case errors.Is(err, context.DeadlineExceeded):
		middleware.AbortWithError(c, http.StatusGatewayTimeout, "request timed out", err)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, message, err)
	}
}
