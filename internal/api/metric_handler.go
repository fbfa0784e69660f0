package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/service"
)

// MetricHandler holds the metric service dependency.
type MetricHandler struct {
	metricService service.MetricService
}

// NewMetricHandler creates a new MetricHandler.
func NewMetricHandler(metricService service.MetricService) *MetricHandler {
	return &MetricHandler{metricService: metricService}
}

// --- DTOs for API (Data Transfer Objects) ---

// RecordMetricRequest defines the expected JSON for logging a metric.
// Value arrives as free text straight from an input field.
type RecordMetricRequest struct {
	Type  string `json:"type" binding:"required"`
	Value string `json:"value"`
	Unit  string `json:"unit" binding:"required"`
	Note  string `json:"note"`
}

// MetricEntryResponse is the DTO for a stored metric entry. Value is
// always in the metric's base unit.
type MetricEntryResponse struct {
	ID        string    `json:"id"`
	AthleteID string    `json:"athleteId"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	Date      time.Time `json:"date"`
	Note      string    `json:"note,omitempty"`
}

// CreateCustomMetricRequest defines the expected JSON for a coach-defined
// metric type.
type CreateCustomMetricRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Unit        domain.MetricUnit `json:"unit" binding:"required"`
	CreatedBy   string            `json:"createdBy" binding:"required"`
}

// TrendResponse wraps a trend analysis or one of its empty states.
type TrendResponse struct {
	State            string               `json:"state"` // "ok", "noData" or "singlePoint"
	Direction        string               `json:"direction,omitempty"`
	PercentageChange float64              `json:"percentageChange"`
	First            float64              `json:"first"`
	Latest           float64              `json:"latest"`
	Points           []TrendPointResponse `json:"points,omitempty"`
}

// TrendPointResponse is one normalized chart point.
type TrendPointResponse struct {
	EntryID string    `json:"entryId"`
	Date    time.Time `json:"date"`
	Value   float64   `json:"value"`
	X       float64   `json:"x"`
	Y       float64   `json:"y"`
}

// MapMetricEntryToResponse converts a domain.MetricEntry to its DTO.
func MapMetricEntryToResponse(entry *domain.MetricEntry) MetricEntryResponse {
	if entry == nil {
		return MetricEntryResponse{}
	}
	return MetricEntryResponse{
		ID:        entry.ID,
		AthleteID: entry.AthleteID,
		Type:      string(entry.Type),
		Value:     entry.Value,
		Date:      entry.Date,
		Note:      entry.Note,
	}
}

// MapMetricEntriesToResponse converts a slice of entries to DTOs.
func MapMetricEntriesToResponse(entries []domain.MetricEntry) []MetricEntryResponse {
	responses := make([]MetricEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = MapMetricEntryToResponse(&entry)
	}
	return responses
}

// MapTrendToResponse converts a service.TrendResult to its DTO.
func MapTrendToResponse(trend *service.TrendResult) TrendResponse {
	points := make([]TrendPointResponse, len(trend.Points))
	for i, point := range trend.Points {
		points[i] = TrendPointResponse{
			EntryID: point.EntryID,
			Date:    point.Date,
			Value:   point.Value,
			X:       point.X,
			Y:       point.Y,
		}
	}
	return TrendResponse{
		State:            "ok",
		Direction:        string(trend.Direction),
		PercentageChange: trend.PercentageChange,
		First:            trend.First,
		Latest:           trend.Latest,
		Points:           points,
	}
}

// --- Handler Methods ---

// RecordMetric logs a metric value for the athlete. A value that fails
// to parse as a number is dropped without an error: the request
// succeeds and no entry is written.
// POST /api/v1/athletes/:athleteId/metrics
func (h *MetricHandler) RecordMetric(c *gin.Context) {
	var req RecordMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	athleteID := c.Param("athleteId")
	entry, err := h.metricService.Record(c.Request.Context(), athleteID, domain.MetricType(req.Type), req.Value, req.Unit, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMetricValue):
			// Unparseable input is silently ignored.
			c.Status(http.StatusNoContent)
		case errors.Is(err, service.ErrUnknownMetricType), errors.Is(err, service.ErrInvalidMetricUnit):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to record metric.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapMetricEntryToResponse(entry))
}

// ListMetrics returns the athlete's entries, oldest first, optionally
// filtered by ?type=.
// GET /api/v1/athletes/:athleteId/metrics
func (h *MetricHandler) ListMetrics(c *gin.Context) {
	athleteID := c.Param("athleteId")
	metricType := domain.MetricType(c.Query("type"))

	entries, err := h.metricService.List(c.Request.Context(), athleteID, metricType)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list metrics.")
		return
	}

	c.JSON(http.StatusOK, MapMetricEntriesToResponse(entries))
}

// DeleteMetric removes a single entry.
// DELETE /api/v1/metrics/:entryId
func (h *MetricHandler) DeleteMetric(c *gin.Context) {
	entryID := c.Param("entryId")

	if err := h.metricService.Delete(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, service.ErrMetricNotFound) {
			abortWithError(c, http.StatusNotFound, "Metric entry not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete metric entry.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTrend analyzes the athlete's history for one metric type. Too few
// entries is not an error at this level: the response carries a
// distinct empty state for zero entries and for a single entry.
// GET /api/v1/athletes/:athleteId/metrics/:type/trend
func (h *MetricHandler) GetTrend(c *gin.Context) {
	athleteID := c.Param("athleteId")
	metricType := domain.MetricType(c.Param("type"))

	trend, err := h.metricService.Trend(c.Request.Context(), athleteID, metricType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrendNoData):
			c.JSON(http.StatusOK, TrendResponse{State: "noData"})
		case errors.Is(err, service.ErrTrendSinglePoint):
			c.JSON(http.StatusOK, TrendResponse{State: "singlePoint"})
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to analyze trend.")
		}
		return
	}

	c.JSON(http.StatusOK, MapTrendToResponse(trend))
}

// ListDefinitions returns every known metric definition, built-in and
// custom, with their unit options and conversion factors.
// GET /api/v1/metric-definitions
func (h *MetricHandler) ListDefinitions(c *gin.Context) {
	c.JSON(http.StatusOK, h.metricService.Definitions(c.Request.Context()))
}

// CreateCustomMetric registers a coach-defined metric type.
// POST /api/v1/custom-metrics
func (h *MetricHandler) CreateCustomMetric(c *gin.Context) {
	var req CreateCustomMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	metric, err := h.metricService.CreateCustomMetric(c.Request.Context(), domain.CustomMetric{
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		if errors.Is(err, service.ErrCustomMetricName) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create custom metric.")
		}
		return
	}

	c.JSON(http.StatusCreated, metric)
}
