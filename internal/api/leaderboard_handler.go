package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/service"
)

// LeaderboardHandler holds the leaderboard service dependency.
type LeaderboardHandler struct {
	leaderboardService service.LeaderboardService
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(leaderboardService service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// GetLeaderboard ranks athletes by their latest value for one metric
// type, highest first.
// GET /api/v1/leaderboard/:type
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	metricType := domain.MetricType(c.Param("type"))

	entries, err := h.leaderboardService.Leaderboard(c.Request.Context(), metricType)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to build leaderboard.")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetCompletionStats aggregates workout counts and total duration per
// athlete.
// GET /api/v1/analytics/completions
func (h *LeaderboardHandler) GetCompletionStats(c *gin.Context) {
	stats, err := h.leaderboardService.CompletionStats(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to aggregate completion stats.")
		return
	}

	c.JSON(http.StatusOK, stats)
}
