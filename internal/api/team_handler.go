package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/service"
)

// TeamHandler holds the team service dependency.
type TeamHandler struct {
	teamService service.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// TeamRequest defines the expected JSON for creating or updating a team.
type TeamRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Athletes    []string `json:"athletes"`
}

// CreateTeam creates a team.
// POST /api/v1/teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), domain.Team{
		Name:        req.Name,
		Description: req.Description,
		Athletes:    req.Athletes,
	})
	if err != nil {
		if errors.Is(err, service.ErrTeamValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create team.")
		}
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ListTeams returns every team, or ?athleteId='s teams.
// GET /api/v1/teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	var (
		teams []domain.Team
		err   error
	)
	if athleteID := c.Query("athleteId"); athleteID != "" {
		teams, err = h.teamService.GetForAthlete(c.Request.Context(), athleteID)
	} else {
		teams, err = h.teamService.GetAll(c.Request.Context())
	}
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list teams.")
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam returns one team.
// GET /api/v1/teams/:teamId
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, err := h.teamService.Get(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			abortWithError(c, http.StatusNotFound, "Team not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to get team.")
		}
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam replaces the team's name, description and roster.
// PUT /api/v1/teams/:teamId
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), domain.Team{
		ID:          c.Param("teamId"),
		Name:        req.Name,
		Description: req.Description,
		Athletes:    req.Athletes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			abortWithError(c, http.StatusNotFound, "Team not found.")
		case errors.Is(err, service.ErrTeamValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update team.")
		}
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam removes the team and strips its id from every program's
// AssignedTeams list. Habit assignments reference athletes directly and
// are untouched.
// DELETE /api/v1/teams/:teamId
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	if err := h.teamService.Delete(c.Request.Context(), c.Param("teamId")); err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			abortWithError(c, http.StatusNotFound, "Team not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete team.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
