package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/service"
)

// SessionHandler holds the session service dependency.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// --- DTOs for API (Data Transfer Objects) ---

// SessionStateResponse mirrors the live timer state for one
// (athlete, program) pair.
type SessionStateResponse struct {
	Active    bool       `json:"active"`
	StartTime *time.Time `json:"startTime,omitempty"`
	Duration  int        `json:"duration"`
}

// CompletionResponse is the DTO for a finished workout.
type CompletionResponse struct {
	ID        string    `json:"id"`
	ProgramID string    `json:"programId"`
	AthleteID string    `json:"athleteId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Duration  int       `json:"duration"`
}

// MapSessionStateToResponse converts a domain.SessionState to its DTO.
func MapSessionStateToResponse(state domain.SessionState) SessionStateResponse {
	resp := SessionStateResponse{Active: state.Active, Duration: state.Duration}
	if state.Active {
		start := state.StartTime
		resp.StartTime = &start
	}
	return resp
}

// MapCompletionToResponse converts a domain.WorkoutCompletion to its DTO.
func MapCompletionToResponse(completion *domain.WorkoutCompletion) CompletionResponse {
	if completion == nil {
		return CompletionResponse{}
	}
	return CompletionResponse{
		ID:        completion.ID,
		ProgramID: completion.ProgramID,
		AthleteID: completion.AthleteID,
		StartTime: completion.StartTime,
		EndTime:   completion.EndTime,
		Duration:  completion.Duration,
	}
}

// MapCompletionsToResponse converts a slice of completions to DTOs.
func MapCompletionsToResponse(completions []domain.WorkoutCompletion) []CompletionResponse {
	responses := make([]CompletionResponse, len(completions))
	for i, completion := range completions {
		responses[i] = MapCompletionToResponse(&completion)
	}
	return responses
}

// --- Handler Methods ---

// StartSession starts (or re-joins) the workout session for the pair.
// POST /api/v1/athletes/:athleteId/sessions/:programId/start
func (h *SessionHandler) StartSession(c *gin.Context) {
	athleteID := c.Param("athleteId")
	programID := c.Param("programId")

	state, err := h.sessionService.Start(c.Request.Context(), athleteID, programID)
	if err != nil {
		if errors.Is(err, service.ErrSessionIDsRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to start session.")
		}
		return
	}

	c.JSON(http.StatusOK, MapSessionStateToResponse(state))
}

// StopSession ends the session and records the completion. Stopping a
// session that was never started succeeds with no body.
// POST /api/v1/athletes/:athleteId/sessions/:programId/stop
func (h *SessionHandler) StopSession(c *gin.Context) {
	athleteID := c.Param("athleteId")
	programID := c.Param("programId")

	completion, err := h.sessionService.Stop(c.Request.Context(), athleteID, programID)
	if err != nil {
		if errors.Is(err, service.ErrSessionIDsRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to stop session.")
		}
		return
	}
	if completion == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, MapCompletionToResponse(completion))
}

// GetSession reads the timer state for the pair. An inactive pair
// returns the zero state rather than 404.
// GET /api/v1/athletes/:athleteId/sessions/:programId
func (h *SessionHandler) GetSession(c *gin.Context) {
	athleteID := c.Param("athleteId")
	programID := c.Param("programId")

	state, err := h.sessionService.Get(c.Request.Context(), athleteID, programID)
	if err != nil {
		if errors.Is(err, service.ErrSessionIDsRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to read session state.")
		}
		return
	}

	c.JSON(http.StatusOK, MapSessionStateToResponse(state))
}

// GetActiveSessions lists every active session for the athlete, keyed
// by program id.
// GET /api/v1/athletes/:athleteId/sessions
func (h *SessionHandler) GetActiveSessions(c *gin.Context) {
	athleteID := c.Param("athleteId")

	states, err := h.sessionService.ActiveForAthlete(c.Request.Context(), athleteID)
	if err != nil {
		if errors.Is(err, service.ErrSessionIDsRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to list active sessions.")
		}
		return
	}

	response := make(map[string]SessionStateResponse, len(states))
	for programID, state := range states {
		response[programID] = MapSessionStateToResponse(state)
	}
	c.JSON(http.StatusOK, response)
}

// GetCompletions lists the athlete's workout completion log.
// GET /api/v1/athletes/:athleteId/completions
func (h *SessionHandler) GetCompletions(c *gin.Context) {
	athleteID := c.Param("athleteId")

	completions, err := h.sessionService.Completions(c.Request.Context(), athleteID)
	if err != nil {
		if errors.Is(err, service.ErrSessionIDsRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to list completions.")
		}
		return
	}

	c.JSON(http.StatusOK, MapCompletionsToResponse(completions))
}

// GetProgramCompletions lists every completion recorded against the
// program, across athletes.
// GET /api/v1/programs/:programId/completions
func (h *SessionHandler) GetProgramCompletions(c *gin.Context) {
	completions, err := h.sessionService.CompletionsForProgram(c.Request.Context(), c.Param("programId"))
	if err != nil {
		if errors.Is(err, service.ErrSessionIDsRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to list completions.")
		}
		return
	}

	c.JSON(http.StatusOK, MapCompletionsToResponse(completions))
}
