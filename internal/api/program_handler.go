package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/service"
)

// ProgramHandler holds the program service dependency.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// --- DTOs for API (Data Transfer Objects) ---

// ProgramRequest defines the expected JSON for creating or updating a
// workout program. Exercises and sets may arrive without ids; missing
// ids are filled in server-side.
type ProgramRequest struct {
	CoachID       string            `json:"coachId" binding:"required"`
	Name          string            `json:"name" binding:"required"`
	Description   string            `json:"description"`
	Exercises     []domain.Exercise `json:"exercises"`
	AssignedTo    []string          `json:"assignedTo"`
	AssignedTeams []string          `json:"assignedTeams"`
}

// AssignProgramRequest replaces a program's assignment lists.
type AssignProgramRequest struct {
	AthleteIDs []string `json:"athleteIds"`
	TeamIDs    []string `json:"teamIds"`
}

// AddSetNoteRequest attaches a note to one set of one exercise.
type AddSetNoteRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Content string `json:"content"`
}

func (r ProgramRequest) toDomain() domain.WorkoutProgram {
	return domain.WorkoutProgram{
		CoachID:       r.CoachID,
		Name:          r.Name,
		Description:   r.Description,
		Exercises:     r.Exercises,
		AssignedTo:    r.AssignedTo,
		AssignedTeams: r.AssignedTeams,
	}
}

// --- Handler Methods ---

// CreateProgram creates a workout program.
// POST /api/v1/programs
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	program, err := h.programService.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrProgramValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create program.")
		}
		return
	}

	c.JSON(http.StatusCreated, program)
}

// ListPrograms returns every program.
// GET /api/v1/programs
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	programs, err := h.programService.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list programs.")
		return
	}

	c.JSON(http.StatusOK, programs)
}

// GetProgram returns one program.
// GET /api/v1/programs/:programId
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	program, err := h.programService.Get(c.Request.Context(), c.Param("programId"))
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to get program.")
		}
		return
	}

	c.JSON(http.StatusOK, program)
}

// UpdateProgram replaces the program's content.
// PUT /api/v1/programs/:programId
func (h *ProgramHandler) UpdateProgram(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	program := req.toDomain()
	program.ID = c.Param("programId")

	updated, err := h.programService.Update(c.Request.Context(), program)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProgramNotFound):
			abortWithError(c, http.StatusNotFound, "Program not found.")
		case errors.Is(err, service.ErrProgramValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update program.")
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProgram removes a program.
// DELETE /api/v1/programs/:programId
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	if err := h.programService.Delete(c.Request.Context(), c.Param("programId")); err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete program.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// DuplicateProgram deep-copies a program under a " (Copy)" name with no
// assignments.
// POST /api/v1/programs/:programId/duplicate
func (h *ProgramHandler) DuplicateProgram(c *gin.Context) {
	duplicate, err := h.programService.Duplicate(c.Request.Context(), c.Param("programId"))
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to duplicate program.")
		}
		return
	}

	c.JSON(http.StatusCreated, duplicate)
}

// AssignProgram replaces the program's athlete and team assignments.
// PUT /api/v1/programs/:programId/assignments
func (h *ProgramHandler) AssignProgram(c *gin.Context) {
	var req AssignProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	program, err := h.programService.Assign(c.Request.Context(), c.Param("programId"), req.AthleteIDs, req.TeamIDs)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to assign program.")
		}
		return
	}

	c.JSON(http.StatusOK, program)
}

// AddSetNote attaches a note to a set. Blank content is dropped without
// an error, matching the metric logger's fail-silent posture.
// POST /api/v1/programs/:programId/exercises/:exerciseId/sets/:setId/notes
func (h *ProgramHandler) AddSetNote(c *gin.Context) {
	var req AddSetNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	note, err := h.programService.AddSetNote(
		c.Request.Context(),
		c.Param("programId"),
		c.Param("exerciseId"),
		c.Param("setId"),
		req.UserID,
		req.Content,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptySetNote):
			c.Status(http.StatusNoContent)
		case errors.Is(err, service.ErrProgramNotFound):
			abortWithError(c, http.StatusNotFound, "Program not found.")
		case errors.Is(err, service.ErrExerciseNotInProgram), errors.Is(err, service.ErrSetNotInExercise):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to add set note.")
		}
		return
	}

	c.JSON(http.StatusCreated, note)
}

// GetAthletePrograms lists programs visible to the athlete, directly
// assigned or via a team.
// GET /api/v1/athletes/:athleteId/programs
func (h *ProgramHandler) GetAthletePrograms(c *gin.Context) {
	programs, err := h.programService.GetForAthlete(c.Request.Context(), c.Param("athleteId"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list athlete programs.")
		return
	}

	c.JSON(http.StatusOK, programs)
}
