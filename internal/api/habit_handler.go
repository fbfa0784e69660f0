package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/service"
)

// HabitHandler holds the habit service dependency.
type HabitHandler struct {
	habitService service.HabitService
}

// NewHabitHandler creates a new HabitHandler.
func NewHabitHandler(habitService service.HabitService) *HabitHandler {
	return &HabitHandler{habitService: habitService}
}

// --- DTOs for API (Data Transfer Objects) ---

// HabitRequest defines the expected JSON for creating or updating a
// habit. Dates use "2006-01-02"; endDate may be omitted for open-ended
// habits.
type HabitRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Frequency   string   `json:"frequency" binding:"required"`
	CreatedBy   string   `json:"createdBy"`
	AssignedTo  []string `json:"assignedTo"`
	IsCustom    bool     `json:"isCustom"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
}

// RecordHabitCompletionRequest marks a habit done or skipped for one
// user and day. Date defaults to today.
type RecordHabitCompletionRequest struct {
	UserID string `json:"userId" binding:"required"`
	Date   string `json:"date"`
	Status string `json:"status" binding:"required"`
}

// habitDateLayout is the wire format for habit window and completion
// dates.
const habitDateLayout = "2006-01-02"

func parseHabitDate(raw string) (time.Time, error) {
	if t, err := time.Parse(habitDateLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func (r HabitRequest) toDomain() (domain.Habit, error) {
	habit := domain.Habit{
		Name:        r.Name,
		Description: r.Description,
		Frequency:   domain.HabitFrequency(r.Frequency),
		CreatedBy:   r.CreatedBy,
		AssignedTo:  r.AssignedTo,
		IsCustom:    r.IsCustom,
	}
	if r.StartDate != "" {
		start, err := parseHabitDate(r.StartDate)
		if err != nil {
			return domain.Habit{}, err
		}
		habit.StartDate = start
	}
	if r.EndDate != "" {
		end, err := parseHabitDate(r.EndDate)
		if err != nil {
			return domain.Habit{}, err
		}
		habit.EndDate = &end
	}
	return habit, nil
}

// --- Handler Methods ---

// CreateHabit creates a habit and assigns it to athletes.
// POST /api/v1/habits
func (h *HabitHandler) CreateHabit(c *gin.Context) {
	var req HabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	habit, err := req.toDomain()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		return
	}

	created, err := h.habitService.Create(c.Request.Context(), habit)
	if err != nil {
		if errors.Is(err, service.ErrHabitValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create habit.")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListHabits returns all habits, or the ones visible to ?userId=.
// GET /api/v1/habits
func (h *HabitHandler) ListHabits(c *gin.Context) {
	var (
		habits []domain.Habit
		err    error
	)
	if userID := c.Query("userId"); userID != "" {
		habits, err = h.habitService.GetForUser(c.Request.Context(), userID)
	} else {
		habits, err = h.habitService.GetAll(c.Request.Context())
	}
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list habits.")
		return
	}

	c.JSON(http.StatusOK, habits)
}

// GetHabit returns one habit with its completion log.
// GET /api/v1/habits/:habitId
func (h *HabitHandler) GetHabit(c *gin.Context) {
	habit, err := h.habitService.Get(c.Request.Context(), c.Param("habitId"))
	if err != nil {
		if errors.Is(err, service.ErrHabitNotFound) {
			abortWithError(c, http.StatusNotFound, "Habit not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to get habit.")
		}
		return
	}

	c.JSON(http.StatusOK, habit)
}

// UpdateHabit replaces the habit's fields. The completion log is kept
// as stored.
// PUT /api/v1/habits/:habitId
func (h *HabitHandler) UpdateHabit(c *gin.Context) {
	var req HabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	habit, err := req.toDomain()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		return
	}
	habit.ID = c.Param("habitId")

	updated, err := h.habitService.Update(c.Request.Context(), habit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHabitNotFound):
			abortWithError(c, http.StatusNotFound, "Habit not found.")
		case errors.Is(err, service.ErrHabitValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update habit.")
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// RecordCompletion marks the habit completed or missed for one user on
// one day.
// POST /api/v1/habits/:habitId/completions
func (h *HabitHandler) RecordCompletion(c *gin.Context) {
	var req RecordHabitCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := parseHabitDate(req.Date)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
			return
		}
		date = parsed
	}

	habit, err := h.habitService.RecordCompletion(c.Request.Context(), c.Param("habitId"), req.UserID, date, domain.HabitStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHabitNotFound):
			abortWithError(c, http.StatusNotFound, "Habit not found.")
		case errors.Is(err, service.ErrInvalidHabitStatus):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrHabitNotAssigned):
			abortWithError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrHabitOutOfRange), errors.Is(err, service.ErrHabitAlreadyRecorded):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to record completion.")
		}
		return
	}

	c.JSON(http.StatusOK, habit)
}

// GetStatus derives the habit's status for ?userId= on ?date=
// (default today).
// GET /api/v1/habits/:habitId/status
func (h *HabitHandler) GetStatus(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'userId' is required.")
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseHabitDate(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
			return
		}
		date = parsed
	}

	status, err := h.habitService.StatusFor(c.Request.Context(), c.Param("habitId"), userID, date)
	if err != nil {
		if errors.Is(err, service.ErrHabitNotFound) {
			abortWithError(c, http.StatusNotFound, "Habit not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to derive status.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}
