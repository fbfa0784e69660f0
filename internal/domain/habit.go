package domain

import "time"

// HabitFrequency: how often the habit is expected to be done.
type HabitFrequency string

const (
	FrequencyDaily  HabitFrequency = "daily"
	FrequencyWeekly HabitFrequency = "weekly"
)

func (f HabitFrequency) IsValid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}

// HabitStatus is the per-day state of a habit for one user. Pending is the
// derived default when no completion record exists for that day.
type HabitStatus string

const (
	HabitPending   HabitStatus = "pending"
	HabitCompleted HabitStatus = "completed"
	HabitMissed    HabitStatus = "missed"
)

// HabitCompletion records that a user completed (or missed) a habit on a
// given day. At most one completion per (habit, user, calendar day) is
// meaningful, though the model does not enforce uniqueness; lookups take
// the first match found.
type HabitCompletion struct {
	ID      string      `json:"id"`
	HabitID string      `json:"habitId"`
	UserID  string      `json:"userId"`
	Date    time.Time   `json:"date"`
	Status  HabitStatus `json:"status"`
	Notes   string      `json:"notes,omitempty"`
}

// Habit is a recurring behavior assigned to athletes, with an append-only
// completion log. Per-day status is derived by lookup, not stored as a
// dense calendar.
type Habit struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	Frequency      HabitFrequency    `json:"frequency"`
	CreatedBy      string            `json:"createdBy"`  // userId
	AssignedTo     []string          `json:"assignedTo"` // athlete ids
	OrganizationID string            `json:"organizationId"`
	IsCustom       bool              `json:"isCustom,omitempty"` // created by the athlete rather than a coach
	StartDate      time.Time         `json:"startDate"`
	EndDate        *time.Time        `json:"endDate,omitempty"`
	Completions    []HabitCompletion `json:"completions"`
}

// InRange reports whether the habit is active on the given date:
// StartDate <= date <= (EndDate ?? +inf).
func (h *Habit) InRange(date time.Time) bool {
	if date.Before(h.StartDate) {
		return false
	}
	if h.EndDate != nil && date.After(*h.EndDate) {
		return false
	}
	return true
}

// StatusFor scans the completion list for the first entry matching the
// user and the calendar day (time of day ignored) and returns its status,
// or HabitPending when none is found.
func (h *Habit) StatusFor(userID string, date time.Time) HabitStatus {
	for _, c := range h.Completions {
		if c.UserID == userID && SameCalendarDay(c.Date, date) {
			return c.Status
		}
	}
	return HabitPending
}

// AssignedToUser reports whether the user is in the habit's assignment list.
func (h *Habit) AssignedToUser(userID string) bool {
	for _, id := range h.AssignedTo {
		if id == userID {
			return true
		}
	}
	return false
}

// SameCalendarDay compares the date components of two times, ignoring the
// time of day.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
