package repository

import (
	"context"

	"fitforge/coaching-app/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

// TeamRepository defines the interface for interacting with team data.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	GetAll(ctx context.Context) ([]domain.Team, error)
	GetByAthleteID(ctx context.Context, athleteID string) ([]domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id string) error
}

// ProgramRepository defines the interface for interacting with workout
// program data.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.WorkoutProgram) (string, error)
	GetByID(ctx context.Context, id string) (*domain.WorkoutProgram, error)
	GetAll(ctx context.Context) ([]domain.WorkoutProgram, error)
	Update(ctx context.Context, program *domain.WorkoutProgram) error
	Delete(ctx context.Context, id string) error
	// RemoveTeamFromAll strips the team id from every program's assigned
	// team list. Used by the team-deletion cascade.
	RemoveTeamFromAll(ctx context.Context, teamID string) error
}

// CompletionRepository is the append-only log of finished workouts.
// Completions are never updated or deleted.
type CompletionRepository interface {
	Create(ctx context.Context, completion *domain.WorkoutCompletion) (string, error)
	GetByAthleteID(ctx context.Context, athleteID string) ([]domain.WorkoutCompletion, error)
	GetByProgramID(ctx context.Context, programID string) ([]domain.WorkoutCompletion, error)
	GetAll(ctx context.Context) ([]domain.WorkoutCompletion, error)
}

// MetricFilter narrows metric entry reads. Zero values match everything.
type MetricFilter struct {
	AthleteID string
	Type      domain.MetricType
}

// MetricRepository defines the interface for interacting with metric
// entries. Entries are append-only: deletable by id but never edited.
type MetricRepository interface {
	Create(ctx context.Context, entry *domain.MetricEntry) (string, error)
	List(ctx context.Context, filter MetricFilter) ([]domain.MetricEntry, error)
	Delete(ctx context.Context, id string) error
}

// CustomMetricRepository stores custom metric templates.
type CustomMetricRepository interface {
	Create(ctx context.Context, metric *domain.CustomMetric) (string, error)
	GetAll(ctx context.Context) ([]domain.CustomMetric, error)
}

// HabitRepository defines the interface for interacting with habit data.
type HabitRepository interface {
	Create(ctx context.Context, habit *domain.Habit) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	GetAll(ctx context.Context) ([]domain.Habit, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Habit, error)
	Update(ctx context.Context, habit *domain.Habit) error
	// AppendCompletion adds one completion record to the habit's
	// append-only completion list.
	AppendCompletion(ctx context.Context, habitID string, completion domain.HabitCompletion) error
}
