package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"fitforge/coaching-app/internal/domain"
)

// CompletionRepository is the in-memory append-only workout completion
// log. Records are never updated or deleted.
type CompletionRepository struct {
	mu          sync.RWMutex
	completions []domain.WorkoutCompletion
}

// NewCompletionRepository creates an empty completion log.
func NewCompletionRepository() *CompletionRepository {
	return &CompletionRepository{}
}

func (r *CompletionRepository) Create(ctx context.Context, completion *domain.WorkoutCompletion) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if completion.ID == "" {
		completion.ID = uuid.NewString()
	}
	r.completions = append(r.completions, *completion)
	return completion.ID, nil
}

func (r *CompletionRepository) GetByAthleteID(ctx context.Context, athleteID string) ([]domain.WorkoutCompletion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	completions := make([]domain.WorkoutCompletion, 0)
	for _, c := range r.completions {
		if c.AthleteID == athleteID {
			completions = append(completions, c)
		}
	}
	return completions, nil
}

func (r *CompletionRepository) GetByProgramID(ctx context.Context, programID string) ([]domain.WorkoutCompletion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	completions := make([]domain.WorkoutCompletion, 0)
	for _, c := range r.completions {
		if c.ProgramID == programID {
			completions = append(completions, c)
		}
	}
	return completions, nil
}

func (r *CompletionRepository) GetAll(ctx context.Context) ([]domain.WorkoutCompletion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.WorkoutCompletion(nil), r.completions...), nil
}
