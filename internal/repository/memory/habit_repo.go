package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/repository"
)

// HabitRepository stores habits in memory, preserving insertion order.
type HabitRepository struct {
	mu     sync.RWMutex
	habits []domain.Habit
}

// NewHabitRepository creates an empty in-memory habit repository.
func NewHabitRepository() *HabitRepository {
	return &HabitRepository{}
}

func cloneHabit(h domain.Habit) domain.Habit {
	h.AssignedTo = append([]string(nil), h.AssignedTo...)
	h.Completions = append([]domain.HabitCompletion(nil), h.Completions...)
	if h.EndDate != nil {
		end := *h.EndDate
		h.EndDate = &end
	}
	return h
}

func (r *HabitRepository) Create(ctx context.Context, habit *domain.Habit) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if habit.ID == "" {
		habit.ID = uuid.NewString()
	}
	r.habits = append(r.habits, cloneHabit(*habit))
	return habit.ID, nil
}

func (r *HabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.habits {
		if h.ID == id {
			habit := cloneHabit(h)
			return &habit, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *HabitRepository) GetAll(ctx context.Context) ([]domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habits := make([]domain.Habit, 0, len(r.habits))
	for _, h := range r.habits {
		habits = append(habits, cloneHabit(h))
	}
	return habits, nil
}

func (r *HabitRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habits := make([]domain.Habit, 0)
	for _, h := range r.habits {
		if h.AssignedToUser(userID) || h.CreatedBy == userID {
			habits = append(habits, cloneHabit(h))
		}
	}
	return habits, nil
}

func (r *HabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.habits {
		if h.ID == habit.ID {
			// Completions are append-only: carry the stored log over so an
			// update can never drop or rewrite history.
			updated := cloneHabit(*habit)
			updated.Completions = h.Completions
			r.habits[i] = updated
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *HabitRepository) AppendCompletion(ctx context.Context, habitID string, completion domain.HabitCompletion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.habits {
		if r.habits[i].ID == habitID {
			r.habits[i].Completions = append(r.habits[i].Completions, completion)
			return nil
		}
	}
	return repository.ErrNotFound
}
