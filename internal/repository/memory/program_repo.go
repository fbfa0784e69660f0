package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/repository"
)

// ProgramRepository stores workout programs in memory, preserving
// insertion order.
type ProgramRepository struct {
	mu       sync.RWMutex
	programs []domain.WorkoutProgram
}

// NewProgramRepository creates an empty in-memory program repository.
func NewProgramRepository() *ProgramRepository {
	return &ProgramRepository{}
}

// cloneProgram deep-copies a program so that callers can never mutate
// stored state through shared exercise/set/note slices.
func cloneProgram(p domain.WorkoutProgram) domain.WorkoutProgram {
	p.AssignedTo = append([]string(nil), p.AssignedTo...)
	p.AssignedTeams = append([]string(nil), p.AssignedTeams...)
	exercises := make([]domain.Exercise, len(p.Exercises))
	for i, ex := range p.Exercises {
		sets := make([]domain.Set, len(ex.Sets))
		for j, set := range ex.Sets {
			set.Notes = append([]domain.SetNote(nil), set.Notes...)
			sets[j] = set
		}
		ex.Sets = sets
		exercises[i] = ex
	}
	p.Exercises = exercises
	return p
}

func (r *ProgramRepository) Create(ctx context.Context, program *domain.WorkoutProgram) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if program.ID == "" {
		program.ID = uuid.NewString()
	}
	r.programs = append(r.programs, cloneProgram(*program))
	return program.ID, nil
}

func (r *ProgramRepository) GetByID(ctx context.Context, id string) (*domain.WorkoutProgram, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.programs {
		if p.ID == id {
			program := cloneProgram(p)
			return &program, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *ProgramRepository) GetAll(ctx context.Context) ([]domain.WorkoutProgram, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	programs := make([]domain.WorkoutProgram, 0, len(r.programs))
	for _, p := range r.programs {
		programs = append(programs, cloneProgram(p))
	}
	return programs, nil
}

func (r *ProgramRepository) Update(ctx context.Context, program *domain.WorkoutProgram) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.programs {
		if p.ID == program.ID {
			r.programs[i] = cloneProgram(*program)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.programs {
		if p.ID == id {
			r.programs = append(r.programs[:i], r.programs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *ProgramRepository) RemoveTeamFromAll(ctx context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.programs {
		teams := r.programs[i].AssignedTeams
		filtered := teams[:0]
		for _, id := range teams {
			if id != teamID {
				filtered = append(filtered, id)
			}
		}
		r.programs[i].AssignedTeams = filtered
	}
	return nil
}
