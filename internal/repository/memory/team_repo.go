package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/repository"
)

// TeamRepository stores teams in memory, preserving insertion order.
type TeamRepository struct {
	mu    sync.RWMutex
	teams []domain.Team
}

// NewTeamRepository creates an empty in-memory team repository.
func NewTeamRepository() *TeamRepository {
	return &TeamRepository{}
}

func cloneTeam(t domain.Team) domain.Team {
	t.Athletes = append([]string(nil), t.Athletes...)
	return t
}

func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	r.teams = append(r.teams, cloneTeam(*team))
	return team.ID, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.teams {
		if t.ID == id {
			team := cloneTeam(t)
			return &team, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *TeamRepository) GetAll(ctx context.Context) ([]domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := make([]domain.Team, 0, len(r.teams))
	for _, t := range r.teams {
		teams = append(teams, cloneTeam(t))
	}
	return teams, nil
}

func (r *TeamRepository) GetByAthleteID(ctx context.Context, athleteID string) ([]domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := make([]domain.Team, 0)
	for _, t := range r.teams {
		if t.HasAthlete(athleteID) {
			teams = append(teams, cloneTeam(t))
		}
	}
	return teams, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.teams {
		if t.ID == team.ID {
			r.teams[i] = cloneTeam(*team)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.teams {
		if t.ID == id {
			r.teams = append(r.teams[:i], r.teams[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
