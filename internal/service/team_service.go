package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrTeamNotFound   = errors.New("team not found")
	ErrTeamValidation = errors.New("team validation failed")
)

// TeamService manages teams and the team-deletion cascade.
type TeamService interface {
	Create(ctx context.Context, team domain.Team) (*domain.Team, error)
	Get(ctx context.Context, teamID string) (*domain.Team, error)
	GetAll(ctx context.Context) ([]domain.Team, error)
	GetForAthlete(ctx context.Context, athleteID string) ([]domain.Team, error)
	Update(ctx context.Context, team domain.Team) (*domain.Team, error)
	// Delete removes the team and strips its id from every program's
	// assigned-teams list. Habit assignment is by individual athlete id in
	// this model, so there is deliberately no habit cascade.
	Delete(ctx context.Context, teamID string) error
}

// teamService implements the TeamService interface.
type teamService struct {
	teamRepo    repository.TeamRepository
	programRepo repository.ProgramRepository
}

// NewTeamService creates a new team service.
func NewTeamService(teamRepo repository.TeamRepository, programRepo repository.ProgramRepository) TeamService {
	return &teamService{
		teamRepo:    teamRepo,
		programRepo: programRepo,
	}
}

func (s *teamService) Create(ctx context.Context, team domain.Team) (*domain.Team, error) {
	if strings.TrimSpace(team.Name) == "" {
		return nil, ErrTeamValidation
	}
	if team.Athletes == nil {
		team.Athletes = []string{}
	}

	id, err := s.teamRepo.Create(ctx, &team)
	if err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}
	team.ID = id
	return &team, nil
}

func (s *teamService) Get(ctx context.Context, teamID string) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (s *teamService) GetAll(ctx context.Context) ([]domain.Team, error) {
	return s.teamRepo.GetAll(ctx)
}

func (s *teamService) GetForAthlete(ctx context.Context, athleteID string) ([]domain.Team, error) {
	return s.teamRepo.GetByAthleteID(ctx, athleteID)
}

func (s *teamService) Update(ctx context.Context, team domain.Team) (*domain.Team, error) {
	if strings.TrimSpace(team.Name) == "" {
		return nil, ErrTeamValidation
	}
	if err := s.teamRepo.Update(ctx, &team); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (s *teamService) Delete(ctx context.Context, teamID string) error {
	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	if err := s.programRepo.RemoveTeamFromAll(ctx, teamID); err != nil {
		return fmt.Errorf("cascade team removal into programs: %w", err)
	}
	return nil
}
