package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrProgramNotFound      = errors.New("program not found")
	ErrProgramValidation    = errors.New("program validation failed")
	ErrExerciseNotInProgram = errors.New("exercise not found in program")
	ErrSetNotInExercise     = errors.New("set not found in exercise")
	ErrEmptySetNote         = errors.New("set note content is empty")
)

// ProgramService manages workout programs: authoring, duplication,
// assignment and per-set notes.
type ProgramService interface {
	Create(ctx context.Context, program domain.WorkoutProgram) (*domain.WorkoutProgram, error)
	Get(ctx context.Context, programID string) (*domain.WorkoutProgram, error)
	GetAll(ctx context.Context) ([]domain.WorkoutProgram, error)
	Update(ctx context.Context, program domain.WorkoutProgram) (*domain.WorkoutProgram, error)
	Delete(ctx context.Context, programID string) error
	// Duplicate deep-copies the program: fresh ids for the program and
	// every exercise, set and note, name suffixed " (Copy)", assignment
	// lists reset.
	Duplicate(ctx context.Context, programID string) (*domain.WorkoutProgram, error)
	// Assign replaces the program's athlete and team assignment lists.
	Assign(ctx context.Context, programID string, athleteIDs, teamIDs []string) (*domain.WorkoutProgram, error)
	// AddSetNote appends a note to one set. Notes are append-only.
	AddSetNote(ctx context.Context, programID, exerciseID, setID, userID, content string) (*domain.SetNote, error)
	// GetForAthlete resolves programs assigned to the athlete directly or
	// through any team the athlete belongs to.
	GetForAthlete(ctx context.Context, athleteID string) ([]domain.WorkoutProgram, error)
}

// programService implements the ProgramService interface.
type programService struct {
	programRepo repository.ProgramRepository
	teamRepo    repository.TeamRepository
	now         func() time.Time
}

// NewProgramService creates a new program service.
func NewProgramService(programRepo repository.ProgramRepository, teamRepo repository.TeamRepository) ProgramService {
	return &programService{
		programRepo: programRepo,
		teamRepo:    teamRepo,
		now:         time.Now,
	}
}

func validateProgram(program *domain.WorkoutProgram) error {
	if strings.TrimSpace(program.Name) == "" {
		return ErrProgramValidation
	}
	for _, ex := range program.Exercises {
		if strings.TrimSpace(ex.Name) == "" || !ex.MeasurementType.IsValid() {
			return ErrProgramValidation
		}
	}
	return nil
}

// fillIDs assigns fresh ids to any exercise or set that arrived without
// one, so authored programs never contain id-less nested records.
func fillIDs(program *domain.WorkoutProgram) {
	for i := range program.Exercises {
		if program.Exercises[i].ID == "" {
			program.Exercises[i].ID = newID()
		}
		for j := range program.Exercises[i].Sets {
			if program.Exercises[i].Sets[j].ID == "" {
				program.Exercises[i].Sets[j].ID = newID()
			}
		}
	}
}

func (s *programService) Create(ctx context.Context, program domain.WorkoutProgram) (*domain.WorkoutProgram, error) {
	if err := validateProgram(&program); err != nil {
		return nil, err
	}
	fillIDs(&program)
	if program.AssignedTo == nil {
		program.AssignedTo = []string{}
	}
	if program.AssignedTeams == nil {
		program.AssignedTeams = []string{}
	}
	program.CreatedAt = s.now()
	program.UpdatedAt = program.CreatedAt

	id, err := s.programRepo.Create(ctx, &program)
	if err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}
	program.ID = id
	return &program, nil
}

func (s *programService) Get(ctx context.Context, programID string) (*domain.WorkoutProgram, error) {
	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

func (s *programService) GetAll(ctx context.Context) ([]domain.WorkoutProgram, error) {
	return s.programRepo.GetAll(ctx)
}

func (s *programService) Update(ctx context.Context, program domain.WorkoutProgram) (*domain.WorkoutProgram, error) {
	if err := validateProgram(&program); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, program.ID)
	if err != nil {
		return nil, err
	}

	fillIDs(&program)
	program.CoachID = existing.CoachID
	program.CreatedAt = existing.CreatedAt
	program.UpdatedAt = s.now()
	if program.AssignedTo == nil {
		program.AssignedTo = existing.AssignedTo
	}
	if program.AssignedTeams == nil {
		program.AssignedTeams = existing.AssignedTeams
	}

	if err := s.programRepo.Update(ctx, &program); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return &program, nil
}

func (s *programService) Delete(ctx context.Context, programID string) error {
	err := s.programRepo.Delete(ctx, programID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProgramNotFound
	}
	return err
}

func (s *programService) Duplicate(ctx context.Context, programID string) (*domain.WorkoutProgram, error) {
	original, err := s.Get(ctx, programID)
	if err != nil {
		return nil, err
	}

	duplicate := *original
	duplicate.ID = ""
	duplicate.Name = original.Name + " (Copy)"
	duplicate.AssignedTo = []string{}
	duplicate.AssignedTeams = []string{}
	duplicate.CreatedAt = s.now()
	duplicate.UpdatedAt = duplicate.CreatedAt

	exercises := make([]domain.Exercise, len(original.Exercises))
	for i, ex := range original.Exercises {
		copied := ex
		copied.ID = newID()
		sets := make([]domain.Set, len(ex.Sets))
		for j, set := range ex.Sets {
			setCopy := set
			setCopy.ID = newID()
			notes := make([]domain.SetNote, len(set.Notes))
			for k, note := range set.Notes {
				noteCopy := note
				noteCopy.ID = newID()
				notes[k] = noteCopy
			}
			setCopy.Notes = notes
			sets[j] = setCopy
		}
		copied.Sets = sets
		exercises[i] = copied
	}
	duplicate.Exercises = exercises

	id, err := s.programRepo.Create(ctx, &duplicate)
	if err != nil {
		return nil, fmt.Errorf("duplicate program: %w", err)
	}
	duplicate.ID = id
	return &duplicate, nil
}

func (s *programService) Assign(ctx context.Context, programID string, athleteIDs, teamIDs []string) (*domain.WorkoutProgram, error) {
	program, err := s.Get(ctx, programID)
	if err != nil {
		return nil, err
	}

	if athleteIDs == nil {
		athleteIDs = []string{}
	}
	if teamIDs == nil {
		teamIDs = []string{}
	}
	program.AssignedTo = athleteIDs
	program.AssignedTeams = teamIDs
	program.UpdatedAt = s.now()

	if err := s.programRepo.Update(ctx, program); err != nil {
		return nil, fmt.Errorf("assign program: %w", err)
	}
	return program, nil
}

func (s *programService) AddSetNote(ctx context.Context, programID, exerciseID, setID, userID, content string) (*domain.SetNote, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptySetNote
	}

	program, err := s.Get(ctx, programID)
	if err != nil {
		return nil, err
	}

	var note *domain.SetNote
	for i := range program.Exercises {
		if program.Exercises[i].ID != exerciseID {
			continue
		}
		for j := range program.Exercises[i].Sets {
			if program.Exercises[i].Sets[j].ID != setID {
				continue
			}
			n := domain.SetNote{
				ID:        newID(),
				UserID:    userID,
				Content:   content,
				Timestamp: s.now(),
			}
			program.Exercises[i].Sets[j].Notes = append(program.Exercises[i].Sets[j].Notes, n)
			note = &n
			break
		}
		if note == nil {
			return nil, ErrSetNotInExercise
		}
		break
	}
	if note == nil {
		return nil, ErrExerciseNotInProgram
	}

	if err := s.programRepo.Update(ctx, program); err != nil {
		return nil, fmt.Errorf("save set note: %w", err)
	}
	return note, nil
}

func (s *programService) GetForAthlete(ctx context.Context, athleteID string) ([]domain.WorkoutProgram, error) {
	teams, err := s.teamRepo.GetByAthleteID(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("resolve athlete teams: %w", err)
	}

	programs, err := s.programRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}

	assigned := make([]domain.WorkoutProgram, 0)
	for _, p := range programs {
		if p.AssignedToAthlete(athleteID) {
			assigned = append(assigned, p)
			continue
		}
		for _, team := range teams {
			if p.AssignedToTeam(team.ID) {
				assigned = append(assigned, p)
				break
			}
		}
	}
	return assigned, nil
}
