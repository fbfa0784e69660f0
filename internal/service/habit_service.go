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
	ErrHabitNotFound        = errors.New("habit not found")
	ErrHabitValidation      = errors.New("habit validation failed")
	ErrHabitNotAssigned     = errors.New("habit is not assigned to this user")
	ErrHabitOutOfRange      = errors.New("date is outside the habit's active window")
	ErrHabitAlreadyRecorded = errors.New("habit already has a status for this day")
	ErrInvalidHabitStatus   = errors.New("status must be completed or missed")
)

// HabitService manages habits and their append-only completion logs.
type HabitService interface {
	Create(ctx context.Context, habit domain.Habit) (*domain.Habit, error)
	Get(ctx context.Context, habitID string) (*domain.Habit, error)
	// GetForUser returns habits assigned to the user plus habits they
	// created.
	GetForUser(ctx context.Context, userID string) ([]domain.Habit, error)
	GetAll(ctx context.Context) ([]domain.Habit, error)
	// Update replaces the habit's fields (name, assignment, window). The
	// completion log is preserved by the repository regardless of what the
	// caller sends.
	Update(ctx context.Context, habit domain.Habit) (*domain.Habit, error)
	// RecordCompletion marks the habit completed or missed for the user on
	// the given day. Only valid while the habit is in range and the day is
	// still pending, which is the affordance the UI exposed.
	RecordCompletion(ctx context.Context, habitID, userID string, date time.Time, status domain.HabitStatus) (*domain.Habit, error)
	// StatusFor derives the habit's status for one user and day.
	StatusFor(ctx context.Context, habitID, userID string, date time.Time) (domain.HabitStatus, error)
}

// habitService implements the HabitService interface.
type habitService struct {
	habitRepo repository.HabitRepository
	now       func() time.Time
}

// NewHabitService creates a new habit service.
func NewHabitService(habitRepo repository.HabitRepository) HabitService {
	return &habitService{
		habitRepo: habitRepo,
		now:       time.Now,
	}
}

func (s *habitService) Create(ctx context.Context, habit domain.Habit) (*domain.Habit, error) {
	if strings.TrimSpace(habit.Name) == "" || !habit.Frequency.IsValid() {
		return nil, ErrHabitValidation
	}
	if habit.StartDate.IsZero() {
		habit.StartDate = s.now()
	}
	if habit.EndDate != nil && habit.EndDate.Before(habit.StartDate) {
		return nil, ErrHabitValidation
	}
	habit.Completions = nil

	id, err := s.habitRepo.Create(ctx, &habit)
	if err != nil {
		return nil, fmt.Errorf("create habit: %w", err)
	}
	habit.ID = id
	return &habit, nil
}

func (s *habitService) Get(ctx context.Context, habitID string) (*domain.Habit, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	return habit, nil
}

func (s *habitService) GetForUser(ctx context.Context, userID string) ([]domain.Habit, error) {
	habits, err := s.habitRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list habits for user: %w", err)
	}
	return habits, nil
}

func (s *habitService) GetAll(ctx context.Context) ([]domain.Habit, error) {
	return s.habitRepo.GetAll(ctx)
}

func (s *habitService) Update(ctx context.Context, habit domain.Habit) (*domain.Habit, error) {
	if strings.TrimSpace(habit.Name) == "" || !habit.Frequency.IsValid() {
		return nil, ErrHabitValidation
	}

	if err := s.habitRepo.Update(ctx, &habit); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	return s.habitRepo.GetByID(ctx, habit.ID)
}

func (s *habitService) RecordCompletion(ctx context.Context, habitID, userID string, date time.Time, status domain.HabitStatus) (*domain.Habit, error) {
	if status != domain.HabitCompleted && status != domain.HabitMissed {
		return nil, ErrInvalidHabitStatus
	}
	if date.IsZero() {
		date = s.now()
	}

	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}

	if !habit.AssignedToUser(userID) && habit.CreatedBy != userID {
		return nil, ErrHabitNotAssigned
	}
	if !habit.InRange(date) {
		return nil, ErrHabitOutOfRange
	}
	if habit.StatusFor(userID, date) != domain.HabitPending {
		return nil, ErrHabitAlreadyRecorded
	}

	completion := domain.HabitCompletion{
		ID:      newID(),
		HabitID: habitID,
		UserID:  userID,
		Date:    date,
		Status:  status,
	}
	if err := s.habitRepo.AppendCompletion(ctx, habitID, completion); err != nil {
		return nil, fmt.Errorf("append habit completion: %w", err)
	}
	return s.habitRepo.GetByID(ctx, habitID)
}

func (s *habitService) StatusFor(ctx context.Context, habitID, userID string, date time.Time) (domain.HabitStatus, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrHabitNotFound
		}
		return "", err
	}
	return habit.StatusFor(userID, date), nil
}
