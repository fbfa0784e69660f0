package memory

import (
	"context"
	"time"

	"fitforge/coaching-app/internal/domain"
)

// Repositories bundles every in-memory store the application uses, so the
// whole set can be constructed and seeded in one place.
type Repositories struct {
	Users         *UserRepository
	Teams         *TeamRepository
	Programs      *ProgramRepository
	Completions   *CompletionRepository
	Metrics       *MetricRepository
	CustomMetrics *CustomMetricRepository
	Habits        *HabitRepository
}

// NewRepositories constructs the full set of empty in-memory repositories.
func NewRepositories() *Repositories {
	return &Repositories{
		Users:         NewUserRepository(),
		Teams:         NewTeamRepository(),
		Programs:      NewProgramRepository(),
		Completions:   NewCompletionRepository(),
		Metrics:       NewMetricRepository(),
		CustomMetrics: NewCustomMetricRepository(),
		Habits:        NewHabitRepository(),
	}
}

// SeedDemoData loads the demo organization: one coach, two athletes, two
// teams, one program and two habits. Ids are fixed so the data is easy to
// poke at from curl.
func (r *Repositories) SeedDemoData(ctx context.Context) error {
	users := []domain.User{
		{ID: "1", Name: "Chris Coach", Email: "coach@example.com", Role: domain.RoleCoach, OrganizationID: "1"},
		{ID: "2", Name: "Jane Athlete", Email: "athlete@example.com", Role: domain.RoleAthlete, OrganizationID: "1"},
		{ID: "3", Name: "Bob Athlete", Email: "athlete2@example.com", Role: domain.RoleAthlete, OrganizationID: "1"},
	}
	for i := range users {
		if _, err := r.Users.Create(ctx, &users[i]); err != nil {
			return err
		}
	}

	teams := []domain.Team{
		{ID: "1", Name: "Strength Team", Description: "Focus on strength training", Athletes: []string{"2"}},
		{ID: "2", Name: "Endurance Team", Description: "Focus on endurance training", Athletes: []string{"3"}},
	}
	for i := range teams {
		if _, err := r.Teams.Create(ctx, &teams[i]); err != nil {
			return err
		}
	}

	now := time.Now()
	program := domain.WorkoutProgram{
		ID:          "1",
		CoachID:     "1",
		Name:        "Full Body Strength",
		Description: "A comprehensive full body workout focusing on major muscle groups",
		Exercises: []domain.Exercise{
			{
				ID:              "1",
				Name:            "Squats",
				MeasurementType: domain.MeasurementWeight,
				Sets: []domain.Set{
					{ID: "1-1", Reps: 8, Measurement: domain.Measurement{Type: domain.MeasurementWeight, Value: 135, Unit: "lbs"}, WeightType: domain.WeightAbsolute},
					{ID: "1-2", Reps: 8, Measurement: domain.Measurement{Type: domain.MeasurementWeight, Value: 135, Unit: "lbs"}, WeightType: domain.WeightAbsolute},
					{ID: "1-3", Reps: 8, Measurement: domain.Measurement{Type: domain.MeasurementWeight, Value: 135, Unit: "lbs"}, WeightType: domain.WeightAbsolute},
					{ID: "1-4", Reps: 8, Measurement: domain.Measurement{Type: domain.MeasurementWeight, Value: 135, Unit: "lbs"}, WeightType: domain.WeightAbsolute},
				},
			},
			{
				ID:              "2",
				Name:            "Plank",
				MeasurementType: domain.MeasurementTime,
				Sets: []domain.Set{
					{ID: "2-1", Reps: 1, Measurement: domain.Measurement{Type: domain.MeasurementTime, Value: 60, Unit: "seconds"}},
					{ID: "2-2", Reps: 1, Measurement: domain.Measurement{Type: domain.MeasurementTime, Value: 60, Unit: "seconds"}},
				},
			},
			{
				ID:              "3",
				Name:            "Push-ups",
				MeasurementType: domain.MeasurementCount,
				Sets: []domain.Set{
					{ID: "3-1", Reps: 1, Measurement: domain.Measurement{Type: domain.MeasurementCount, Value: 20, Unit: "reps"}},
					{ID: "3-2", Reps: 1, Measurement: domain.Measurement{Type: domain.MeasurementCount, Value: 20, Unit: "reps"}},
				},
			},
		},
		AssignedTo:    []string{"2"},
		AssignedTeams: []string{"1"},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := r.Programs.Create(ctx, &program); err != nil {
		return err
	}

	// Habits started running a week before seeding so today is in range.
	habitStart := now.AddDate(0, 0, -7)
	habits := []domain.Habit{
		{
			ID:             "1",
			Name:           "Morning Stretching",
			Description:    "Spend 10 minutes stretching after waking up",
			Frequency:      domain.FrequencyDaily,
			CreatedBy:      "1",
			AssignedTo:     []string{"2", "3"},
			OrganizationID: "1",
			StartDate:      habitStart,
		},
		{
			ID:             "2",
			Name:           "Meal Prep Sunday",
			Description:    "Prepare meals for the week ahead",
			Frequency:      domain.FrequencyWeekly,
			CreatedBy:      "1",
			AssignedTo:     []string{"2"},
			OrganizationID: "1",
			StartDate:      habitStart,
		},
	}
	for i := range habits {
		if _, err := r.Habits.Create(ctx, &habits[i]); err != nil {
			return err
		}
	}

	return nil
}
