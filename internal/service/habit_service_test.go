package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/repository/memory"
)

func newTestHabitService(t *testing.T) *habitService {
	t.Helper()
	svc := NewHabitService(memory.NewHabitRepository()).(*habitService)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }
	return svc
}

func seedHabit(t *testing.T, svc *habitService, habit domain.Habit) *domain.Habit {
	t.Helper()
	created, err := svc.Create(context.Background(), habit)
	require.NoError(t, err)
	return created
}

func TestHabitCreateValidation(t *testing.T) {
	svc := newTestHabitService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Habit{Name: "  ", Frequency: domain.FrequencyDaily})
	assert.ErrorIs(t, err, ErrHabitValidation)

	_, err = svc.Create(ctx, domain.Habit{Name: "Stretching", Frequency: "hourly"})
	assert.ErrorIs(t, err, ErrHabitValidation)

	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Create(ctx, domain.Habit{
		Name:      "Stretching",
		Frequency: domain.FrequencyDaily,
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	})
	assert.ErrorIs(t, err, ErrHabitValidation, "end before start is invalid")

	created := seedHabit(t, svc, domain.Habit{
		Name:        "Stretching",
		Frequency:   domain.FrequencyDaily,
		Completions: []domain.HabitCompletion{{ID: "smuggled"}},
	})
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.StartDate.IsZero(), "zero start date defaults to now")
	assert.Empty(t, created.Completions, "clients cannot pre-fill the completion log")
}

func TestHabitActiveWindow(t *testing.T) {
	svc := newTestHabitService(t)

	openEnded := seedHabit(t, svc, domain.Habit{
		Name:      "Morning Stretching",
		Frequency: domain.FrequencyDaily,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.True(t, openEnded.InRange(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, openEnded.InRange(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, openEnded.InRange(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)), "no end date means active forever")
	assert.False(t, openEnded.InRange(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))

	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	bounded := seedHabit(t, svc, domain.Habit{
		Name:      "Challenge",
		Frequency: domain.FrequencyDaily,
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	})
	assert.True(t, bounded.InRange(end))
	assert.False(t, bounded.InRange(end.AddDate(0, 0, 1)))
}

func TestRecordCompletionLifecycle(t *testing.T) {
	svc := newTestHabitService(t)
	ctx := context.Background()

	habit := seedHabit(t, svc, domain.Habit{
		Name:       "Morning Stretching",
		Frequency:  domain.FrequencyDaily,
		CreatedBy:  "1",
		AssignedTo: []string{"2"},
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	day := time.Date(2024, 3, 15, 7, 30, 0, 0, time.UTC)

	status, err := svc.StatusFor(ctx, habit.ID, "2", day)
	require.NoError(t, err)
	assert.Equal(t, domain.HabitPending, status, "no record yet means pending")

	updated, err := svc.RecordCompletion(ctx, habit.ID, "2", day, domain.HabitCompleted)
	require.NoError(t, err)
	require.Len(t, updated.Completions, 1)
	assert.Equal(t, domain.HabitCompleted, updated.Completions[0].Status)
	assert.NotEmpty(t, updated.Completions[0].ID)

	// Same calendar day, different hour: already recorded.
	_, err = svc.RecordCompletion(ctx, habit.ID, "2", day.Add(10*time.Hour), domain.HabitMissed)
	assert.ErrorIs(t, err, ErrHabitAlreadyRecorded)

	// The next day is pending again.
	status, err = svc.StatusFor(ctx, habit.ID, "2", day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, domain.HabitPending, status)
}

func TestRecordCompletionGuards(t *testing.T) {
	svc := newTestHabitService(t)
	ctx := context.Background()

	habit := seedHabit(t, svc, domain.Habit{
		Name:       "Meal Prep",
		Frequency:  domain.FrequencyWeekly,
		CreatedBy:  "1",
		AssignedTo: []string{"2"},
		StartDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.RecordCompletion(ctx, habit.ID, "2", day, "done")
	assert.ErrorIs(t, err, ErrInvalidHabitStatus)

	_, err = svc.RecordCompletion(ctx, "missing", "2", day, domain.HabitCompleted)
	assert.ErrorIs(t, err, ErrHabitNotFound)

	_, err = svc.RecordCompletion(ctx, habit.ID, "99", day, domain.HabitCompleted)
	assert.ErrorIs(t, err, ErrHabitNotAssigned)

	// The creator may record even without being in the assignment list.
	_, err = svc.RecordCompletion(ctx, habit.ID, "1", day, domain.HabitCompleted)
	assert.NoError(t, err)

	_, err = svc.RecordCompletion(ctx, habit.ID, "2", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), domain.HabitCompleted)
	assert.ErrorIs(t, err, ErrHabitOutOfRange)
}

func TestHabitUpdatePreservesCompletionLog(t *testing.T) {
	svc := newTestHabitService(t)
	ctx := context.Background()

	habit := seedHabit(t, svc, domain.Habit{
		Name:       "Morning Stretching",
		Frequency:  domain.FrequencyDaily,
		CreatedBy:  "1",
		AssignedTo: []string{"2"},
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	_, err := svc.RecordCompletion(ctx, habit.ID, "2", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), domain.HabitCompleted)
	require.NoError(t, err)

	// An update sent without the log must not erase it.
	updated, err := svc.Update(ctx, domain.Habit{
		ID:         habit.ID,
		Name:       "Evening Stretching",
		Frequency:  domain.FrequencyDaily,
		CreatedBy:  "1",
		AssignedTo: []string{"2", "3"},
		StartDate:  habit.StartDate,
	})
	require.NoError(t, err)
	assert.Equal(t, "Evening Stretching", updated.Name)
	assert.Len(t, updated.Completions, 1)
}

func TestGetForUserIncludesCreatedAndAssigned(t *testing.T) {
	svc := newTestHabitService(t)
	ctx := context.Background()

	seedHabit(t, svc, domain.Habit{Name: "A", Frequency: domain.FrequencyDaily, CreatedBy: "1", AssignedTo: []string{"2"}})
	seedHabit(t, svc, domain.Habit{Name: "B", Frequency: domain.FrequencyDaily, CreatedBy: "2", IsCustom: true})
	seedHabit(t, svc, domain.Habit{Name: "C", Frequency: domain.FrequencyDaily, CreatedBy: "1", AssignedTo: []string{"3"}})

	habits, err := svc.GetForUser(ctx, "2")
	require.NoError(t, err)
	require.Len(t, habits, 2)

	names := []string{habits[0].Name, habits[1].Name}
	assert.ElementsMatch(t, []string{"A", "B"}, names)
}
