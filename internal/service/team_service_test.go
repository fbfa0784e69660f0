package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/repository/memory"
)

func newTestTeamService(t *testing.T) (TeamService, ProgramService, HabitService) {
	t.Helper()
	teamRepo := memory.NewTeamRepository()
	programRepo := memory.NewProgramRepository()
	return NewTeamService(teamRepo, programRepo),
		NewProgramService(programRepo, teamRepo),
		NewHabitService(memory.NewHabitRepository())
}

func TestTeamCreateAndUpdate(t *testing.T) {
	teams, _, _ := newTestTeamService(t)
	ctx := context.Background()

	_, err := teams.Create(ctx, domain.Team{Name: "  "})
	assert.ErrorIs(t, err, ErrTeamValidation)

	team, err := teams.Create(ctx, domain.Team{Name: "Strength Squad", Athletes: []string{"2"}})
	require.NoError(t, err)
	require.NotEmpty(t, team.ID)

	team.Athletes = append(team.Athletes, "3")
	updated, err := teams.Update(ctx, *team)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, updated.Athletes)

	_, err = teams.Update(ctx, domain.Team{ID: "missing", Name: "x"})
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestTeamDeleteCascadesIntoPrograms(t *testing.T) {
	teams, programs, habits := newTestTeamService(t)
	ctx := context.Background()

	team, err := teams.Create(ctx, domain.Team{Name: "Strength Squad", Athletes: []string{"2"}})
	require.NoError(t, err)
	other, err := teams.Create(ctx, domain.Team{Name: "Endurance Crew"})
	require.NoError(t, err)

	program, err := programs.Create(ctx, strengthProgram())
	require.NoError(t, err)
	_, err = programs.Assign(ctx, program.ID, []string{"2"}, []string{team.ID, other.ID})
	require.NoError(t, err)

	// A habit assigned to the team's athletes, by athlete id.
	habit, err := habits.Create(ctx, domain.Habit{
		Name:       "Morning Stretching",
		Frequency:  domain.FrequencyDaily,
		CreatedBy:  "1",
		AssignedTo: []string{"2"},
	})
	require.NoError(t, err)

	require.NoError(t, teams.Delete(ctx, team.ID))

	_, err = teams.Get(ctx, team.ID)
	assert.ErrorIs(t, err, ErrTeamNotFound)

	// The deleted team is stripped from the program; other assignments stay.
	reloaded, err := programs.Get(ctx, program.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{other.ID}, reloaded.AssignedTeams)
	assert.Equal(t, []string{"2"}, reloaded.AssignedTo)

	// Habit assignments reference athletes, not teams: untouched.
	reloadedHabit, err := habits.Get(ctx, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, reloadedHabit.AssignedTo)
}

func TestTeamGetForAthlete(t *testing.T) {
	teams, _, _ := newTestTeamService(t)
	ctx := context.Background()

	_, err := teams.Create(ctx, domain.Team{Name: "Strength Squad", Athletes: []string{"2", "3"}})
	require.NoError(t, err)
	_, err = teams.Create(ctx, domain.Team{Name: "Endurance Crew", Athletes: []string{"3"}})
	require.NoError(t, err)

	mine, err := teams.GetForAthlete(ctx, "2")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Strength Squad", mine[0].Name)

	both, err := teams.GetForAthlete(ctx, "3")
	require.NoError(t, err)
	assert.Len(t, both, 2)
}
