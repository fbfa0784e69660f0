package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/repository"
)

// LeaderboardEntry ranks one athlete on a metric by their latest recorded
// canonical value. Trend is derived from the athlete's own history, not
// from their position.
type LeaderboardEntry struct {
	Rank        int               `json:"rank"`
	AthleteID   string            `json:"athleteId"`
	AthleteName string            `json:"athleteName"`
	Value       float64           `json:"value"`
	Trend       TrendDirection    `json:"trend"`
	MetricType  domain.MetricType `json:"metricType"`
}

// AthleteCompletionStats summarizes the workout completion log for one
// athlete, for the coach analytics view.
type AthleteCompletionStats struct {
	AthleteID     string `json:"athleteId"`
	AthleteName   string `json:"athleteName"`
	Workouts      int    `json:"workouts"`
	TotalDuration int    `json:"totalDuration"` // seconds across all completions
}

// LeaderboardService builds metric leaderboards and completion analytics
// from the metric and completion stores.
type LeaderboardService interface {
	Leaderboard(ctx context.Context, metricType domain.MetricType) ([]LeaderboardEntry, error)
	CompletionStats(ctx context.Context) ([]AthleteCompletionStats, error)
}

// leaderboardService implements the LeaderboardService interface.
type leaderboardService struct {
	userRepo       repository.UserRepository
	metricRepo     repository.MetricRepository
	completionRepo repository.CompletionRepository
}

// NewLeaderboardService creates a new leaderboard service.
func NewLeaderboardService(
	userRepo repository.UserRepository,
	metricRepo repository.MetricRepository,
	completionRepo repository.CompletionRepository,
) LeaderboardService {
	return &leaderboardService{
		userRepo:       userRepo,
		metricRepo:     metricRepo,
		completionRepo: completionRepo,
	}
}

func (s *leaderboardService) Leaderboard(ctx context.Context, metricType domain.MetricType) ([]LeaderboardEntry, error) {
	athletes, err := s.userRepo.GetByRole(ctx, domain.RoleAthlete)
	if err != nil {
		return nil, fmt.Errorf("list athletes: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(athletes))
	for _, athlete := range athletes {
		history, err := s.metricRepo.List(ctx, repository.MetricFilter{AthleteID: athlete.ID, Type: metricType})
		if err != nil {
			return nil, fmt.Errorf("list metrics for athlete %s: %w", athlete.ID, err)
		}
		if len(history) == 0 {
			// Athletes with no data simply don't place.
			continue
		}

		sort.SliceStable(history, func(i, j int) bool {
			return history[i].Date.Before(history[j].Date)
		})
		latest := history[len(history)-1]

		trend := TrendStable
		if result, err := AnalyzeTrend(history); err == nil {
			trend = result.Direction
		} else if !errors.Is(err, ErrTrendSinglePoint) {
			return nil, err
		}

		entries = append(entries, LeaderboardEntry{
			AthleteID:   athlete.ID,
			AthleteName: athlete.Name,
			Value:       latest.Value,
			Trend:       trend,
			MetricType:  metricType,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func (s *leaderboardService) CompletionStats(ctx context.Context) ([]AthleteCompletionStats, error) {
	athletes, err := s.userRepo.GetByRole(ctx, domain.RoleAthlete)
	if err != nil {
		return nil, fmt.Errorf("list athletes: %w", err)
	}

	completions, err := s.completionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}

	byAthlete := make(map[string]*AthleteCompletionStats)
	stats := make([]AthleteCompletionStats, 0, len(athletes))
	for _, athlete := range athletes {
		stats = append(stats, AthleteCompletionStats{AthleteID: athlete.ID, AthleteName: athlete.Name})
	}
	for i := range stats {
		byAthlete[stats[i].AthleteID] = &stats[i]
	}

	for _, c := range completions {
		// Completions for athletes no longer in the org render nothing
		// rather than failing.
		if st, ok := byAthlete[c.AthleteID]; ok {
			st.Workouts++
			st.TotalDuration += c.Duration
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Workouts > stats[j].Workouts
	})
	return stats, nil
}
