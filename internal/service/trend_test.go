package service

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitforge/coaching-app/internal/domain"
)

func trendEntries(values ...float64) []domain.MetricEntry {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	entries := make([]domain.MetricEntry, len(values))
	for i, v := range values {
		entries[i] = domain.MetricEntry{
			ID:    string(rune('a' + i)),
			Value: v,
			Date:  base.AddDate(0, 0, i),
		}
	}
	return entries
}

func TestAnalyzeTrendDirection(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		direction TrendDirection
		pctChange float64
	}{
		{"flat series is stable", []float64{100, 100}, TrendStable, 0},
		{"increase is up", []float64{100, 110}, TrendUp, 10},
		{"decrease is down", []float64{110, 100}, TrendDown, -9.090909090909092},
		{"only endpoints matter", []float64{100, 180, 105}, TrendUp, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AnalyzeTrend(trendEntries(tt.values...))
			require.NoError(t, err)
			assert.Equal(t, tt.direction, result.Direction)
			assert.InDelta(t, tt.pctChange, result.PercentageChange, 1e-9)
			assert.Equal(t, tt.values[0], result.First)
			assert.Equal(t, tt.values[len(tt.values)-1], result.Latest)
		})
	}
}

func TestAnalyzeTrendZeroBaseline(t *testing.T) {
	// A first entry of 0 is valid input (a count metric can start at 0).
	// The percentage has no defined value against a zero baseline; it
	// must come back 0, never Inf or NaN, and the direction must still
	// reflect the movement.
	result, err := AnalyzeTrend(trendEntries(0, 10))
	require.NoError(t, err)
	assert.Equal(t, TrendUp, result.Direction)
	assert.False(t, math.IsInf(result.PercentageChange, 0))
	assert.False(t, math.IsNaN(result.PercentageChange))
	assert.Equal(t, float64(0), result.PercentageChange)

	result, err = AnalyzeTrend(trendEntries(0, 0))
	require.NoError(t, err)
	assert.Equal(t, TrendStable, result.Direction)
	assert.Equal(t, float64(0), result.PercentageChange)
}

func TestAnalyzeTrendEmptyStatesAreDistinct(t *testing.T) {
	_, err := AnalyzeTrend(nil)
	assert.ErrorIs(t, err, ErrTrendNoData)

	_, err = AnalyzeTrend(trendEntries(100))
	assert.ErrorIs(t, err, ErrTrendSinglePoint)
}

func TestAnalyzeTrendSortsByDate(t *testing.T) {
	entries := trendEntries(100, 110, 120)
	// Shuffle: the result must still read oldest-to-newest.
	shuffled := []domain.MetricEntry{entries[2], entries[0], entries[1]}

	result, err := AnalyzeTrend(shuffled)
	require.NoError(t, err)
	assert.Equal(t, float64(100), result.First)
	assert.Equal(t, float64(120), result.Latest)
	assert.Equal(t, TrendUp, result.Direction)
}

func TestAnalyzeTrendNormalizesPoints(t *testing.T) {
	result, err := AnalyzeTrend(trendEntries(100, 150, 200))
	require.NoError(t, err)
	require.Len(t, result.Points, 3)

	// X spans the date range.
	assert.InDelta(t, 0, result.Points[0].X, 1e-9)
	assert.InDelta(t, 0.5, result.Points[1].X, 1e-9)
	assert.InDelta(t, 1, result.Points[2].X, 1e-9)

	// Y spans the value range padded 10% above and below, so the extremes
	// sit inside the chart rather than on its edges.
	low, high := 90.0, 210.0
	assert.InDelta(t, (100-low)/(high-low), result.Points[0].Y, 1e-9)
	assert.InDelta(t, (150-low)/(high-low), result.Points[1].Y, 1e-9)
	assert.InDelta(t, (200-low)/(high-low), result.Points[2].Y, 1e-9)
}

func TestAnalyzeTrendFlatSeriesCentersY(t *testing.T) {
	result, err := AnalyzeTrend(trendEntries(100, 100, 100))
	require.NoError(t, err)
	for _, p := range result.Points {
		assert.InDelta(t, 0.5, p.Y, 1e-9)
	}
}

func TestAnalyzeTrendSameTimestampSpreadsXByIndex(t *testing.T) {
	when := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	entries := []domain.MetricEntry{
		{ID: "a", Value: 100, Date: when},
		{ID: "b", Value: 110, Date: when},
		{ID: "c", Value: 120, Date: when},
	}

	result, err := AnalyzeTrend(entries)
	require.NoError(t, err)
	assert.InDelta(t, 0, result.Points[0].X, 1e-9)
	assert.InDelta(t, 0.5, result.Points[1].X, 1e-9)
	assert.InDelta(t, 1, result.Points[2].X, 1e-9)
}
