package service

import (
	"errors"
	"sort"
	"time"

	"fitforge/coaching-app/internal/domain"
)

// --- Error Definitions ---
var (
	// ErrTrendNoData: no entries at all for the metric.
	ErrTrendNoData = errors.New("no entries recorded for this metric")
	// ErrTrendSinglePoint: exactly one entry; a trend needs two.
	ErrTrendSinglePoint = errors.New("need at least two entries to compute a trend")
)

// TrendDirection classifies a metric's movement between its earliest and
// latest entry.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// TrendPoint is one entry scaled into the unit square for plotting:
// X spans the date range, Y spans the value range padded 10% above and
// below, both normalized to [0, 1].
type TrendPoint struct {
	EntryID string    `json:"entryId"`
	Date    time.Time `json:"date"`
	Value   float64   `json:"value"`
	X       float64   `json:"x"`
	Y       float64   `json:"y"`
}

// TrendResult describes the movement of one metric over time.
type TrendResult struct {
	Direction        TrendDirection `json:"direction"`
	PercentageChange float64        `json:"percentageChange"`
	First            float64        `json:"first"`
	Latest           float64        `json:"latest"`
	Points           []TrendPoint   `json:"points"`
}

// AnalyzeTrend computes the percentage change between the earliest and
// latest entry (not a regression line) and scales every entry for
// plotting. Requires at least two entries; zero and one entries are
// distinct error states so callers can message them separately.
func AnalyzeTrend(entries []domain.MetricEntry) (*TrendResult, error) {
	switch len(entries) {
	case 0:
		return nil, ErrTrendNoData
	case 1:
		return nil, ErrTrendSinglePoint
	}

	sorted := append([]domain.MetricEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	first := sorted[0].Value
	latest := sorted[len(sorted)-1].Value

	// Direction comes from the raw movement, not the percentage, so a
	// zero baseline still classifies. The percentage itself is undefined
	// against a zero baseline; report 0 rather than a non-finite value
	// that JSON cannot carry.
	direction := TrendStable
	switch {
	case latest > first:
		direction = TrendUp
	case latest < first:
		direction = TrendDown
	}

	var change float64
	if first != 0 {
		change = (latest - first) / first * 100
	}

	minValue, maxValue := sorted[0].Value, sorted[0].Value
	for _, e := range sorted[1:] {
		if e.Value < minValue {
			minValue = e.Value
		}
		if e.Value > maxValue {
			maxValue = e.Value
		}
	}
	padding := (maxValue - minValue) * 0.1
	low, high := minValue-padding, maxValue+padding

	minDate := sorted[0].Date
	maxDate := sorted[len(sorted)-1].Date
	dateRange := maxDate.Sub(minDate)

	points := make([]TrendPoint, len(sorted))
	for i, e := range sorted {
		var x float64
		if dateRange > 0 {
			x = float64(e.Date.Sub(minDate)) / float64(dateRange)
		} else {
			// All entries share one timestamp: spread them by index so the
			// line is still drawable.
			x = float64(i) / float64(len(sorted)-1)
		}

		y := 0.5 // flat series: center it rather than divide by zero
		if high > low {
			y = (e.Value - low) / (high - low)
		}

		points[i] = TrendPoint{
			EntryID: e.ID,
			Date:    e.Date,
			Value:   e.Value,
			X:       x,
			Y:       y,
		}
	}

	return &TrendResult{
		Direction:        direction,
		PercentageChange: change,
		First:            first,
		Latest:           latest,
		Points:           points,
	}, nil
}
