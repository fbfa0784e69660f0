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

func newTestMetricService(t *testing.T) (*metricService, *memory.MetricRepository) {
	t.Helper()
	metricRepo := memory.NewMetricRepository()
	svc := NewMetricService(metricRepo, memory.NewCustomMetricRepository()).(*metricService)

	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		now = now.Add(24 * time.Hour)
		return now
	}
	return svc, metricRepo
}

func TestRecordConvertsToBaseUnit(t *testing.T) {
	tests := []struct {
		name       string
		metricType domain.MetricType
		rawValue   string
		unit       string
		want       float64
	}{
		{"kg to lbs", domain.MetricBodyWeight, "100", "kg", 220.462},
		{"lbs unchanged", domain.MetricBodyWeight, "185", "lbs", 185},
		{"minutes to seconds", domain.MetricRunningTime, "30", "minutes", 1800},
		{"hours to seconds", domain.MetricRunningTime, "1.5", "hours", 5400},
		{"km to meters", domain.MetricRunningDistance, "5", "kilometers", 5000},
		{"miles to meters", domain.MetricRunningDistance, "2", "miles", 3218.68},
		{"yards to meters", domain.MetricSwimming, "100", "yards", 91.44},
		{"percentage as-is", domain.MetricBodyFat, "18.5", "%", 18.5},
		{"reps as-is", domain.MetricPushUps, "42", "reps", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestMetricService(t)
			entry, err := svc.Record(context.Background(), "athlete-1", tt.metricType, tt.rawValue, tt.unit, "")
			require.NoError(t, err)
			assert.InDelta(t, tt.want, entry.Value, 1e-9)
		})
	}
}

func TestRecordRejectsBadInputWithoutWriting(t *testing.T) {
	tests := []struct {
		name     string
		rawValue string
	}{
		{"empty", ""},
		{"text", "heavy"},
		{"nan", "NaN"},
		{"infinity", "Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestMetricService(t)
			_, err := svc.Record(context.Background(), "athlete-1", domain.MetricBodyWeight, tt.rawValue, "kg", "")
			assert.ErrorIs(t, err, ErrInvalidMetricValue)

			entries, err := svc.List(context.Background(), "athlete-1", "")
			require.NoError(t, err)
			assert.Empty(t, entries, "rejected input must not create an entry")
		})
	}
}

func TestRecordUnknownTypeAndUnit(t *testing.T) {
	svc, _ := newTestMetricService(t)
	ctx := context.Background()

	_, err := svc.Record(ctx, "athlete-1", "verticalJump", "30", "cm", "")
	assert.ErrorIs(t, err, ErrUnknownMetricType)

	_, err = svc.Record(ctx, "athlete-1", domain.MetricBodyWeight, "100", "stone", "")
	assert.ErrorIs(t, err, ErrInvalidMetricUnit)
}

func TestListFiltersAndSortsChronologically(t *testing.T) {
	svc, _ := newTestMetricService(t)
	ctx := context.Background()

	for _, raw := range []string{"200", "198", "195"} {
		_, err := svc.Record(ctx, "athlete-1", domain.MetricBodyWeight, raw, "lbs", "")
		require.NoError(t, err)
	}
	_, err := svc.Record(ctx, "athlete-1", domain.MetricPushUps, "40", "reps", "")
	require.NoError(t, err)
	_, err = svc.Record(ctx, "athlete-2", domain.MetricBodyWeight, "170", "lbs", "")
	require.NoError(t, err)

	entries, err := svc.List(ctx, "athlete-1", domain.MetricBodyWeight)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []float64{200, 198, 195}, []float64{entries[0].Value, entries[1].Value, entries[2].Value})
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].Date.Before(entries[i].Date))
	}
}

func TestDeleteMetricEntry(t *testing.T) {
	svc, _ := newTestMetricService(t)
	ctx := context.Background()

	entry, err := svc.Record(ctx, "athlete-1", domain.MetricBodyWeight, "200", "lbs", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, entry.ID))

	entries, err := svc.List(ctx, "athlete-1", "")
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.ErrorIs(t, svc.Delete(ctx, entry.ID), ErrMetricNotFound)
}

func TestCustomMetricBecomesRecordable(t *testing.T) {
	svc, _ := newTestMetricService(t)
	ctx := context.Background()

	created, err := svc.CreateCustomMetric(ctx, domain.CustomMetric{
		Name:      "Vertical Jump",
		Unit:      domain.MetricUnit{ID: "inches", Name: "Inches", Type: "custom"},
		CreatedBy: "1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// The template id is now a recordable metric type, with its declared
	// unit accepted at factor 1.
	entry, err := svc.Record(ctx, "athlete-1", domain.MetricType(created.ID), "28", "inches", "")
	require.NoError(t, err)
	assert.InDelta(t, 28, entry.Value, 1e-9)

	_, err = svc.CreateCustomMetric(ctx, domain.CustomMetric{Name: "   "})
	assert.ErrorIs(t, err, ErrCustomMetricName)
}

func TestCustomMetricWithStandardMeasurementReusesUnitTable(t *testing.T) {
	svc, _ := newTestMetricService(t)
	ctx := context.Background()

	created, err := svc.CreateCustomMetric(ctx, domain.CustomMetric{
		Name:      "Farmer Carry",
		Unit:      domain.MetricUnit{ID: "lbs", Name: "Pounds", Type: domain.MeasurementWeight},
		CreatedBy: "1",
	})
	require.NoError(t, err)

	entry, err := svc.Record(ctx, "athlete-1", domain.MetricType(created.ID), "50", "kg", "")
	require.NoError(t, err)
	assert.InDelta(t, 110.231, entry.Value, 1e-9)
}

func TestDefinitionsIncludeBuiltinsAndCustom(t *testing.T) {
	svc, _ := newTestMetricService(t)
	ctx := context.Background()

	base := svc.Definitions(ctx)
	assert.Len(t, base, 9)

	_, err := svc.CreateCustomMetric(ctx, domain.CustomMetric{
		Name: "Grip Strength",
		Unit: domain.MetricUnit{ID: "psi", Name: "PSI", Type: "custom"},
	})
	require.NoError(t, err)

	assert.Len(t, svc.Definitions(ctx), 10)
}

func TestDefinitionsAreDetachedCopies(t *testing.T) {
	svc, _ := newTestMetricService(t)
	ctx := context.Background()

	definitions := svc.Definitions(ctx)
	for i := range definitions {
		for j := range definitions[i].Units {
			definitions[i].Units[j].Factor = -1
		}
	}

	// The shared unit tables and a fresh read must be untouched.
	assert.Equal(t, 2.20462, domain.WeightUnits[1].Factor)
	for _, d := range svc.Definitions(ctx) {
		for _, u := range d.Units {
			assert.NotEqual(t, float64(-1), u.Factor)
		}
	}

	// Conversion still works after the attempted mutation.
	entry, err := svc.Record(ctx, "athlete-1", domain.MetricBodyWeight, "100", "kg", "")
	require.NoError(t, err)
	assert.InDelta(t, 220.462, entry.Value, 1e-9)
}
