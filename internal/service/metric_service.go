package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/observability"
	"fitforge/coaching-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUnknownMetricType  = errors.New("unknown metric type")
	ErrInvalidMetricValue = errors.New("metric value is not a finite number")
	ErrInvalidMetricUnit  = errors.New("unit is not available for this metric type")
	ErrMetricNotFound     = errors.New("metric entry not found")
	ErrCustomMetricName   = errors.New("custom metric name is required")
)

// MetricService records, lists and analyzes athlete metrics.
type MetricService interface {
	// Record parses rawValue, converts it from the given unit to the metric
	// type's base unit and appends a new entry. Malformed or empty input
	// yields ErrInvalidMetricValue; callers at the API edge translate that
	// into a silent no-op to match the product's fail-silent posture.
	Record(ctx context.Context, athleteID string, metricType domain.MetricType, rawValue, unit, note string) (*domain.MetricEntry, error)
	// Delete removes an entry by id, unconditionally.
	Delete(ctx context.Context, entryID string) error
	// List returns entries, optionally filtered by athlete and/or type,
	// sorted chronologically.
	List(ctx context.Context, athleteID string, metricType domain.MetricType) ([]domain.MetricEntry, error)
	// Trend analyzes the athlete's entries for one metric type.
	Trend(ctx context.Context, athleteID string, metricType domain.MetricType) (*TrendResult, error)
	// CreateCustomMetric stores a custom metric template and registers its
	// id as a recordable metric type.
	CreateCustomMetric(ctx context.Context, metric domain.CustomMetric) (*domain.CustomMetric, error)
	// Definitions lists every metric type currently recordable, built-in
	// and custom.
	Definitions(ctx context.Context) []domain.MetricDefinition
}

// metricService implements the MetricService interface. The definition
// table starts from the built-ins and grows as custom metrics are
// registered.
type metricService struct {
	metricRepo repository.MetricRepository
	customRepo repository.CustomMetricRepository
	now        func() time.Time

	mu          sync.RWMutex
	definitions map[domain.MetricType]domain.MetricDefinition
}

// NewMetricService creates a metric service with the built-in metric
// definitions.
func NewMetricService(metricRepo repository.MetricRepository, customRepo repository.CustomMetricRepository) MetricService {
	return &metricService{
		metricRepo:  metricRepo,
		customRepo:  customRepo,
		now:         time.Now,
		definitions: domain.BuiltinMetricDefinitions(),
	}
}

func (s *metricService) Record(ctx context.Context, athleteID string, metricType domain.MetricType, rawValue, unit, note string) (*domain.MetricEntry, error) {
	if athleteID == "" {
		return nil, errors.New("athlete ID is required")
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(rawValue), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, ErrInvalidMetricValue
	}

	s.mu.RLock()
	definition, ok := s.definitions[metricType]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownMetricType
	}

	// Conversion happens exactly once, here. The stored value is always in
	// the base unit; the entered unit is not retained.
	canonical, ok := definition.Convert(value, unit)
	if !ok {
		return nil, ErrInvalidMetricUnit
	}

	entry := &domain.MetricEntry{
		AthleteID: athleteID,
		Type:      metricType,
		Value:     canonical,
		Date:      s.now(),
		Note:      strings.TrimSpace(note),
	}
	id, err := s.metricRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("record metric entry: %w", err)
	}
	entry.ID = id
	observability.MetricEntriesTotal.Inc()
	return entry, nil
}

func (s *metricService) Delete(ctx context.Context, entryID string) error {
	err := s.metricRepo.Delete(ctx, entryID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMetricNotFound
	}
	return err
}

func (s *metricService) List(ctx context.Context, athleteID string, metricType domain.MetricType) ([]domain.MetricEntry, error) {
	entries, err := s.metricRepo.List(ctx, repository.MetricFilter{AthleteID: athleteID, Type: metricType})
	if err != nil {
		return nil, fmt.Errorf("list metric entries: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, nil
}

func (s *metricService) Trend(ctx context.Context, athleteID string, metricType domain.MetricType) (*TrendResult, error) {
	entries, err := s.List(ctx, athleteID, metricType)
	if err != nil {
		return nil, err
	}
	return AnalyzeTrend(entries)
}

func (s *metricService) CreateCustomMetric(ctx context.Context, metric domain.CustomMetric) (*domain.CustomMetric, error) {
	if strings.TrimSpace(metric.Name) == "" {
		return nil, ErrCustomMetricName
	}

	id, err := s.customRepo.Create(ctx, &metric)
	if err != nil {
		return nil, fmt.Errorf("create custom metric: %w", err)
	}
	metric.ID = id

	// The template's id doubles as the metric type for entries recorded
	// against it.
	units := domain.UnitsForMeasurement(metric.Unit.Type)
	if len(units) == 0 {
		factor := metric.Unit.ConversionFactor
		if factor == 0 {
			factor = 1
		}
		units = []domain.UnitOption{{Value: metric.Unit.ID, Label: metric.Unit.Name, Factor: factor}}
	}
	baseUnit := metric.Unit.BaseUnit
	if baseUnit == "" {
		baseUnit = metric.Unit.ID
	}

	s.mu.Lock()
	s.definitions[domain.MetricType(metric.ID)] = domain.MetricDefinition{
		Type:        domain.MetricType(metric.ID),
		Measurement: metric.Unit.Type,
		Label:       metric.Name,
		BaseUnit:    baseUnit,
		Description: metric.Description,
		Units:       units,
	}
	s.mu.Unlock()

	return &metric, nil
}

func (s *metricService) Definitions(ctx context.Context) []domain.MetricDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	definitions := make([]domain.MetricDefinition, 0, len(s.definitions))
	for _, d := range s.definitions {
		// Unit tables are shared package-level slices; hand out copies so
		// a caller mutating its result cannot corrupt them.
		d.Units = append([]domain.UnitOption(nil), d.Units...)
		definitions = append(definitions, d)
	}
	sort.Slice(definitions, func(i, j int) bool {
		return definitions[i].Type < definitions[j].Type
	})
	return definitions
}
