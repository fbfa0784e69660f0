package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/repository"
)

// MetricRepository stores metric entries in memory, in insertion order.
type MetricRepository struct {
	mu      sync.RWMutex
	entries []domain.MetricEntry
}

// NewMetricRepository creates an empty in-memory metric repository.
func NewMetricRepository() *MetricRepository {
	return &MetricRepository{}
}

func (r *MetricRepository) Create(ctx context.Context, entry *domain.MetricEntry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	r.entries = append(r.entries, *entry)
	return entry.ID, nil
}

func (r *MetricRepository) List(ctx context.Context, filter repository.MetricFilter) ([]domain.MetricEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]domain.MetricEntry, 0)
	for _, e := range r.entries {
		if filter.AthleteID != "" && e.AthleteID != filter.AthleteID {
			continue
		}
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *MetricRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// CustomMetricRepository stores custom metric templates in memory.
type CustomMetricRepository struct {
	mu      sync.RWMutex
	metrics []domain.CustomMetric
}

// NewCustomMetricRepository creates an empty custom metric repository.
func NewCustomMetricRepository() *CustomMetricRepository {
	return &CustomMetricRepository{}
}

func (r *CustomMetricRepository) Create(ctx context.Context, metric *domain.CustomMetric) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric.ID == "" {
		metric.ID = uuid.NewString()
	}
	r.metrics = append(r.metrics, *metric)
	return metric.ID, nil
}

func (r *CustomMetricRepository) GetAll(ctx context.Context) ([]domain.CustomMetric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.CustomMetric(nil), r.metrics...), nil
}
