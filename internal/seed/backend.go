// Package seed - демонстрационный набор данных и стратегия хранения для режима без бэкенда.
// Созданные отчёты живут только в памяти процесса, счётчики голосов сохраняются в хранилище голосов.
package seed

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/systemfailed/internal/engagement"
	"github.com/shenikar/systemfailed/internal/models"
)

// CountStore - часть хранилища голосов, нужная seed-режиму
type CountStore interface {
	Counts(ctx context.Context) (map[string]int, error)
	IncrementUpvote(ctx context.Context, deviceID, reportID string, baseline int) (int, error)
}

type Backend struct {
	mu        sync.RWMutex
	incidents []*models.Incident
	hazards   []*models.Hazard
	counts    CountStore
}

// NewBackend создаёт стратегию поверх встроенного набора данных
func NewBackend(counts CountStore) *Backend {
	return NewBackendWithData(counts, Incidents(), Hazards())
}

// NewBackendWithData создаёт стратегию поверх переданных данных (сортирует от новых к старым)
func NewBackendWithData(counts CountStore, incidents []*models.Incident, hazards []*models.Hazard) *Backend {
	slices.SortStableFunc(incidents, func(a, b *models.Incident) int { return b.CreatedAt.Compare(a.CreatedAt) })
	slices.SortStableFunc(hazards, func(a, b *models.Hazard) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return &Backend{
		incidents: incidents,
		hazards:   hazards,
		counts:    counts,
	}
}

func (b *Backend) loadCounts(ctx context.Context) (map[string]int, error) {
	counts, err := b.counts.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load upvote overrides: %w", err)
	}
	return counts, nil
}

// snapshotIncidents копирует инциденты и применяет сохранённые счётчики
func (b *Backend) snapshotIncidents(ctx context.Context) ([]*models.Incident, error) {
	counts, err := b.loadCounts(ctx)
	if err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*models.Incident, len(b.incidents))
	for i, inc := range b.incidents {
		out[i] = engagement.OverrideCount(inc.Clone(), counts)
	}
	return out, nil
}

func (b *Backend) snapshotHazards(ctx context.Context) ([]*models.Hazard, error) {
	counts, err := b.loadCounts(ctx)
	if err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*models.Hazard, len(b.hazards))
	for i, h := range b.hazards {
		out[i] = engagement.OverrideCount(h.Clone(), counts)
	}
	return out, nil
}

func (b *Backend) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	return b.snapshotIncidents(ctx)
}

// ListIncidentsPage возвращает срез [offset, offset+limit) и общее количество
func (b *Backend) ListIncidentsPage(ctx context.Context, offset, limit int) ([]*models.Incident, int, error) {
	all, err := b.snapshotIncidents(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := len(all)
	start := min(max(offset, 0), total)
	end := start + min(max(limit, 0), total-start)
	return all[start:end], total, nil
}

func (b *Backend) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	all, err := b.snapshotIncidents(ctx)
	if err != nil {
		return nil, err
	}
	for _, inc := range all {
		if inc.ID == id {
			return inc, nil
		}
	}
	return nil, models.ErrNotFound
}

// MostUpvotedIncidents сортирует по убыванию голосов, при равенстве сохраняет исходный порядок
func (b *Backend) MostUpvotedIncidents(ctx context.Context, limit int) ([]*models.Incident, error) {
	all, err := b.snapshotIncidents(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(all, func(x, y *models.Incident) int { return cmp.Compare(y.UpvoteCount, x.UpvoteCount) })
	return all[:min(limit, len(all))], nil
}

func (b *Backend) CountIncidents(ctx context.Context) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.incidents), nil
}

// CreateIncident добавляет инцидент в начало списка
func (b *Backend) CreateIncident(ctx context.Context, incident *models.Incident) error {
	if incident.ID == "" {
		incident.ID = uuid.NewString()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.incidents = append([]*models.Incident{incident.Clone()}, b.incidents...)
	return nil
}

func (b *Backend) UpvoteIncident(ctx context.Context, deviceID, id string) (int, error) {
	b.mu.RLock()
	idx := slices.IndexFunc(b.incidents, func(inc *models.Incident) bool { return inc.ID == id })
	baseline := 0
	if idx >= 0 {
		baseline = b.incidents[idx].UpvoteCount
	}
	b.mu.RUnlock()
	if idx < 0 {
		return 0, models.ErrNotFound
	}
	return b.counts.IncrementUpvote(ctx, deviceID, id, baseline)
}

func (b *Backend) ListHazards(ctx context.Context) ([]*models.Hazard, error) {
	return b.snapshotHazards(ctx)
}

func (b *Backend) GetHazard(ctx context.Context, id string) (*models.Hazard, error) {
	all, err := b.snapshotHazards(ctx)
	if err != nil {
		return nil, err
	}
	for _, h := range all {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, models.ErrNotFound
}

func (b *Backend) CreateHazard(ctx context.Context, hazard *models.Hazard) error {
	if hazard.ID == "" {
		hazard.ID = uuid.NewString()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hazards = append([]*models.Hazard{hazard.Clone()}, b.hazards...)
	return nil
}

func (b *Backend) UpvoteHazard(ctx context.Context, deviceID, id string) (int, error) {
	b.mu.RLock()
	idx := slices.IndexFunc(b.hazards, func(h *models.Hazard) bool { return h.ID == id })
	baseline := 0
	if idx >= 0 {
		baseline = b.hazards[idx].UpvoteCount
	}
	b.mu.RUnlock()
	if idx < 0 {
		return 0, models.ErrNotFound
	}
	return b.counts.IncrementUpvote(ctx, deviceID, id, baseline)
}
