package repository

import (
	"context"
	"fmt"
	"sync"

	"scenario_planning/internal/domain/entities"
	"scenario_planning/internal/usecase/interfaces"
)

// ScenarioMemoryRepository keeps scenarios in process memory. Every value
// crossing its boundary is deep copied.
//
// Deleted ids are remembered so they are never handed out again.
type ScenarioMemoryRepository struct {
	mu        sync.RWMutex
	scenarios map[string]entities.Scenario
	deleted   map[string]struct{}
	versions  map[string][]entities.VersionEntry
}

var _ interfaces.IScenarioRepository = (*ScenarioMemoryRepository)(nil)

func NewScenarioMemoryRepository() *ScenarioMemoryRepository {
	return &ScenarioMemoryRepository{
		scenarios: make(map[string]entities.Scenario),
		deleted:   make(map[string]struct{}),
		versions:  make(map[string][]entities.VersionEntry),
	}
}

func (r *ScenarioMemoryRepository) Create(_ context.Context, s entities.Scenario) (entities.Scenario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scenarios[s.ID]; ok {
		return entities.Scenario{}, fmt.Errorf("scenario %s: %w", s.ID, interfaces.ErrScenarioExists)
	}
	if _, ok := r.deleted[s.ID]; ok {
		return entities.Scenario{}, fmt.Errorf("scenario %s: %w", s.ID, interfaces.ErrScenarioExists)
	}
	r.scenarios[s.ID] = s.Clone()
	return s.Clone(), nil
}

func (r *ScenarioMemoryRepository) GetByID(_ context.Context, id string) (entities.Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.scenarios[id]
	if !ok {
		return entities.Scenario{}, nil
	}
	return s.Clone(), nil
}

func (r *ScenarioMemoryRepository) List(_ context.Context, filter entities.ScenarioFilter) ([]entities.Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Scenario, 0, len(r.scenarios))
	for _, s := range r.scenarios {
		if filter.Matches(s) {
			out = append(out, s.Clone())
		}
	}
	return out, nil
}

// Update replaces the stored scenario. Unknown ids yield a zero Scenario.
func (r *ScenarioMemoryRepository) Update(_ context.Context, s entities.Scenario) (entities.Scenario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scenarios[s.ID]; !ok {
		return entities.Scenario{}, nil
	}
	r.scenarios[s.ID] = s.Clone()
	return s.Clone(), nil
}

func (r *ScenarioMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.scenarios, id)
	delete(r.versions, id)
	r.deleted[id] = struct{}{}
	return nil
}

// Approve re-checks the stored states under the write lock and applies every
// change or none.
func (r *ScenarioMemoryRepository) Approve(_ context.Context, approved entities.Scenario, archived []entities.Scenario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.scenarios[approved.ID]
	if !ok || current.Status != entities.ScenarioStatusActive {
		return fmt.Errorf("approve %s: %w", approved.ID, interfaces.ErrConcurrentModification)
	}
	for _, s := range archived {
		stored, ok := r.scenarios[s.ID]
		if !ok || stored.Status != entities.ScenarioStatusApproved {
			return fmt.Errorf("archive %s: %w", s.ID, interfaces.ErrConcurrentModification)
		}
	}

	r.scenarios[approved.ID] = approved.Clone()
	for _, s := range archived {
		r.scenarios[s.ID] = s.Clone()
	}
	return nil
}

func (r *ScenarioMemoryRepository) AppendVersion(_ context.Context, v entities.VersionEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v.Variables = append([]string(nil), v.Variables...)
	r.versions[v.ScenarioID] = append(r.versions[v.ScenarioID], v)
	return nil
}

func (r *ScenarioMemoryRepository) ListVersions(_ context.Context, scenarioID string) ([]entities.VersionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.versions[scenarioID]
	out := make([]entities.VersionEntry, len(stored))
	for i, v := range stored {
		v.Variables = append([]string(nil), v.Variables...)
		out[i] = v
	}
	return out, nil
}
