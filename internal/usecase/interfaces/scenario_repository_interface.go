package interfaces

import (
	"context"
	"errors"

	"scenario_planning/internal/domain/entities"
)

var (
	// ErrConcurrentModification is returned when a conditional write finds the
	// stored scenario no longer in the state the caller read.
	ErrConcurrentModification = errors.New("scenario modified concurrently")
	// ErrScenarioExists is returned by Create for an id that is or was in use.
	ErrScenarioExists = errors.New("scenario id already in use")
)

// IScenarioRepository abstracts persistence for Scenario and its version trail.
//
// Lookups return a zero-value Scenario (empty ID) and a nil error when the id is
// unknown. List returns every match unsorted; ordering and paging belong to the
// caller.
//
// Approve must apply the primary approval and every archival atomically.
type IScenarioRepository interface {
	Create(ctx context.Context, s entities.Scenario) (entities.Scenario, error)
	GetByID(ctx context.Context, id string) (entities.Scenario, error)
	List(ctx context.Context, filter entities.ScenarioFilter) ([]entities.Scenario, error)
	Update(ctx context.Context, s entities.Scenario) (entities.Scenario, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, approved entities.Scenario, archived []entities.Scenario) error
	AppendVersion(ctx context.Context, v entities.VersionEntry) error
	ListVersions(ctx context.Context, scenarioID string) ([]entities.VersionEntry, error)
}
