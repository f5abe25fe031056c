package response

import (
	"time"

	"scenario_planning/internal/domain/entities"
)

type ScenarioResponse struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Type        string                    `json:"type"`
	Status      string                    `json:"status"`
	Assumptions []entities.Assumption     `json:"assumptions"`
	TimeHorizon int                       `json:"time_horizon"`
	Version     int                       `json:"version"`
	CreatedBy   string                    `json:"created_by"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
	Results     *entities.ScenarioResults `json:"results,omitempty"`
	Approval    *entities.Approval        `json:"approval,omitempty"`
}

func FromScenario(s entities.Scenario) ScenarioResponse {
	assumptions := s.Assumptions
	if assumptions == nil {
		assumptions = []entities.Assumption{}
	}
	return ScenarioResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Type:        string(s.Type),
		Status:      string(s.Status),
		Assumptions: assumptions,
		TimeHorizon: s.TimeHorizon,
		Version:     s.Version,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		Results:     s.Results,
		Approval:    s.Approval,
	}
}

type ScenarioListResponse struct {
	Scenarios  []ScenarioResponse  `json:"scenarios"`
	Pagination entities.Pagination `json:"pagination"`
}

func FromScenarioPage(items []entities.Scenario, p entities.Pagination) ScenarioListResponse {
	out := ScenarioListResponse{Scenarios: make([]ScenarioResponse, 0, len(items)), Pagination: p}
	for _, s := range items {
		out.Scenarios = append(out.Scenarios, FromScenario(s))
	}
	return out
}

type VersionHistoryResponse struct {
	ScenarioID string                  `json:"scenario_id"`
	Versions   []entities.VersionEntry `json:"versions"`
}

func FromVersions(scenarioID string, versions []entities.VersionEntry) VersionHistoryResponse {
	if versions == nil {
		versions = []entities.VersionEntry{}
	}
	return VersionHistoryResponse{ScenarioID: scenarioID, Versions: versions}
}
