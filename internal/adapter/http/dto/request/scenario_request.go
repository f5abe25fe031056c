package request

import (
	"strings"

	"scenario_planning/internal/domain/entities"
)

type AssumptionRequest struct {
	Variable  string   `json:"variable" binding:"required"`
	BaseValue float64  `json:"base_value"`
	MinValue  *float64 `json:"min_value"`
	MaxValue  *float64 `json:"max_value"`
	Unit      string   `json:"unit"`
	Category  string   `json:"category"`
}

func (a AssumptionRequest) ToEntity() entities.Assumption {
	return entities.Assumption{
		Variable:  a.Variable,
		BaseValue: a.BaseValue,
		MinValue:  a.MinValue,
		MaxValue:  a.MaxValue,
		Unit:      strings.TrimSpace(a.Unit),
		Category:  strings.TrimSpace(a.Category),
	}
}

// ToAssumptions converts a request list, keeping nil as nil.
func ToAssumptions(in []AssumptionRequest) []entities.Assumption {
	if in == nil {
		return nil
	}
	out := make([]entities.Assumption, 0, len(in))
	for _, a := range in {
		out = append(out, a.ToEntity())
	}
	return out
}

type CreateScenarioRequest struct {
	Name           string              `json:"name" binding:"required"`
	Description    string              `json:"description"`
	Type           string              `json:"type" binding:"required"`
	Assumptions    []AssumptionRequest `json:"assumptions" binding:"dive"`
	TimeHorizon    int                 `json:"time_horizon"`
	BaseScenarioID string              `json:"base_scenario_id"`
}

// UpdateScenarioRequest is a partial update; omitted fields are left as is.
type UpdateScenarioRequest struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Status      *string              `json:"status"`
	Assumptions *[]AssumptionRequest `json:"assumptions" binding:"omitempty,dive"`
	TimeHorizon *int                 `json:"time_horizon"`
}

// HasChanges reports whether any field was supplied.
func (r UpdateScenarioRequest) HasChanges() bool {
	return r.Name != nil || r.Description != nil || r.Status != nil || r.Assumptions != nil || r.TimeHorizon != nil
}

type ApproveScenarioRequest struct {
	Comments      string `json:"comments"`
	SetAsBaseline bool   `json:"set_as_baseline"`
}

type CloneScenarioRequest struct {
	Name string `json:"name"`
}

type ListScenariosQuery struct {
	Type      string `form:"type"`
	Status    string `form:"status"`
	CreatedBy string `form:"created_by"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
}
