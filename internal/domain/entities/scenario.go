package entities

import "time"

// ScenarioType classifies what a scenario models. It is fixed at creation.
type ScenarioType string

const (
	ScenarioTypeBudget      ScenarioType = "budget"
	ScenarioTypeForecast    ScenarioType = "forecast"
	ScenarioTypeWhatIf      ScenarioType = "what_if"
	ScenarioTypeSensitivity ScenarioType = "sensitivity"
)

// ScenarioStatus represents the lifecycle of a scenario.
//
// Allowed transitions:
//   - draft    -> active   (results persisted by scoring)
//   - active   -> approved (approve only)
//   - draft|active|approved -> archived
//
// archived is terminal.
type ScenarioStatus string

const (
	ScenarioStatusDraft    ScenarioStatus = "draft"
	ScenarioStatusActive   ScenarioStatus = "active"
	ScenarioStatusApproved ScenarioStatus = "approved"
	ScenarioStatusArchived ScenarioStatus = "archived"
)

const (
	DefaultTimeHorizon = 12
	MinTimeHorizon     = 1
	MaxTimeHorizon     = 60

	// DefaultRangePercent is the spread applied around base_value when an
	// assumption carries no explicit bounds.
	DefaultRangePercent = 20.0
)

// Assumption is a single uncertain input lever of a scenario.
type Assumption struct {
	Variable  string   `json:"variable"`
	BaseValue float64  `json:"base_value"`
	MinValue  *float64 `json:"min_value,omitempty"`
	MaxValue  *float64 `json:"max_value,omitempty"`
	Unit      string   `json:"unit,omitempty"`
	Category  string   `json:"category,omitempty"`
}

// Bounds returns the sampling range of the assumption. Missing bounds default
// to ±DefaultRangePercent of the base value, each one independently.
func (a Assumption) Bounds() (lo, hi float64) {
	lo = a.BaseValue * (1 - DefaultRangePercent/100)
	hi = a.BaseValue * (1 + DefaultRangePercent/100)
	if a.MinValue != nil {
		lo = *a.MinValue
	}
	if a.MaxValue != nil {
		hi = *a.MaxValue
	}
	return lo, hi
}

// Equal reports whether two assumptions carry the same values.
func (a Assumption) Equal(b Assumption) bool {
	return a.Variable == b.Variable &&
		a.BaseValue == b.BaseValue &&
		equalBound(a.MinValue, b.MinValue) &&
		equalBound(a.MaxValue, b.MaxValue) &&
		a.Unit == b.Unit &&
		a.Category == b.Category
}

func equalBound(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ScenarioResults is the cached projection stored on a scored scenario.
type ScenarioResults struct {
	ProjectedRevenue float64   `json:"projected_revenue"`
	ProjectedCosts   float64   `json:"projected_costs"`
	ProjectedEBITDA  float64   `json:"projected_ebitda"`
	EBITDAMargin     float64   `json:"ebitda_margin"`
	CalculatedAt     time.Time `json:"calculated_at"`
}

// Metric returns the value of a comparable metric. Unknown names yield false.
func (r *ScenarioResults) Metric(name string) (float64, bool) {
	if !IsComparisonMetric(name) {
		return 0, false
	}
	if r == nil {
		return 0, true
	}
	switch name {
	case MetricProjectedRevenue:
		return r.ProjectedRevenue, true
	case MetricProjectedCosts:
		return r.ProjectedCosts, true
	case MetricProjectedEBITDA:
		return r.ProjectedEBITDA, true
	default:
		return r.EBITDAMargin, true
	}
}

// Approval records who approved a scenario and whether it became the baseline
// of its type.
type Approval struct {
	ApprovedBy string    `json:"approved_by"`
	ApprovedAt time.Time `json:"approved_at"`
	Comments   string    `json:"comments,omitempty"`
	IsBaseline bool      `json:"is_baseline"`
}

// Scenario is a named set of financial assumptions plus its lifecycle state.
//
// Storage model (DynamoDB):
//   - PK: id
type Scenario struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Type        ScenarioType     `json:"type"`
	Status      ScenarioStatus   `json:"status"`
	Assumptions []Assumption     `json:"assumptions"`
	TimeHorizon int              `json:"time_horizon"`
	Version     int              `json:"version"`
	CreatedBy   string           `json:"created_by"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Results     *ScenarioResults `json:"results,omitempty"`
	Approval    *Approval        `json:"approval,omitempty"`
}

// Assumption looks up the assumption for a variable.
func (s Scenario) Assumption(variable string) (Assumption, bool) {
	for _, a := range s.Assumptions {
		if a.Variable == variable {
			return a, true
		}
	}
	return Assumption{}, false
}

// Clone returns a deep copy so callers never share slices or pointers with a
// stored scenario.
func (s Scenario) Clone() Scenario {
	out := s
	out.Assumptions = CopyAssumptions(s.Assumptions)
	if s.Results != nil {
		r := *s.Results
		out.Results = &r
	}
	if s.Approval != nil {
		a := *s.Approval
		out.Approval = &a
	}
	return out
}

// CopyAssumptions deep copies a list of assumptions, bounds included.
func CopyAssumptions(in []Assumption) []Assumption {
	if in == nil {
		return nil
	}
	out := make([]Assumption, len(in))
	for i, a := range in {
		if a.MinValue != nil {
			v := *a.MinValue
			a.MinValue = &v
		}
		if a.MaxValue != nil {
			v := *a.MaxValue
			a.MaxValue = &v
		}
		out[i] = a
	}
	return out
}

// ScenarioFilter narrows List results. Empty fields match everything.
type ScenarioFilter struct {
	Type      ScenarioType
	Status    ScenarioStatus
	CreatedBy string
}

// Matches reports whether s satisfies every set field of the filter.
func (f ScenarioFilter) Matches(s Scenario) bool {
	if f.Type != "" && s.Type != f.Type {
		return false
	}
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.CreatedBy != "" && s.CreatedBy != f.CreatedBy {
		return false
	}
	return true
}

// VersionEntry is one append-only audit record of an assumptions edit.
//
// Storage model (DynamoDB):
//   - PK: scenario_id
//   - SK: version
type VersionEntry struct {
	ScenarioID string    `json:"scenario_id"`
	Version    int       `json:"version"`
	Variables  []string  `json:"variables"`
	ChangedBy  string    `json:"changed_by"`
	ChangedAt  time.Time `json:"changed_at"`
}

// Pagination describes a page of List results.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
