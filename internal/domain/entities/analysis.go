package entities

import "time"

// Comparable metric names, matching the ScenarioResults JSON fields.
const (
	MetricProjectedRevenue = "projected_revenue"
	MetricProjectedCosts   = "projected_costs"
	MetricProjectedEBITDA  = "projected_ebitda"
	MetricEBITDAMargin     = "ebitda_margin"
)

// DefaultComparisonMetrics is used when a comparison names no metrics.
var DefaultComparisonMetrics = []string{
	MetricProjectedRevenue,
	MetricProjectedCosts,
	MetricProjectedEBITDA,
	MetricEBITDAMargin,
}

func IsComparisonMetric(name string) bool {
	for _, m := range DefaultComparisonMetrics {
		if m == name {
			return true
		}
	}
	return false
}

// MetricStatistics summarises one metric over all simulation trials.
type MetricStatistics struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type ConfidenceInterval struct {
	Lower      float64 `json:"lower"`
	Upper      float64 `json:"upper"`
	Confidence float64 `json:"confidence"`
}

type SimulationStatistics struct {
	Revenue MetricStatistics `json:"revenue"`
	Costs   MetricStatistics `json:"costs"`
	EBITDA  MetricStatistics `json:"ebitda"`
}

type SimulationConfidenceIntervals struct {
	Revenue ConfidenceInterval `json:"revenue"`
	EBITDA  ConfidenceInterval `json:"ebitda"`
}

// HistogramBucket is one bin of the ebitda distribution.
type HistogramBucket struct {
	Range      string  `json:"range"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SimulationResult is the outcome distribution of a Monte Carlo run.
type SimulationResult struct {
	ScenarioID          string                        `json:"scenario_id"`
	ScenarioName        string                        `json:"scenario_name"`
	Iterations          int                           `json:"iterations"`
	ConfidenceLevel     float64                       `json:"confidence_level"`
	Statistics          SimulationStatistics          `json:"statistics"`
	ConfidenceIntervals SimulationConfidenceIntervals `json:"confidence_intervals"`
	Histogram           []HistogramBucket             `json:"histogram"`
	RanAt               time.Time                     `json:"ran_at"`
}

// SensitivityPoint is the outcome at one test value of a sweep.
type SensitivityPoint struct {
	Value         float64 `json:"value"`
	ChangePercent float64 `json:"change_percent"`
	Revenue       float64 `json:"revenue"`
	EBITDA        float64 `json:"ebitda"`
}

type VariableSensitivity struct {
	Variable        string             `json:"variable"`
	BaseValue       float64            `json:"base_value"`
	SensitivityData []SensitivityPoint `json:"sensitivity_data"`
}

// TornadoEntry ranks one variable by the ebitda swing across its range.
type TornadoEntry struct {
	Variable   string  `json:"variable"`
	BaseValue  float64 `json:"base_value"`
	LowValue   float64 `json:"low_value"`
	HighValue  float64 `json:"high_value"`
	LowImpact  float64 `json:"low_impact"`
	HighImpact float64 `json:"high_impact"`
	Range      float64 `json:"range"`
}

type SensitivityResult struct {
	ScenarioID   string                `json:"scenario_id"`
	Variables    []string              `json:"variables"`
	Skipped      []string              `json:"skipped_variables,omitempty"`
	RangePercent float64               `json:"range_percent"`
	Steps        int                   `json:"steps"`
	Analysis     []VariableSensitivity `json:"analysis"`
	Tornado      []TornadoEntry        `json:"tornado"`
	RanAt        time.Time             `json:"ran_at"`
}

type ScenarioRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MetricValue is one scenario's value for a metric in the flat comparison view.
type MetricValue struct {
	ScenarioID   string  `json:"scenario_id"`
	ScenarioName string  `json:"scenario_name"`
	Value        float64 `json:"value"`
}

type MetricVariance struct {
	BaseValue       float64 `json:"base_value"`
	CompareValue    float64 `json:"compare_value"`
	Variance        float64 `json:"variance"`
	VariancePercent float64 `json:"variance_percent"`
}

type ScenarioVariance struct {
	ScenarioID   string                    `json:"scenario_id"`
	ScenarioName string                    `json:"scenario_name"`
	Metrics      map[string]MetricVariance `json:"metrics"`
}

type ComparisonResult struct {
	BaselineID string                   `json:"baseline_id"`
	Scenarios  []ScenarioRef            `json:"scenarios"`
	Metrics    []string                 `json:"metrics"`
	Comparison map[string][]MetricValue `json:"comparison"`
	Variances  []ScenarioVariance       `json:"variances"`
	ComparedAt time.Time                `json:"compared_at"`
}
