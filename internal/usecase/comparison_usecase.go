package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"scenario_planning/internal/domain/entities"
	"scenario_planning/internal/domain/forecast"
	"scenario_planning/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrInsufficientScenarios = errors.New("at least two scenarios are required for comparison")

type CompareInput struct {
	ScenarioIDs []string
	Metrics     []string
}

type IComparisonUseCase interface {
	Compare(ctx context.Context, in CompareInput) (entities.ComparisonResult, error)
}

type ComparisonUseCase struct {
	repo     interfaces.IScenarioRepository
	recorder interfaces.IAnalysisRecorder
}

var _ IComparisonUseCase = (*ComparisonUseCase)(nil)

func NewComparisonUseCase(repo interfaces.IScenarioRepository, recorder interfaces.IAnalysisRecorder) *ComparisonUseCase {
	if recorder == nil {
		recorder = interfaces.NopRecorder{}
	}
	return &ComparisonUseCase{repo: repo, recorder: recorder}
}

// Compare contrasts the cached results of every scenario with the first one.
// Scenarios that were never scored contribute 0 for every metric.
func (u *ComparisonUseCase) Compare(ctx context.Context, in CompareInput) (entities.ComparisonResult, error) {
	if len(in.ScenarioIDs) < 2 {
		return entities.ComparisonResult{}, ErrInsufficientScenarios
	}
	metrics, err := resolveMetrics(in.Metrics)
	if err != nil {
		return entities.ComparisonResult{}, err
	}

	start := time.Now()
	scenarios := make([]entities.Scenario, 0, len(in.ScenarioIDs))
	for _, raw := range in.ScenarioIDs {
		id := strings.TrimSpace(raw)
		if id == "" {
			return entities.ComparisonResult{}, ErrInvalidScenarioID
		}
		s, err := loadScenario(ctx, u.repo, id)
		if err != nil {
			return entities.ComparisonResult{}, err
		}
		scenarios = append(scenarios, s)
	}

	baseline := scenarios[0]
	result := entities.ComparisonResult{
		BaselineID: baseline.ID,
		Scenarios:  make([]entities.ScenarioRef, 0, len(scenarios)),
		Metrics:    metrics,
		Comparison: make(map[string][]entities.MetricValue, len(metrics)),
		Variances:  make([]entities.ScenarioVariance, 0, len(scenarios)-1),
	}

	for _, s := range scenarios {
		result.Scenarios = append(result.Scenarios, entities.ScenarioRef{ID: s.ID, Name: s.Name})
	}
	for _, m := range metrics {
		values := make([]entities.MetricValue, 0, len(scenarios))
		for _, s := range scenarios {
			v, _ := s.Results.Metric(m)
			values = append(values, entities.MetricValue{ScenarioID: s.ID, ScenarioName: s.Name, Value: v})
		}
		result.Comparison[m] = values
	}

	for _, s := range scenarios[1:] {
		sv := entities.ScenarioVariance{
			ScenarioID:   s.ID,
			ScenarioName: s.Name,
			Metrics:      make(map[string]entities.MetricVariance, len(metrics)),
		}
		for _, m := range metrics {
			base, _ := baseline.Results.Metric(m)
			value, _ := s.Results.Metric(m)
			sv.Metrics[m] = variance(base, value)
		}
		result.Variances = append(result.Variances, sv)
	}
	result.ComparedAt = time.Now().UTC()

	elapsed := time.Since(start)
	u.recorder.ObserveAnalysis("comparison", elapsed)
	zap.L().Info("[comparison][usecase] completed",
		zap.String("baseline_id", baseline.ID),
		zap.Int("scenarios", len(scenarios)),
		zap.Strings("metrics", metrics),
		zap.Duration("elapsed", elapsed))
	return result, nil
}

func variance(base, value float64) entities.MetricVariance {
	diff := value - base
	pct := 0.0
	if base != 0 {
		pct = diff / base * 100
	}
	return entities.MetricVariance{
		BaseValue:       base,
		CompareValue:    value,
		Variance:        forecast.Round(diff, 2),
		VariancePercent: forecast.Round(pct, 2),
	}
}

func resolveMetrics(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return append([]string(nil), entities.DefaultComparisonMetrics...), nil
	}
	out := make([]string, 0, len(requested))
	seen := make(map[string]struct{}, len(requested))
	for _, m := range requested {
		m = strings.TrimSpace(m)
		if !entities.IsComparisonMetric(m) {
			return nil, fmt.Errorf("%w: unknown metric %q", ErrInvalidAnalysisInput, m)
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out, nil
}
