package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"scenario_planning/internal/domain/entities"
	"scenario_planning/internal/domain/forecast"
	"scenario_planning/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	DefaultRangePercent = 20.0
	MinRangePercent     = 1.0
	MaxRangePercent     = 100.0
	DefaultSteps        = 10
	MinSteps            = 3
	MaxSteps            = 50
)

// AnalyzeSensitivityInput configures a one-at-a-time sweep. An empty
// Variables list analyzes every assumption of the scenario.
type AnalyzeSensitivityInput struct {
	Variables      []string
	RangePercent   float64
	Steps          int
	PersistResults bool
}

type ISensitivityUseCase interface {
	Analyze(ctx context.Context, id string, in AnalyzeSensitivityInput, actor string) (entities.SensitivityResult, error)
}

type SensitivityUseCase struct {
	repo     interfaces.IScenarioRepository
	scorer   IScenarioScorer
	baseline forecast.Baseline
	recorder interfaces.IAnalysisRecorder
}

var _ ISensitivityUseCase = (*SensitivityUseCase)(nil)

func NewSensitivityUseCase(repo interfaces.IScenarioRepository, scorer IScenarioScorer, baseline forecast.Baseline, recorder interfaces.IAnalysisRecorder) *SensitivityUseCase {
	if recorder == nil {
		recorder = interfaces.NopRecorder{}
	}
	return &SensitivityUseCase{repo: repo, scorer: scorer, baseline: baseline, recorder: recorder}
}

// Analyze sweeps each requested variable from -RangePercent to +RangePercent of
// its base value. Variables without a matching assumption are skipped and
// reported in Skipped rather than failing the request.
func (u *SensitivityUseCase) Analyze(ctx context.Context, id string, in AnalyzeSensitivityInput, actor string) (entities.SensitivityResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SensitivityResult{}, ErrInvalidScenarioID
	}
	if in.RangePercent == 0 {
		in.RangePercent = DefaultRangePercent
	}
	if in.Steps == 0 {
		in.Steps = DefaultSteps
	}
	if in.RangePercent < MinRangePercent || in.RangePercent > MaxRangePercent {
		return entities.SensitivityResult{}, fmt.Errorf("%w: range_percent must be between %.0f and %.0f", ErrInvalidAnalysisInput, MinRangePercent, MaxRangePercent)
	}
	if in.Steps < MinSteps || in.Steps > MaxSteps {
		return entities.SensitivityResult{}, fmt.Errorf("%w: steps must be between %d and %d", ErrInvalidAnalysisInput, MinSteps, MaxSteps)
	}

	s, err := loadScenario(ctx, u.repo, id)
	if err != nil {
		return entities.SensitivityResult{}, err
	}

	start := time.Now()
	requested := in.Variables
	if len(requested) == 0 {
		for _, a := range s.Assumptions {
			requested = append(requested, a.Variable)
		}
	}

	result := entities.SensitivityResult{
		ScenarioID:   s.ID,
		Variables:    []string{},
		RangePercent: in.RangePercent,
		Steps:        in.Steps,
		Analysis:     []entities.VariableSensitivity{},
		Tornado:      []entities.TornadoEntry{},
	}

	seen := make(map[string]struct{}, len(requested))
	for _, variable := range requested {
		variable = strings.TrimSpace(variable)
		if _, dup := seen[variable]; dup {
			continue
		}
		seen[variable] = struct{}{}

		a, ok := s.Assumption(variable)
		if !ok {
			result.Skipped = append(result.Skipped, variable)
			zap.L().Debug("[sensitivity][usecase] variable not on scenario, skipping", zap.String("scenario_id", s.ID), zap.String("variable", variable))
			continue
		}

		analysis, tornado := u.sweep(a, in.RangePercent, in.Steps)
		result.Variables = append(result.Variables, variable)
		result.Analysis = append(result.Analysis, analysis)
		result.Tornado = append(result.Tornado, tornado)
	}

	sort.SliceStable(result.Tornado, func(i, j int) bool {
		return math.Abs(result.Tornado[i].Range) > math.Abs(result.Tornado[j].Range)
	})
	result.RanAt = time.Now().UTC()

	elapsed := time.Since(start)
	u.recorder.ObserveAnalysis("sensitivity", elapsed)
	zap.L().Info("[sensitivity][usecase] completed",
		zap.String("scenario_id", s.ID),
		zap.Strings("variables", result.Variables),
		zap.Strings("skipped", result.Skipped),
		zap.Duration("elapsed", elapsed))

	if in.PersistResults && u.scorer != nil {
		if _, err := u.scorer.Score(ctx, s.ID, actor); err != nil {
			return entities.SensitivityResult{}, err
		}
	}
	return result, nil
}

func (u *SensitivityUseCase) sweep(a entities.Assumption, rangePercent float64, steps int) (entities.VariableSensitivity, entities.TornadoEntry) {
	lever := forecast.ParseLever(a.Variable)
	base := a.BaseValue
	lo := base * (1 - rangePercent/100)
	hi := base * (1 + rangePercent/100)
	stepSize := (hi - lo) / float64(steps)
	changeStep := 2 * rangePercent / float64(steps)

	points := make([]entities.SensitivityPoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		value := lo + float64(i)*stepSize
		o := u.baseline.Impact(lever, value)
		points = append(points, entities.SensitivityPoint{
			Value:         value,
			ChangePercent: forecast.Round(-rangePercent+float64(i)*changeStep, 4),
			Revenue:       forecast.Round(o.Revenue, 2),
			EBITDA:        forecast.Round(o.EBITDA, 2),
		})
	}

	atBase := u.baseline.Impact(lever, base).EBITDA
	atLow := u.baseline.Impact(lever, lo).EBITDA
	atHigh := u.baseline.Impact(lever, hi).EBITDA

	analysis := entities.VariableSensitivity{
		Variable:        a.Variable,
		BaseValue:       base,
		SensitivityData: points,
	}
	tornado := entities.TornadoEntry{
		Variable:   a.Variable,
		BaseValue:  base,
		LowValue:   lo,
		HighValue:  hi,
		LowImpact:  forecast.Round(atLow-atBase, 2),
		HighImpact: forecast.Round(atHigh-atBase, 2),
		Range:      forecast.Round(atHigh-atLow, 2),
	}
	return analysis, tornado
}
