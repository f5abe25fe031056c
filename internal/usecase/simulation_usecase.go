package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"scenario_planning/internal/domain/entities"
	"scenario_planning/internal/domain/forecast"
	"scenario_planning/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidAnalysisInput = errors.New("invalid analysis input")

const (
	DefaultIterations      = 1000
	MinIterations          = 100
	MaxIterations          = 10000
	DefaultConfidenceLevel = 0.95
	MinConfidenceLevel     = 0.50
	MaxConfidenceLevel     = 0.99
	HistogramBins          = 20
)

// SimulateInput configures a Monte Carlo run. Zero values take the defaults.
type SimulateInput struct {
	Iterations      int
	ConfidenceLevel float64
	PersistResults  bool
}

type ISimulationUseCase interface {
	Simulate(ctx context.Context, id string, in SimulateInput, actor string) (entities.SimulationResult, error)
}

type SimulationUseCase struct {
	repo     interfaces.IScenarioRepository
	scorer   IScenarioScorer
	baseline forecast.Baseline
	rand     forecast.RandSource
	recorder interfaces.IAnalysisRecorder
}

var _ ISimulationUseCase = (*SimulationUseCase)(nil)

func NewSimulationUseCase(
	repo interfaces.IScenarioRepository,
	scorer IScenarioScorer,
	baseline forecast.Baseline,
	rand forecast.RandSource,
	recorder interfaces.IAnalysisRecorder,
) *SimulationUseCase {
	if rand == nil {
		rand = forecast.NewRandSource(0)
	}
	if recorder == nil {
		recorder = interfaces.NopRecorder{}
	}
	return &SimulationUseCase{repo: repo, scorer: scorer, baseline: baseline, rand: rand, recorder: recorder}
}

type sampledLever struct {
	lever  forecast.Lever
	lo, hi float64
}

func (u *SimulationUseCase) Simulate(ctx context.Context, id string, in SimulateInput, actor string) (entities.SimulationResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SimulationResult{}, ErrInvalidScenarioID
	}
	if in.Iterations == 0 {
		in.Iterations = DefaultIterations
	}
	if in.ConfidenceLevel == 0 {
		in.ConfidenceLevel = DefaultConfidenceLevel
	}
	if in.Iterations < MinIterations || in.Iterations > MaxIterations {
		return entities.SimulationResult{}, fmt.Errorf("%w: iterations must be between %d and %d", ErrInvalidAnalysisInput, MinIterations, MaxIterations)
	}
	if in.ConfidenceLevel < MinConfidenceLevel || in.ConfidenceLevel > MaxConfidenceLevel {
		return entities.SimulationResult{}, fmt.Errorf("%w: confidence_level must be between %.2f and %.2f", ErrInvalidAnalysisInput, MinConfidenceLevel, MaxConfidenceLevel)
	}

	s, err := loadScenario(ctx, u.repo, id)
	if err != nil {
		return entities.SimulationResult{}, err
	}

	start := time.Now()
	var levers []sampledLever
	for _, a := range s.Assumptions {
		l := forecast.ParseLever(a.Variable)
		if !l.Sampled() {
			continue
		}
		lo, hi := a.Bounds()
		levers = append(levers, sampledLever{lever: l, lo: lo, hi: hi})
	}

	n := in.Iterations
	revenue := make([]float64, n)
	costs := make([]float64, n)
	ebitda := make([]float64, n)

	r := u.rand()
	for i := 0; i < n; i++ {
		revenueGrowth := u.baseline.RevenueGrowth / 100
		costGrowth := u.baseline.CostInflation / 100
		for _, l := range levers {
			sample := forecast.Uniform(r, l.lo, l.hi) / 100
			switch l.lever {
			case forecast.LeverRevenueGrowth:
				revenueGrowth = sample
			case forecast.LeverCostInflation:
				costGrowth = sample
			}
		}
		o := u.baseline.Project(revenueGrowth, costGrowth)
		revenue[i], costs[i], ebitda[i] = o.Revenue, o.Costs, o.EBITDA
	}

	result := entities.SimulationResult{
		ScenarioID:      s.ID,
		ScenarioName:    s.Name,
		Iterations:      n,
		ConfidenceLevel: in.ConfidenceLevel,
		Statistics: entities.SimulationStatistics{
			Revenue: describe(revenue),
			Costs:   describe(costs),
			EBITDA:  describe(ebitda),
		},
		ConfidenceIntervals: entities.SimulationConfidenceIntervals{
			Revenue: confidenceInterval(revenue, in.ConfidenceLevel),
			EBITDA:  confidenceInterval(ebitda, in.ConfidenceLevel),
		},
		Histogram: histogram(ebitda, HistogramBins),
		RanAt:     time.Now().UTC(),
	}

	elapsed := time.Since(start)
	u.recorder.ObserveAnalysis("simulation", elapsed)
	u.recorder.ObserveSimulationTrials(n)
	zap.L().Info("[simulation][usecase] completed",
		zap.String("scenario_id", s.ID),
		zap.Int("iterations", n),
		zap.Int("sampled_levers", len(levers)),
		zap.Float64("mean_ebitda", result.Statistics.EBITDA.Mean),
		zap.Duration("elapsed", elapsed))

	if in.PersistResults && u.scorer != nil {
		if _, err := u.scorer.Score(ctx, s.ID, actor); err != nil {
			return entities.SimulationResult{}, err
		}
	}
	return result, nil
}

// describe returns mean, population standard deviation and extremes.
func describe(values []float64) entities.MetricStatistics {
	if len(values) == 0 {
		return entities.MetricStatistics{}
	}
	sum, lo, hi := 0.0, values[0], values[0]
	for _, v := range values {
		sum += v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	mean := sum / float64(len(values))
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	return entities.MetricStatistics{
		Mean:   forecast.Round(mean, 2),
		StdDev: forecast.Round(math.Sqrt(variance), 2),
		Min:    forecast.Round(lo, 2),
		Max:    forecast.Round(hi, 2),
	}
}

// confidenceInterval picks percentile indices on the sorted trials. The upper
// index is clamped to the last trial, which high confidence levels with few
// iterations would otherwise overrun.
func confidenceInterval(values []float64, confidence float64) entities.ConfidenceInterval {
	n := len(values)
	if n == 0 {
		return entities.ConfidenceInterval{Confidence: confidence}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	lower := int(math.Floor((1 - confidence) / 2 * float64(n)))
	upper := int(math.Floor((1 + confidence) / 2 * float64(n)))
	if upper > n-1 {
		upper = n - 1
	}
	if lower < 0 {
		lower = 0
	}
	if lower > upper {
		lower = upper
	}
	return entities.ConfidenceInterval{
		Lower:      forecast.Round(sorted[lower], 2),
		Upper:      forecast.Round(sorted[upper], 2),
		Confidence: confidence,
	}
}

// histogram splits values into equal-width bins. When every value is equal the
// width is zero and all values land in the first bin.
func histogram(values []float64, bins int) []entities.HistogramBucket {
	if len(values) == 0 || bins < 1 {
		return []entities.HistogramBucket{}
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	binSize := (hi - lo) / float64(bins)

	counts := make([]int, bins)
	for _, v := range values {
		idx := 0
		if binSize > 0 {
			idx = int(math.Floor((v - lo) / binSize))
		}
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}

	total := float64(len(values))
	out := make([]entities.HistogramBucket, bins)
	for i := range out {
		from := lo + float64(i)*binSize
		to := from + binSize
		out[i] = entities.HistogramBucket{
			Range:      formatAmount(from) + " - " + formatAmount(to),
			Min:        forecast.Round(from, 2),
			Max:        forecast.Round(to, 2),
			Count:      counts[i],
			Percentage: forecast.Round(float64(counts[i])/total*100, 2),
		}
	}
	return out
}

// formatAmount renders a whole currency amount with thousands separators,
// e.g. 3775000 -> "$3,775,000".
func formatAmount(v float64) string {
	d := decimal.NewFromFloat(v).Round(0)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	digits := d.String()
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + "$" + b.String()
}

func loadScenario(ctx context.Context, repo interfaces.IScenarioRepository, id string) (entities.Scenario, error) {
	s, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Scenario{}, err
	}
	if s.ID == "" {
		return entities.Scenario{}, fmt.Errorf("scenario %s: %w", id, ErrScenarioNotFound)
	}
	return s, nil
}
