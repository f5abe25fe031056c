// Package forecast holds the parametric financial model shared by the
// simulation, sensitivity and scoring operations.
package forecast

import (
	"scenario_planning/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Baseline is the undisturbed scenario every projection starts from.
// Growth and inflation rates are expressed in percent.
type Baseline struct {
	Revenue            float64
	Costs              float64
	RevenueGrowth      float64
	CostInflation      float64
	LaborCostShare     float64
	MarketingReference float64
	MarketingROI       float64
}

// DefaultBaseline is used when no override is configured.
var DefaultBaseline = Baseline{
	Revenue:            10_000_000,
	Costs:              7_500_000,
	RevenueGrowth:      15,
	CostInflation:      3,
	LaborCostShare:     0.6,
	MarketingReference: 2_500_000,
	MarketingROI:       5,
}

// Outcome is a projected revenue/costs/ebitda triple.
type Outcome struct {
	Revenue float64
	Costs   float64
	EBITDA  float64
}

// Margin returns ebitda as a percentage of revenue, 0 for zero revenue.
func (o Outcome) Margin() float64 {
	if o.Revenue == 0 {
		return 0
	}
	return o.EBITDA / o.Revenue * 100
}

func (b Baseline) revenueMultiplier() float64 { return 1 + b.RevenueGrowth/100 }
func (b Baseline) costMultiplier() float64    { return 1 + b.CostInflation/100 }

// Undisturbed projects the baseline with its default rates.
func (b Baseline) Undisturbed() Outcome {
	return b.project(b.revenueMultiplier(), b.costMultiplier())
}

// Project applies growth fractions (0.15 = 15%) to the revenue and cost bases.
func (b Baseline) Project(revenueGrowth, costGrowth float64) Outcome {
	return b.project(1+revenueGrowth, 1+costGrowth)
}

func (b Baseline) project(revenueMul, costMul float64) Outcome {
	revenue := b.Revenue * revenueMul
	costs := b.Costs * costMul
	return Outcome{Revenue: revenue, Costs: costs, EBITDA: revenue - costs}
}

// Score computes the deterministic projection of a scenario with every
// assumption held at its base value. Cost effects of inflation and headcount
// compound; marketing spend is applied as an additive delta.
func (b Baseline) Score(assumptions []entities.Assumption) Outcome {
	revenueMul := b.revenueMultiplier()
	inflationMul := b.costMultiplier()
	headcountMul := 1.0
	marketingDelta := 0.0

	for _, a := range assumptions {
		switch ParseLever(a.Variable) {
		case LeverRevenueGrowth:
			revenueMul = 1 + a.BaseValue/100
		case LeverCostInflation:
			inflationMul = 1 + a.BaseValue/100
		case LeverHeadcountGrowth:
			headcountMul = 1 + (a.BaseValue/100)*b.LaborCostShare
		case LeverMarketingSpend:
			marketingDelta = a.BaseValue - b.MarketingReference
		}
	}

	out := b.project(revenueMul, inflationMul*headcountMul)
	out.Revenue += marketingDelta * b.MarketingROI
	out.Costs += marketingDelta
	out.EBITDA = out.Revenue - out.Costs
	return out
}

// Round rounds half away from zero to the given number of decimal places.
func Round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
