package forecast

// Lever identifies the economic input an assumption variable drives.
type Lever int

const (
	LeverUnknown Lever = iota
	LeverRevenueGrowth
	LeverCostInflation
	LeverHeadcountGrowth
	LeverMarketingSpend
)

// Variable names recognised by the model.
const (
	VariableRevenueGrowth   = "revenue_growth"
	VariableCostInflation   = "cost_inflation"
	VariableHeadcountGrowth = "headcount_growth"
	VariableMarketingSpend  = "marketing_spend"
)

func ParseLever(variable string) Lever {
	switch variable {
	case VariableRevenueGrowth:
		return LeverRevenueGrowth
	case VariableCostInflation:
		return LeverCostInflation
	case VariableHeadcountGrowth:
		return LeverHeadcountGrowth
	case VariableMarketingSpend:
		return LeverMarketingSpend
	}
	return LeverUnknown
}

func (l Lever) String() string {
	switch l {
	case LeverRevenueGrowth:
		return VariableRevenueGrowth
	case LeverCostInflation:
		return VariableCostInflation
	case LeverHeadcountGrowth:
		return VariableHeadcountGrowth
	case LeverMarketingSpend:
		return VariableMarketingSpend
	}
	return "unknown"
}

// Sampled reports whether the Monte Carlo trial model draws this lever.
func (l Lever) Sampled() bool {
	return l == LeverRevenueGrowth || l == LeverCostInflation
}

// Impact evaluates the outcome of moving a single lever to value while every
// other input stays at its baseline rate.
func (b Baseline) Impact(l Lever, value float64) Outcome {
	switch l {
	case LeverRevenueGrowth:
		return b.project(1+value/100, b.costMultiplier())
	case LeverCostInflation:
		return b.project(b.revenueMultiplier(), 1+value/100)
	case LeverHeadcountGrowth:
		return b.project(b.revenueMultiplier(), 1+(value/100)*b.LaborCostShare)
	case LeverMarketingSpend:
		return b.marketingImpact(value)
	}
	return b.Undisturbed()
}

// marketingImpact treats the value as a spend level: the delta from the
// reference spend is a direct cost that returns MarketingROI times in revenue.
func (b Baseline) marketingImpact(spend float64) Outcome {
	delta := spend - b.MarketingReference
	revenue := b.Revenue*b.revenueMultiplier() + delta*b.MarketingROI
	costs := b.Costs*b.costMultiplier() + delta
	return Outcome{Revenue: revenue, Costs: costs, EBITDA: revenue - costs}
}
