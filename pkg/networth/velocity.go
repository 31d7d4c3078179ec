package networth

import "strings"

// Velocity scoring constants. A 20% monthly return stddev is treated as
// the practical ceiling for consistency; anything above floors at 0.
const (
	consistencyStddevCeiling = 20.0
	riskLowMaxStddev         = 5.0
	riskMediumMaxStddev      = 15.0
	trendUpThreshold         = 5.0
	trendDownThreshold       = -2.0
	trendWindow              = 3
)

// ComputeVelocity derives the growth profile of one instrument from its
// value history. Zero values are filtered first; with fewer than two
// positive values the result is neutral (no growth, low risk, stable).
func ComputeVelocity(item LineItem) InvestmentVelocity {
	velocity := InvestmentVelocity{
		Name:      item.Name,
		RiskScore: RiskLow,
		Trend:     TrendStable,
	}

	positives := make([]float64, 0, len(item.Values))
	for _, v := range item.Values {
		f := v.Float()
		if f > 0 {
			positives = append(positives, f)
		}
	}
	if len(positives) > 0 {
		velocity.CurrentValue = positives[len(positives)-1]
	}
	if len(positives) < 2 {
		return velocity
	}

	first := positives[0]
	last := positives[len(positives)-1]
	velocity.AbsoluteGrowth = last - first
	if first != 0 {
		velocity.GrowthRate = (last - first) / first * 100
	}

	returns := make([]float64, 0, len(positives)-1)
	for i := 1; i < len(positives); i++ {
		if positives[i-1] <= 0 {
			continue
		}
		returns = append(returns, (positives[i]-positives[i-1])/positives[i-1]*100)
	}
	velocity.MonthlyReturns = returns

	sd := stdDev(returns)
	velocity.ConsistencyScore = round1(clamp(100-sd/consistencyStddevCeiling*100, 0, 100))

	switch {
	case sd <= riskLowMaxStddev:
		velocity.RiskScore = RiskLow
	case sd <= riskMediumMaxStddev:
		velocity.RiskScore = RiskMedium
	default:
		velocity.RiskScore = RiskHigh
	}

	window := returns
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}
	recent := mean(window)
	switch {
	case recent > trendUpThreshold:
		velocity.Trend = TrendUp
	case recent < trendDownThreshold:
		velocity.Trend = TrendDown
	default:
		velocity.Trend = TrendStable
	}
	return velocity
}

// categoryRule maps a name fragment to an asset class. Rules are
// evaluated in order; the first match wins.
type categoryRule struct {
	fragment string
	class    AssetClass
}

// categoryRules is a best-effort name heuristic, not an authoritative
// classification. Generic names fall through to hybrid.
var categoryRules = []categoryRule{
	{"stock", ClassEquity},
	{"equity", ClassEquity},
	{"share", ClassEquity},
	{"etf", ClassEquity},
	{"ppf", ClassDebt},
	{"epf", ClassDebt},
	{"nps", ClassDebt},
	{"fd", ClassDebt},
	{"fixed deposit", ClassDebt},
	{"bond", ClassDebt},
	{"debt", ClassDebt},
	{"gold", ClassAlternative},
	{"silver", ClassAlternative},
	{"crypto", ClassAlternative},
	{"real estate", ClassAlternative},
	{"reit", ClassAlternative},
}

// CategorizeInvestment infers an asset class from the instrument name.
func CategorizeInvestment(name string) AssetClass {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		if strings.Contains(lower, rule.fragment) {
			return rule.class
		}
	}
	return ClassHybrid
}

// ComputeAssetClassBreakdown returns each asset class's share of total
// current investment value, in percent.
func ComputeAssetClassBreakdown(velocities []InvestmentVelocity) AssetClassAllocation {
	var total float64
	for _, v := range velocities {
		total += v.CurrentValue
	}
	if total == 0 {
		return AssetClassAllocation{}
	}
	var breakdown AssetClassAllocation
	for _, v := range velocities {
		share := v.CurrentValue / total * 100
		switch CategorizeInvestment(v.Name) {
		case ClassEquity:
			breakdown.Equity += share
		case ClassDebt:
			breakdown.Debt += share
		case ClassAlternative:
			breakdown.Alternative += share
		default:
			breakdown.Hybrid += share
		}
	}
	return breakdown
}

// DiversificationScore inverts the Herfindahl-Hirschman index of the
// current-value shares: a single holding scores 0, maximally spread
// holdings approach 100.
func DiversificationScore(velocities []InvestmentVelocity) float64 {
	var total float64
	for _, v := range velocities {
		total += v.CurrentValue
	}
	if total == 0 {
		return 0
	}
	var hhi float64
	for _, v := range velocities {
		share := v.CurrentValue / total * 100
		hhi += share * share
	}
	return round1(clamp(100-hhi/10000*100, 0, 100))
}

// riskWeight maps a risk level to its numeric weight.
func riskWeight(level RiskLevel) float64 {
	switch level {
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	default:
		return 1
	}
}

// OverallRiskScore is the value-weighted average of per-instrument risk
// weights scaled to [0, 100].
func OverallRiskScore(velocities []InvestmentVelocity) float64 {
	var total, weighted float64
	for _, v := range velocities {
		total += v.CurrentValue
		weighted += v.CurrentValue * riskWeight(v.RiskScore)
	}
	if total == 0 {
		return 0
	}
	return round1(weighted / total / 3 * 100)
}

// ComputeInvestmentAnalytics computes velocities for every investment
// line item and reduces them into portfolio-level scores and winner
// slots. Each slot is an independent reduction; an instrument can hold
// several at once.
func ComputeInvestmentAnalytics(items []LineItem) InvestmentAnalytics {
	velocities := make([]InvestmentVelocity, 0, len(items))
	for _, item := range items {
		velocities = append(velocities, ComputeVelocity(item))
	}

	analytics := InvestmentAnalytics{
		Velocities:           velocities,
		DiversificationScore: DiversificationScore(velocities),
		OverallRiskScore:     OverallRiskScore(velocities),
		ClassAllocation:      ComputeAssetClassBreakdown(velocities),
	}
	for i := range velocities {
		v := &velocities[i]
		if analytics.BestPerformer == nil || v.GrowthRate > analytics.BestPerformer.GrowthRate {
			analytics.BestPerformer = v
		}
		if analytics.WorstPerformer == nil || v.GrowthRate < analytics.WorstPerformer.GrowthRate {
			analytics.WorstPerformer = v
		}
		if analytics.MostConsistent == nil || v.ConsistencyScore > analytics.MostConsistent.ConsistencyScore {
			analytics.MostConsistent = v
		}
		if analytics.HighestContributor == nil || v.AbsoluteGrowth > analytics.HighestContributor.AbsoluteGrowth {
			analytics.HighestContributor = v
		}
	}
	return analytics
}

// InvestmentItems flattens the latest entry's investment line items for
// velocity analytics. Entries assembled in FullHistoryMode carry the
// whole history on every entry, so the latest one is sufficient.
func InvestmentItems(entries []NetWorthEntry) []LineItem {
	if len(entries) == 0 {
		return nil
	}
	return entries[len(entries)-1].Investments.Items
}
