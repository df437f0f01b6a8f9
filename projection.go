package finplan

import "math"

// Medical inflation applied to the lifetime health load. The cost is
// compounded over half the years-to-retirement horizon: a deliberately
// rough, directional heuristic, not an actuarial model. Downstream report
// text describes the figure as educational only, so it is preserved as is.
const medicalInflation = Percent(9)

// Projection is the result of compounding a profile's savings and SIP
// contributions to the retirement age.
type Projection struct {
	Months      int     `json:"months"`      // accumulation horizon in months
	MonthlyRate float64 `json:"monthlyRate"` // effective monthly growth rate
	LumpSumFV   float64 `json:"lumpSumFV"`   // future value of current savings
	AnnuityFV   float64 `json:"annuityFV"`   // future value of the SIP stream
	Corpus      float64 `json:"corpus"`      // LumpSumFV + AnnuityFV
}

// HealthProjection is the health-adjusted variant of a Projection.
type HealthProjection struct {
	Projection
	LifetimeHealthCost float64 `json:"lifetimeHealthCost"`
	AdjustedCorpus     float64 `json:"adjustedCorpus"` // Corpus - LifetimeHealthCost, floored at 0
}

// Project computes the future value of the current savings lump sum plus the
// future value of the monthly SIP treated as an ordinary annuity, both
// compounded monthly at (1+annual)^(1/12)-1.
func Project(p UserProfile) Projection {
	p = p.Normalize()

	months := p.YearsToRetirement() * 12
	rate := monthlyRate(p.ExpectedReturns)
	if months == 0 {
		// Nothing left to grow: the corpus is the savings, exactly.
		return Projection{Corpus: p.CurrentSavings, LumpSumFV: p.CurrentSavings}
	}

	growth := math.Pow(1+rate, float64(months))
	lump := p.CurrentSavings * growth

	// Annuity future-value factor ((1+i)^n - 1)/i degenerates to n when the
	// monthly rate is exactly zero.
	factor := float64(months)
	if rate != 0 {
		factor = (growth - 1) / rate
	}
	annuity := p.MonthlySIP * factor

	return Projection{
		Months:      months,
		MonthlyRate: rate,
		LumpSumFV:   lump,
		AnnuityFV:   annuity,
		Corpus:      lump + annuity,
	}
}

// ProjectHealthAdjusted subtracts an inflation-compounded lifetime healthcare
// cost from the baseline corpus, floored at zero. The lifetime cost is the
// monthly health load scaled over the years in retirement and compounded at
// medicalInflation over half the years-to-retirement horizon.
func ProjectHealthAdjusted(p UserProfile, monthlyHealthLoad float64) HealthProjection {
	p = p.Normalize()
	monthlyHealthLoad = clampAmount(monthlyHealthLoad)

	base := Project(p)

	lifetime := monthlyHealthLoad * 12 * float64(p.YearsInRetirement())
	halfHorizon := float64(p.YearsToRetirement()) / 2
	cost := lifetime * math.Pow(1+medicalInflation.Rate(), halfHorizon)

	adjusted := base.Corpus - cost
	if adjusted < 0 {
		adjusted = 0
	}
	return HealthProjection{
		Projection:         base,
		LifetimeHealthCost: cost,
		AdjustedCorpus:     adjusted,
	}
}

// RequiredCorpus estimates the corpus needed at retirement: current monthly
// expenses inflated to the retirement age, over the years in retirement.
// Directional figure used when the caller supplies no target of its own.
func RequiredCorpus(p UserProfile) float64 {
	p = p.Normalize()
	inflated := p.MonthlyExpenses * math.Pow(1+p.Inflation.Rate(), float64(p.YearsToRetirement()))
	return inflated * 12 * float64(p.YearsInRetirement())
}

// monthlyRate converts an annual percentage rate to the equivalent
// compounded monthly rate.
func monthlyRate(annual Percent) float64 {
	return math.Pow(1+annual.Rate(), 1.0/12) - 1
}
