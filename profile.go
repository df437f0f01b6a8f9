package finplan

import "math"

// Documented fallbacks applied by Normalize when a field is missing,
// negative where disallowed, or not a finite number. The tool favors
// graceful degradation over hard failure: a planning form with one bad
// field still produces a directional projection.
const (
	DefaultCurrentAge     = 30
	DefaultRetirementAge  = 60
	DefaultLifeExpectancy = 85

	DefaultPreReturns  = Percent(12) // pre-retirement expected annual returns
	DefaultPostReturns = Percent(7)  // post-retirement expected annual returns
	DefaultInflation   = Percent(6)
)

// UserProfile is the planning snapshot supplied fresh on every calculation
// call. Ages are in years, money in major currency units, rates in
// percentage points (ExpectedReturns = 12 means 12% a year).
type UserProfile struct {
	CurrentAge     int `json:"currentAge"`
	RetirementAge  int `json:"retirementAge"`
	LifeExpectancy int `json:"lifeExpectancy"`

	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	CurrentSavings  float64 `json:"currentSavings"`
	MonthlySIP      float64 `json:"monthlySIP"`

	ExpectedReturns Percent `json:"expectedReturns"`
	PostReturns     Percent `json:"postReturns"`
	Inflation       Percent `json:"inflation"`
}

// Normalize returns a copy of the profile with every field forced into its
// valid domain. This is the single place where the default/clamp rules
// live; every calculation entry point normalizes first so the math never
// sees a NaN or a negative amount.
func (p UserProfile) Normalize() UserProfile {
	p.CurrentAge = clampAge(p.CurrentAge, DefaultCurrentAge)
	p.RetirementAge = clampAge(p.RetirementAge, DefaultRetirementAge)
	p.LifeExpectancy = clampAge(p.LifeExpectancy, DefaultLifeExpectancy)
	// Zero years in retirement is allowed; a life expectancy below the
	// retirement age is not.
	if p.LifeExpectancy < p.RetirementAge {
		p.LifeExpectancy = p.RetirementAge
	}

	p.MonthlyIncome = clampAmount(p.MonthlyIncome)
	p.MonthlyExpenses = clampAmount(p.MonthlyExpenses)
	p.CurrentSavings = clampAmount(p.CurrentSavings)
	p.MonthlySIP = clampAmount(p.MonthlySIP)

	p.ExpectedReturns = clampRate(p.ExpectedReturns, DefaultPreReturns)
	p.PostReturns = clampRate(p.PostReturns, DefaultPostReturns)
	p.Inflation = clampRate(p.Inflation, DefaultInflation)
	return p
}

// YearsToRetirement returns the remaining accumulation horizon, never negative.
func (p UserProfile) YearsToRetirement() int {
	if p.RetirementAge <= p.CurrentAge {
		return 0
	}
	return p.RetirementAge - p.CurrentAge
}

// YearsInRetirement returns the expected drawdown horizon, never negative.
func (p UserProfile) YearsInRetirement() int {
	if p.LifeExpectancy <= p.RetirementAge {
		return 0
	}
	return p.LifeExpectancy - p.RetirementAge
}

func clampAge(v, fallback int) int {
	if v <= 0 || v > 120 {
		return fallback
	}
	return v
}

func clampAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func clampRate(v, fallback Percent) Percent {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return fallback
	}
	return v
}
