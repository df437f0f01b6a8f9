package finplan

import "sort"

// Severity qualifies a signal.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityRisk    Severity = "risk"
)

// Signal is a derived qualitative warning or insight about the plan's health.
type Signal struct {
	Title    string   `json:"title"`
	Reason   string   `json:"reason"`
	Severity Severity `json:"severity"`
}

// recentWindow is the number of latest weekly entries feeding the
// discipline score and the overspend check.
const recentWindow = 4

// DisciplineScore is the mean of the discipline field across the most
// recent weekly entries, 0 when the journal is empty.
func DisciplineScore(entries []Entry) float64 {
	recent := RecentEntries(entries, recentWindow)
	if len(recent) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range recent {
		sum += e.normalize().DisciplineScore
	}
	return sum / float64(len(recent))
}

// DeriveSignals runs the independent threshold checks against the readings
// and the recent journal. Each check is additive and order-independent;
// several signals can co-occur.
func DeriveSignals(r Readings, entries []Entry) []Signal {
	var signals []Signal

	if r.SIPRequired > 0 && r.SIPCurrent < r.SIPRequired {
		signals = append(signals, Signal{
			Title:    "SIP below requirement",
			Reason:   "Your current SIP does not cover the contribution your plan needs.",
			Severity: SeverityWarning,
		})
	}

	if r.CorpusRequired > 0 && r.CorpusExpected < r.CorpusRequired {
		signals = append(signals, Signal{
			Title:    "Corpus shortfall",
			Reason:   "The projected corpus falls short of the retirement target.",
			Severity: SeverityRisk,
		})
	}

	overspends := 0
	for _, e := range RecentEntries(entries, recentWindow) {
		if e.normalize().ExpenseDrift > 0 {
			overspends++
		}
	}
	if overspends >= 2 {
		signals = append(signals, Signal{
			Title:    "Repeated overspend",
			Reason:   "Expenses drifted above budget in several recent weeks.",
			Severity: SeverityWarning,
		})
	}

	if r.HealthStressRisk {
		signals = append(signals, Signal{
			Title:    "Health stress risk",
			Reason:   "The health stress check flags a risk to the plan.",
			Severity: SeverityRisk,
		})
	}

	return signals
}

// MonthlyRollup condenses a month of journal entries into review figures.
type MonthlyRollup struct {
	Month               string  `json:"month"` // e.g. "2026-01"
	Entries             int     `json:"entries"`
	AvgDiscipline       float64 `json:"avgDiscipline"`
	SIPChangeTotal      float64 `json:"sipChangeTotal"`
	EmergencySpendTotal float64 `json:"emergencySpendTotal"`
	TopImprovement      string  `json:"topImprovement"` // most frequent completed action
	NextFocus           string  `json:"nextFocus"`
}

// Next-focus suggestions, evaluated in priority order.
const (
	FocusConsistency = "Improve consistency"
	FocusEmergency   = "Build emergency buffer"
	FocusMaintain    = "Maintain discipline"
)

// NewMonthlyRollup aggregates the entries falling inside the given month.
func NewMonthlyRollup(month Range, entries []Entry) MonthlyRollup {
	in := EntriesIn(entries, month)

	rollup := MonthlyRollup{
		Month:   month.Identifier(),
		Entries: len(in),
	}

	actions := make(map[string]int)
	discipline := 0.0
	for _, e := range in {
		e = e.normalize()
		discipline += e.DisciplineScore
		rollup.SIPChangeTotal += e.SIPChange
		rollup.EmergencySpendTotal += e.EmergencySpend
		if e.CompletedAction != "" {
			actions[e.CompletedAction]++
		}
	}
	if len(in) > 0 {
		rollup.AvgDiscipline = discipline / float64(len(in))
	}
	rollup.TopImprovement = topAction(actions)

	switch {
	case rollup.AvgDiscipline < 60:
		rollup.NextFocus = FocusConsistency
	case rollup.EmergencySpendTotal > 0:
		rollup.NextFocus = FocusEmergency
	default:
		rollup.NextFocus = FocusMaintain
	}
	return rollup
}

// topAction returns the most frequent action label, ties broken
// alphabetically so the rollup stays deterministic.
func topAction(actions map[string]int) string {
	best, bestCount := "", 0
	keys := make([]string, 0, len(actions))
	for k := range actions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if actions[k] > bestCount {
			best, bestCount = k, actions[k]
		}
	}
	return best
}
