package finplan

import (
	"math"
	"strings"
)

// PhaseID is one of the four ordered planning maturity stages.
type PhaseID string

const (
	PhaseFoundation   PhaseID = "foundation"
	PhaseAccumulation PhaseID = "accumulation"
	PhaseOptimization PhaseID = "optimization"
	PhaseResilience   PhaseID = "resilience"
)

// Phases lists the phases in unlock order.
var Phases = []PhaseID{PhaseFoundation, PhaseAccumulation, PhaseOptimization, PhaseResilience}

// PhaseStatus is the gating state of a phase.
type PhaseStatus string

const (
	PhaseLocked     PhaseStatus = "locked"
	PhaseInProgress PhaseStatus = "in_progress"
	PhaseCompleted  PhaseStatus = "completed"
)

// Milestone is a single named predicate result within a phase.
type Milestone struct {
	ID  string `json:"id"`
	Met bool   `json:"met"`
}

// PhaseProgress is the scored state of one phase.
type PhaseProgress struct {
	Phase      PhaseID     `json:"phase"`
	Milestones []Milestone `json:"milestones"`
	Percent    int         `json:"percent"`
	Status     PhaseStatus `json:"status"`
}

// Readings is the milestone evidence snapshot the caller assembles from
// stored readings, the profile, and prior engine outputs (projection and
// sprint KPIs feed CorpusExpected and SIPCurrent).
type Readings struct {
	// foundation
	EmergencyFundMonths float64 `json:"emergencyFundMonths"`
	HasEmergencyFund    bool    `json:"hasEmergencyFund"`
	InsuranceCovered    bool    `json:"insuranceCovered"`

	// accumulation
	SIPCurrent     float64 `json:"sipCurrent"`
	SIPRequired    float64 `json:"sipRequired"`
	CorpusExpected float64 `json:"corpusExpected"`
	CorpusRequired float64 `json:"corpusRequired"`

	// optimization
	ReturnsReviewed bool `json:"returnsReviewed"`
	TaxOptimized    bool `json:"taxOptimized"`
	Rebalanced      bool `json:"rebalanced"`

	// resilience
	HealthCovered    bool `json:"healthCovered"`
	HealthStressRisk bool `json:"healthStressRisk"`
	EstatePlanned    bool `json:"estatePlanned"`
	PassiveIncome    bool `json:"passiveIncome"`
}

// ScoreProgress evaluates every phase's three milestones independently
// against the profile and readings, then derives the gated statuses: the
// first phase below 100% is in_progress, everything after it stays locked,
// everything before it is completed. A later phase at 100% never unlocks
// past an incomplete earlier one; the gating is intentional.
func ScoreProgress(p UserProfile, r Readings) []PhaseProgress {
	p = p.Normalize()

	progress := []PhaseProgress{
		score(PhaseFoundation, foundationMilestones(p, r)),
		score(PhaseAccumulation, accumulationMilestones(r)),
		score(PhaseOptimization, optimizationMilestones(r)),
		score(PhaseResilience, resilienceMilestones(r)),
	}

	unlocked := false
	for i := range progress {
		switch {
		case unlocked:
			progress[i].Status = PhaseLocked
		case progress[i].Percent < 100:
			progress[i].Status = PhaseInProgress
			unlocked = true
		default:
			progress[i].Status = PhaseCompleted
		}
	}
	return progress
}

// DetectCurrentPhase returns the single phase the user is working in: the
// in_progress one, or the last phase when everything is completed.
func DetectCurrentPhase(progress []PhaseProgress) PhaseID {
	for _, pp := range progress {
		if pp.Status == PhaseInProgress {
			return pp.Phase
		}
	}
	if len(progress) == 0 {
		return PhaseFoundation
	}
	return progress[len(progress)-1].Phase
}

func score(id PhaseID, ms []Milestone) PhaseProgress {
	done := 0
	for _, m := range ms {
		if m.Met {
			done++
		}
	}
	return PhaseProgress{
		Phase:      id,
		Milestones: ms,
		Percent:    int(math.Round(float64(done) / float64(len(ms)) * 100)),
	}
}

func foundationMilestones(p UserProfile, r Readings) []Milestone {
	return []Milestone{
		{ID: "emergency_buffer", Met: r.EmergencyFundMonths >= 3 || r.HasEmergencyFund},
		{ID: "insurance_cover", Met: r.InsuranceCovered},
		{ID: "expense_control", Met: p.MonthlyIncome > 0 && p.MonthlyExpenses < p.MonthlyIncome},
	}
}

func accumulationMilestones(r Readings) []Milestone {
	return []Milestone{
		{ID: "sip_started", Met: r.SIPCurrent > 0},
		{ID: "sip_adequate", Met: r.SIPRequired > 0 && r.SIPCurrent >= r.SIPRequired},
		{ID: "corpus_on_track", Met: r.CorpusRequired > 0 && r.CorpusExpected >= r.CorpusRequired/2},
	}
}

func optimizationMilestones(r Readings) []Milestone {
	return []Milestone{
		{ID: "returns_reviewed", Met: r.ReturnsReviewed},
		{ID: "tax_optimized", Met: r.TaxOptimized},
		{ID: "rebalanced", Met: r.Rebalanced},
	}
}

func resilienceMilestones(r Readings) []Milestone {
	return []Milestone{
		{ID: "health_cover", Met: r.HealthCovered && !r.HealthStressRisk},
		{ID: "estate_plan", Met: r.EstatePlanned},
		{ID: "passive_income", Met: r.PassiveIncome},
	}
}

// phaseVocabulary maps title keywords to phases for best-effort
// classification of free-form journal entries.
var phaseVocabulary = []struct {
	keyword string
	phase   PhaseID
}{
	{"emergency", PhaseFoundation},
	{"insurance", PhaseFoundation},
	{"budget", PhaseFoundation},
	{"sip", PhaseAccumulation},
	{"invest", PhaseAccumulation},
	{"save", PhaseAccumulation},
	{"saving", PhaseAccumulation},
	{"tax", PhaseOptimization},
	{"rebalance", PhaseOptimization},
	{"return", PhaseOptimization},
	{"health", PhaseResilience},
	{"estate", PhaseResilience},
	{"legacy", PhaseResilience},
	{"passive", PhaseResilience},
}

// MapEntryToPhase classifies a journal entry into a phase: an explicit phase
// tag wins, then the first keyword match against the title. The second
// return value is false when nothing matched; the caller decides the
// fallback, typically the current phase.
func MapEntryToPhase(e Entry) (PhaseID, bool) {
	if e.Phase != "" {
		return e.Phase, true
	}
	title := strings.ToLower(e.Title)
	for _, v := range phaseVocabulary {
		if strings.Contains(title, v.keyword) {
			return v.phase, true
		}
	}
	return "", false
}
