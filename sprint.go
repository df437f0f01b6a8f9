package finplan

import (
	"errors"
	"fmt"
	"math"
)

// SprintStatus is the lifecycle state of a sprint cycle.
type SprintStatus string

const (
	SprintInProgress SprintStatus = "in_progress"
	SprintCompleted  SprintStatus = "completed"
)

// Invariant violations on the sprint lifecycle are reported as error values
// for the caller to branch on, never as panics.
var (
	ErrSprintActive   = errors.New("a sprint is already in progress")
	ErrNoActiveSprint = errors.New("no sprint is in progress")
)

// Sprint is one time-boxed commitment cycle. Completed sprints are immutable
// snapshots in the history.
type Sprint struct {
	Cadence     Cadence      `json:"cadence"`
	Start       Date         `json:"start"`
	End         Date         `json:"end"`
	Status      SprintStatus `json:"status"`
	CompletedOn Date         `json:"completedOn,omitempty"`
}

// Tracker drives the sprint lifecycle over a PlanStore. It holds no state of
// its own; the current date is threaded through every call so the lifecycle
// is deterministic under test.
type Tracker struct {
	store PlanStore
}

// NewTracker returns a Tracker over the given store.
func NewTracker(store PlanStore) *Tracker { return &Tracker{store: store} }

// Start begins a new sprint on the given date. It fails with
// ErrSprintActive if any sprint is already in progress, regardless of
// cadence. The end date is one cadence cycle after 'on'.
func (t *Tracker) Start(on Date, c Cadence) (Sprint, error) {
	if _, active, err := t.store.ActiveSprint(); err != nil {
		return Sprint{}, fmt.Errorf("reading active sprint: %w", err)
	} else if active {
		return Sprint{}, ErrSprintActive
	}

	s := Sprint{
		Cadence: c,
		Start:   on,
		End:     c.Next(on),
		Status:  SprintInProgress,
	}
	if err := t.store.SaveActive(s); err != nil {
		return Sprint{}, fmt.Errorf("saving sprint: %w", err)
	}
	return s, nil
}

// Complete finishes the active sprint on the given date: stamps the
// completion date, appends an immutable snapshot to the history and clears
// the active slot. It fails with ErrNoActiveSprint when nothing is running.
func (t *Tracker) Complete(on Date) (Sprint, error) {
	s, active, err := t.store.ActiveSprint()
	if err != nil {
		return Sprint{}, fmt.Errorf("reading active sprint: %w", err)
	}
	if !active {
		return Sprint{}, ErrNoActiveSprint
	}

	s.Status = SprintCompleted
	s.CompletedOn = on
	if err := t.store.AppendHistory(s); err != nil {
		return Sprint{}, fmt.Errorf("recording sprint history: %w", err)
	}
	if err := t.store.ClearActive(); err != nil {
		return Sprint{}, fmt.Errorf("clearing active sprint: %w", err)
	}
	return s, nil
}

// Active returns the sprint currently in progress, if any.
func (t *Tracker) Active() (Sprint, bool, error) { return t.store.ActiveSprint() }

// History returns the completed sprint snapshots.
func (t *Tracker) History() ([]Sprint, error) { return t.store.History() }

// SprintKPIs summarizes the discipline journey implied by the completed
// sprint history.
type SprintKPIs struct {
	DisciplineMonths int     `json:"disciplineMonths"`
	JourneyPercent   float64 `json:"journeyPercent"` // clamped 0-100
	JourneyDelta     float64 `json:"journeyDelta"`   // contribution of the latest sprint
	CorpusPercent    int     `json:"corpusPercent"`  // min(100, round(corpus/required*100))
}

// KPIs converts the completed-sprint history into journey figures against
// the profile's months to retirement. 'corpus' and 'required' are the
// projected and target corpus; a non-positive 'required' yields a zero
// corpus KPI rather than a division error.
func KPIs(p UserProfile, history []Sprint, corpus, required float64) SprintKPIs {
	p = p.Normalize()

	kpi := SprintKPIs{
		DisciplineMonths: disciplineMonths(history),
		JourneyPercent:   journeyPercent(p, history),
	}

	if len(history) > 0 {
		kpi.JourneyDelta = kpi.JourneyPercent - journeyPercent(p, history[:len(history)-1])
	}

	if required > 0 && corpus > 0 {
		kpi.CorpusPercent = int(math.Round(corpus / required * 100))
		if kpi.CorpusPercent > 100 {
			kpi.CorpusPercent = 100
		}
	}
	return kpi
}

// disciplineMonths sums the elapsed commitment months each completed sprint
// contributes: monthly=1, quarterly=3, annual=12.
func disciplineMonths(history []Sprint) int {
	months := 0
	for _, s := range history {
		if s.Status == SprintCompleted {
			months += s.Cadence.Months()
		}
	}
	return months
}

func journeyPercent(p UserProfile, history []Sprint) float64 {
	total := p.YearsToRetirement() * 12
	if total == 0 {
		return 0
	}
	pct := float64(disciplineMonths(history)) / float64(total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
