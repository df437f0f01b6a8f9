package finplan

import (
	"fmt"
	"sort"
)

// EntryStatus records how a scheduled execution went.
type EntryStatus string

const (
	StatusExecuted EntryStatus = "executed"
	StatusPartial  EntryStatus = "partial"
	StatusMissed   EntryStatus = "missed"
)

// ParseEntryStatus validates a status string coming from a form or an import.
func ParseEntryStatus(s string) (EntryStatus, error) {
	switch EntryStatus(s) {
	case StatusExecuted, StatusPartial, StatusMissed:
		return EntryStatus(s), nil
	default:
		return "", fmt.Errorf("unknown entry status %q", s)
	}
}

// Entry is a single journal record: one per date per commitment context,
// append-only, deleted only by explicit user action. The numeric fields are
// optional and default to zero.
type Entry struct {
	Date            Date        `json:"date"`
	Status          EntryStatus `json:"status"`
	Title           string      `json:"title,omitempty"`
	Reflection      string      `json:"reflection,omitempty"`
	SIPChange       float64     `json:"sipChange,omitempty"`      // signed SIP adjustment this week
	ExpenseDrift    float64     `json:"expenseDrift,omitempty"`   // overspend versus budget
	EmergencySpend  float64     `json:"emergencySpend,omitempty"` // unplanned emergency outflow
	DisciplineScore float64     `json:"disciplineScore,omitempty"`
	CompletedAction string      `json:"completedAction,omitempty"`
	Phase           PhaseID     `json:"phase,omitempty"` // optional explicit phase tag
}

// normalize cleans the numeric fields the same way profile amounts are
// cleaned. ExpenseDrift and SIPChange are signed, so they are only stripped
// of non-finite values.
func (e Entry) normalize() Entry {
	e.SIPChange = finiteOrZero(e.SIPChange)
	e.ExpenseDrift = finiteOrZero(e.ExpenseDrift)
	e.EmergencySpend = clampAmount(e.EmergencySpend)
	e.DisciplineScore = clampAmount(e.DisciplineScore)
	if e.DisciplineScore > 100 {
		e.DisciplineScore = 100
	}
	return e
}

// maxAmount bounds signed optional amounts; anything beyond it is treated
// as a form glitch, like NaN.
const maxAmount = 1e15

func finiteOrZero(v float64) float64 {
	if v != v || v > maxAmount || v < -maxAmount {
		return 0
	}
	return v
}

// Commitment is a cadence plus the ordered schedule of execution dates it
// implies. It is read-only during its lifecycle: a new cycle supersedes the
// old commitment instead of mutating it.
type Commitment struct {
	Cadence  Cadence `json:"cadence"`
	DueDates []Date  `json:"dueDates"`
}

// NewCommitment builds the schedule of due dates from 'start' for 'cycles'
// repetitions of the cadence.
func NewCommitment(c Cadence, start Date, cycles int) Commitment {
	dues := make([]Date, 0, cycles)
	on := start
	for i := 0; i < cycles; i++ {
		dues = append(dues, on)
		on = c.Next(on)
	}
	return Commitment{Cadence: c, DueDates: dues}
}

// Dues reports whether the commitment schedules 'on' as a due date.
func (c Commitment) Dues(on Date) bool {
	for _, d := range c.DueDates {
		if d == on {
			return true
		}
	}
	return false
}

// EntryOn returns the entry recorded for the given date, if any.
func EntryOn(entries []Entry, on Date) (Entry, bool) {
	for _, e := range entries {
		if e.Date == on {
			return e, true
		}
	}
	return Entry{}, false
}

// RecentEntries returns up to n entries with the latest dates, most recent
// first. The input slice is not modified.
func RecentEntries(entries []Entry, n int) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// EntriesIn returns the entries whose date falls within r, in chronological order.
func EntriesIn(entries []Entry, r Range) []Entry {
	var in []Entry
	for _, e := range entries {
		if r.Contains(e.Date) {
			in = append(in, e)
		}
	}
	sort.Slice(in, func(i, j int) bool { return in[i].Date.Before(in[j].Date) })
	return in
}
