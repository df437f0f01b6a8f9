package finplan

import (
	"math"
	"testing"
)

func weeklyEntries(scores ...float64) []Entry {
	on := MustParse("2026-01-05")
	var entries []Entry
	for _, s := range scores {
		entries = append(entries, Entry{Date: on, Status: StatusExecuted, DisciplineScore: s})
		on = on.Add(7)
	}
	return entries
}

func TestDisciplineScore(t *testing.T) {
	if got := DisciplineScore(nil); got != 0 {
		t.Errorf("empty journal = %v, want 0", got)
	}

	// Only the most recent four weeks count.
	entries := weeklyEntries(10, 20, 60, 70, 80, 90)
	want := (60.0 + 70 + 80 + 90) / 4
	if got := DisciplineScore(entries); math.Abs(got-want) > 1e-9 {
		t.Errorf("DisciplineScore = %v, want %v", got, want)
	}

	// Fewer than four entries average over what exists.
	if got := DisciplineScore(weeklyEntries(40, 60)); got != 50 {
		t.Errorf("DisciplineScore = %v, want 50", got)
	}
}

func TestDeriveSignals(t *testing.T) {
	healthy := Readings{
		SIPCurrent:     20000,
		SIPRequired:    15000,
		CorpusExpected: 12_000_000,
		CorpusRequired: 10_000_000,
	}
	if got := DeriveSignals(healthy, nil); len(got) != 0 {
		t.Errorf("healthy readings produced signals: %+v", got)
	}

	// Every check fires independently; all four can co-occur.
	stressed := Readings{
		SIPCurrent:       10000,
		SIPRequired:      15000,
		CorpusExpected:   5_000_000,
		CorpusRequired:   10_000_000,
		HealthStressRisk: true,
	}
	entries := []Entry{
		{Date: MustParse("2026-01-05"), Status: StatusExecuted, ExpenseDrift: 2000},
		{Date: MustParse("2026-01-12"), Status: StatusExecuted, ExpenseDrift: 1500},
		{Date: MustParse("2026-01-19"), Status: StatusExecuted},
	}
	got := DeriveSignals(stressed, entries)
	if len(got) != 4 {
		t.Fatalf("got %d signals, want 4: %+v", len(got), got)
	}

	bySeverity := map[Severity]int{}
	for _, s := range got {
		bySeverity[s.Severity]++
	}
	if bySeverity[SeverityRisk] != 2 || bySeverity[SeverityWarning] != 2 {
		t.Errorf("severities = %v", bySeverity)
	}
}

func TestDeriveSignalsOverspendThreshold(t *testing.T) {
	r := Readings{}
	// A single overspend week is not a pattern.
	one := []Entry{{Date: MustParse("2026-01-05"), Status: StatusExecuted, ExpenseDrift: 500}}
	if got := DeriveSignals(r, one); len(got) != 0 {
		t.Errorf("single overspend produced signals: %+v", got)
	}

	// Overspends outside the recent window are forgotten.
	old := []Entry{
		{Date: MustParse("2025-06-02"), Status: StatusExecuted, ExpenseDrift: 500},
		{Date: MustParse("2025-06-09"), Status: StatusExecuted, ExpenseDrift: 500},
		{Date: MustParse("2026-01-05"), Status: StatusExecuted},
		{Date: MustParse("2026-01-12"), Status: StatusExecuted},
		{Date: MustParse("2026-01-19"), Status: StatusExecuted},
		{Date: MustParse("2026-01-26"), Status: StatusExecuted},
	}
	if got := DeriveSignals(r, old); len(got) != 0 {
		t.Errorf("stale overspends produced signals: %+v", got)
	}
}

func TestNewMonthlyRollup(t *testing.T) {
	month := MonthOf(MustParse("2026-01-01"))
	entries := []Entry{
		{Date: MustParse("2026-01-05"), Status: StatusExecuted, DisciplineScore: 80, SIPChange: 1000, CompletedAction: "Increased SIP"},
		{Date: MustParse("2026-01-12"), Status: StatusPartial, DisciplineScore: 70, EmergencySpend: 3000, CompletedAction: "Tracked expenses"},
		{Date: MustParse("2026-01-19"), Status: StatusExecuted, DisciplineScore: 90, SIPChange: -500, CompletedAction: "Increased SIP"},
		// Outside the month, must be ignored.
		{Date: MustParse("2026-02-02"), Status: StatusExecuted, DisciplineScore: 10},
	}

	got := NewMonthlyRollup(month, entries)
	if got.Month != "2026-01" {
		t.Errorf("Month = %q", got.Month)
	}
	if got.Entries != 3 {
		t.Errorf("Entries = %d, want 3", got.Entries)
	}
	if got.AvgDiscipline != 80 {
		t.Errorf("AvgDiscipline = %v, want 80", got.AvgDiscipline)
	}
	if got.SIPChangeTotal != 500 {
		t.Errorf("SIPChangeTotal = %v, want 500", got.SIPChangeTotal)
	}
	if got.EmergencySpendTotal != 3000 {
		t.Errorf("EmergencySpendTotal = %v, want 3000", got.EmergencySpendTotal)
	}
	if got.TopImprovement != "Increased SIP" {
		t.Errorf("TopImprovement = %q", got.TopImprovement)
	}
	// Discipline is fine but emergency money moved: the buffer comes first.
	if got.NextFocus != FocusEmergency {
		t.Errorf("NextFocus = %q, want %q", got.NextFocus, FocusEmergency)
	}
}

func TestMonthlyRollupNextFocusPriority(t *testing.T) {
	month := MonthOf(MustParse("2026-01-01"))

	// Low discipline wins over the emergency spend.
	low := []Entry{{Date: MustParse("2026-01-05"), Status: StatusMissed, DisciplineScore: 30, EmergencySpend: 1000}}
	if got := NewMonthlyRollup(month, low).NextFocus; got != FocusConsistency {
		t.Errorf("NextFocus = %q, want %q", got, FocusConsistency)
	}

	// Good discipline and no emergency: maintain.
	good := []Entry{{Date: MustParse("2026-01-05"), Status: StatusExecuted, DisciplineScore: 85}}
	if got := NewMonthlyRollup(month, good).NextFocus; got != FocusMaintain {
		t.Errorf("NextFocus = %q, want %q", got, FocusMaintain)
	}
}
