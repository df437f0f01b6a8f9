package finplan

import (
	"errors"
	"math"
	"testing"
)

func TestTrackerMutualExclusion(t *testing.T) {
	tracker := NewTracker(NewMemoryStore())
	now := MustParse("2026-01-05")

	s, err := tracker.Start(now, Monthly)
	if err != nil {
		t.Fatalf("first Start: %v", err)
	}
	if s.End != MustParse("2026-02-05") {
		t.Errorf("monthly sprint End = %v", s.End)
	}

	// Any cadence must be rejected while a sprint is active.
	for _, c := range []Cadence{Monthly, Quarterly, Annual} {
		if _, err := tracker.Start(now.Add(1), c); !errors.Is(err, ErrSprintActive) {
			t.Errorf("Start(%v) while active: err = %v, want ErrSprintActive", c, err)
		}
	}

	if _, err := tracker.Complete(MustParse("2026-02-04")); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	// After completion a new sprint can start.
	if _, err := tracker.Start(MustParse("2026-02-05"), Quarterly); err != nil {
		t.Errorf("Start after Complete: %v", err)
	}
}

func TestTrackerCompleteWithoutActive(t *testing.T) {
	tracker := NewTracker(NewMemoryStore())
	if _, err := tracker.Complete(MustParse("2026-01-05")); !errors.Is(err, ErrNoActiveSprint) {
		t.Errorf("Complete without active: err = %v, want ErrNoActiveSprint", err)
	}
}

func TestTrackerHistorySnapshot(t *testing.T) {
	store := NewMemoryStore()
	tracker := NewTracker(store)

	start := MustParse("2026-01-05")
	if _, err := tracker.Start(start, Quarterly); err != nil {
		t.Fatal(err)
	}
	done := MustParse("2026-04-02")
	completed, err := tracker.Complete(done)
	if err != nil {
		t.Fatal(err)
	}
	if completed.Status != SprintCompleted || completed.CompletedOn != done {
		t.Errorf("completed sprint = %+v", completed)
	}
	if completed.End != MustParse("2026-04-05") {
		t.Errorf("quarterly End = %v", completed.End)
	}

	history, err := tracker.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0] != completed {
		t.Errorf("history = %+v", history)
	}
	if _, active, _ := tracker.Active(); active {
		t.Error("active slot not cleared after completion")
	}
}

func TestKPIs(t *testing.T) {
	p := referenceProfile() // 30 years to retirement = 360 months

	history := []Sprint{
		{Cadence: Annual, Status: SprintCompleted},    // 12 months
		{Cadence: Quarterly, Status: SprintCompleted}, // 3 months
		{Cadence: Monthly, Status: SprintCompleted},   // 1 month
	}

	kpi := KPIs(p, history, 9_000_000, 10_000_000)
	if kpi.DisciplineMonths != 16 {
		t.Errorf("DisciplineMonths = %d, want 16", kpi.DisciplineMonths)
	}
	wantJourney := 16.0 / 360 * 100
	if math.Abs(kpi.JourneyPercent-wantJourney) > 1e-9 {
		t.Errorf("JourneyPercent = %v, want %v", kpi.JourneyPercent, wantJourney)
	}
	// The delta is the latest sprint's contribution: 1 month out of 360.
	wantDelta := 1.0 / 360 * 100
	if math.Abs(kpi.JourneyDelta-wantDelta) > 1e-9 {
		t.Errorf("JourneyDelta = %v, want %v", kpi.JourneyDelta, wantDelta)
	}
	if kpi.CorpusPercent != 90 {
		t.Errorf("CorpusPercent = %d, want 90", kpi.CorpusPercent)
	}
}

func TestKPIsClamping(t *testing.T) {
	p := referenceProfile()

	// Corpus beyond the requirement clamps at 100.
	kpi := KPIs(p, nil, 20_000_000, 10_000_000)
	if kpi.CorpusPercent != 100 {
		t.Errorf("CorpusPercent = %d, want 100", kpi.CorpusPercent)
	}

	// Missing requirement yields zero instead of dividing by zero.
	kpi = KPIs(p, nil, 20_000_000, 0)
	if kpi.CorpusPercent != 0 {
		t.Errorf("CorpusPercent = %d, want 0", kpi.CorpusPercent)
	}

	// An empty history has no delta and no journey.
	if kpi.JourneyPercent != 0 || kpi.JourneyDelta != 0 {
		t.Errorf("empty history KPIs = %+v", kpi)
	}

	// A huge history clamps the journey at 100.
	var history []Sprint
	for i := 0; i < 50; i++ {
		history = append(history, Sprint{Cadence: Annual, Status: SprintCompleted})
	}
	if got := KPIs(p, history, 0, 0).JourneyPercent; got != 100 {
		t.Errorf("JourneyPercent = %v, want clamp at 100", got)
	}
}
