package finplan

import "testing"

func TestDeriveDateState(t *testing.T) {
	commitment := NewCommitment(Monthly, MustParse("2026-01-10"), 3)
	// schedule: 2026-01-10, 2026-02-10, 2026-03-10

	tests := []struct {
		name    string
		date    string
		today   string
		entries []Entry
		want    DateState
	}{
		{
			name:  "unscheduled date is idle",
			date:  "2026-01-05",
			today: "2026-01-05",
			want:  StateIdle,
		},
		{
			name:  "due date five days past grace is missed",
			date:  "2026-01-10",
			today: "2026-01-15",
			want:  StateMissed,
		},
		{
			name:  "due date exactly at grace boundary still approaching",
			date:  "2026-01-10",
			today: "2026-01-13",
			want:  StateApproaching,
		},
		{
			name:  "one past the grace boundary is missed",
			date:  "2026-01-10",
			today: "2026-01-14",
			want:  StateMissed,
		},
		{
			name:  "due date today is approaching",
			date:  "2026-01-10",
			today: "2026-01-10",
			want:  StateApproaching,
		},
		{
			name:  "due date three days ahead is approaching",
			date:  "2026-02-10",
			today: "2026-02-07",
			want:  StateApproaching,
		},
		{
			name:  "due date far in the future is idle",
			date:  "2026-03-10",
			today: "2026-01-02",
			want:  StateIdle,
		},
		{
			name:    "partial entry dominates the due date",
			date:    "2026-01-10",
			today:   "2026-01-10",
			entries: []Entry{{Date: MustParse("2026-01-10"), Status: StatusPartial}},
			want:    StateExecuted,
		},
		{
			name:    "executed entry dominates even a missed window",
			date:    "2026-01-10",
			today:   "2026-01-25",
			entries: []Entry{{Date: MustParse("2026-01-10"), Status: StatusExecuted}},
			want:    StateExecuted,
		},
		{
			name:    "missed entry does not count as executed",
			date:    "2026-01-10",
			today:   "2026-01-25",
			entries: []Entry{{Date: MustParse("2026-01-10"), Status: StatusMissed}},
			want:    StateMissed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveDateState(MustParse(tc.date), []Commitment{commitment}, tc.entries, MustParse(tc.today))
			if got != tc.want {
				t.Errorf("DeriveDateState() = %q, want %q", got, tc.want)
			}
		})
	}
}

// Identical inputs must yield identical outputs: the deriver consults no
// hidden clock.
func TestDeriveDateStateDeterminism(t *testing.T) {
	commitments := []Commitment{NewCommitment(Quarterly, MustParse("2026-01-01"), 4)}
	entries := []Entry{{Date: MustParse("2026-04-01"), Status: StatusExecuted}}
	today := MustParse("2026-04-02")

	for on := range NewRange(MustParse("2025-12-15"), MustParse("2026-10-15")).Days() {
		first := DeriveDateState(on, commitments, entries, today)
		second := DeriveDateState(on, commitments, entries, today)
		if first != second {
			t.Fatalf("state for %s changed between calls: %q then %q", on, first, second)
		}
	}
}

func TestMonthStates(t *testing.T) {
	commitments := []Commitment{NewCommitment(Monthly, MustParse("2026-01-10"), 2)}
	month := MonthOf(MustParse("2026-01-01"))
	states := MonthStates(month, commitments, nil, MustParse("2026-01-20"))

	if len(states) != 31 {
		t.Fatalf("got %d states, want 31", len(states))
	}
	if states[MustParse("2026-01-10")] != StateMissed {
		t.Errorf("due date = %q, want missed", states[MustParse("2026-01-10")])
	}
	if states[MustParse("2026-01-11")] != StateIdle {
		t.Errorf("ordinary day = %q, want idle", states[MustParse("2026-01-11")])
	}
}
