package finplan

import (
	"bytes"
	"strings"
	"testing"
)

func TestJournalRoundTrip(t *testing.T) {
	entries := []Entry{
		{Date: MustParse("2026-01-05"), Status: StatusExecuted, Title: "SIP executed", DisciplineScore: 80, SIPChange: 1000},
		{Date: MustParse("2026-01-12"), Status: StatusPartial, Reflection: "half the amount, car repair", EmergencySpend: 12000},
		{Date: MustParse("2026-01-19"), Status: StatusMissed, Phase: PhaseFoundation},
	}

	var buf bytes.Buffer
	if err := EncodeJournal(&buf, entries); err != nil {
		t.Fatal(err)
	}

	// One line per entry, stable leading fields.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, `{"date":`) {
			t.Errorf("line does not start with date: %s", line)
		}
	}

	back, err := DecodeJournal(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != len(entries) {
		t.Fatalf("decoded %d entries, want %d", len(back), len(entries))
	}
	for i := range entries {
		if back[i] != entries[i] {
			t.Errorf("entry %d = %+v, want %+v", i, back[i], entries[i])
		}
	}
}

func TestDecodeJournalSkipsBlankLines(t *testing.T) {
	in := `{"date":"2026-01-05","status":"executed"}

{"date":"2026-01-12","status":"missed"}
`
	entries, err := DecodeJournal(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}

func TestDecodeJournalBadLine(t *testing.T) {
	if _, err := DecodeJournal(strings.NewReader("not json\n")); err == nil {
		t.Error("want error on malformed line")
	}
}

func TestSprintLogRoundTrip(t *testing.T) {
	active := &Sprint{Cadence: Monthly, Start: MustParse("2026-03-01"), End: MustParse("2026-04-01"), Status: SprintInProgress}
	history := []Sprint{
		{Cadence: Quarterly, Start: MustParse("2025-10-01"), End: MustParse("2026-01-01"), Status: SprintCompleted, CompletedOn: MustParse("2025-12-28")},
	}

	var buf bytes.Buffer
	if err := EncodeSprintLog(&buf, active, history); err != nil {
		t.Fatal(err)
	}

	gotActive, gotHistory, err := DecodeSprintLog(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if gotActive == nil || *gotActive != *active {
		t.Errorf("active = %+v, want %+v", gotActive, active)
	}
	if len(gotHistory) != 1 || gotHistory[0] != history[0] {
		t.Errorf("history = %+v", gotHistory)
	}
}

func TestDecodeSprintLogRejectsTwoActive(t *testing.T) {
	in := `{"cadence":"monthly","start":"2026-01-01","end":"2026-02-01","status":"in_progress"}
{"cadence":"annual","start":"2026-01-15","end":"2027-01-15","status":"in_progress"}
`
	if _, _, err := DecodeSprintLog(strings.NewReader(in)); err == nil {
		t.Error("want error on two in_progress sprints")
	}
}

func TestLoadStore(t *testing.T) {
	journal := strings.NewReader(`{"date":"2026-01-05","status":"executed","disciplineScore":75}` + "\n")
	sprints := strings.NewReader(`{"cadence":"monthly","start":"2026-01-01","end":"2026-02-01","status":"in_progress"}` + "\n")

	store, err := LoadStore(journal, sprints)
	if err != nil {
		t.Fatal(err)
	}
	entries, _ := store.Entries()
	if len(entries) != 1 || entries[0].DisciplineScore != 75 {
		t.Errorf("entries = %+v", entries)
	}
	if _, active, _ := store.ActiveSprint(); !active {
		t.Error("active sprint not loaded")
	}

	// Nil readers mean empty files, not errors.
	if _, err := LoadStore(nil, nil); err != nil {
		t.Errorf("LoadStore(nil, nil): %v", err)
	}
}
