package finplan

import (
	"encoding/json"
	"testing"
)

func TestJSONObjectWriterOrder(t *testing.T) {
	var w jsonObjectWriter
	w.Append("date", "2026-01-05").
		Append("status", "executed").
		Optional("title", "SIP executed").
		Optional("reflection", "")

	got, err := json.Marshal(&w)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"date":"2026-01-05","status":"executed","title":"SIP executed"}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestJSONObjectWriterOptionalZero(t *testing.T) {
	var w jsonObjectWriter
	w.Append("status", "missed").
		Optional("sipChange", 0.0).
		Optional("disciplineScore", 42.5)

	got, err := json.Marshal(&w)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"status":"missed","disciplineScore":42.5}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestJSONObjectWriterEmpty(t *testing.T) {
	var w jsonObjectWriter
	got, err := json.Marshal(&w)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("Marshal() = %s, want {}", got)
	}
}
