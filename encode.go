package finplan

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// This file persists plan records as JSONL: one JSON object per line, stable
// field order, human-readable and git-friendly. The journal file holds
// entries; the sprint file holds the sprint log (at most one in_progress
// record, the rest are completed snapshots).

// MarshalJSON writes the entry with a stable field order and without
// zero-valued optional fields.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.Date)
	w.Append("status", e.Status)
	w.Optional("title", e.Title)
	w.Optional("reflection", e.Reflection)
	w.Optional("sipChange", e.SIPChange)
	w.Optional("expenseDrift", e.ExpenseDrift)
	w.Optional("emergencySpend", e.EmergencySpend)
	w.Optional("disciplineScore", e.DisciplineScore)
	w.Optional("completedAction", e.CompletedAction)
	w.Optional("phase", e.Phase)
	return w.MarshalJSON()
}

// MarshalJSON writes the sprint with a stable field order.
func (s Sprint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("cadence", s.Cadence)
	w.Append("start", s.Start)
	w.Append("end", s.End)
	w.Append("status", s.Status)
	w.Optional("completedOn", s.CompletedOn)
	return w.MarshalJSON()
}

// EncodeJournal writes entries as JSONL in chronological order.
func EncodeJournal(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		line, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encoding entry on %s: %w", e.Date, err)
		}
		if _, err := fmt.Fprintln(w, string(line)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeJournal reads entries from a JSONL stream, skipping blank lines.
// Every decoded entry is normalized, so malformed numeric fields degrade to
// their defaults instead of propagating.
func DecodeJournal(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("invalid journal line %q: %w", string(line), err)
		}
		entries = append(entries, e.normalize())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// EncodeSprintLog writes the sprint log as JSONL: history first, then the
// active sprint if any.
func EncodeSprintLog(w io.Writer, active *Sprint, history []Sprint) error {
	all := make([]Sprint, 0, len(history)+1)
	all = append(all, history...)
	if active != nil {
		all = append(all, *active)
	}
	for _, s := range all {
		line, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("encoding sprint starting %s: %w", s.Start, err)
		}
		if _, err := fmt.Fprintln(w, string(line)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSprintLog reads the sprint log back. A record with status
// in_progress becomes the active sprint; finding a second one is an error,
// since the log must never hold two concurrent sprints.
func DecodeSprintLog(r io.Reader) (active *Sprint, history []Sprint, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var s Sprint
		if err := json.Unmarshal(line, &s); err != nil {
			return nil, nil, fmt.Errorf("invalid sprint line %q: %w", string(line), err)
		}
		if s.Status == SprintInProgress {
			if active != nil {
				return nil, nil, fmt.Errorf("sprint log holds two in_progress sprints (starting %s and %s)", active.Start, s.Start)
			}
			found := s
			active = &found
			continue
		}
		history = append(history, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return active, history, nil
}

// LoadStore materializes a MemoryStore from decoded journal and sprint streams.
// Either reader may be nil when the corresponding file does not exist yet.
func LoadStore(journal io.Reader, sprints io.Reader) (*MemoryStore, error) {
	store := NewMemoryStore()
	if journal != nil {
		entries, err := DecodeJournal(journal)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if err := store.AppendEntry(e); err != nil {
				return nil, err
			}
		}
	}
	if sprints != nil {
		active, history, err := DecodeSprintLog(sprints)
		if err != nil {
			return nil, err
		}
		for _, s := range history {
			if err := store.AppendHistory(s); err != nil {
				return nil, err
			}
		}
		if active != nil {
			if err := store.SaveActive(*active); err != nil {
				return nil, err
			}
		}
	}
	return store, nil
}
