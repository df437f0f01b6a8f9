package finplan

import "sort"

// PlanStore is the persistence collaborator of the core. The calculation
// functions never read or write storage themselves; the Tracker and the CLI
// go through this interface, so tests can inject MemoryStore and the real
// tool can use the sqlite or JSONL backends.
//
// Stores are single-writer-assumed: last write wins, exactly like the
// browser storage the original dashboard used.
type PlanStore interface {
	// ActiveSprint returns the active sprint, if one exists.
	ActiveSprint() (Sprint, bool, error)
	// SaveActive stores s as the single active sprint.
	SaveActive(s Sprint) error
	// ClearActive removes the active sprint slot.
	ClearActive() error

	// History lists completed sprint snapshots in completion order.
	History() ([]Sprint, error)
	// AppendHistory appends an immutable completed-sprint snapshot.
	AppendHistory(s Sprint) error

	// Entries lists all journal entries in chronological order.
	Entries() ([]Entry, error)
	// AppendEntry appends a journal entry, replacing any entry on the same date.
	AppendEntry(e Entry) error
	// DeleteEntry removes the entry on the given date, if any.
	DeleteEntry(on Date) error
}

// MemoryStore is the in-memory PlanStore, used by tests and as a scratch
// store when no persistence is configured.
type MemoryStore struct {
	active  *Sprint
	history []Sprint
	entries []Entry
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) ActiveSprint() (Sprint, bool, error) {
	if m.active == nil {
		return Sprint{}, false, nil
	}
	return *m.active, true, nil
}

func (m *MemoryStore) SaveActive(s Sprint) error {
	m.active = &s
	return nil
}

func (m *MemoryStore) ClearActive() error {
	m.active = nil
	return nil
}

func (m *MemoryStore) History() ([]Sprint, error) {
	out := make([]Sprint, len(m.history))
	copy(out, m.history)
	return out, nil
}

func (m *MemoryStore) AppendHistory(s Sprint) error {
	m.history = append(m.history, s)
	return nil
}

func (m *MemoryStore) Entries() ([]Entry, error) {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *MemoryStore) AppendEntry(e Entry) error {
	e = e.normalize()
	for i := range m.entries {
		if m.entries[i].Date == e.Date {
			m.entries[i] = e
			return nil
		}
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *MemoryStore) DeleteEntry(on Date) error {
	for i := range m.entries {
		if m.entries[i].Date == on {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ PlanStore = (*MemoryStore)(nil)
