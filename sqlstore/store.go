// Package sqlstore provides a SQLite-backed PlanStore for users who prefer a
// single database file over the JSONL journal and sprint log.
package sqlstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthapath/finplan"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store implements finplan.PlanStore on a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the plan database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating plan dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening plan db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the plan database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ActiveSprint returns the single active sprint, if one exists.
func (s *Store) ActiveSprint() (finplan.Sprint, bool, error) {
	var cadence, start, end string
	err := s.db.QueryRow("SELECT cadence, start_date, end_date FROM active_sprint WHERE slot = 1").
		Scan(&cadence, &start, &end)
	if err == sql.ErrNoRows {
		return finplan.Sprint{}, false, nil
	}
	if err != nil {
		return finplan.Sprint{}, false, err
	}

	c, err := finplan.ParseCadence(cadence)
	if err != nil {
		return finplan.Sprint{}, false, fmt.Errorf("stored active sprint: %w", err)
	}
	return finplan.Sprint{
		Cadence: c,
		Start:   finplan.ParseDateOrZero(start),
		End:     finplan.ParseDateOrZero(end),
		Status:  finplan.SprintInProgress,
	}, true, nil
}

// SaveActive stores sp in the single active slot, replacing any previous one.
func (s *Store) SaveActive(sp finplan.Sprint) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO active_sprint (slot, cadence, start_date, end_date)
		VALUES (1, ?, ?, ?)`,
		sp.Cadence.String(), sp.Start.String(), sp.End.String())
	return err
}

// ClearActive empties the active slot.
func (s *Store) ClearActive() error {
	_, err := s.db.Exec("DELETE FROM active_sprint WHERE slot = 1")
	return err
}

// History lists completed sprint snapshots in completion order.
func (s *Store) History() ([]finplan.Sprint, error) {
	rows, err := s.db.Query("SELECT cadence, start_date, end_date, completed_on FROM sprint_history ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var history []finplan.Sprint
	for rows.Next() {
		var cadence, start, end, completed string
		if err := rows.Scan(&cadence, &start, &end, &completed); err != nil {
			return nil, err
		}
		c, err := finplan.ParseCadence(cadence)
		if err != nil {
			return nil, fmt.Errorf("stored sprint history: %w", err)
		}
		history = append(history, finplan.Sprint{
			Cadence:     c,
			Start:       finplan.ParseDateOrZero(start),
			End:         finplan.ParseDateOrZero(end),
			Status:      finplan.SprintCompleted,
			CompletedOn: finplan.ParseDateOrZero(completed),
		})
	}
	return history, rows.Err()
}

// AppendHistory appends an immutable completed-sprint snapshot.
func (s *Store) AppendHistory(sp finplan.Sprint) error {
	_, err := s.db.Exec(`INSERT INTO sprint_history (cadence, start_date, end_date, completed_on)
		VALUES (?, ?, ?, ?)`,
		sp.Cadence.String(), sp.Start.String(), sp.End.String(), sp.CompletedOn.String())
	return err
}

// Entries lists all journal entries in chronological order.
func (s *Store) Entries() ([]finplan.Entry, error) {
	rows, err := s.db.Query(`SELECT date, status, title, reflection, sip_change,
		expense_drift, emergency_spend, discipline_score, completed_action, phase
		FROM entries ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []finplan.Entry
	for rows.Next() {
		var date, status string
		var title, reflection, action, phase sql.NullString
		var sip, drift, emergency, score sql.NullFloat64
		if err := rows.Scan(&date, &status, &title, &reflection, &sip, &drift, &emergency, &score, &action, &phase); err != nil {
			return nil, err
		}
		st, err := finplan.ParseEntryStatus(status)
		if err != nil {
			return nil, fmt.Errorf("stored entry on %s: %w", date, err)
		}
		entries = append(entries, finplan.Entry{
			Date:            finplan.ParseDateOrZero(date),
			Status:          st,
			Title:           title.String,
			Reflection:      reflection.String,
			SIPChange:       sip.Float64,
			ExpenseDrift:    drift.Float64,
			EmergencySpend:  emergency.Float64,
			DisciplineScore: score.Float64,
			CompletedAction: action.String,
			Phase:           finplan.PhaseID(phase.String),
		})
	}
	return entries, rows.Err()
}

// AppendEntry writes e, replacing any entry on the same date.
func (s *Store) AppendEntry(e finplan.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT OR REPLACE INTO entries
		(date, status, title, reflection, sip_change, expense_drift,
		 emergency_spend, discipline_score, completed_action, phase)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Date.String(), string(e.Status), e.Title, e.Reflection, e.SIPChange,
		e.ExpenseDrift, e.EmergencySpend, e.DisciplineScore, e.CompletedAction, string(e.Phase))
	if err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteEntry removes the entry on the given date, if any.
func (s *Store) DeleteEntry(on finplan.Date) error {
	_, err := s.db.Exec("DELETE FROM entries WHERE date = ?", on.String())
	return err
}

var _ finplan.PlanStore = (*Store)(nil)
