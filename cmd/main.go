// Package cmd implements the CLI application to manage a financial plan.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/arthapath/finplan"
	"github.com/arthapath/finplan/sqlstore"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&projectCmd{}, "plan")
	c.Register(&phasesCmd{}, "plan")

	c.Register(&logCmd{}, "journal")
	c.Register(&calendarCmd{}, "journal")
	c.Register(&signalsCmd{}, "journal")
	c.Register(&monthlyCmd{}, "journal")

	c.Register(&sprintCmd{}, "sprints")

	c.Register(&importCmd{}, "data")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var profileFile = flag.String("profile-file", envOr("FPC_PROFILE_FILE", "profile.json"), "Path to the planning profile file (JSON format)")
var journalFile = flag.String("journal-file", envOr("FPC_JOURNAL_FILE", "journal.jsonl"), "Path to the journal file (JSONL format)")
var sprintFile = flag.String("sprint-file", envOr("FPC_SPRINT_FILE", "sprints.jsonl"), "Path to the sprint log file (JSONL format)")
var readingsFile = flag.String("readings-file", envOr("FPC_READINGS_FILE", "readings.json"), "Path to the phase readings file (JSON format)")
var dbFile = flag.String("db-file", os.Getenv("FPC_DB_FILE"), "Path to a sqlite plan database, used instead of the JSONL files when set")
var currency = flag.String("currency", envOr("FPC_CURRENCY", "INR"), "ISO 4217 code used to format amounts")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadProfile reads the planning profile from the app profile file.
func LoadProfile() (finplan.UserProfile, error) {
	var p finplan.UserProfile
	data, err := os.ReadFile(*profileFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, profile does not exist, using documented defaults instead")
		return p.Normalize(), nil
	}
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing profile file %q: %w", *profileFile, err)
	}
	return p.Normalize(), nil
}

// SaveProfile writes the planning profile into the app profile file.
func SaveProfile(p finplan.UserProfile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(*profileFile, append(data, '\n'), 0644)
}

// LoadReadings reads the phase readings from the app readings file. A missing
// file yields zero readings; the computed fields are filled from the profile.
func LoadReadings(p finplan.UserProfile) (finplan.Readings, error) {
	var r finplan.Readings
	data, err := os.ReadFile(*readingsFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return r, err
	}
	if err == nil {
		if err := json.Unmarshal(data, &r); err != nil {
			return r, fmt.Errorf("parsing readings file %q: %w", *readingsFile, err)
		}
	}
	proj := finplan.Project(p)
	if r.SIPCurrent == 0 {
		r.SIPCurrent = p.MonthlySIP
	}
	if r.SIPRequired == 0 {
		r.SIPRequired = p.MonthlySIP
	}
	if r.CorpusExpected == 0 {
		r.CorpusExpected = proj.Corpus
	}
	if r.CorpusRequired == 0 {
		r.CorpusRequired = finplan.RequiredCorpus(p)
	}
	return r, nil
}

// OpenStore is the central function to open the plan store. It picks the
// sqlite database when -db-file is set and the JSONL files otherwise. The
// returned close function persists pending changes and must always be called.
func OpenStore() (finplan.PlanStore, func() error, error) {
	if *dbFile != "" {
		s, err := sqlstore.Open(*dbFile)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	store, err := loadMemoryStore()
	if err != nil {
		return nil, nil, err
	}
	return store, func() error { return saveMemoryStore(store) }, nil
}

// LoadEntries reads the journal entries without writing anything back.
// Display commands use it so a read never rewrites the data files.
func LoadEntries() ([]finplan.Entry, error) {
	if *dbFile != "" {
		s, err := sqlstore.Open(*dbFile)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return s.Entries()
	}
	store, err := loadMemoryStore()
	if err != nil {
		return nil, err
	}
	return store.Entries()
}

func loadMemoryStore() (*finplan.MemoryStore, error) {
	journal, err := openOptional(*journalFile)
	if err != nil {
		return nil, err
	}
	if journal != nil {
		defer journal.Close()
	}
	sprints, err := openOptional(*sprintFile)
	if err != nil {
		return nil, err
	}
	if sprints != nil {
		defer sprints.Close()
	}
	// LoadStore accepts nil readers for files that do not exist yet.
	var jr, sr io.Reader
	if journal != nil {
		jr = journal
	}
	if sprints != nil {
		sr = sprints
	}
	return finplan.LoadStore(jr, sr)
}

func openOptional(filename string) (*os.File, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return f, err
}

func saveMemoryStore(store *finplan.MemoryStore) error {
	entries, err := store.Entries()
	if err != nil {
		return err
	}
	jf, err := os.Create(*journalFile)
	if err != nil {
		return fmt.Errorf("opening journal file %q: %w", *journalFile, err)
	}
	defer jf.Close()
	if err := finplan.EncodeJournal(jf, entries); err != nil {
		return fmt.Errorf("writing journal file %q: %w", *journalFile, err)
	}

	var active *finplan.Sprint
	if s, ok, err := store.ActiveSprint(); err != nil {
		return err
	} else if ok {
		active = &s
	}
	history, err := store.History()
	if err != nil {
		return err
	}
	sf, err := os.Create(*sprintFile)
	if err != nil {
		return fmt.Errorf("opening sprint file %q: %w", *sprintFile, err)
	}
	defer sf.Close()
	if err := finplan.EncodeSprintLog(sf, active, history); err != nil {
		return fmt.Errorf("writing sprint file %q: %w", *sprintFile, err)
	}
	return nil
}
