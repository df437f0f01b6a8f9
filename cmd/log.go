package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/arthapath/finplan"
	"github.com/arthapath/finplan/renderer"
	"github.com/google/subcommands"
)

// logCmd holds the flags for the 'log' subcommand.
type logCmd struct {
	date           string
	status         string
	title          string
	reflection     string
	sipChange      float64
	expenseDrift   float64
	emergencySpend float64
	score          float64
	action         string
	phase          string
	remove         bool
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the journal, or append an entry to it" }
func (*logCmd) Usage() string {
	return `fpc log [-d <date>] [-status <status>] [-title <text>] [...]

  Without -status, display the chronological journal log. With -status,
  append an entry for the given date (replacing any entry already recorded
  on that date). -rm deletes the entry of the given date instead.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the entry (defaults to today).")
	f.StringVar(&c.status, "status", "", "Execution status (executed, partial, missed). Appends an entry when set.")
	f.StringVar(&c.title, "title", "", "Short title of the entry.")
	f.StringVar(&c.reflection, "reflection", "", "Free-form reflection text.")
	f.Float64Var(&c.sipChange, "sip-change", 0, "Signed SIP adjustment recorded this entry.")
	f.Float64Var(&c.expenseDrift, "expense-drift", 0, "Overspend versus budget.")
	f.Float64Var(&c.emergencySpend, "emergency-spend", 0, "Unplanned emergency outflow.")
	f.Float64Var(&c.score, "score", 0, "Discipline self-score for the entry (0-100).")
	f.StringVar(&c.action, "action", "", "Completed action id, e.g. 'increase-sip'.")
	f.StringVar(&c.phase, "phase", "", "Explicit phase tag (foundation, accumulation, optimization, resilience).")
	f.BoolVar(&c.remove, "rm", false, "Delete the entry recorded on -d.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening plan store: %v\n", err)
		return subcommands.ExitFailure
	}

	status := c.run(store)

	if err := closeStore(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plan store: %v\n", err)
		return subcommands.ExitFailure
	}
	return status
}

func (c *logCmd) run(store finplan.PlanStore) subcommands.ExitStatus {
	if c.status == "" && !c.remove {
		return c.display(store)
	}

	if c.date == "" {
		c.date = finplan.Today().String()
	}
	on, err := finplan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.remove {
		if err := store.DeleteEntry(on); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting entry: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted journal entry for %s\n", on)
		return subcommands.ExitSuccess
	}

	status, err := finplan.ParseEntryStatus(c.status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	entry := finplan.Entry{
		Date:            on,
		Status:          status,
		Title:           c.title,
		Reflection:      c.reflection,
		SIPChange:       c.sipChange,
		ExpenseDrift:    c.expenseDrift,
		EmergencySpend:  c.emergencySpend,
		DisciplineScore: c.score,
		CompletedAction: c.action,
		Phase:           finplan.PhaseID(c.phase),
	}
	if err := store.AppendEntry(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Error appending entry: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s entry for %s\n", status, on)
	return subcommands.ExitSuccess
}

func (c *logCmd) display(store finplan.PlanStore) subcommands.ExitStatus {
	entries, err := store.Entries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading journal: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.JournalLogMarkdown(entries, *currency))
	return subcommands.ExitSuccess
}
