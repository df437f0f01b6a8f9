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

// sprintCmd holds the flags for the 'sprint' subcommand.
type sprintCmd struct {
	date    string
	cadence string
}

func (*sprintCmd) Name() string     { return "sprint" }
func (*sprintCmd) Synopsis() string { return "start, complete or inspect the discipline sprint" }
func (*sprintCmd) Usage() string {
	return `fpc sprint [start|complete|status] [-d <date>] [-cadence <cadence>]

  Drive the discipline sprint lifecycle. 'start' begins a new sprint of the
  given cadence, 'complete' finishes the active one and records it in the
  history, 'status' (the default) displays the journey KPIs.
`
}

func (c *sprintCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Effective date of the action (defaults to today).")
	f.StringVar(&c.cadence, "cadence", "monthly", "Cadence of a new sprint (monthly, quarterly, annual).")
}

func (c *sprintCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	action := "status"
	if f.NArg() > 0 {
		action = f.Arg(0)
	}

	if c.date == "" {
		c.date = finplan.Today().String()
	}
	on, err := finplan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening plan store: %v\n", err)
		return subcommands.ExitFailure
	}
	tracker := finplan.NewTracker(store)

	var status subcommands.ExitStatus
	switch action {
	case "start":
		status = c.start(tracker, on)
	case "complete":
		status = c.complete(tracker, on)
	case "status":
		status = c.status(tracker)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown sprint action %q\n", action)
		closeStore()
		return subcommands.ExitUsageError
	}

	if err := closeStore(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plan store: %v\n", err)
		return subcommands.ExitFailure
	}
	return status
}

func (c *sprintCmd) start(tracker *finplan.Tracker, on finplan.Date) subcommands.ExitStatus {
	cadence, err := finplan.ParseCadence(c.cadence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := tracker.Start(on, cadence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting sprint: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Started %s sprint from %s to %s\n", s.Cadence, s.Start, s.End)
	return subcommands.ExitSuccess
}

func (c *sprintCmd) complete(tracker *finplan.Tracker, on finplan.Date) subcommands.ExitStatus {
	s, err := tracker.Complete(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error completing sprint: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Completed %s sprint started on %s\n", s.Cadence, s.Start)
	return subcommands.ExitSuccess
}

func (c *sprintCmd) status(tracker *finplan.Tracker) subcommands.ExitStatus {
	p, err := LoadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return subcommands.ExitFailure
	}

	var active *finplan.Sprint
	if s, ok, err := tracker.Active(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading active sprint: %v\n", err)
		return subcommands.ExitFailure
	} else if ok {
		active = &s
	}
	history, err := tracker.History()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading sprint history: %v\n", err)
		return subcommands.ExitFailure
	}

	proj := finplan.Project(p)
	kpis := finplan.KPIs(p, history, proj.Corpus, finplan.RequiredCorpus(p))
	report := renderer.NewSprintReport(active, kpis)
	printMarkdown(renderer.RenderSprint(report))
	return subcommands.ExitSuccess
}
