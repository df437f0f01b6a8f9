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

type signalsCmd struct{}

func (*signalsCmd) Name() string     { return "signals" }
func (*signalsCmd) Synopsis() string { return "derive coaching signals from the journal" }
func (*signalsCmd) Usage() string {
	return `fpc signals

  Derive the prioritized coaching signals from the stored readings and the
  recent journal entries, along with the current discipline score.
`
}

func (*signalsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *signalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return subcommands.ExitFailure
	}
	readings, err := LoadReadings(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading readings: %v\n", err)
		return subcommands.ExitFailure
	}

	entries, err := LoadEntries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	score := finplan.DisciplineScore(entries)
	signals := finplan.DeriveSignals(readings, entries)
	report := renderer.NewSignalsReport(score, signals)
	printMarkdown(renderer.RenderSignals(report))
	return subcommands.ExitSuccess
}
