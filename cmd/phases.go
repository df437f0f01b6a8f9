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

type phasesCmd struct{}

func (*phasesCmd) Name() string     { return "phases" }
func (*phasesCmd) Synopsis() string { return "score progress through the planning phases" }
func (*phasesCmd) Usage() string {
	return `fpc phases

  Score the milestone checklist of each planning phase from the stored
  profile and readings, and display the detected current phase.
`
}

func (*phasesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *phasesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	progress := finplan.ScoreProgress(p, readings)
	report := renderer.NewPhasesReport(progress)
	printMarkdown(renderer.RenderPhases(report))
	return subcommands.ExitSuccess
}
