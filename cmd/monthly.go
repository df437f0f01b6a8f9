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

type monthlyCmd struct {
	date string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the monthly journal review" }
func (*monthlyCmd) Usage() string {
	return `fpc monthly [-d <date>]

  Roll the journal entries of the month containing -d into a review:
  average discipline, money moved, top improvement and next focus.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Any date inside the month to review (defaults to today).")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		c.date = finplan.Today().String()
	}
	on, err := finplan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	entries, err := LoadEntries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	rollup := finplan.NewMonthlyRollup(finplan.MonthOf(on), entries)
	report := renderer.NewMonthlyReport(rollup, *currency)
	printMarkdown(renderer.RenderMonthly(report))
	return subcommands.ExitSuccess
}
