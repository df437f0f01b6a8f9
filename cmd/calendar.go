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

// calendarCmd holds the flags for the 'calendar' subcommand.
type calendarCmd struct {
	date    string
	sipDate string
	cadence string
	cycles  int
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "display the SIP execution calendar for a month" }
func (*calendarCmd) Usage() string {
	return `fpc calendar [-d <date>] [-sip-date <date>] [-cadence <cadence>]

  Display the calendar of the month containing -d, marking each day with
  its SIP execution state derived from the journal and the commitment
  schedule.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Any date inside the month to display (defaults to today).")
	f.StringVar(&c.sipDate, "sip-date", "", "First due date of the SIP commitment (defaults to the 1st of the month).")
	f.StringVar(&c.cadence, "cadence", "monthly", "Commitment cadence (monthly, quarterly, annual).")
	f.IntVar(&c.cycles, "cycles", 12, "Number of scheduled cycles from the first due date.")
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today := finplan.Today()
	if c.date == "" {
		c.date = today.String()
	}
	on, err := finplan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	month := finplan.MonthOf(on)

	due := month.From
	if c.sipDate != "" {
		due, err = finplan.ParseDate(c.sipDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing sip date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	cadence, err := finplan.ParseCadence(c.cadence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	commitment := finplan.NewCommitment(cadence, due, c.cycles)

	entries, err := LoadEntries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	states := finplan.MonthStates(month, []finplan.Commitment{commitment}, entries, today)
	report := renderer.NewCalendarReport(month, states)
	printMarkdown(renderer.RenderCalendar(report))
	return subcommands.ExitSuccess
}
