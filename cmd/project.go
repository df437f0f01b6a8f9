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

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	age            int
	retireAt       int
	lifeExpectancy int
	income         float64
	expenses       float64
	savings        float64
	sip            float64
	returns        float64
	postReturns    float64
	inflation      float64
	healthLoad     float64
	save           bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the retirement corpus" }
func (*projectCmd) Usage() string {
	return `fpc project [-sip <amount>] [-health-load <amount>] [-save]

  Project the corpus at retirement from the stored planning profile.
  Flags override individual profile fields for a what-if projection;
  -save persists the overrides back into the profile file.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.age, "age", 0, "Current age. Defaults to the stored profile.")
	f.IntVar(&c.retireAt, "retire-at", 0, "Target retirement age.")
	f.IntVar(&c.lifeExpectancy, "life-expectancy", 0, "Life expectancy in years.")
	f.Float64Var(&c.income, "income", 0, "Monthly income.")
	f.Float64Var(&c.expenses, "expenses", 0, "Monthly expenses.")
	f.Float64Var(&c.savings, "savings", 0, "Current savings already invested.")
	f.Float64Var(&c.sip, "sip", 0, "Monthly SIP amount.")
	f.Float64Var(&c.returns, "returns", 0, "Expected annual returns before retirement, in percent.")
	f.Float64Var(&c.postReturns, "post-returns", 0, "Expected annual returns after retirement, in percent.")
	f.Float64Var(&c.inflation, "inflation", 0, "Expected annual inflation, in percent.")
	f.Float64Var(&c.healthLoad, "health-load", 0, "Monthly healthcare cost load for the health-adjusted view.")
	f.BoolVar(&c.save, "save", false, "Persist flag overrides into the profile file.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return subcommands.ExitFailure
	}

	// Only flags explicitly set on the command line override the profile.
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "age":
			p.CurrentAge = c.age
		case "retire-at":
			p.RetirementAge = c.retireAt
		case "life-expectancy":
			p.LifeExpectancy = c.lifeExpectancy
		case "income":
			p.MonthlyIncome = c.income
		case "expenses":
			p.MonthlyExpenses = c.expenses
		case "savings":
			p.CurrentSavings = c.savings
		case "sip":
			p.MonthlySIP = c.sip
		case "returns":
			p.ExpectedReturns = finplan.Percent(c.returns)
		case "post-returns":
			p.PostReturns = finplan.Percent(c.postReturns)
		case "inflation":
			p.Inflation = finplan.Percent(c.inflation)
		}
	})
	p = p.Normalize()

	if c.save {
		if err := SaveProfile(p); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	report := renderer.NewProjectionReport(p, c.healthLoad, *currency)
	printMarkdown(renderer.RenderProjection(report))
	return subcommands.ExitSuccess
}
