package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/arthapath/finplan"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a dashboard export into the plan store" }
func (*importCmd) Usage() string {
	return `fpc import [-file <path>]

  Import the JSON blob the web dashboard exports from its browser storage:
  profile, journal entries and sprint log. Reads stdin when -file is not
  given. Imported entries replace same-date entries already recorded.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Path to the dashboard export file (defaults to stdin).")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if c.file != "" {
		file, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening export file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	export, err := finplan.ImportDashboard(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing export: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveProfile(export.Profile.Normalize()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		return subcommands.ExitFailure
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening plan store: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, e := range export.Entries {
		if err := store.AppendEntry(e); err != nil {
			fmt.Fprintf(os.Stderr, "Error importing entry %s: %v\n", e.Date, err)
			return subcommands.ExitFailure
		}
	}
	for _, s := range export.History {
		if err := store.AppendHistory(s); err != nil {
			fmt.Fprintf(os.Stderr, "Error importing sprint history: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if export.Active != nil {
		if err := store.SaveActive(*export.Active); err != nil {
			fmt.Fprintf(os.Stderr, "Error importing active sprint: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := closeStore(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plan store: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported profile, %d journal entries and %d completed sprints\n", len(export.Entries), len(export.History))
	return subcommands.ExitSuccess
}
