package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthapath/finplan"
)

// statusMarks maps an entry status to the checklist mark shown in the log.
var statusMarks = map[finplan.EntryStatus]string{
	finplan.StatusExecuted: "x",
	finplan.StatusPartial:  "~",
	finplan.StatusMissed:   " ",
}

// JournalLogMarkdown generates a markdown log of journal entries, most
// recent last.
func JournalLogMarkdown(entries []finplan.Entry, currency string) string {
	r := &logRenderer{Builder: &strings.Builder{}, currency: currency}

	r.Printf("# Journal Log\n")
	for _, e := range entries {
		r.renderEntry(e)
	}
	if len(entries) == 0 {
		r.Printf("\nNo entries yet.\n")
	}
	return r.String()
}

// logRenderer formats the output of the log generator into a markdown string.
type logRenderer struct {
	*strings.Builder
	currency string
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *logRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func (r *logRenderer) renderEntry(e finplan.Entry) {
	r.Printf("\n## %s [%s] %s\n", e.Date, statusMarks[e.Status], e.Title)

	ConditionalBlock(r, func(w io.Writer) bool {
		printed := false
		if e.SIPChange != 0 {
			fmt.Fprintf(w, "* SIP change: %s\n", finplan.M(e.SIPChange, r.currency).SignedString())
			printed = true
		}
		if e.ExpenseDrift != 0 {
			fmt.Fprintf(w, "* Expense drift: %s\n", finplan.M(e.ExpenseDrift, r.currency).SignedString())
			printed = true
		}
		if e.EmergencySpend != 0 {
			fmt.Fprintf(w, "* Emergency spend: %s\n", finplan.M(e.EmergencySpend, r.currency).String())
			printed = true
		}
		if e.DisciplineScore != 0 {
			fmt.Fprintf(w, "* Discipline: %g\n", e.DisciplineScore)
			printed = true
		}
		if e.CompletedAction != "" {
			fmt.Fprintf(w, "* Action: %s\n", e.CompletedAction)
			printed = true
		}
		if e.Phase != "" {
			fmt.Fprintf(w, "* Phase: %s\n", e.Phase)
			printed = true
		}
		if printed {
			fmt.Fprintln(w)
		}
		return printed
	})

	if e.Reflection != "" {
		r.Printf("> %s\n", e.Reflection)
	}
}
