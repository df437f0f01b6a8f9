package renderer

import (
	"fmt"
	"time"

	"github.com/arthapath/finplan"
)

// dayMarks are the single-character suffixes shown next to a day number in
// the calendar grid.
var dayMarks = map[finplan.DateState]string{
	finplan.StateExecuted:    "x",
	finplan.StateMissed:      "!",
	finplan.StateApproaching: "*",
	finplan.StateSIPDue:      "@",
}

// CalendarReport is a struct to represent one month's SIP calendar for
// rendering. Weeks holds pre-rendered day cells, Monday first; cells outside
// the month are blank.
type CalendarReport struct {
	Month string     `json:"month"` // e.g. "2026-01"
	Weeks [][]string `json:"weeks"`
}

// NewCalendarReport lays the derived day states of a month out as a grid of
// Monday-first weeks.
func NewCalendarReport(month finplan.Range, states map[finplan.Date]finplan.DateState) *CalendarReport {
	r := &CalendarReport{Month: month.Identifier()}

	week := make([]string, 7)
	for i := range week {
		week[i] = " "
	}
	for on := range month.Days() {
		col := mondayIndex(on.Weekday())
		week[col] = dayCell(on, states[on])
		if col == 6 {
			r.Weeks = append(r.Weeks, week)
			week = make([]string, 7)
			for i := range week {
				week[i] = " "
			}
		}
	}
	// Flush the trailing partial week.
	for _, cell := range week {
		if cell != " " {
			r.Weeks = append(r.Weeks, week)
			break
		}
	}
	return r
}

func dayCell(on finplan.Date, state finplan.DateState) string {
	return fmt.Sprintf("%d%s", on.Day(), dayMarks[state])
}

func mondayIndex(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - 1
}
