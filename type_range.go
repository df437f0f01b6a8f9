package finplan

import (
	"fmt"
	"iter"
	"time"
)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// MonthOf returns the full calendar month range containing d.
func MonthOf(d Date) Range {
	return Range{
		From: NewDate(d.Year(), d.Month(), 1),
		To:   NewDate(d.Year(), d.Month()+1, 0),
	}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// Days returns an iterator that yields each date within the range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Identifier computes a unique identifier for the Range, used as the rollup key.
// Full calendar months and years get their short form.
func (r Range) Identifier() string {
	switch {
	case r.From.Day() == 1 && r.To == NewDate(r.From.Year(), r.From.Month()+1, 0):
		return r.From.Format("2006-01")
	case r.From == NewDate(r.From.Year(), time.January, 1) && r.To == NewDate(r.From.Year(), time.December, 31):
		return r.From.Format("2006")
	default:
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
}
