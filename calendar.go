package finplan

// DateState is the derived calendar state of a single date. It is a pure
// function of commitments, entries and a reference 'today' — there is no
// stored calendar state anywhere.
type DateState string

const (
	StateIdle        DateState = "idle"
	StateSIPDue      DateState = "sip_due"
	StateApproaching DateState = "approaching"
	StateExecuted    DateState = "executed"
	StateMissed      DateState = "missed"
)

// graceDays is the post-due grace window before a due date without an entry
// turns missed, and the pre/post proximity window for 'approaching'.
const graceDays = 3

// DeriveDateState classifies 'on' against the commitment schedules and the
// execution log. 'today' is always an explicit parameter; the function never
// consults the wall clock, so identical inputs always yield identical output.
//
// The rules apply in priority order, first match wins.
func DeriveDateState(on Date, commitments []Commitment, entries []Entry, today Date) DateState {
	// 1. A recorded execution dominates everything, partial included.
	if e, ok := EntryOn(entries, on); ok {
		if e.Status == StatusExecuted || e.Status == StatusPartial {
			return StateExecuted
		}
	}

	// 2. Dates no commitment schedules are idle.
	due := false
	for _, c := range commitments {
		if c.Dues(on) {
			due = true
			break
		}
	}
	if !due {
		return StateIdle
	}

	diff := on.DaysBetween(today)

	// 3. Past the grace window without an entry.
	if diff < -graceDays {
		return StateMissed
	}

	// 4. Inside the proximity window, due date itself included.
	if diff >= -graceDays && diff <= graceDays {
		return StateApproaching
	}

	// Unreachable: diff == 0 is already covered by the proximity window
	// above. The original dashboard carries the same dead branch, and the
	// intended precedence between the two rules is ambiguous, so it is kept
	// verbatim rather than silently resolved.
	if diff == 0 {
		return StateSIPDue
	}

	return StateIdle
}

// MonthStates derives the state of every day in a month at once, for
// rendering a calendar grid.
func MonthStates(month Range, commitments []Commitment, entries []Entry, today Date) map[Date]DateState {
	states := make(map[Date]DateState)
	for on := range month.Days() {
		states[on] = DeriveDateState(on, commitments, entries, today)
	}
	return states
}
