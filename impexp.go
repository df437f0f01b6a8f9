package finplan

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// DashboardExport is the result of importing the web dashboard's exported
// storage blob: everything the local tool needs to take over tracking.
type DashboardExport struct {
	Profile UserProfile
	Entries []Entry
	Active  *Sprint
	History []Sprint
}

// ImportDashboard reads the JSON blob the web dashboard exports from its
// browser storage and extracts the profile, journal entries and sprint log.
// Field extraction is path-based so the import survives the extra
// presentation-only keys the dashboard stores alongside; malformed numeric
// fields degrade to defaults per the record normalization rules. Records
// whose date cannot be parsed are dropped: a zero date cannot key a journal
// entry and does not survive a JSONL round trip.
func ImportDashboard(r io.Reader) (*DashboardExport, error) {
	var blob any
	if err := json.NewDecoder(r).Decode(&blob); err != nil {
		return nil, fmt.Errorf("invalid dashboard export: %w", err)
	}

	out := &DashboardExport{}

	if raw, err := jsonpath.Get("$.profile", blob); err == nil {
		out.Profile = importProfile(raw).Normalize()
	}

	if raw, err := jsonpath.Get("$.journal[*]", blob); err == nil {
		for _, item := range asList(raw) {
			e := importEntry(item)
			if e.Date.IsZero() {
				continue
			}
			out.Entries = append(out.Entries, e)
		}
	}

	if raw, err := jsonpath.Get("$.sprints.active", blob); err == nil && raw != nil {
		s := importSprint(raw)
		if s.Status == SprintInProgress && !s.Start.IsZero() && !s.End.IsZero() {
			out.Active = &s
		}
	}

	if raw, err := jsonpath.Get("$.sprints.history[*]", blob); err == nil {
		for _, item := range asList(raw) {
			s := importSprint(item)
			if s.Start.IsZero() || s.End.IsZero() {
				continue
			}
			out.History = append(out.History, s)
		}
	}

	return out, nil
}

// asList normalizes a jsonpath result: a [*] query may yield a single
// answer or a list of answers depending on the document.
func asList(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{v}
}

func importProfile(raw any) UserProfile {
	return UserProfile{
		CurrentAge:      int(jnum(raw, "currentAge")),
		RetirementAge:   int(jnum(raw, "retirementAge")),
		LifeExpectancy:  int(jnum(raw, "lifeExpectancy")),
		MonthlyIncome:   jnum(raw, "monthlyIncome"),
		MonthlyExpenses: jnum(raw, "monthlyExpenses"),
		CurrentSavings:  jnum(raw, "currentSavings"),
		MonthlySIP:      jnum(raw, "monthlySIP"),
		ExpectedReturns: Percent(jnum(raw, "expectedReturns")),
		PostReturns:     Percent(jnum(raw, "postReturns")),
		Inflation:       Percent(jnum(raw, "inflation")),
	}
}

func importEntry(raw any) Entry {
	status, err := ParseEntryStatus(jstr(raw, "status"))
	if err != nil {
		// Unknown statuses are recorded as missed rather than dropped, so
		// the calendar still sees the date was acted on.
		status = StatusMissed
	}
	return Entry{
		Date:            ParseDateOrZero(jstr(raw, "date")),
		Status:          status,
		Title:           jstr(raw, "title"),
		Reflection:      jstr(raw, "reflection"),
		SIPChange:       jnum(raw, "sipChange"),
		ExpenseDrift:    jnum(raw, "expenseDrift"),
		EmergencySpend:  jnum(raw, "emergencySpend"),
		DisciplineScore: jnum(raw, "disciplineScore"),
		CompletedAction: jstr(raw, "completedAction"),
		Phase:           PhaseID(jstr(raw, "phase")),
	}.normalize()
}

func importSprint(raw any) Sprint {
	cadence, err := ParseCadence(jstr(raw, "type"))
	if err != nil {
		cadence = Monthly
	}
	status := SprintStatus(jstr(raw, "status"))
	if status != SprintInProgress {
		status = SprintCompleted
	}
	return Sprint{
		Cadence:     cadence,
		Start:       ParseDateOrZero(jstr(raw, "startDate")),
		End:         ParseDateOrZero(jstr(raw, "endDate")),
		Status:      status,
		CompletedOn: ParseDateOrZero(jstr(raw, "completedOn")),
	}
}

// jstr extracts a string field from a decoded JSON object, "" when absent
// or of the wrong type.
func jstr(obj any, key string) string {
	m, ok := obj.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// jnum extracts a numeric field from a decoded JSON object. It tolerates
// the dashboard's habit of storing numbers as strings; anything else
// degrades to 0.
func jnum(obj any, key string) float64 {
	m, ok := obj.(map[string]any)
	if !ok {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case string:
		var f float64
		if _, err := fmt.Sscanf(v, "%g", &f); err == nil {
			return f
		}
	}
	return 0
}
