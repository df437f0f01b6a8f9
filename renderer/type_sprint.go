package renderer

import "github.com/arthapath/finplan"

// SprintReport is a struct to represent sprint status for rendering.
type SprintReport struct {
	AsOf   string `json:"asOf"`
	Active bool   `json:"active"`

	Cadence string `json:"cadence,omitempty"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`

	DisciplineMonths int             `json:"disciplineMonths"`
	JourneyPercent   finplan.Percent `json:"journeyPercent"`
	JourneyDelta     finplan.Percent `json:"journeyDelta"`
	CorpusPercent    int             `json:"corpusPercent"`
}

// NewSprintReport builds a SprintReport from the tracker state and KPIs.
// active is nil when no sprint is running.
func NewSprintReport(active *finplan.Sprint, kpis finplan.SprintKPIs) *SprintReport {
	r := &SprintReport{
		AsOf:             Now().Format("2006-01-02 15:04:05"),
		DisciplineMonths: kpis.DisciplineMonths,
		JourneyPercent:   finplan.Percent(kpis.JourneyPercent),
		JourneyDelta:     finplan.Percent(kpis.JourneyDelta),
		CorpusPercent:    kpis.CorpusPercent,
	}
	if active != nil {
		r.Active = true
		r.Cadence = active.Cadence.String()
		r.Start = active.Start.String()
		r.End = active.End.String()
	}
	return r
}
