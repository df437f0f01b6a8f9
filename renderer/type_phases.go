package renderer

import "github.com/arthapath/finplan"

// PhasesReport is a struct to represent the journey phase progression for
// rendering.
type PhasesReport struct {
	AsOf       string         `json:"asOf"`
	Current    string         `json:"current"`
	Phases     []PhaseRow     `json:"phases"`
	Milestones []MilestoneRow `json:"milestones"` // milestones of the current phase
}

// PhaseRow is a single line of the phase table.
type PhaseRow struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Percent int    `json:"percent"`
}

// MilestoneRow is a checklist line for the current phase.
type MilestoneRow struct {
	ID  string `json:"id"`
	Met bool   `json:"met"`
}

// NewPhasesReport builds a PhasesReport from scored progress.
func NewPhasesReport(progress []finplan.PhaseProgress) *PhasesReport {
	current := finplan.DetectCurrentPhase(progress)
	r := &PhasesReport{
		AsOf:    Now().Format("2006-01-02 15:04:05"),
		Current: string(current),
	}
	for _, pp := range progress {
		r.Phases = append(r.Phases, PhaseRow{
			Name:    string(pp.Phase),
			Status:  string(pp.Status),
			Percent: pp.Percent,
		})
		if pp.Phase == current {
			for _, m := range pp.Milestones {
				r.Milestones = append(r.Milestones, MilestoneRow{ID: m.ID, Met: m.Met})
			}
		}
	}
	return r
}
