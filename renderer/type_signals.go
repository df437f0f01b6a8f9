package renderer

import "github.com/arthapath/finplan"

// SignalsReport is a struct to represent derived journal signals for
// rendering.
type SignalsReport struct {
	AsOf            string      `json:"asOf"`
	DisciplineScore float64     `json:"disciplineScore"`
	Signals         []SignalRow `json:"signals"`
}

// SignalRow is a single line of the signals table.
type SignalRow struct {
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Reason   string `json:"reason"`
}

// NewSignalsReport builds a SignalsReport from derived signals and the
// recent-window discipline score.
func NewSignalsReport(score float64, signals []finplan.Signal) *SignalsReport {
	r := &SignalsReport{
		AsOf:            Now().Format("2006-01-02 15:04:05"),
		DisciplineScore: score,
	}
	for _, s := range signals {
		r.Signals = append(r.Signals, SignalRow{
			Severity: string(s.Severity),
			Title:    s.Title,
			Reason:   s.Reason,
		})
	}
	return r
}

// MonthlyReport is a struct to represent the monthly rollup for rendering.
type MonthlyReport struct {
	AsOf                string        `json:"asOf"`
	Month               string        `json:"month"`
	Entries             int           `json:"entries"`
	AvgDiscipline       float64       `json:"avgDiscipline"`
	SIPChangeTotal      finplan.Money `json:"sipChangeTotal"`
	EmergencySpendTotal finplan.Money `json:"emergencySpendTotal"`
	TopImprovement      string        `json:"topImprovement"`
	NextFocus           string        `json:"nextFocus"`
}

// NewMonthlyReport builds a MonthlyReport from a rollup.
func NewMonthlyReport(rollup finplan.MonthlyRollup, currency string) *MonthlyReport {
	return &MonthlyReport{
		AsOf:                Now().Format("2006-01-02 15:04:05"),
		Month:               rollup.Month,
		Entries:             rollup.Entries,
		AvgDiscipline:       rollup.AvgDiscipline,
		SIPChangeTotal:      finplan.M(rollup.SIPChangeTotal, currency),
		EmergencySpendTotal: finplan.M(rollup.EmergencySpendTotal, currency),
		TopImprovement:      rollup.TopImprovement,
		NextFocus:           rollup.NextFocus,
	}
}
