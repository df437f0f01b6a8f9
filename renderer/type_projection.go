package renderer

import (
	"os"
	"time"

	"github.com/arthapath/finplan"
)

// Now is the current time used in reports.
// it has to be a global variable so that tests can override it.
func Now() time.Time {
	if os.Getenv("FINPLAN_TESTING_NOW") != "" {
		t, err := time.Parse("2006-01-02 15:04:05", os.Getenv("FINPLAN_TESTING_NOW"))
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// ProjectionReport is a struct to represent projection data for rendering.
type ProjectionReport struct {
	AsOf           string          `json:"asOf"`
	Months         int             `json:"months"`
	MonthlyRate    finplan.Percent `json:"monthlyRate"`
	MonthlySIP     finplan.Money   `json:"monthlySIP"`
	Corpus         finplan.Money   `json:"corpus"`
	Required       finplan.Money   `json:"required"`
	HealthCost     finplan.Money   `json:"healthCost"`
	HealthAdjusted finplan.Money   `json:"healthAdjusted"`
	FundedPercent  finplan.Percent `json:"fundedPercent"`
}

// NewProjectionReport builds a ProjectionReport from a profile. The monthly
// health load feeds the health-adjusted corpus; pass 0 to skip it.
func NewProjectionReport(p finplan.UserProfile, monthlyHealthLoad float64, currency string) *ProjectionReport {
	p = p.Normalize()
	proj := finplan.ProjectHealthAdjusted(p, monthlyHealthLoad)
	required := finplan.RequiredCorpus(p)

	var funded finplan.Percent
	if required > 0 {
		funded = finplan.Percent(proj.Corpus / required * 100)
	}

	return &ProjectionReport{
		AsOf:           Now().Format("2006-01-02 15:04:05"),
		Months:         proj.Months,
		MonthlyRate:    finplan.Percent(proj.MonthlyRate * 100),
		MonthlySIP:     finplan.M(p.MonthlySIP, currency),
		Corpus:         finplan.M(proj.Corpus, currency),
		Required:       finplan.M(required, currency),
		HealthCost:     finplan.M(proj.LifetimeHealthCost, currency),
		HealthAdjusted: finplan.M(proj.AdjustedCorpus, currency),
		FundedPercent:  funded,
	}
}
