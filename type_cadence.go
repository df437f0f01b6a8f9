package finplan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Cadence is the rhythm of a commitment: how often a SIP execution (or a
// sprint cycle) is due.
type Cadence int

const (
	Monthly Cadence = iota
	Quarterly
	Annual
)

func (c Cadence) String() string {
	switch c {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Annual:
		return "annual"
	default:
		panic(fmt.Sprintf("unknown cadence %d", c))
	}
}

// Months returns the number of calendar months one cycle of this cadence spans.
func (c Cadence) Months() int {
	switch c {
	case Monthly:
		return 1
	case Quarterly:
		return 3
	case Annual:
		return 12
	default:
		panic(fmt.Sprintf("unknown cadence %d", c))
	}
}

// Next returns the date one cycle of this cadence after d.
func (c Cadence) Next(d Date) Date { return d.AddMonth(c.Months()) }

func ParseCadence(s string) (Cadence, error) {
	switch strings.ToLower(s) {
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "annual", "yearly", "year":
		return Annual, nil
	default:
		return Monthly, fmt.Errorf("unknown cadence %q", s)
	}
}

// MarshalJSON persists the cadence as its lowercase name.
func (c Cadence) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *Cadence) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseCadence(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
