package main

import "fmt"

// Compounding represents how many simulation periods make up one year
type Compounding int

const (
	CompoundMonthly Compounding = iota
	CompoundFortnightly
	CompoundQuarterly
	CompoundAnnually
)

func (c Compounding) String() string {
	switch c {
	case CompoundMonthly:
		return "Monthly"
	case CompoundFortnightly:
		return "Fortnightly"
	case CompoundQuarterly:
		return "Quarterly"
	case CompoundAnnually:
		return "Annually"
	default:
		return "Unknown"
	}
}

// PeriodsPerYear returns the number of simulation steps per year
func (c Compounding) PeriodsPerYear() int {
	switch c {
	case CompoundMonthly:
		return 12
	case CompoundFortnightly:
		return 26
	case CompoundQuarterly:
		return 4
	case CompoundAnnually:
		return 1
	default:
		return 12
	}
}

// ParseCompounding maps a config/query value to a Compounding frequency.
// Unrecognised values fall back to monthly, the documented default.
func ParseCompounding(s string) Compounding {
	switch s {
	case "fortnightly":
		return CompoundFortnightly
	case "quarterly":
		return CompoundQuarterly
	case "annually", "yearly":
		return CompoundAnnually
	default:
		return CompoundMonthly
	}
}

// HouseholdType distinguishes single and couple rates for means testing
type HouseholdType int

const (
	HouseholdSingle HouseholdType = iota
	HouseholdCouple
)

func (h HouseholdType) String() string {
	if h == HouseholdCouple {
		return "Couple"
	}
	return "Single"
}

// BindingTest identifies which means test determined the final entitlement
type BindingTest int

const (
	TestNone BindingTest = iota
	TestAssets
	TestIncome
)

func (b BindingTest) String() string {
	switch b {
	case TestAssets:
		return "Assets Test"
	case TestIncome:
		return "Income Test"
	default:
		return "None"
	}
}

// PeriodRecord captures one emitted simulation step. With compaction enabled
// a record aggregates every fine-grained period since the previous record.
type PeriodRecord struct {
	Index                  int     `json:"index"`
	Balance                float64 `json:"balance"`
	Contribution           float64 `json:"contribution"`
	Withdrawal             float64 `json:"withdrawal"`
	Interest               float64 `json:"interest"`
	Fees                   float64 `json:"fees"`
	Tax                    float64 `json:"tax"`
	CumulativeContribution float64 `json:"cumulative_contribution"`
	CumulativeInterest     float64 `json:"cumulative_interest"`
}

// Timeline is the ordered sequence of records produced by one simulation run
type Timeline []PeriodRecord

// Final returns the last record of the timeline
func (tl Timeline) Final() PeriodRecord {
	if len(tl) == 0 {
		return PeriodRecord{}
	}
	return tl[len(tl)-1]
}

// FinalBalance returns the closing balance of the run (0 for an empty run)
func (tl Timeline) FinalBalance() float64 {
	return tl.Final().Balance
}

// InvalidParameterError reports a precondition violated before any simulation
// step executed. The operation returns no partial results alongside it.
type InvalidParameterError struct {
	Param   string
	Message string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Message)
}

func invalidParam(param, format string, args ...any) error {
	return &InvalidParameterError{Param: param, Message: fmt.Sprintf(format, args...)}
}
