package main

// Net-worth projection: each asset compounds at its own growth rate, each
// liability amortizes under its payment, and the yearly difference is the
// projected net worth.

// Asset is one growing holding
type Asset struct {
	Name       string  `json:"name" yaml:"name"`
	Value      float64 `json:"value" yaml:"value"`
	GrowthRate float64 `json:"growth_rate" yaml:"growth_rate"`
}

// Liability is one amortizing debt. A zero payment leaves the debt accruing
// interest instead of being paid down.
type Liability struct {
	Name           string  `json:"name" yaml:"name"`
	Balance        float64 `json:"balance" yaml:"balance"`
	AnnualRate     float64 `json:"annual_rate" yaml:"annual_rate"`
	MonthlyPayment float64 `json:"monthly_payment" yaml:"monthly_payment"`
}

// NetWorthInput is the scenario for one projection
type NetWorthInput struct {
	Assets      []Asset     `json:"assets"`
	Liabilities []Liability `json:"liabilities"`
	Years       int         `json:"years"`
}

// NetWorthYear is one year's combined position
type NetWorthYear struct {
	Year             int     `json:"year"`
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	NetWorth         float64 `json:"net_worth"`
}

// NetWorthResult is the full projection
type NetWorthResult struct {
	StartingNetWorth float64        `json:"starting_net_worth"`
	FinalNetWorth    float64        `json:"final_net_worth"`
	Years            []NetWorthYear `json:"years"`
}

// accrualPolicy grows an unpaid liability at its period rate
type accrualPolicy struct {
	periodRate float64
}

func (p accrualPolicy) Step(index int, balance float64) StepOutcome {
	interest := balance * p.periodRate
	return StepOutcome{Balance: balance + interest, Interest: interest}
}

// ProjectNetWorth simulates all assets and liabilities over the horizon
func ProjectNetWorth(input NetWorthInput) (NetWorthResult, error) {
	if input.Years <= 0 {
		return NetWorthResult{}, invalidParam("years", "must be positive, got %d", input.Years)
	}
	if len(input.Assets) == 0 && len(input.Liabilities) == 0 {
		return NetWorthResult{}, invalidParam("assets", "at least one asset or liability is required")
	}
	for _, a := range input.Assets {
		if a.Value < 0 {
			return NetWorthResult{}, invalidParam("assets", "%s: value must not be negative, got %.2f", a.Name, a.Value)
		}
	}
	for _, l := range input.Liabilities {
		if l.Balance < 0 {
			return NetWorthResult{}, invalidParam("liabilities", "%s: balance must not be negative, got %.2f", l.Name, l.Balance)
		}
	}

	periods := input.Years * 12

	assetTimelines := make([]Timeline, len(input.Assets))
	for i, a := range input.Assets {
		assetTimelines[i] = RunTimeline(a.Value, periods, 12, AccumulationPolicy{
			AnnualReturnRate: a.GrowthRate,
			PeriodsPerYear:   12,
		})
	}

	liabilityTimelines := make([]Timeline, len(input.Liabilities))
	for i, l := range input.Liabilities {
		if l.MonthlyPayment > 0 {
			liabilityTimelines[i] = RunTimeline(l.Balance, periods, 12, AmortizationPolicy{
				Payment:    l.MonthlyPayment,
				PeriodRate: l.AnnualRate / 12,
			})
		} else {
			liabilityTimelines[i] = RunTimeline(l.Balance, periods, 12, accrualPolicy{
				periodRate: l.AnnualRate / 12,
			})
		}
	}

	result := NetWorthResult{}
	for _, a := range input.Assets {
		result.StartingNetWorth += a.Value
	}
	for _, l := range input.Liabilities {
		result.StartingNetWorth -= l.Balance
	}

	for year := 1; year <= input.Years; year++ {
		entry := NetWorthYear{Year: year}
		for _, tl := range assetTimelines {
			entry.TotalAssets += tl[year-1].Balance
		}
		for _, tl := range liabilityTimelines {
			entry.TotalLiabilities += tl[year-1].Balance
		}
		entry.NetWorth = entry.TotalAssets - entry.TotalLiabilities
		result.Years = append(result.Years, entry)
	}

	result.FinalNetWorth = result.Years[len(result.Years)-1].NetWorth
	return result, nil
}
