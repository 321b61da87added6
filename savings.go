package main

// Savings growth projection: accumulation with monthly compounding, fee drag
// and annual escalation of the contribution, plus the bisection inverse
// ("what must I save each month to reach a target").

// SavingsInput is the scenario for one savings projection. Zero-valued rates
// fall back to the configured defaults at the boundary, not here; the core
// takes the scenario at face value.
type SavingsInput struct {
	InitialBalance      float64     `json:"initial_balance"`
	MonthlyContribution float64     `json:"monthly_contribution"`
	AnnualReturnRate    float64     `json:"annual_return_rate"`
	FeeRate             float64     `json:"fee_rate"`
	EscalationRate      float64     `json:"escalation_rate"`
	Years               int         `json:"years"`
	Compounding         Compounding `json:"-"`
}

// SavingsResult aggregates one projection run
type SavingsResult struct {
	FinalBalance       float64  `json:"final_balance"`
	TotalContributions float64  `json:"total_contributions"`
	TotalInterest      float64  `json:"total_interest"`
	TotalFees          float64  `json:"total_fees"`
	Timeline           Timeline `json:"timeline"`
}

// ProjectSavings runs the accumulation simulation for the scenario
func ProjectSavings(input SavingsInput) (SavingsResult, error) {
	if input.Years <= 0 {
		return SavingsResult{}, invalidParam("years", "must be positive, got %d", input.Years)
	}
	if input.InitialBalance < 0 {
		return SavingsResult{}, invalidParam("initialBalance", "must not be negative, got %.2f", input.InitialBalance)
	}
	if input.MonthlyContribution < 0 {
		return SavingsResult{}, invalidParam("monthlyContribution", "must not be negative, got %.2f", input.MonthlyContribution)
	}

	ppy := input.Compounding.PeriodsPerYear()
	policy := AccumulationPolicy{
		Contribution:     input.MonthlyContribution * 12 / float64(ppy),
		EscalationRate:   input.EscalationRate,
		AnnualReturnRate: input.AnnualReturnRate,
		AnnualFeeRate:    input.FeeRate,
		PeriodsPerYear:   ppy,
	}

	timeline := RunTimeline(input.InitialBalance, input.Years*ppy, ppy, policy)
	final := timeline.Final()

	var totalFees float64
	for _, rec := range timeline {
		totalFees += rec.Fees
	}

	return SavingsResult{
		FinalBalance:       final.Balance,
		TotalContributions: final.CumulativeContribution,
		TotalInterest:      final.CumulativeInterest,
		TotalFees:          totalFees,
		Timeline:           timeline,
	}, nil
}

// RequiredSavingsResult reports the solved contribution with convergence
// diagnostics; a run that hit the iteration cap still carries its best
// estimate, flagged by Converged=false.
type RequiredSavingsResult struct {
	MonthlyContribution float64 `json:"monthly_contribution"`
	ProjectedBalance    float64 `json:"projected_balance"`
	Converged           bool    `json:"converged"`
	Iterations          int     `json:"iterations"`
}

// RequiredMonthlySavings inverts the projection: the monthly contribution
// that grows the initial balance to the target over the horizon. A target
// already at or below the initial balance short-circuits to zero effort.
func RequiredMonthlySavings(target float64, input SavingsInput) (RequiredSavingsResult, error) {
	if target <= 0 {
		return RequiredSavingsResult{}, invalidParam("target", "must be positive, got %.2f", target)
	}
	if input.Years <= 0 {
		return RequiredSavingsResult{}, invalidParam("years", "must be positive, got %d", input.Years)
	}

	// Degenerate goal: already there, no simulation needed.
	if target <= input.InitialBalance {
		return RequiredSavingsResult{
			MonthlyContribution: 0,
			ProjectedBalance:    input.InitialBalance,
			Converged:           true,
		}, nil
	}

	objective := func(monthly float64) float64 {
		scenario := input
		scenario.MonthlyContribution = monthly
		result, err := ProjectSavings(scenario)
		if err != nil {
			return 0
		}
		return result.FinalBalance
	}

	// Bracket: even with zero growth, target/months per month is enough.
	upper := target / float64(input.Years*12)
	if upper <= 0 {
		upper = 1
	}

	res := Bisect(SolveRequest{
		Target:          target,
		Lower:           0,
		Upper:           upper * 2,
		Tolerance:       0.001,
		TargetTolerance: 0.5,
		Increasing:      true,
		Objective:       objective,
	})

	return RequiredSavingsResult{
		MonthlyContribution: res.Value,
		ProjectedBalance:    objective(res.Value),
		Converged:           res.Converged,
		Iterations:          res.Iterations,
	}, nil
}

// SensitivityPoint is one cell of a growth-rate sweep
type SensitivityPoint struct {
	AnnualReturnRate float64 `json:"annual_return_rate"`
	FinalBalance     float64 `json:"final_balance"`
}

// SavingsSensitivity re-runs the projection across a range of return rates
// so callers can see how exposed the outcome is to market assumptions.
func SavingsSensitivity(input SavingsInput, minRate, maxRate, step float64) ([]SensitivityPoint, error) {
	if step <= 0 {
		return nil, invalidParam("step", "must be positive, got %.4f", step)
	}
	if maxRate < minRate {
		return nil, invalidParam("maxRate", "must not be below minRate")
	}

	var points []SensitivityPoint
	for rate := minRate; rate <= maxRate+step/2; rate += step {
		scenario := input
		scenario.AnnualReturnRate = rate
		result, err := ProjectSavings(scenario)
		if err != nil {
			return nil, err
		}
		points = append(points, SensitivityPoint{
			AnnualReturnRate: rate,
			FinalBalance:     result.FinalBalance,
		})
	}
	return points, nil
}
