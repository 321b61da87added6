package main

// Superannuation projection: accumulation with the flat contributions tax and
// earnings tax netted off each inflow before compounding, wage-growth
// escalation of contributions, and the required-contribution-rate inverse.

// SuperInput is the scenario for one super projection. EmployerRate at zero
// means the configured super guarantee applies.
type SuperInput struct {
	Salary           float64     `json:"salary"`
	Balance          float64     `json:"balance"`
	EmployerRate     float64     `json:"employer_rate"`
	PersonalRate     float64     `json:"personal_rate"`
	WageGrowthRate   float64     `json:"wage_growth_rate"`
	AnnualReturnRate float64     `json:"annual_return_rate"`
	FeeRate          float64     `json:"fee_rate"`
	Years            int         `json:"years"`
	Compounding      Compounding `json:"-"`
}

// SuperResult aggregates one projection run
type SuperResult struct {
	FinalBalance       float64  `json:"final_balance"`
	TotalContributions float64  `json:"total_contributions"`
	TotalEarnings      float64  `json:"total_earnings"`
	TotalTax           float64  `json:"total_tax"`
	TotalFees          float64  `json:"total_fees"`
	Timeline           Timeline `json:"timeline"`
}

// ProjectSuper runs the accumulation simulation for a super scenario
func ProjectSuper(input SuperInput, config *Config) (SuperResult, error) {
	if input.Salary <= 0 {
		return SuperResult{}, invalidParam("salary", "must be positive, got %.2f", input.Salary)
	}
	if input.Years <= 0 {
		return SuperResult{}, invalidParam("years", "must be positive, got %d", input.Years)
	}
	if input.PersonalRate < 0 {
		return SuperResult{}, invalidParam("personalRate", "must not be negative, got %.4f", input.PersonalRate)
	}

	employerRate := input.EmployerRate
	if employerRate <= 0 {
		employerRate = config.Super.GetGuaranteeRate()
	}

	ppy := input.Compounding.PeriodsPerYear()
	annualContribution := input.Salary * (employerRate + input.PersonalRate)

	policy := AccumulationPolicy{
		Contribution:         annualContribution / float64(ppy),
		EscalationRate:       input.WageGrowthRate,
		AnnualReturnRate:     input.AnnualReturnRate,
		AnnualFeeRate:        input.FeeRate,
		ContributionsTaxRate: config.Super.ContributionsTaxRate,
		EarningsTaxRate:      config.Super.EarningsTaxRate,
		PeriodsPerYear:       ppy,
	}

	timeline := RunTimeline(input.Balance, input.Years*ppy, ppy, policy)
	final := timeline.Final()

	var totalTax, totalFees float64
	for _, rec := range timeline {
		totalTax += rec.Tax
		totalFees += rec.Fees
	}

	return SuperResult{
		FinalBalance:       final.Balance,
		TotalContributions: final.CumulativeContribution,
		TotalEarnings:      final.CumulativeInterest,
		TotalTax:           totalTax,
		TotalFees:          totalFees,
		Timeline:           timeline,
	}, nil
}

// RequiredRateResult reports the solved personal contribution rate
type RequiredRateResult struct {
	PersonalRate     float64 `json:"personal_rate"`
	ProjectedBalance float64 `json:"projected_balance"`
	Converged        bool    `json:"converged"`
	Iterations       int     `json:"iterations"`
}

// RequiredContributionRate finds the personal contribution rate in [0, 0.5]
// that grows the scenario to the target balance. The final balance increases
// strictly with the rate, the monotonicity the bisection depends on. A target
// already reached with no personal contributions short-circuits to zero.
func RequiredContributionRate(target float64, input SuperInput, config *Config) (RequiredRateResult, error) {
	if target <= 0 {
		return RequiredRateResult{}, invalidParam("target", "must be positive, got %.2f", target)
	}

	objective := func(rate float64) float64 {
		scenario := input
		scenario.PersonalRate = rate
		result, err := ProjectSuper(scenario, config)
		if err != nil {
			return 0
		}
		return result.FinalBalance
	}

	baseline := objective(0)
	if target <= baseline {
		return RequiredRateResult{PersonalRate: 0, ProjectedBalance: baseline, Converged: true}, nil
	}

	res := Bisect(SolveRequest{
		Target:          target,
		Lower:           0,
		Upper:           0.5,
		Tolerance:       1e-6,
		TargetTolerance: 1,
		Increasing:      true,
		Objective:       objective,
	})

	return RequiredRateResult{
		PersonalRate:     res.Value,
		ProjectedBalance: objective(res.Value),
		Converged:        res.Converged,
		Iterations:       res.Iterations,
	}, nil
}
