package main

// Retirement planning: the savings-goal / withdrawal-rate closed-form pair
// and the drawdown simulation that shows how long a balance lasts.

// SavingsGoal returns the nest egg needed to fund annual expenses at a
// sustainable withdrawal rate: 12 * monthlyExpenses / rate.
func SavingsGoal(monthlyExpenses, withdrawalRate float64) (float64, error) {
	if monthlyExpenses <= 0 {
		return 0, invalidParam("monthlyExpenses", "must be positive, got %.2f", monthlyExpenses)
	}
	if withdrawalRate <= 0 || withdrawalRate > 1 {
		return 0, invalidParam("withdrawalRate", "must be in (0, 1], got %.4f", withdrawalRate)
	}
	return monthlyExpenses * 12 / withdrawalRate, nil
}

// WithdrawalRate is the inverse of SavingsGoal: the rate a nest egg implies
// for given annual expenses.
func WithdrawalRate(savingsGoal, monthlyExpenses float64) (float64, error) {
	if savingsGoal <= 0 {
		return 0, invalidParam("savingsGoal", "must be positive, got %.2f", savingsGoal)
	}
	if monthlyExpenses <= 0 {
		return 0, invalidParam("monthlyExpenses", "must be positive, got %.2f", monthlyExpenses)
	}
	return monthlyExpenses * 12 / savingsGoal, nil
}

// DrawdownInput is the scenario for a retirement drawdown simulation
type DrawdownInput struct {
	Balance           float64     `json:"balance"`
	MonthlyWithdrawal float64     `json:"monthly_withdrawal"`
	AnnualReturnRate  float64     `json:"annual_return_rate"`
	InflationRate     float64     `json:"inflation_rate"`
	EarningsTaxRate   float64     `json:"earnings_tax_rate"`
	CurrentAge        int         `json:"current_age"`
	Years             int         `json:"years"`
	Compounding       Compounding `json:"-"`
}

// DrawdownResult reports how the balance held up over the horizon
type DrawdownResult struct {
	Timeline              Timeline `json:"timeline"`
	FinalBalance          float64  `json:"final_balance"`
	Exhausted             bool     `json:"exhausted"`
	YearsLasted           int      `json:"years_lasted"`
	AgeExhausted          int      `json:"age_exhausted,omitempty"`
	TotalWithdrawn        float64  `json:"total_withdrawn"`
	InitialWithdrawalRate float64  `json:"initial_withdrawal_rate"`
	SustainabilityTier    string   `json:"sustainability_tier"`
}

// sustainabilityTier maps the initial withdrawal rate to a rule-of-thumb
// confidence label. Deliberately coarse; this is not a Monte-Carlo model.
func sustainabilityTier(rate float64) string {
	switch {
	case rate <= 0.04:
		return "High"
	case rate <= 0.055:
		return "Moderate"
	case rate <= 0.07:
		return "Low"
	default:
		return "Very Low"
	}
}

// ProjectDrawdown draws the balance down month by month with inflation
// escalated withdrawals, clamping at zero once exhausted.
func ProjectDrawdown(input DrawdownInput) (DrawdownResult, error) {
	if input.Balance <= 0 {
		return DrawdownResult{}, invalidParam("balance", "must be positive, got %.2f", input.Balance)
	}
	if input.MonthlyWithdrawal <= 0 {
		return DrawdownResult{}, invalidParam("monthlyWithdrawal", "must be positive, got %.2f", input.MonthlyWithdrawal)
	}
	if input.Years <= 0 {
		return DrawdownResult{}, invalidParam("years", "must be positive, got %d", input.Years)
	}

	ppy := input.Compounding.PeriodsPerYear()
	policy := DecumulationPolicy{
		Withdrawal:       input.MonthlyWithdrawal * 12 / float64(ppy),
		EscalationRate:   input.InflationRate,
		AnnualReturnRate: input.AnnualReturnRate,
		EarningsTaxRate:  input.EarningsTaxRate,
		PeriodsPerYear:   ppy,
	}

	timeline := RunTimeline(input.Balance, input.Years*ppy, ppy, policy)

	result := DrawdownResult{
		Timeline:              timeline,
		FinalBalance:          timeline.FinalBalance(),
		InitialWithdrawalRate: input.MonthlyWithdrawal * 12 / input.Balance,
	}
	result.SustainabilityTier = sustainabilityTier(result.InitialWithdrawalRate)

	yearsLasted := input.Years
	for _, rec := range timeline {
		result.TotalWithdrawn += rec.Withdrawal
		if !result.Exhausted && rec.Balance <= 0 {
			result.Exhausted = true
			yearsLasted = (rec.Index + ppy - 1) / ppy
			if input.CurrentAge > 0 {
				result.AgeExhausted = input.CurrentAge + yearsLasted
			}
		}
	}
	result.YearsLasted = yearsLasted

	return result, nil
}
