package main

// Loan amortization: closed-form payment, full schedule via the amortization
// step policy, and borrowing capacity as the bisection inverse.

// LoanInput is the scenario for one amortization schedule
type LoanInput struct {
	Principal       float64 `json:"principal"`
	AnnualRate      float64 `json:"annual_rate"`
	TermYears       int     `json:"term_years"`
	PaymentsPerYear int     `json:"payments_per_year"`
}

// LoanResult aggregates a schedule. The Timeline is compacted to one record
// per year; Contribution carries the principal paid, Withdrawal the total
// payments made in the year.
type LoanResult struct {
	Payment       float64  `json:"payment"`
	Periods       int      `json:"periods"`
	TotalPaid     float64  `json:"total_paid"`
	TotalInterest float64  `json:"total_interest"`
	FinalBalance  float64  `json:"final_balance"`
	Schedule      Timeline `json:"schedule"`
}

// AmortizeLoan computes the fixed payment and runs the full schedule
func AmortizeLoan(input LoanInput) (LoanResult, error) {
	if input.Principal <= 0 {
		return LoanResult{}, invalidParam("principal", "must be positive, got %.2f", input.Principal)
	}
	if input.TermYears <= 0 {
		return LoanResult{}, invalidParam("termYears", "must be positive, got %d", input.TermYears)
	}
	if input.AnnualRate < 0 {
		return LoanResult{}, invalidParam("annualRate", "must not be negative, got %.4f", input.AnnualRate)
	}

	ppy := input.PaymentsPerYear
	if ppy <= 0 {
		ppy = 12
	}
	periods := input.TermYears * ppy
	periodRate := input.AnnualRate / float64(ppy)

	payment := AnnuityPayment(input.Principal, periodRate, periods)

	schedule := RunTimeline(input.Principal, periods, ppy, AmortizationPolicy{
		Payment:    payment,
		PeriodRate: periodRate,
	})

	var totalPaid, totalInterest float64
	for _, rec := range schedule {
		totalPaid += rec.Withdrawal
		totalInterest += rec.Interest
	}

	return LoanResult{
		Payment:       payment,
		Periods:       periods,
		TotalPaid:     totalPaid,
		TotalInterest: totalInterest,
		FinalBalance:  schedule.FinalBalance(),
		Schedule:      schedule,
	}, nil
}

// BorrowingCapacityResult reports the solved principal
type BorrowingCapacityResult struct {
	Principal float64 `json:"principal"`
	Payment   float64 `json:"payment"`
	Converged bool    `json:"converged"`
}

// BorrowingCapacity inverts the annuity formula: the largest principal whose
// per-period payment stays within the affordable payment. The payment is
// monotonically increasing in the principal, which is what the bisection
// relies on.
func BorrowingCapacity(affordablePayment, annualRate float64, termYears, paymentsPerYear int) (BorrowingCapacityResult, error) {
	if affordablePayment <= 0 {
		return BorrowingCapacityResult{}, invalidParam("affordablePayment", "must be positive, got %.2f", affordablePayment)
	}
	if termYears <= 0 {
		return BorrowingCapacityResult{}, invalidParam("termYears", "must be positive, got %d", termYears)
	}
	if annualRate < 0 {
		return BorrowingCapacityResult{}, invalidParam("annualRate", "must not be negative, got %.4f", annualRate)
	}

	ppy := paymentsPerYear
	if ppy <= 0 {
		ppy = 12
	}
	periods := termYears * ppy
	periodRate := annualRate / float64(ppy)

	// An interest-free loan bounds the principal from above.
	upper := affordablePayment * float64(periods)

	res := Bisect(SolveRequest{
		Target:     affordablePayment,
		Lower:      0,
		Upper:      upper,
		Tolerance:  0.01,
		Increasing: true,
		Objective: func(principal float64) float64 {
			return AnnuityPayment(principal, periodRate, periods)
		},
	})

	return BorrowingCapacityResult{
		Principal: res.Value,
		Payment:   AnnuityPayment(res.Value, periodRate, periods),
		Converged: res.Converged,
	}, nil
}
