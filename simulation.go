package main

import (
	"math"
)

// Generic time-stepped balance simulation. Every calculator that evolves a
// balance period by period (savings, super, loan, drawdown, mortgage-vs-rent)
// runs through RunTimeline with a step policy supplying only the per-period
// update; the loop, record aggregation and annual compaction live here once.

// StepOutcome reports the flows of one period and the closing balance.
// Contribution, Interest and Withdrawal are gross amounts; Tax is whatever
// the policy netted off before compounding.
type StepOutcome struct {
	Balance      float64
	Contribution float64
	Withdrawal   float64
	Interest     float64
	Fees         float64
	Tax          float64
}

// StepPolicy advances a balance by one period. Index is 1-based.
type StepPolicy interface {
	Step(index int, balance float64) StepOutcome
}

// RunTimeline executes every fine-grained period but, when the step period is
// finer than a year, emits only one aggregated record per elapsed year (plus
// the final period). Compounding correctness depends on running every step;
// only the reporting is compacted.
func RunTimeline(initial float64, periods, periodsPerYear int, policy StepPolicy) Timeline {
	if periodsPerYear <= 0 {
		periodsPerYear = 1
	}

	timeline := make(Timeline, 0, periods/periodsPerYear+1)
	balance := initial

	var cumContribution, cumInterest float64
	var sumContribution, sumWithdrawal, sumInterest, sumFees, sumTax float64

	for index := 1; index <= periods; index++ {
		outcome := policy.Step(index, balance)
		balance = outcome.Balance

		sumContribution += outcome.Contribution
		sumWithdrawal += outcome.Withdrawal
		sumInterest += outcome.Interest
		sumFees += outcome.Fees
		sumTax += outcome.Tax
		cumContribution += outcome.Contribution
		cumInterest += outcome.Interest

		if index%periodsPerYear == 0 || index == periods {
			timeline = append(timeline, PeriodRecord{
				Index:                  index,
				Balance:                balance,
				Contribution:           sumContribution,
				Withdrawal:             sumWithdrawal,
				Interest:               sumInterest,
				Fees:                   sumFees,
				Tax:                    sumTax,
				CumulativeContribution: cumContribution,
				CumulativeInterest:     cumInterest,
			})
			sumContribution, sumWithdrawal, sumInterest, sumFees, sumTax = 0, 0, 0, 0, 0
		}
	}

	return timeline
}

// AnnuityPayment returns the fixed per-period payment that amortizes a
// principal over n periods:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate falls back to the interest-free P/n instead of dividing by
// zero. Computed once per schedule, never per period.
func AnnuityPayment(principal, periodRate float64, periods int) float64 {
	n := float64(periods)
	if periodRate == 0 {
		return principal / n
	}
	factor := math.Pow(1+periodRate, n)
	return principal * periodRate * factor / (factor - 1)
}

// AccumulationPolicy grows a balance: each period the (annually escalated)
// contribution is added net of contributions tax, then the period return is
// applied net of earnings tax, then fees are deducted. The savings calculator
// uses zero tax rates; the super calculator sets both to the flat 15%.
type AccumulationPolicy struct {
	Contribution         float64 // nominal per-period contribution in the first year
	EscalationRate       float64 // annual growth of the contribution, held flat within a year
	AnnualReturnRate     float64
	AnnualFeeRate        float64
	ContributionsTaxRate float64
	EarningsTaxRate      float64
	PeriodsPerYear       int
}

func (p AccumulationPolicy) Step(index int, balance float64) StepOutcome {
	ppy := p.PeriodsPerYear
	if ppy <= 0 {
		ppy = 1
	}

	// Escalation is recomputed once per elapsed year, not per period.
	yearIndex := (index - 1) / ppy
	contribution := p.Contribution * math.Pow(1+p.EscalationRate, float64(yearIndex))
	contributionsTax := contribution * p.ContributionsTaxRate
	balance += contribution - contributionsTax

	interest := balance * (p.AnnualReturnRate / float64(ppy))
	earningsTax := interest * p.EarningsTaxRate
	balance += interest - earningsTax

	fees := balance * (p.AnnualFeeRate / float64(ppy))
	balance -= fees

	return StepOutcome{
		Balance:      balance,
		Contribution: contribution,
		Interest:     interest,
		Fees:         fees,
		Tax:          contributionsTax + earningsTax,
	}
}

// AmortizationPolicy pays down a debt: interest accrues on the opening
// balance, the fixed payment covers it and the remainder retires principal.
// The final payment is clamped so the balance closes at exactly zero.
// Contribution carries the principal portion, Withdrawal the total payment.
type AmortizationPolicy struct {
	Payment    float64
	PeriodRate float64
}

func (p AmortizationPolicy) Step(index int, balance float64) StepOutcome {
	if balance <= 0 {
		return StepOutcome{Balance: 0}
	}

	interest := balance * p.PeriodRate
	payment := p.Payment
	if payment > balance+interest {
		payment = balance + interest
	}
	principal := payment - interest
	balance -= principal

	return StepOutcome{
		Balance:      balance,
		Contribution: principal,
		Withdrawal:   payment,
		Interest:     interest,
	}
}

// DecumulationPolicy draws a balance down: the (annually inflated)
// withdrawal comes out first, then the net-of-tax period return applies to
// the remainder. Once exhausted the balance clamps to zero and no further
// interest accrues; remaining periods record as zero-balance steps.
type DecumulationPolicy struct {
	Withdrawal       float64 // nominal per-period withdrawal in the first year
	EscalationRate   float64 // annual inflation applied to the withdrawal
	AnnualReturnRate float64
	EarningsTaxRate  float64
	PeriodsPerYear   int
}

func (p DecumulationPolicy) Step(index int, balance float64) StepOutcome {
	if balance <= 0 {
		return StepOutcome{Balance: 0}
	}

	ppy := p.PeriodsPerYear
	if ppy <= 0 {
		ppy = 1
	}

	yearIndex := (index - 1) / ppy
	withdrawal := p.Withdrawal * math.Pow(1+p.EscalationRate, float64(yearIndex))
	if withdrawal > balance {
		withdrawal = balance
	}
	balance -= withdrawal

	interest := balance * (p.AnnualReturnRate / float64(ppy))
	tax := interest * p.EarningsTaxRate
	balance += interest - tax

	return StepOutcome{
		Balance:    balance,
		Withdrawal: withdrawal,
		Interest:   interest,
		Tax:        tax,
	}
}
