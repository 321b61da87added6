package main

import (
	"errors"
	"testing"
)

// Savings Calculator Tests

func TestProjectSavings_ContributionsOnly(t *testing.T) {
	// No growth, no fees: the balance is exactly what was paid in
	result, err := ProjectSavings(SavingsInput{
		InitialBalance:      1000,
		MonthlyContribution: 100,
		Years:               3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertNear(t, 1000+36*100, result.FinalBalance, 1e-6, "zero-rate balance")
	assertNear(t, 3600, result.TotalContributions, 1e-6, "contributions")
	assertNear(t, 0, result.TotalInterest, 1e-6, "no interest at zero rate")
}

func TestProjectSavings_FeesReduceBalance(t *testing.T) {
	base := SavingsInput{
		InitialBalance:      50000,
		MonthlyContribution: 500,
		AnnualReturnRate:    0.07,
		Years:               10,
	}
	withFees := base
	withFees.FeeRate = 0.0085

	noFeeResult, err := ProjectSavings(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	feeResult, err := ProjectSavings(withFees)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if feeResult.FinalBalance >= noFeeResult.FinalBalance {
		t.Errorf("fees should drag the balance: %.2f >= %.2f",
			feeResult.FinalBalance, noFeeResult.FinalBalance)
	}
	if feeResult.TotalFees <= 0 {
		t.Error("fee total should be positive")
	}
}

func TestProjectSavings_InvalidInputs(t *testing.T) {
	tests := []SavingsInput{
		{Years: 0},
		{Years: -5},
		{Years: 10, InitialBalance: -1},
		{Years: 10, MonthlyContribution: -1},
	}

	for _, input := range tests {
		_, err := ProjectSavings(input)
		var invalid *InvalidParameterError
		if !errors.As(err, &invalid) {
			t.Errorf("input %+v: expected InvalidParameterError, got %v", input, err)
		}
	}
}

func TestRequiredMonthlySavings_HitsTarget(t *testing.T) {
	input := SavingsInput{
		InitialBalance:   10000,
		AnnualReturnRate: 0.07,
		Years:            15,
	}

	result, err := RequiredMonthlySavings(500000, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Converged {
		t.Error("expected convergence")
	}
	assertNear(t, 500000, result.ProjectedBalance, 1, "solved contribution reaches target")
	if result.MonthlyContribution <= 0 {
		t.Errorf("contribution %.2f should be positive", result.MonthlyContribution)
	}
}

func TestRequiredMonthlySavings_DegenerateGoal(t *testing.T) {
	// Target at or below the initial balance needs no effort and no simulation
	result, err := RequiredMonthlySavings(50000, SavingsInput{
		InitialBalance: 80000,
		Years:          10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MonthlyContribution != 0 {
		t.Errorf("degenerate goal should need zero contribution, got %.2f", result.MonthlyContribution)
	}
	if !result.Converged {
		t.Error("degenerate goal counts as converged")
	}
}

func TestRequiredMonthlySavings_InvalidTarget(t *testing.T) {
	_, err := RequiredMonthlySavings(0, SavingsInput{Years: 10})
	var invalid *InvalidParameterError
	if !errors.As(err, &invalid) {
		t.Errorf("expected InvalidParameterError, got %v", err)
	}
}

func TestSavingsSensitivity_SweepIsMonotonic(t *testing.T) {
	input := SavingsInput{
		InitialBalance:      10000,
		MonthlyContribution: 500,
		Years:               20,
	}

	points, err := SavingsSensitivity(input, 0.03, 0.09, 0.01)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("expected 7 sweep points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].FinalBalance <= points[i-1].FinalBalance {
			t.Errorf("final balance should rise with the return rate at %.2f",
				points[i].AnnualReturnRate)
		}
	}
}
