package main

import (
	"errors"
	"testing"
)

// Retirement Planning Tests
//
// SavingsGoal and WithdrawalRate are exact inverses, so the closed-form pair
// is checked both directly and as a round trip. Drawdown scenarios use a zero
// return rate where exhaustion timing must be exact.

func TestSavingsGoal(t *testing.T) {
	// $3,000/month at the 4% rule needs a $900,000 nest egg
	goal, err := SavingsGoal(3000, 0.04)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNear(t, 900000, goal, 0.01, "nest egg for $36k/year at 4%")
}

func TestSavingsGoal_FourPercentRule(t *testing.T) {
	goal, err := SavingsGoal(4000, 0.04)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNear(t, 1200000, goal, 0.01, "25x annual expenses")
}

func TestWithdrawalRate(t *testing.T) {
	// A $720,000 nest egg funding $3,000/month implies 5%
	rate, err := WithdrawalRate(720000, 3000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNear(t, 0.05, rate, 1e-9, "implied withdrawal rate")
}

func TestSavingsGoal_RoundTrip(t *testing.T) {
	// Goal(expenses, rate) and Rate(goal, expenses) invert each other
	for _, rate := range []float64{0.03, 0.04, 0.05, 0.07, 1.0} {
		goal, err := SavingsGoal(2500, rate)
		if err != nil {
			t.Fatalf("rate %.2f: unexpected error: %v", rate, err)
		}
		back, err := WithdrawalRate(goal, 2500)
		if err != nil {
			t.Fatalf("rate %.2f: unexpected error: %v", rate, err)
		}
		assertNear(t, rate, back, 1e-9, "round-tripped withdrawal rate")
	}
}

func TestSavingsGoal_InvalidInputs(t *testing.T) {
	cases := []struct {
		expenses, rate float64
	}{
		{0, 0.04},
		{-100, 0.04},
		{3000, 0},
		{3000, -0.04},
		{3000, 1.5},
	}
	for _, c := range cases {
		_, err := SavingsGoal(c.expenses, c.rate)
		var invalid *InvalidParameterError
		if !errors.As(err, &invalid) {
			t.Errorf("SavingsGoal(%.2f, %.2f): expected InvalidParameterError, got %v", c.expenses, c.rate, err)
		}
	}
}

func TestSustainabilityTier(t *testing.T) {
	cases := []struct {
		rate float64
		want string
	}{
		{0.03, "High"},
		{0.04, "High"},
		{0.05, "Moderate"},
		{0.055, "Moderate"},
		{0.06, "Low"},
		{0.08, "Very Low"},
	}
	for _, c := range cases {
		if got := sustainabilityTier(c.rate); got != c.want {
			t.Errorf("tier(%.3f) = %q, want %q", c.rate, got, c.want)
		}
	}
}

func TestProjectDrawdown_Exhaustion(t *testing.T) {
	// $100,000 drawn at $2,000/month with no growth lasts 50 months,
	// reported as exhausted within the fifth year
	result, err := ProjectDrawdown(DrawdownInput{
		Balance:           100000,
		MonthlyWithdrawal: 2000,
		CurrentAge:        65,
		Years:             10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Exhausted {
		t.Fatal("balance must be exhausted")
	}
	if result.YearsLasted != 5 {
		t.Errorf("years lasted = %d, want 5", result.YearsLasted)
	}
	if result.AgeExhausted != 70 {
		t.Errorf("age exhausted = %d, want 70", result.AgeExhausted)
	}
	assertNear(t, 100000, result.TotalWithdrawn, 0.01, "withdrawals stop at the balance")
	if result.FinalBalance != 0 {
		t.Errorf("final balance = %.2f, want 0", result.FinalBalance)
	}
}

func TestProjectDrawdown_SustainableRate(t *testing.T) {
	// 3.6% initial withdrawal against a 7% return grows the balance
	result, err := ProjectDrawdown(DrawdownInput{
		Balance:           1000000,
		MonthlyWithdrawal: 3000,
		AnnualReturnRate:  0.07,
		Years:             30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Exhausted {
		t.Fatal("sustainable scenario must not exhaust")
	}
	if result.YearsLasted != 30 {
		t.Errorf("years lasted = %d, want full horizon 30", result.YearsLasted)
	}
	if result.FinalBalance <= 1000000 {
		t.Errorf("final balance %.2f should exceed the starting balance", result.FinalBalance)
	}
	assertNear(t, 0.036, result.InitialWithdrawalRate, 1e-9, "initial withdrawal rate")
	if result.SustainabilityTier != "High" {
		t.Errorf("tier = %q, want High", result.SustainabilityTier)
	}
}

func TestProjectDrawdown_InflationShortensHorizon(t *testing.T) {
	base := DrawdownInput{
		Balance:           500000,
		MonthlyWithdrawal: 3500,
		AnnualReturnRate:  0.05,
		Years:             40,
	}
	flat, err := ProjectDrawdown(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inflated := base
	inflated.InflationRate = 0.03
	escalated, err := ProjectDrawdown(inflated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if escalated.YearsLasted >= flat.YearsLasted {
		t.Errorf("inflated withdrawals lasted %d years, flat %d; inflation must shorten the horizon",
			escalated.YearsLasted, flat.YearsLasted)
	}
}

func TestProjectDrawdown_InvalidInputs(t *testing.T) {
	cases := []DrawdownInput{
		{Balance: 0, MonthlyWithdrawal: 2000, Years: 10},
		{Balance: 100000, MonthlyWithdrawal: 0, Years: 10},
		{Balance: 100000, MonthlyWithdrawal: 2000, Years: 0},
	}
	for _, input := range cases {
		_, err := ProjectDrawdown(input)
		var invalid *InvalidParameterError
		if !errors.As(err, &invalid) {
			t.Errorf("input %+v: expected InvalidParameterError, got %v", input, err)
		}
	}
}
