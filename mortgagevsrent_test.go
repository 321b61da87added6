package main

import (
	"errors"
	"math"
	"testing"
)

// Mortgage-vs-Rent Comparison Tests

func TestCompareMortgageVsRent(t *testing.T) {
	result, err := CompareMortgageVsRent(MortgageVsRentInput{
		HomePrice:            800000,
		Deposit:              160000,
		MortgageRate:         0.06,
		TermYears:            30,
		PropertyGrowthRate:   0.04,
		MonthlyRent:          2800,
		RentInflationRate:    0.03,
		InvestmentReturnRate: 0.07,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Payment on the $640,000 principal at 6% over 30 years
	assertNear(t, AnnuityPayment(640000, 0.06/12, 360), result.MonthlyPayment, 1e-9, "monthly payment")

	if len(result.Years) != 30 {
		t.Fatalf("comparison rows = %d, want 30 (horizon defaults to the term)", len(result.Years))
	}

	// The first row already applies the per-year formula, no special case
	first := result.Years[0]
	if first.Year != 1 {
		t.Fatalf("first row year = %d, want 1", first.Year)
	}
	assertNear(t, 800000*1.04, first.HomeValue, 0.01, "year-one home value grown once")
	assertNear(t, first.HomeValue-first.LoanBalance, first.BuyerNetWorth, 1e-9, "buyer equity identity")
	assertNear(t, first.BuyerNetWorth-first.RenterInvestment, first.Difference, 1e-9, "difference identity")

	// The loan must close at zero by the end of the term
	last := result.Years[len(result.Years)-1]
	assertNear(t, 0, last.LoanBalance, 0.01, "loan retired at term end")
	assertNear(t, last.BuyerNetWorth, result.FinalBuyerNetWorth, 1e-9, "final buyer net worth")
	assertNear(t, last.RenterInvestment, result.FinalRenterNetWorth, 1e-9, "final renter net worth")
}

func TestCompareMortgageVsRent_BreakEven(t *testing.T) {
	// Strong property growth against a weak investment return: the buyer
	// pulls ahead and the first non-negative difference is recorded once
	result, err := CompareMortgageVsRent(MortgageVsRentInput{
		HomePrice:            600000,
		Deposit:              120000,
		MortgageRate:         0.055,
		TermYears:            25,
		PropertyGrowthRate:   0.06,
		MonthlyRent:          2400,
		RentInflationRate:    0.03,
		InvestmentReturnRate: 0.04,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.BreakEvenYear == 0 {
		t.Fatal("buyer-favourable scenario should break even")
	}
	row := result.Years[result.BreakEvenYear-1]
	if row.Difference < 0 {
		t.Errorf("difference %.2f at break-even year %d should be non-negative", row.Difference, result.BreakEvenYear)
	}
	if result.BreakEvenYear > 1 && result.Years[result.BreakEvenYear-2].Difference >= 0 {
		t.Errorf("year %d already non-negative, break-even year %d is not the first",
			result.BreakEvenYear-1, result.BreakEvenYear)
	}
}

func TestCompareMortgageVsRent_HorizonBeyondTerm(t *testing.T) {
	// Past the loan term the buyer pays nothing and the renter keeps paying
	// rent, so the renter position compounds on a shrinking flow
	result, err := CompareMortgageVsRent(MortgageVsRentInput{
		HomePrice:            500000,
		Deposit:              100000,
		MortgageRate:         0.06,
		TermYears:            10,
		MonthlyRent:          2000,
		InvestmentReturnRate: 0.07,
		Years:                15,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Years) != 15 {
		t.Fatalf("comparison rows = %d, want 15", len(result.Years))
	}
	assertNear(t, 0, result.Years[9].LoanBalance, 0.01, "loan retired at year 10")

	// After year 10 the renter differential flips from payment-minus-rent to
	// minus the rent, so growth slows sharply
	year9 := result.Years[8].RenterInvestment
	year10 := result.Years[9].RenterInvestment
	year11 := result.Years[10].RenterInvestment
	if year11-year10 >= year10-year9 {
		t.Errorf("renter growth should slow once rent is no longer offset: %.2f then %.2f",
			year10-year9, year11-year10)
	}
}

func TestCompareMortgageVsRent_RenterDifferentialMath(t *testing.T) {
	// Zero rates throughout make the renter position exact arithmetic:
	// deposit plus 12 months of (payment - rent)
	result, err := CompareMortgageVsRent(MortgageVsRentInput{
		HomePrice:   360000,
		Deposit:     60000,
		TermYears:   25,
		MonthlyRent: 500,
		Years:       1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payment := 300000.0 / 300
	want := 60000 + 12*(payment-500)
	assertNear(t, want, result.Years[0].RenterInvestment, 0.01, "uninvested differential accumulates")
	if math.Abs(result.MonthlyPayment-payment) > 1e-9 {
		t.Errorf("monthly payment = %.2f, want %.2f", result.MonthlyPayment, payment)
	}
}

func TestCompareMortgageVsRent_InvalidInputs(t *testing.T) {
	cases := []MortgageVsRentInput{
		{HomePrice: 0, Deposit: 0, TermYears: 30, MonthlyRent: 2000},
		{HomePrice: 500000, Deposit: -1, TermYears: 30, MonthlyRent: 2000},
		{HomePrice: 500000, Deposit: 500000, TermYears: 30, MonthlyRent: 2000},
		{HomePrice: 500000, Deposit: 100000, TermYears: 0, MonthlyRent: 2000},
		{HomePrice: 500000, Deposit: 100000, TermYears: 30, MonthlyRent: 0},
	}
	for _, input := range cases {
		_, err := CompareMortgageVsRent(input)
		var invalid *InvalidParameterError
		if !errors.As(err, &invalid) {
			t.Errorf("input %+v: expected InvalidParameterError, got %v", input, err)
		}
	}
}
