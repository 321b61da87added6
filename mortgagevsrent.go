package main

import (
	"math"
)

// Mortgage-vs-rent comparison: two simulators run side by side over the same
// monthly steps. One amortizes the mortgage against an appreciating home;
// the other compounds the renter's invested deposit plus the monthly
// cash-flow differential between rent and the mortgage payment. The same
// per-year formula applies from the first year onward.

// MortgageVsRentInput is the scenario for one comparison
type MortgageVsRentInput struct {
	HomePrice            float64 `json:"home_price"`
	Deposit              float64 `json:"deposit"`
	MortgageRate         float64 `json:"mortgage_rate"`
	TermYears            int     `json:"term_years"`
	PropertyGrowthRate   float64 `json:"property_growth_rate"`
	MonthlyRent          float64 `json:"monthly_rent"`
	RentInflationRate    float64 `json:"rent_inflation_rate"`
	InvestmentReturnRate float64 `json:"investment_return_rate"`
	Years                int     `json:"years"` // comparison horizon, defaults to the loan term
}

// YearComparison pairs both positions at the end of one year
type YearComparison struct {
	Year             int     `json:"year"`
	HomeValue        float64 `json:"home_value"`
	LoanBalance      float64 `json:"loan_balance"`
	BuyerNetWorth    float64 `json:"buyer_net_worth"`
	RenterInvestment float64 `json:"renter_investment"`
	Difference       float64 `json:"difference"` // buyer minus renter
}

// MortgageVsRentResult is the full paired projection
type MortgageVsRentResult struct {
	MonthlyPayment      float64          `json:"monthly_payment"`
	Years               []YearComparison `json:"years"`
	BreakEvenYear       int              `json:"break_even_year,omitempty"`
	FinalBuyerNetWorth  float64          `json:"final_buyer_net_worth"`
	FinalRenterNetWorth float64          `json:"final_renter_net_worth"`
}

// renterPolicy compounds the invested deposit plus the rent-vs-payment
// differential. Once the loan term ends the buyer pays nothing, so the
// differential becomes minus the rent.
type renterPolicy struct {
	payment       float64
	monthlyRent   float64
	rentInflation float64
	monthlyReturn float64
	loanPeriods   int
}

func (p renterPolicy) Step(index int, balance float64) StepOutcome {
	yearIndex := (index - 1) / 12
	rent := p.monthlyRent * math.Pow(1+p.rentInflation, float64(yearIndex))

	payment := p.payment
	if index > p.loanPeriods {
		payment = 0
	}

	differential := payment - rent
	balance += differential
	interest := balance * p.monthlyReturn
	balance += interest

	out := StepOutcome{Balance: balance, Interest: interest}
	if differential >= 0 {
		out.Contribution = differential
	} else {
		out.Withdrawal = -differential
	}
	return out
}

// CompareMortgageVsRent runs the paired simulation year by year
func CompareMortgageVsRent(input MortgageVsRentInput) (MortgageVsRentResult, error) {
	if input.HomePrice <= 0 {
		return MortgageVsRentResult{}, invalidParam("homePrice", "must be positive, got %.2f", input.HomePrice)
	}
	if input.Deposit < 0 || input.Deposit >= input.HomePrice {
		return MortgageVsRentResult{}, invalidParam("deposit", "must be in [0, homePrice), got %.2f", input.Deposit)
	}
	if input.MonthlyRent <= 0 {
		return MortgageVsRentResult{}, invalidParam("monthlyRent", "must be positive, got %.2f", input.MonthlyRent)
	}
	if input.TermYears <= 0 {
		return MortgageVsRentResult{}, invalidParam("termYears", "must be positive, got %d", input.TermYears)
	}

	years := input.Years
	if years <= 0 {
		years = input.TermYears
	}

	loanPeriods := input.TermYears * 12
	periods := years * 12
	principal := input.HomePrice - input.Deposit
	monthlyRate := input.MortgageRate / 12
	payment := AnnuityPayment(principal, monthlyRate, loanPeriods)

	buyer := RunTimeline(principal, periods, 12, AmortizationPolicy{
		Payment:    payment,
		PeriodRate: monthlyRate,
	})
	renter := RunTimeline(input.Deposit, periods, 12, renterPolicy{
		payment:       payment,
		monthlyRent:   input.MonthlyRent,
		rentInflation: input.RentInflationRate,
		monthlyReturn: input.InvestmentReturnRate / 12,
		loanPeriods:   loanPeriods,
	})

	result := MortgageVsRentResult{MonthlyPayment: payment}

	for i := 0; i < len(buyer) && i < len(renter); i++ {
		year := i + 1
		homeValue := input.HomePrice * math.Pow(1+input.PropertyGrowthRate, float64(year))
		comparison := YearComparison{
			Year:             year,
			HomeValue:        homeValue,
			LoanBalance:      buyer[i].Balance,
			BuyerNetWorth:    homeValue - buyer[i].Balance,
			RenterInvestment: renter[i].Balance,
		}
		comparison.Difference = comparison.BuyerNetWorth - comparison.RenterInvestment
		if result.BreakEvenYear == 0 && comparison.Difference >= 0 {
			result.BreakEvenYear = year
		}
		result.Years = append(result.Years, comparison)
	}

	if n := len(result.Years); n > 0 {
		result.FinalBuyerNetWorth = result.Years[n-1].BuyerNetWorth
		result.FinalRenterNetWorth = result.Years[n-1].RenterInvestment
	}

	return result, nil
}
