package main

import (
	"fmt"
	"math"
)

// Console formatting of calculator results. Rounding to whole dollars
// happens here, at the reporting edge, never inside the simulators.

// RoundWhole rounds to whole dollars for reporting
func RoundWhole(amount float64) float64 {
	return math.Round(amount)
}

// RoundCents rounds to cents for reporting
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatMoney formats a float as an abbreviated currency string
func FormatMoney(amount float64) string {
	if math.Abs(amount) >= 1000000 {
		return fmt.Sprintf("$%.2fM", amount/1000000)
	}
	if math.Abs(amount) >= 1000 {
		return fmt.Sprintf("$%.0fk", amount/1000)
	}
	return fmt.Sprintf("$%.0f", amount)
}

// FormatMoneyFull formats a float as full currency (no abbreviation)
func FormatMoneyFull(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FormatPercent formats a fraction as a percentage
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// PrintHeader prints the demo run banner
func PrintHeader(config *Config) {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                    PERSONAL FINANCE PROJECTION CALCULATORS                   ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("  Tax year: %s | Default return: %s | Inflation: %s | Fees: %s\n",
		config.TaxYear.Year,
		FormatPercent(config.Defaults.GetAnnualReturnRate()),
		FormatPercent(config.Defaults.GetInflationRate()),
		FormatPercent(config.Defaults.GetFeeRate()))
	fmt.Println()
}

// PrintSavingsResult prints a savings projection summary
func PrintSavingsResult(input SavingsInput, result SavingsResult) {
	fmt.Println("Savings Projection")
	fmt.Println("──────────────────")
	fmt.Printf("  Start %s, %s/month for %d years at %s\n",
		FormatMoney(input.InitialBalance), FormatMoney(input.MonthlyContribution),
		input.Years, FormatPercent(input.AnnualReturnRate))
	fmt.Printf("  Final balance:  %s\n", FormatMoneyFull(RoundWhole(result.FinalBalance)))
	fmt.Printf("  Contributed:    %s  Earned: %s  Fees: %s\n",
		FormatMoney(result.TotalContributions), FormatMoney(result.TotalInterest),
		FormatMoney(result.TotalFees))
	fmt.Println()
}

// PrintLoanResult prints an amortization summary
func PrintLoanResult(input LoanInput, result LoanResult) {
	fmt.Println("Loan Amortization")
	fmt.Println("─────────────────")
	fmt.Printf("  %s at %s over %d years\n",
		FormatMoney(input.Principal), FormatPercent(input.AnnualRate), input.TermYears)
	fmt.Printf("  Payment:        %s/period (%d payments)\n",
		FormatMoneyFull(RoundCents(result.Payment)), result.Periods)
	fmt.Printf("  Total paid:     %s  Interest: %s\n",
		FormatMoney(result.TotalPaid), FormatMoney(result.TotalInterest))
	fmt.Println()
}

// PrintIncomeTaxResult prints a salary breakdown
func PrintIncomeTaxResult(result IncomeTaxResult) {
	fmt.Println("Income Tax (" + result.TaxYear + ")")
	fmt.Println("──────────────────────")
	fmt.Printf("  Gross: %s  Super: %s\n", FormatMoneyFull(RoundWhole(result.GrossSalary)), FormatMoney(result.Super))
	fmt.Printf("  Income tax: %s  Levy: %s  Offset: %s\n",
		FormatMoneyFull(RoundCents(result.IncomeTax)),
		FormatMoneyFull(RoundCents(result.MedicareLevy)),
		FormatMoneyFull(RoundCents(result.Offset)))
	fmt.Printf("  Net salary: %s (%s/month), effective %s, marginal %s\n",
		FormatMoneyFull(RoundWhole(result.NetSalary)), FormatMoney(result.NetMonthly),
		FormatPercent(result.EffectiveRate), FormatPercent(result.MarginalRate))
	fmt.Println()
}

// PrintPensionResult prints a means-test outcome
func PrintPensionResult(input AgePensionInput, result MeansTestResult) {
	fmt.Println("Age Pension")
	fmt.Println("───────────")
	if !result.Eligible {
		fmt.Printf("  Not eligible: %d years until pension age\n\n", result.YearsUntilEligible)
		return
	}
	fmt.Printf("  %s, assets %s, income %s/fn\n",
		input.Household, FormatMoney(input.AssessableAssets), FormatMoneyFull(input.FortnightlyIncome))
	fmt.Printf("  Entitlement:    %s/fortnight (%s/year), binding: %s\n",
		FormatMoneyFull(RoundCents(result.Fortnightly)),
		FormatMoney(result.Annual), result.BindingTest)
	fmt.Println()
}

// PrintDrawdownResult prints a drawdown summary
func PrintDrawdownResult(input DrawdownInput, result DrawdownResult) {
	fmt.Println("Retirement Drawdown")
	fmt.Println("───────────────────")
	fmt.Printf("  %s drawing %s/month (rate %s, tier %s)\n",
		FormatMoney(input.Balance), FormatMoney(input.MonthlyWithdrawal),
		FormatPercent(result.InitialWithdrawalRate), result.SustainabilityTier)
	if result.Exhausted {
		fmt.Printf("  Funds last %d years", result.YearsLasted)
		if result.AgeExhausted > 0 {
			fmt.Printf(" (to age %d)", result.AgeExhausted)
		}
		fmt.Println()
	} else {
		fmt.Printf("  Funds outlast the %d-year horizon: %s remaining\n",
			input.Years, FormatMoney(result.FinalBalance))
	}
	fmt.Println()
}

// PrintMortgageVsRentResult prints the comparison summary
func PrintMortgageVsRentResult(result MortgageVsRentResult) {
	fmt.Println("Mortgage vs Rent")
	fmt.Println("────────────────")
	fmt.Printf("  Monthly payment: %s\n", FormatMoneyFull(RoundCents(result.MonthlyPayment)))
	if result.BreakEvenYear > 0 {
		fmt.Printf("  Buying overtakes renting in year %d\n", result.BreakEvenYear)
	} else {
		fmt.Println("  Renting stays ahead over the horizon")
	}
	fmt.Printf("  Final: buyer %s vs renter %s\n",
		FormatMoney(result.FinalBuyerNetWorth), FormatMoney(result.FinalRenterNetWorth))
	fmt.Println()
}

// PrintNetWorthResult prints a net worth projection summary
func PrintNetWorthResult(result NetWorthResult) {
	fmt.Println("Net Worth Projection")
	fmt.Println("────────────────────")
	fmt.Printf("  Today: %s\n", FormatMoney(result.StartingNetWorth))
	for _, y := range result.Years {
		if y.Year%5 == 0 || y.Year == len(result.Years) {
			fmt.Printf("  Year %2d: assets %s, liabilities %s, net %s\n",
				y.Year, FormatMoney(y.TotalAssets), FormatMoney(y.TotalLiabilities),
				FormatMoney(y.NetWorth))
		}
	}
	fmt.Println()
}
