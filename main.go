package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Personal Finance Projection Calculators

A family of projection calculators sharing one time-stepped simulation core:
savings growth, loan amortization, retirement drawdown, superannuation,
income tax, Age Pension means testing, mortgage-vs-rent and net worth.

MODES:

  DEMO (default)
    Runs each calculator once with representative inputs and prints a
    console summary. Useful as a smoke test and as documentation of the
    available operations.

  SERVER (-serve)
    Serves the calculators as a JSON API on -port. Numbers arrive as query
    parameters, rates as whole-number percentages (7 means 7%%); omitted
    parameters use the configured defaults.

  REPORT (-pdf FILE)
    Writes a PDF with the demo loan schedule and savings projection.

Tax-year brackets, Medicare levy, LITO and Age Pension thresholds are data
in the YAML config; pass -config to override the embedded 2024-25 figures.

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s                      Demo run with embedded defaults
  %s -serve -port 8080    Serve the JSON API
  %s -config my.yaml      Demo run with custom tax-year data
  %s -pdf report.pdf      Write the demo PDF report
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	}

	configFile := flag.String("config", "", "YAML configuration file (default: embedded)")
	serve := flag.Bool("serve", false, "serve the JSON API instead of the demo run")
	port := flag.String("port", "8080", "API port for -serve")
	pdfFile := flag.String("pdf", "", "write the demo report to this PDF file")
	flag.Parse()

	config := MustDefaultConfig()
	if *configFile != "" {
		loaded, err := LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("loading %s: %v", *configFile, err)
		}
		config = loaded
	}

	if *serve {
		server := NewWebServer(config, ":"+*port)
		if err := server.ListenAndServe(); err != nil {
			log.Fatalf("server failed: %v", err)
		}
		return
	}

	runDemo(config, *pdfFile)
}

// runDemo exercises every calculator once and prints the summaries
func runDemo(config *Config, pdfFile string) {
	PrintHeader(config)

	savingsInput := SavingsInput{
		InitialBalance:      20000,
		MonthlyContribution: 1000,
		AnnualReturnRate:    config.Defaults.GetAnnualReturnRate(),
		FeeRate:             config.Defaults.GetFeeRate(),
		EscalationRate:      config.Defaults.GetInflationRate(),
		Years:               20,
		Compounding:         config.Defaults.GetCompounding(),
	}
	savings, err := ProjectSavings(savingsInput)
	if err != nil {
		log.Fatalf("savings projection: %v", err)
	}
	PrintSavingsResult(savingsInput, savings)

	loanInput := LoanInput{Principal: 300000, AnnualRate: 0.05, TermYears: 30}
	loan, err := AmortizeLoan(loanInput)
	if err != nil {
		log.Fatalf("loan amortization: %v", err)
	}
	PrintLoanResult(loanInput, loan)

	tax, err := CalculateIncomeTax(IncomeTaxInput{AnnualSalary: 100000}, config)
	if err != nil {
		log.Fatalf("income tax: %v", err)
	}
	PrintIncomeTaxResult(tax)

	pensionInput := AgePensionInput{
		Age:              67,
		Household:        HouseholdSingle,
		Homeowner:        true,
		AssessableAssets: 301750,
	}
	pension, err := CalculateAgePension(pensionInput, config)
	if err != nil {
		log.Fatalf("age pension: %v", err)
	}
	PrintPensionResult(pensionInput, pension)

	drawdownInput := DrawdownInput{
		Balance:           900000,
		MonthlyWithdrawal: 3000,
		AnnualReturnRate:  config.Defaults.GetAnnualReturnRate(),
		InflationRate:     config.Defaults.GetInflationRate(),
		CurrentAge:        67,
		Years:             30,
		Compounding:       config.Defaults.GetCompounding(),
	}
	drawdown, err := ProjectDrawdown(drawdownInput)
	if err != nil {
		log.Fatalf("drawdown: %v", err)
	}
	PrintDrawdownResult(drawdownInput, drawdown)

	comparison, err := CompareMortgageVsRent(MortgageVsRentInput{
		HomePrice:            750000,
		Deposit:              150000,
		MortgageRate:         0.06,
		TermYears:            30,
		PropertyGrowthRate:   0.04,
		MonthlyRent:          2600,
		RentInflationRate:    config.Defaults.GetInflationRate(),
		InvestmentReturnRate: config.Defaults.GetAnnualReturnRate(),
	})
	if err != nil {
		log.Fatalf("mortgage vs rent: %v", err)
	}
	PrintMortgageVsRentResult(comparison)

	netWorth, err := ProjectNetWorth(NetWorthInput{
		Assets: []Asset{
			{Name: "Home", Value: 750000, GrowthRate: 0.04},
			{Name: "Super", Value: 250000, GrowthRate: config.Defaults.GetAnnualReturnRate()},
			{Name: "Shares", Value: 50000, GrowthRate: config.Defaults.GetAnnualReturnRate()},
		},
		Liabilities: []Liability{
			{Name: "Mortgage", Balance: 450000, AnnualRate: 0.06, MonthlyPayment: 2800},
		},
		Years: 15,
	})
	if err != nil {
		log.Fatalf("net worth: %v", err)
	}
	PrintNetWorthResult(netWorth)

	if pdfFile != "" {
		report := NewPDFReport()
		report.AddLoanSchedule(loanInput, loan)
		report.AddSavingsProjection(savingsInput, savings)
		if err := report.Save(pdfFile); err != nil {
			log.Fatalf("writing %s: %v", pdfFile, err)
		}
		fmt.Printf("Report written to %s\n", pdfFile)
	}
}
