package main

// Income tax / net salary calculator over the configured tax year, and the
// gross-up inverse that finds the salary producing a target take-home pay.

// IncomeTaxInput is the scenario for one salary breakdown. SuperIncluded
// marks a package that already contains super; SuperRate at zero means the
// configured guarantee rate.
type IncomeTaxInput struct {
	AnnualSalary  float64 `json:"annual_salary"`
	SuperIncluded bool    `json:"super_included"`
	SuperRate     float64 `json:"super_rate"`
}

// IncomeTaxResult is the full salary breakdown
type IncomeTaxResult struct {
	TaxYear       string  `json:"tax_year"`
	GrossSalary   float64 `json:"gross_salary"`
	Super         float64 `json:"super"`
	TaxableIncome float64 `json:"taxable_income"`
	IncomeTax     float64 `json:"income_tax"`
	MedicareLevy  float64 `json:"medicare_levy"`
	Offset        float64 `json:"offset"`
	NetTax        float64 `json:"net_tax"`
	NetSalary     float64 `json:"net_salary"`
	NetMonthly    float64 `json:"net_monthly"`
	EffectiveRate float64 `json:"effective_rate"`
	MarginalRate  float64 `json:"marginal_rate"`
}

// CalculateIncomeTax breaks an annual salary down into tax, levy, offset and
// take-home pay for the configured tax year.
func CalculateIncomeTax(input IncomeTaxInput, config *Config) (IncomeTaxResult, error) {
	if input.AnnualSalary <= 0 {
		return IncomeTaxResult{}, invalidParam("annualSalary", "must be positive, got %.2f", input.AnnualSalary)
	}
	if input.SuperRate < 0 {
		return IncomeTaxResult{}, invalidParam("superRate", "must not be negative, got %.4f", input.SuperRate)
	}

	system, err := config.TaxYear.System()
	if err != nil {
		return IncomeTaxResult{}, err
	}

	superRate := input.SuperRate
	if superRate <= 0 {
		superRate = config.Super.GetGuaranteeRate()
	}

	gross := input.AnnualSalary
	if input.SuperIncluded {
		gross = input.AnnualSalary / (1 + superRate)
	}
	superAmount := gross * superRate

	incomeTax := system.Table.Tax(gross)
	levy := system.Levy.Amount(gross)
	offset := system.Offset.Amount(gross)
	netTax := system.NetTax(gross)
	netSalary := gross - netTax

	result := IncomeTaxResult{
		TaxYear:       system.Year,
		GrossSalary:   gross,
		Super:         superAmount,
		TaxableIncome: gross,
		IncomeTax:     incomeTax,
		MedicareLevy:  levy,
		Offset:        offset,
		NetTax:        netTax,
		NetSalary:     netSalary,
		NetMonthly:    netSalary / 12,
		MarginalRate:  system.MarginalRate(gross),
	}
	if gross > 0 {
		result.EffectiveRate = netTax / gross
	}
	return result, nil
}

// RequiredGrossResult reports the solved gross salary
type RequiredGrossResult struct {
	GrossSalary float64 `json:"gross_salary"`
	NetSalary   float64 `json:"net_salary"`
	NetTax      float64 `json:"net_tax"`
	Converged   bool    `json:"converged"`
}

// RequiredGrossSalary finds the gross salary whose take-home pay equals the
// target. Net pay increases with gross pay, so bisection applies; the upper
// bracket allows for the top marginal rate plus levy.
func RequiredGrossSalary(targetNet float64, config *Config) (RequiredGrossResult, error) {
	if targetNet <= 0 {
		return RequiredGrossResult{}, invalidParam("targetNet", "must be positive, got %.2f", targetNet)
	}

	system, err := config.TaxYear.System()
	if err != nil {
		return RequiredGrossResult{}, err
	}

	res := Bisect(SolveRequest{
		Target:     targetNet,
		Lower:      targetNet,
		Upper:      targetNet * 2.5,
		Tolerance:  0.01,
		Increasing: true,
		Objective: func(gross float64) float64 {
			return gross - system.NetTax(gross)
		},
	})

	return RequiredGrossResult{
		GrossSalary: res.Value,
		NetSalary:   res.Value - system.NetTax(res.Value),
		NetTax:      system.NetTax(res.Value),
		Converged:   res.Converged,
	}, nil
}
