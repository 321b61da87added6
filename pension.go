package main

// Age Pension entitlement under the assets and income means tests. Both
// tests produce an independent linear-reduction candidate; the lower one
// binds. Thresholds and tapers come from the age_pension config section.

// AgePensionInput describes one household's claim
type AgePensionInput struct {
	Age               int           `json:"age"`
	Household         HouseholdType `json:"household"`
	Homeowner         bool          `json:"homeowner"`
	AssessableAssets  float64       `json:"assessable_assets"`
	FortnightlyIncome float64       `json:"fortnightly_income"`
}

// MeansTestResult is the outcome of one means-test evaluation. For couples
// the amounts are combined across both partners.
type MeansTestResult struct {
	Eligible           bool        `json:"eligible"`
	YearsUntilEligible int         `json:"years_until_eligible,omitempty"`
	Fortnightly        float64     `json:"fortnightly"`
	Annual             float64     `json:"annual"`
	BindingTest        BindingTest `json:"-"`
	BindingTestName    string      `json:"binding_test"`
	AssetsTestAmount   float64     `json:"assets_test_amount"`
	IncomeTestAmount   float64     `json:"income_test_amount"`
}

// CalculateAgePension evaluates eligibility and entitlement for a household
func CalculateAgePension(input AgePensionInput, config *Config) (MeansTestResult, error) {
	if input.Age <= 0 {
		return MeansTestResult{}, invalidParam("age", "must be positive, got %d", input.Age)
	}
	if input.AssessableAssets < 0 {
		return MeansTestResult{}, invalidParam("assessableAssets", "must not be negative, got %.2f", input.AssessableAssets)
	}
	if input.FortnightlyIncome < 0 {
		return MeansTestResult{}, invalidParam("fortnightlyIncome", "must not be negative, got %.2f", input.FortnightlyIncome)
	}

	pensionAge := config.AgePension.GetEligibilityAge()
	if input.Age < pensionAge {
		// Below pension age: report years remaining, no entitlement math.
		return MeansTestResult{
			Eligible:           false,
			YearsUntilEligible: pensionAge - input.Age,
			BindingTest:        TestNone,
			BindingTestName:    TestNone.String(),
		}, nil
	}

	rates := config.AgePension.Rates(input.Household)

	assetsThreshold := rates.AssetsThresholdHomeowner
	if !input.Homeowner {
		assetsThreshold = rates.AssetsThresholdNonHomeowner
	}

	assetsCandidate := rates.MaxFortnightly
	if excess := input.AssessableAssets - assetsThreshold; excess > 0 {
		assetsCandidate -= (excess / 1000) * config.AgePension.AssetsTaperPer1000
	}
	if assetsCandidate < 0 {
		assetsCandidate = 0
	}

	incomeCandidate := rates.MaxFortnightly
	if excess := input.FortnightlyIncome - rates.IncomeFreeArea; excess > 0 {
		incomeCandidate -= excess * config.AgePension.IncomeTaperRate
	}
	if incomeCandidate < 0 {
		incomeCandidate = 0
	}

	entitlement := assetsCandidate
	binding := TestAssets
	if incomeCandidate < assetsCandidate {
		entitlement = incomeCandidate
		binding = TestIncome
	}
	if entitlement >= rates.MaxFortnightly {
		binding = TestNone
	}

	return MeansTestResult{
		Eligible:         true,
		Fortnightly:      entitlement,
		Annual:           entitlement * 26,
		BindingTest:      binding,
		BindingTestName:  binding.String(),
		AssetsTestAmount: assetsCandidate,
		IncomeTestAmount: incomeCandidate,
	}, nil
}
