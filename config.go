package main

import (
	_ "embed"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// DefaultsConfig holds the fallback rates a calculator uses when the caller
// supplies no value. Rate inputs at the boundary arrive as whole-number
// percentages; these are already fractions.
type DefaultsConfig struct {
	AnnualReturnRate float64 `yaml:"annual_return_rate" json:"annual_return_rate"`
	InflationRate    float64 `yaml:"inflation_rate" json:"inflation_rate"`
	FeeRate          float64 `yaml:"fee_rate" json:"fee_rate"`
	Compounding      string  `yaml:"compounding" json:"compounding"`
}

// GetAnnualReturnRate returns the configured default return or 7%
func (d DefaultsConfig) GetAnnualReturnRate() float64 {
	if d.AnnualReturnRate <= 0 {
		return 0.07
	}
	return d.AnnualReturnRate
}

// GetInflationRate returns the configured default inflation or 2.5%
func (d DefaultsConfig) GetInflationRate() float64 {
	if d.InflationRate <= 0 {
		return 0.025
	}
	return d.InflationRate
}

// GetFeeRate returns the configured default fee drag or 0.85%
func (d DefaultsConfig) GetFeeRate() float64 {
	if d.FeeRate <= 0 {
		return 0.0085
	}
	return d.FeeRate
}

// GetCompounding returns the configured default compounding or monthly
func (d DefaultsConfig) GetCompounding() Compounding {
	return ParseCompounding(d.Compounding)
}

// SuperConfig holds superannuation rates for the configured tax year
type SuperConfig struct {
	GuaranteeRate        float64 `yaml:"guarantee_rate" json:"guarantee_rate"`
	ContributionsTaxRate float64 `yaml:"contributions_tax_rate" json:"contributions_tax_rate"`
	EarningsTaxRate      float64 `yaml:"earnings_tax_rate" json:"earnings_tax_rate"`
}

// GetGuaranteeRate returns the configured super guarantee or 11.5%
func (s SuperConfig) GetGuaranteeRate() float64 {
	if s.GuaranteeRate <= 0 {
		return 0.115
	}
	return s.GuaranteeRate
}

// TaxYearConfig is one tax year's versioned bracket and offset data. A new
// tax year is a config edit, not a code change.
type TaxYearConfig struct {
	Year            string       `yaml:"year" json:"year"`
	Brackets        []TaxBracket `yaml:"brackets" json:"brackets"`
	MedicareLevy    MedicareLevy `yaml:"medicare_levy" json:"medicare_levy"`
	LowIncomeOffset TaxOffset    `yaml:"low_income_offset" json:"low_income_offset"`
}

// System builds the validated TaxSystem for this tax year
func (t TaxYearConfig) System() (*TaxSystem, error) {
	table, err := NewBracketTable(t.Brackets)
	if err != nil {
		return nil, err
	}
	return &TaxSystem{
		Year:   t.Year,
		Table:  table,
		Levy:   t.MedicareLevy,
		Offset: t.LowIncomeOffset,
	}, nil
}

// PensionRateConfig holds the Age Pension rate card for one household type
type PensionRateConfig struct {
	MaxFortnightly              float64 `yaml:"max_fortnightly" json:"max_fortnightly"`
	AssetsThresholdHomeowner    float64 `yaml:"assets_threshold_homeowner" json:"assets_threshold_homeowner"`
	AssetsThresholdNonHomeowner float64 `yaml:"assets_threshold_non_homeowner" json:"assets_threshold_non_homeowner"`
	IncomeFreeArea              float64 `yaml:"income_free_area" json:"income_free_area"`
}

// AgePensionConfig holds the means-test thresholds and tapers
type AgePensionConfig struct {
	EligibilityAge     int               `yaml:"eligibility_age" json:"eligibility_age"`
	AssetsTaperPer1000 float64           `yaml:"assets_taper_per_1000" json:"assets_taper_per_1000"`
	IncomeTaperRate    float64           `yaml:"income_taper_rate" json:"income_taper_rate"`
	Single             PensionRateConfig `yaml:"single" json:"single"`
	Couple             PensionRateConfig `yaml:"couple" json:"couple"`
}

// GetEligibilityAge returns the configured pension age or 67
func (a AgePensionConfig) GetEligibilityAge() int {
	if a.EligibilityAge <= 0 {
		return 67
	}
	return a.EligibilityAge
}

// Rates returns the rate card for a household type
func (a AgePensionConfig) Rates(household HouseholdType) PensionRateConfig {
	if household == HouseholdCouple {
		return a.Couple
	}
	return a.Single
}

// Config is the root configuration document
type Config struct {
	Defaults   DefaultsConfig   `yaml:"defaults" json:"defaults"`
	TaxYear    TaxYearConfig    `yaml:"tax_year" json:"tax_year"`
	Super      SuperConfig      `yaml:"super" json:"super"`
	AgePension AgePensionConfig `yaml:"age_pension" json:"age_pension"`
}

// LoadConfig loads configuration from a YAML file. Percentage-suffixed
// values ("32.5%") are converted to fractions before unmarshalling.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal([]byte(preprocessPercentages(string(data))), &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadDefaultConfig parses the embedded default-config.yaml
func LoadDefaultConfig() (*Config, error) {
	content := preprocessPercentages(defaultConfigYAML)

	var config Config
	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// MustDefaultConfig returns the embedded default config; the embedded file is
// part of the build, so a parse failure is a programming error.
func MustDefaultConfig() *Config {
	config, err := LoadDefaultConfig()
	if err != nil {
		panic("default-config.yaml: " + err.Error())
	}
	return config
}

var percentRe = regexp.MustCompile(`(:\s*)(\d+\.?\d*)%`)

// preprocessPercentages converts percentage values like "32.5%" to "0.325"
func preprocessPercentages(content string) string {
	return percentRe.ReplaceAllStringFunc(content, func(match string) string {
		parts := percentRe.FindStringSubmatch(match)
		if len(parts) >= 3 {
			num, err := strconv.ParseFloat(parts[2], 64)
			if err == nil {
				return parts[1] + strconv.FormatFloat(num/100.0, 'f', -1, 64)
			}
		}
		return match
	})
}
