package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Configuration Tests

func TestPreprocessPercentages(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"rate: 32.5%", "rate: 0.325"},
		{"rate: 2%", "rate: 0.02"},
		{"rate: 0.325", "rate: 0.325"},
		{"rate: 100%", "rate: 1"},
		{"label: 50% off", "label: 0.5 off"},
	}
	for _, c := range cases {
		if got := preprocessPercentages(c.input); got != c.want {
			t.Errorf("preprocess(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("embedded config must parse: %v", err)
	}

	if config.TaxYear.Year != "2024-25" {
		t.Errorf("tax year = %q, want 2024-25", config.TaxYear.Year)
	}
	if len(config.TaxYear.Brackets) != 5 {
		t.Fatalf("brackets = %d, want 5", len(config.TaxYear.Brackets))
	}
	assertNear(t, 0.45, config.TaxYear.Brackets[4].Rate, 1e-9, "top bracket rate from percentage syntax")
	assertNear(t, 0.115, config.Super.GetGuaranteeRate(), 1e-9, "super guarantee")
	assertNear(t, 1116.30, config.AgePension.Single.MaxFortnightly, 1e-9, "single pension rate")

	if _, err := config.TaxYear.System(); err != nil {
		t.Fatalf("embedded brackets must validate: %v", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	// A zero-valued config still answers with the built-in fallbacks
	var config Config

	assertNear(t, 0.07, config.Defaults.GetAnnualReturnRate(), 1e-9, "default return")
	assertNear(t, 0.025, config.Defaults.GetInflationRate(), 1e-9, "default inflation")
	assertNear(t, 0.0085, config.Defaults.GetFeeRate(), 1e-9, "default fees")
	if got := config.Defaults.GetCompounding(); got != CompoundMonthly {
		t.Errorf("default compounding = %v, want monthly", got)
	}
	if got := config.AgePension.GetEligibilityAge(); got != 67 {
		t.Errorf("default pension age = %d, want 67", got)
	}
	assertNear(t, 0.115, config.Super.GetGuaranteeRate(), 1e-9, "default guarantee")
}

func TestLoadConfig_File(t *testing.T) {
	content := `
defaults:
  annual_return_rate: 6%
  compounding: quarterly
tax_year:
  year: "2025-26"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNear(t, 0.06, config.Defaults.GetAnnualReturnRate(), 1e-9, "rate from file")
	if got := config.Defaults.GetCompounding(); got != CompoundQuarterly {
		t.Errorf("compounding = %v, want quarterly", got)
	}
	if config.TaxYear.Year != "2025-26" {
		t.Errorf("year = %q, want 2025-26", config.TaxYear.Year)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file must error")
	}
}

func TestAgePensionRates_PerHousehold(t *testing.T) {
	config := MustDefaultConfig()
	single := config.AgePension.Rates(HouseholdSingle)
	couple := config.AgePension.Rates(HouseholdCouple)

	assertNear(t, 1116.30, single.MaxFortnightly, 1e-9, "single rate card")
	assertNear(t, 1682.80, couple.MaxFortnightly, 1e-9, "couple rate card")
	if couple.AssetsThresholdHomeowner <= single.AssetsThresholdHomeowner {
		t.Error("couple assets threshold should exceed the single threshold")
	}
}
