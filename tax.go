package main

import (
	"math"
)

// Progressive bracket evaluation shared by the income tax calculator and the
// salary gross-up solver. Bracket tables are data, loaded from the tax-year
// section of the config, so a new tax year is a config change, not a code
// change.

// TaxBracket is one row of a progressive bracket table. Upper <= 0 in config
// means unbounded (the top bracket).
type TaxBracket struct {
	Name  string  `yaml:"name" json:"name"`
	Lower float64 `yaml:"lower" json:"lower"`
	Upper float64 `yaml:"upper" json:"upper"`
	Rate  float64 `yaml:"rate" json:"rate"`

	// base is the cumulative tax owed at Lower, precomputed by
	// NewBracketTable so evaluation is a single linear scan.
	base float64
}

// BracketTable is an ordered, gap-free partition of the non-negative reals
// with monotonically non-decreasing marginal rates.
type BracketTable struct {
	brackets []TaxBracket
}

// NewBracketTable validates the bracket rows and precomputes the cumulative
// base at each bracket's lower bound:
//
//	base[i] = base[i-1] + (upper[i-1] - lower[i-1]) * rate[i-1]
func NewBracketTable(rows []TaxBracket) (*BracketTable, error) {
	if len(rows) == 0 {
		return nil, invalidParam("brackets", "at least one bracket is required")
	}
	if rows[0].Lower != 0 {
		return nil, invalidParam("brackets", "first bracket must start at 0, got %.2f", rows[0].Lower)
	}

	brackets := make([]TaxBracket, len(rows))
	copy(brackets, rows)

	for i := range brackets {
		last := i == len(brackets)-1
		if brackets[i].Upper <= 0 {
			if !last {
				return nil, invalidParam("brackets", "bracket %d is unbounded but not last", i)
			}
			brackets[i].Upper = math.Inf(1)
		}
		if brackets[i].Upper <= brackets[i].Lower {
			return nil, invalidParam("brackets", "bracket %d upper bound %.2f not above lower bound %.2f",
				i, brackets[i].Upper, brackets[i].Lower)
		}
		if i > 0 {
			prev := brackets[i-1]
			if brackets[i].Lower != prev.Upper {
				return nil, invalidParam("brackets", "gap or overlap between bracket %d and %d", i-1, i)
			}
			if brackets[i].Rate < prev.Rate {
				return nil, invalidParam("brackets", "bracket %d rate %.4f below previous rate %.4f",
					i, brackets[i].Rate, prev.Rate)
			}
			brackets[i].base = prev.base + (prev.Upper-prev.Lower)*prev.Rate
		}
	}

	return &BracketTable{brackets: brackets}, nil
}

// Tax returns the cumulative tax on an income: the precomputed base of the
// containing bracket plus the marginal slice above its lower bound.
func (t *BracketTable) Tax(income float64) float64 {
	if income <= 0 {
		return 0
	}
	for _, b := range t.brackets {
		if income <= b.Upper {
			return b.base + (income-b.Lower)*b.Rate
		}
	}
	// Unreachable: the last bracket is unbounded.
	top := t.brackets[len(t.brackets)-1]
	return top.base + (income-top.Lower)*top.Rate
}

// MarginalRate returns the marginal rate of the bracket containing the
// income. Reporting only; the main computation never uses it.
func (t *BracketTable) MarginalRate(income float64) float64 {
	if income < 0 {
		income = 0
	}
	for _, b := range t.brackets {
		if income < b.Upper {
			return b.Rate
		}
	}
	return t.brackets[len(t.brackets)-1].Rate
}

// Brackets returns a copy of the validated bracket rows (for reporting)
func (t *BracketTable) Brackets() []TaxBracket {
	out := make([]TaxBracket, len(t.brackets))
	copy(out, t.brackets)
	return out
}

// MedicareLevy applies a flat rate with a shading-in band: zero at or below
// the threshold, then a steeper ramp on the excess until the ramp meets the
// full flat rate of the whole income.
type MedicareLevy struct {
	Rate        float64 `yaml:"rate" json:"rate"`
	Threshold   float64 `yaml:"threshold" json:"threshold"`
	ShadeInRate float64 `yaml:"shade_in_rate" json:"shade_in_rate"`
}

// Amount returns the levy payable on an income
func (m MedicareLevy) Amount(income float64) float64 {
	if income <= m.Threshold || m.Rate <= 0 {
		return 0
	}
	shaded := (income - m.Threshold) * m.ShadeInRate
	full := income * m.Rate
	return math.Min(shaded, full)
}

// MarginalRate reports the levy's contribution to the marginal rate at an
// income level: zero below the threshold, the shade-in rate inside the ramp,
// the flat rate above it.
func (m MedicareLevy) MarginalRate(income float64) float64 {
	if income <= m.Threshold || m.Rate <= 0 {
		return 0
	}
	if (income-m.Threshold)*m.ShadeInRate < income*m.Rate {
		return m.ShadeInRate
	}
	return m.Rate
}

// OffsetTaper is one linear phase-out segment of a tax offset, applying its
// rate to income above Threshold up to the next segment's threshold.
type OffsetTaper struct {
	Threshold float64 `yaml:"threshold" json:"threshold"`
	Rate      float64 `yaml:"rate" json:"rate"`
}

// TaxOffset is maximal at or below its first taper threshold and phases out
// linearly across the taper segments, floored at zero.
type TaxOffset struct {
	MaxAmount float64       `yaml:"max_amount" json:"max_amount"`
	Tapers    []OffsetTaper `yaml:"tapers" json:"tapers"`
}

// Amount returns the offset available at an income
func (o TaxOffset) Amount(income float64) float64 {
	amount := o.MaxAmount
	for i, taper := range o.Tapers {
		if income <= taper.Threshold {
			break
		}
		upper := math.Inf(1)
		if i+1 < len(o.Tapers) {
			upper = o.Tapers[i+1].Threshold
		}
		amount -= (math.Min(income, upper) - taper.Threshold) * taper.Rate
	}
	if amount < 0 {
		return 0
	}
	return amount
}

// TaxSystem bundles one tax year's bracket table with its levy and offset
type TaxSystem struct {
	Year   string
	Table  *BracketTable
	Levy   MedicareLevy
	Offset TaxOffset
}

// NetTax returns income tax minus offset plus levy, floored at zero
func (s *TaxSystem) NetTax(income float64) float64 {
	if income <= 0 {
		return 0
	}
	net := s.Table.Tax(income) - s.Offset.Amount(income) + s.Levy.Amount(income)
	if net < 0 {
		return 0
	}
	return net
}

// MarginalRate returns the bracket rate plus the levy add-on at an income
func (s *TaxSystem) MarginalRate(income float64) float64 {
	return s.Table.MarginalRate(income) + s.Levy.MarginalRate(income)
}
