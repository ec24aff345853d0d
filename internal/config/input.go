package config

import (
	"fmt"
	"os"

	"github.com/taxgo/taxgo/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of taxpayer profile and rules files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadProfile loads and validates an income profile from a YAML file. The
// engine never sees an unvalidated profile: negative amounts and missing or
// unknown enum values are rejected here, wrapped in domain.ErrInvalidProfile.
func (ip *InputParser) LoadProfile(filename string) (*domain.IncomeProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.IncomeProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// LoadRules loads a tax-year rules file, for assessment years other than
// the built-in default. An empty filename returns the FY 2025-26 rules.
func (ip *InputParser) LoadRules(filename string) (*domain.TaxYearRules, error) {
	if filename == "" {
		return domain.DefaultRules2025(), nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}

	var rules domain.TaxYearRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules YAML: %w", err)
	}

	if err := ip.validateRules(&rules); err != nil {
		return nil, fmt.Errorf("rules validation failed: %w", err)
	}

	return &rules, nil
}

// validateRules checks the structural invariants the slab engine relies on:
// every regime and age bracket resolves to a slab table, slabs are contiguous
// with non-decreasing rates, and surcharge bands ascend.
func (ip *InputParser) validateRules(rules *domain.TaxYearRules) error {
	if len(rules.New.Slabs) == 0 {
		return fmt.Errorf("new regime slab table is required")
	}
	if err := ip.validateSlabs("new regime", rules.New.Slabs); err != nil {
		return err
	}

	if len(rules.Old.SlabsByAge) == 0 && len(rules.Old.Slabs) == 0 {
		return fmt.Errorf("old regime slab tables are required")
	}
	if len(rules.Old.Slabs) > 0 {
		if err := ip.validateSlabs("old regime", rules.Old.Slabs); err != nil {
			return err
		}
	}
	// Without a flat fallback table, every age bracket must be covered:
	// a bracket missing from the map would otherwise be taxed at zero.
	if len(rules.Old.Slabs) == 0 {
		for _, age := range []domain.AgeBracket{domain.AgeUnder60, domain.AgeSenior, domain.AgeSuperSenior} {
			if len(rules.Old.SlabsByAge[age]) == 0 {
				return fmt.Errorf("old regime slab table for age bracket %q is required", age)
			}
		}
	}
	for age, slabs := range rules.Old.SlabsByAge {
		if err := ip.validateSlabs(fmt.Sprintf("old regime (%s)", age), slabs); err != nil {
			return err
		}
	}

	for _, bands := range [][]domain.SurchargeBand{rules.Old.SurchargeBands, rules.New.SurchargeBands} {
		for i := 1; i < len(bands); i++ {
			if !bands[i].Threshold.GreaterThan(bands[i-1].Threshold) {
				return fmt.Errorf("surcharge bands must have ascending thresholds")
			}
		}
	}

	if rules.CessRate.IsNegative() {
		return fmt.Errorf("cess rate cannot be negative")
	}

	return nil
}

// validateSlabs checks one slab table: ascending bounds, non-decreasing
// rates, open-ended (zero UpTo) only in the final slab.
func (ip *InputParser) validateSlabs(table string, slabs []domain.TaxSlab) error {
	for i, slab := range slabs {
		if slab.Rate.IsNegative() {
			return fmt.Errorf("%s: slab %d rate cannot be negative", table, i)
		}
		if i == 0 {
			continue
		}
		prev := slabs[i-1]
		if prev.UpTo.IsZero() {
			return fmt.Errorf("%s: only the final slab may be open-ended", table)
		}
		if !slab.UpTo.IsZero() && !slab.UpTo.GreaterThan(prev.UpTo) {
			return fmt.Errorf("%s: slab %d bound must exceed the previous bound", table, i)
		}
		if slab.Rate.LessThan(prev.Rate) {
			return fmt.Errorf("%s: slab %d rate must not decrease", table, i)
		}
	}
	return nil
}
