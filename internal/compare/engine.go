package compare

import (
	"github.com/shopspring/decimal"
	"github.com/taxgo/taxgo/internal/calculation"
	"github.com/taxgo/taxgo/internal/domain"
)

// Engine runs the full computation pipeline for both regimes and produces
// the comparison. It is a pure function of the profile and the rules: the
// same inputs always produce an identical result.
type Engine struct {
	Rules     *domain.TaxYearRules
	TaxEngine *calculation.SlabTaxEngine
}

// NewEngine creates a comparison engine for one tax-year rules vintage.
func NewEngine(rules *domain.TaxYearRules) *Engine {
	return &Engine{
		Rules:     rules,
		TaxEngine: calculation.NewSlabTaxEngine(rules),
	}
}

// Compare validates the profile, computes both regimes, and recommends the
// cheaper one. Validation failures surface unmodified and no partial result
// is returned; ties go to the New regime, the statutory default.
func (e *Engine) Compare(profile *domain.IncomeProfile) (*domain.ComparisonResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	oldResult := e.computeRegime(profile, domain.RegimeOld)
	newResult := e.computeRegime(profile, domain.RegimeNew)

	savings := oldResult.FinalTax.Sub(newResult.FinalTax)
	recommended := domain.RegimeNew
	if savings.IsNegative() {
		recommended = domain.RegimeOld
	}

	return &domain.ComparisonResult{
		Old:         oldResult,
		New:         newResult,
		Savings:     savings,
		Recommended: recommended,
	}, nil
}

// computeRegime runs exemptions, deductions, taxable-income resolution, and
// the slab tax engine for one regime, recording every intermediate figure.
func (e *Engine) computeRegime(profile *domain.IncomeProfile, regime domain.Regime) *domain.RegimeResult {
	exemptions := calculation.CalculateExemptions(profile, regime, e.Rules)
	deductions := calculation.CalculateDeductions(profile, regime, e.Rules)
	taxable := calculation.ResolveTaxableIncome(profile, exemptions, deductions, e.Rules, regime)
	computed := e.TaxEngine.Compute(taxable, regime, profile.AgeBracket)

	gross := profile.GrossIncome()
	effectiveRate := decimal.Zero
	if gross.IsPositive() {
		effectiveRate = computed.FinalTax.Div(gross).Mul(decimal.NewFromInt(100))
	}

	return &domain.RegimeResult{
		Regime:            regime,
		GrossIncome:       gross,
		Exemptions:        exemptions,
		TotalExemptions:   exemptions.Total(),
		Deductions:        deductions,
		TotalDeductions:   deductions.Total(),
		StandardDeduction: e.Rules.RegimeFor(regime).StandardDeduction,
		TaxableIncome:     taxable,
		SlabTax:           computed.SlabTax,
		Rebate:            computed.Rebate,
		Surcharge:         computed.Surcharge,
		Cess:              computed.Cess,
		FinalTax:          computed.FinalTax,
		EffectiveRate:     effectiveRate,
	}
}
