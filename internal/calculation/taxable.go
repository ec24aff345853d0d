package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxgo/taxgo/internal/domain"
)

// ResolveTaxableIncome combines gross income, exemptions, capped
// deductions, and the regime's standard deduction into taxable income.
// A profile whose deductions exceed its gross income yields zero taxable
// income, not an error.
func ResolveTaxableIncome(p *domain.IncomeProfile, exemptions domain.ExemptionSet, deductions domain.DeductionSet, rules *domain.TaxYearRules, regime domain.Regime) decimal.Decimal {
	taxable := p.GrossIncome().
		Sub(exemptions.Total()).
		Sub(deductions.Total()).
		Sub(rules.RegimeFor(regime).StandardDeduction)

	if taxable.IsNegative() {
		return decimal.Zero
	}
	return taxable
}
