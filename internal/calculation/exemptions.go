package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxgo/taxgo/internal/domain"
)

// CalculateExemptions derives the Section-10 style exempt amounts for the
// given regime. The New regime disallows all of them, so it always gets an
// empty set. An exemption can never exceed the allowance actually received.
func CalculateExemptions(p *domain.IncomeProfile, regime domain.Regime, rules *domain.TaxYearRules) domain.ExemptionSet {
	exemptions := domain.ExemptionSet{}
	if regime == domain.RegimeNew {
		return exemptions
	}

	if hra := calculateHRAExemption(p, rules); hra.IsPositive() {
		exemptions[domain.ExemptionHRA] = hra
	}

	// LTA: travel-cost receipts are not modeled, so the full allowance is
	// treated as exempt. Known simplification carried over from the source
	// configuration.
	if p.LTAReceived.IsPositive() {
		exemptions[domain.ExemptionLTA] = p.LTAReceived
	}

	return exemptions
}

// calculateHRAExemption implements Section 10(13A): the exemption is the
// minimum of (a) HRA received, (b) rent paid less 10% of basic+DA, and
// (c) 50% of basic+DA in a metro city, 40% otherwise. Quantity (b) floors
// at zero, so paying no rent yields no exemption even when HRA was received.
func calculateHRAExemption(p *domain.IncomeProfile, rules *domain.TaxYearRules) decimal.Decimal {
	if p.HRAReceived.IsZero() || p.RentPaid.IsZero() {
		return decimal.Zero
	}

	basicPlusDA := p.BasicPlusDA()

	rentMinusOffset := p.RentPaid.Sub(basicPlusDA.Mul(rules.Caps.HRARentOffsetRate))
	if rentMinusOffset.IsNegative() {
		rentMinusOffset = decimal.Zero
	}

	salaryShare := basicPlusDA.Mul(rules.Caps.HRANonMetroRate)
	if p.City == domain.CityMetro {
		salaryShare = basicPlusDA.Mul(rules.Caps.HRAMetroRate)
	}

	return decimal.Min(p.HRAReceived, rentMinusOffset, salaryShare)
}
