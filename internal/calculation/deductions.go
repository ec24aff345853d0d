package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxgo/taxgo/internal/domain"
)

// CalculateDeductions sums the allowable Chapter VI-A and Section 24
// deductions for the given regime, applying each section's statutory cap.
// The sections allowed under the New regime are a strict subset of the Old
// regime's: only the employer NPS contribution and let-out home-loan
// interest survive the switch. The standard deduction is not part of the
// set; the taxable-income resolver applies it from the rules directly.
func CalculateDeductions(p *domain.IncomeProfile, regime domain.Regime, rules *domain.TaxYearRules) domain.DeductionSet {
	deductions := domain.DeductionSet{}
	caps := rules.Caps

	// Section 80CCD(2): employer NPS up to 14% of basic+DA, both regimes.
	// Never exceeds the amount actually contributed.
	employerNPSCap := p.BasicPlusDA().Mul(caps.EmployerNPSRate)
	if nps := decimal.Min(p.EmployerNPSContribution, employerNPSCap); nps.IsPositive() {
		deductions[domain.Section80CCD2] = nps
	}

	// Section 24(b) let-out property: uncapped, both regimes.
	if p.HomeLoanLetOut && p.HomeLoanInterest.IsPositive() {
		deductions[domain.Section24LetOut] = p.HomeLoanInterest
	}

	if regime == domain.RegimeNew {
		return deductions
	}

	// Section 80C: provident fund plus the grouped PPF/ELSS/insurance
	// investments, one combined ceiling.
	if s80c := decimal.Min(p.EPFContribution.Add(p.Section80CInvestments), caps.Section80C); s80c.IsPositive() {
		deductions[domain.Section80C] = s80c
	}

	// Section 80CCD(1B): additional NPS, its own ceiling, not interchangeable
	// with the 80C limit.
	if nps1b := decimal.Min(p.AdditionalNPSContribution, caps.Section80CCD1B); nps1b.IsPositive() {
		deductions[domain.Section80CCD1B] = nps1b
	}

	// Section 80D: self/spouse/children and parents capped per sub-category,
	// higher cap when the relevant payer is a senior citizen.
	selfCap := caps.Health80DSelf
	if p.IsSenior() {
		selfCap = caps.Health80DSelfSenior
	}
	parentsCap := caps.Health80DParents
	if p.ParentsAreSenior {
		parentsCap = caps.Health80DParentsSenior
	}
	health := decimal.Min(p.HealthInsuranceSelf, selfCap).Add(decimal.Min(p.HealthInsuranceParents, parentsCap))
	if health.IsPositive() {
		deductions[domain.Section80D] = health
	}

	// Section 80E: education loan interest, no cap.
	if p.EducationLoanInterest.IsPositive() {
		deductions[domain.Section80E] = p.EducationLoanInterest
	}

	// Section 80G: percentage-of-income caps are out of scope; the
	// configured eligible amount passes through unchanged.
	if p.EligibleDonations.IsPositive() {
		deductions[domain.Section80G] = p.EligibleDonations
	}

	// Section 80TTA: savings account interest up to the fixed ceiling.
	if tta := decimal.Min(p.SavingsInterest, caps.SavingsInterest80TTA); tta.IsPositive() {
		deductions[domain.Section80TTA] = tta
	}

	// Section 24(b) self-occupied property: capped, Old regime only.
	if !p.HomeLoanLetOut && p.HomeLoanInterest.IsPositive() {
		deductions[domain.Section24SelfOccupied] = decimal.Min(p.HomeLoanInterest, caps.HomeLoanSelfOccupied)
	}

	return deductions
}
