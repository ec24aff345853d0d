package domain

import (
	"github.com/shopspring/decimal"
)

// Exemption and deduction section identifiers used as map keys in the
// derived sets and in rendered reports.
const (
	ExemptionHRA = "HRA Exemption [10(13A)]"
	ExemptionLTA = "LTA Exemption [10(5)]"

	Section80C            = "Section 80C"
	Section80CCD1B        = "Section 80CCD(1B) - Additional NPS"
	Section80CCD2         = "Section 80CCD(2) - Employer NPS"
	Section80D            = "Section 80D - Health Insurance"
	Section80E            = "Section 80E - Education Loan"
	Section80G            = "Section 80G - Donations"
	Section80TTA          = "Section 80TTA - Savings Interest"
	Section24SelfOccupied = "Section 24(b) - Self-Occupied Interest"
	Section24LetOut       = "Section 24(b) - Let-Out Interest"
)

// ExemptionSet maps exemption name to exempt amount for one regime. Empty
// under the New regime by construction.
type ExemptionSet map[string]decimal.Decimal

// Total sums all exemptions in the set.
func (es ExemptionSet) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range es {
		total = total.Add(v)
	}
	return total
}

// DeductionSet maps section identifier to the post-cap allowed amount for
// one regime. The standard deduction is not part of the set; it is applied
// separately by the taxable-income resolver.
type DeductionSet map[string]decimal.Decimal

// Total sums all capped deductions in the set.
func (ds DeductionSet) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range ds {
		total = total.Add(v)
	}
	return total
}

// RegimeResult is the full audit trail of one regime's computation: every
// intermediate figure is traceable back to the inputs that produced it.
type RegimeResult struct {
	Regime Regime `json:"regime"`

	GrossIncome decimal.Decimal `json:"grossIncome"`

	Exemptions      ExemptionSet    `json:"exemptions"`
	TotalExemptions decimal.Decimal `json:"totalExemptions"`

	Deductions      DeductionSet    `json:"deductions"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`

	StandardDeduction decimal.Decimal `json:"standardDeduction"`

	TaxableIncome decimal.Decimal `json:"taxableIncome"`

	SlabTax   decimal.Decimal `json:"slabTax"`
	Rebate    decimal.Decimal `json:"rebate"`
	Surcharge decimal.Decimal `json:"surcharge"`
	Cess      decimal.Decimal `json:"cess"`
	FinalTax  decimal.Decimal `json:"finalTax"`

	// EffectiveRate is FinalTax as a percentage of GrossIncome; zero when
	// there is no gross income.
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
}

// ComparisonResult pairs both regime results with the savings delta and the
// recommended regime. Savings is signed: positive means the New regime is
// cheaper by that amount.
type ComparisonResult struct {
	Old *RegimeResult `json:"oldRegime"`
	New *RegimeResult `json:"newRegime"`

	// Savings = Old.FinalTax - New.FinalTax.
	Savings decimal.Decimal `json:"savings"`

	// Recommended is the regime with strictly lower final tax; ties go to
	// the New regime, the statutory default.
	Recommended Regime `json:"recommended"`
}
