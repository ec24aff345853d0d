package domain

import (
	"github.com/shopspring/decimal"
)

// TaxYearRules contains every statutory constant for one assessment year:
// slab tables, rebate rules, surcharge bands, section caps, and standard
// deductions. The engine takes this object as input so yearly Finance Act
// changes are a data edit, not a code edit. Loadable from a rules YAML file
// in the same way personal profiles are loaded.
type TaxYearRules struct {
	Metadata RulesMetadata `yaml:"metadata" json:"metadata"`

	Old RegimeRules `yaml:"old_regime" json:"old_regime"`
	New RegimeRules `yaml:"new_regime" json:"new_regime"`

	Caps     SectionCaps     `yaml:"section_caps" json:"section_caps"`
	CessRate decimal.Decimal `yaml:"cess_rate" json:"cess_rate"`
}

// RulesMetadata identifies the statutory vintage of a rules set.
type RulesMetadata struct {
	AssessmentYear string `yaml:"assessment_year" json:"assessment_year"`
	FinancialYear  string `yaml:"financial_year" json:"financial_year"`
	Description    string `yaml:"description" json:"description"`
}

// RegimeRules holds the regime-specific pieces: slab schedule, rebate rule,
// standard deduction, and surcharge bands.
type RegimeRules struct {
	// Slabs is used directly by the New regime; the Old regime selects one
	// of the age-keyed tables instead.
	Slabs      []TaxSlab                `yaml:"slabs" json:"slabs"`
	SlabsByAge map[AgeBracket][]TaxSlab `yaml:"slabs_by_age,omitempty" json:"slabs_by_age,omitempty"`

	RebateThreshold decimal.Decimal `yaml:"rebate_threshold" json:"rebate_threshold"`
	RebateCap       decimal.Decimal `yaml:"rebate_cap" json:"rebate_cap"`

	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`

	SurchargeBands []SurchargeBand `yaml:"surcharge_bands" json:"surcharge_bands"`
}

// TaxSlab is a contiguous income bracket taxed at a fixed marginal rate.
// UpTo is the slab's upper bound; a zero UpTo marks the open-ended top slab.
type TaxSlab struct {
	UpTo decimal.Decimal `yaml:"up_to" json:"up_to"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// SurchargeBand levies an extra percentage of tax once taxable income
// exceeds Threshold. Bands must be listed in ascending threshold order.
type SurchargeBand struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// SlabsFor returns the slab table applicable to the given regime and age
// bracket. The New regime table is universal; the Old regime's nil band
// widens with age.
func (r *TaxYearRules) SlabsFor(regime Regime, age AgeBracket) []TaxSlab {
	if regime == RegimeNew {
		return r.New.Slabs
	}
	if slabs, ok := r.Old.SlabsByAge[age]; ok {
		return slabs
	}
	return r.Old.Slabs
}

// RegimeFor returns the regime-specific rules block.
func (r *TaxYearRules) RegimeFor(regime Regime) *RegimeRules {
	if regime == RegimeNew {
		return &r.New
	}
	return &r.Old
}

// SectionCaps holds the per-section deduction ceilings shared by the
// aggregator. Amounts are annual INR; rates are fractions.
type SectionCaps struct {
	Section80C             decimal.Decimal `yaml:"section_80c" json:"section_80c"`
	Section80CCD1B         decimal.Decimal `yaml:"section_80ccd_1b" json:"section_80ccd_1b"`
	EmployerNPSRate        decimal.Decimal `yaml:"employer_nps_rate" json:"employer_nps_rate"`
	Health80DSelf          decimal.Decimal `yaml:"health_80d_self" json:"health_80d_self"`
	Health80DSelfSenior    decimal.Decimal `yaml:"health_80d_self_senior" json:"health_80d_self_senior"`
	Health80DParents       decimal.Decimal `yaml:"health_80d_parents" json:"health_80d_parents"`
	Health80DParentsSenior decimal.Decimal `yaml:"health_80d_parents_senior" json:"health_80d_parents_senior"`
	SavingsInterest80TTA   decimal.Decimal `yaml:"savings_interest_80tta" json:"savings_interest_80tta"`
	HomeLoanSelfOccupied   decimal.Decimal `yaml:"home_loan_self_occupied" json:"home_loan_self_occupied"`
	HRAMetroRate           decimal.Decimal `yaml:"hra_metro_rate" json:"hra_metro_rate"`
	HRANonMetroRate        decimal.Decimal `yaml:"hra_non_metro_rate" json:"hra_non_metro_rate"`
	HRARentOffsetRate      decimal.Decimal `yaml:"hra_rent_offset_rate" json:"hra_rent_offset_rate"`
}

// DefaultRules2025 returns the FY 2025-26 (AY 2026-27) statutory rules.
func DefaultRules2025() *TaxYearRules {
	openEnd := decimal.Zero // top slab sentinel

	return &TaxYearRules{
		Metadata: RulesMetadata{
			AssessmentYear: "2026-27",
			FinancialYear:  "2025-26",
			Description:    "Finance Act 2025 slab rates and section caps",
		},
		New: RegimeRules{
			Slabs: []TaxSlab{
				{UpTo: decimal.NewFromInt(400000), Rate: decimal.Zero},
				{UpTo: decimal.NewFromInt(800000), Rate: decimal.NewFromFloat(0.05)},
				{UpTo: decimal.NewFromInt(1200000), Rate: decimal.NewFromFloat(0.10)},
				{UpTo: decimal.NewFromInt(1600000), Rate: decimal.NewFromFloat(0.15)},
				{UpTo: decimal.NewFromInt(2000000), Rate: decimal.NewFromFloat(0.20)},
				{UpTo: decimal.NewFromInt(2400000), Rate: decimal.NewFromFloat(0.25)},
				{UpTo: openEnd, Rate: decimal.NewFromFloat(0.30)},
			},
			RebateThreshold:   decimal.NewFromInt(1200000),
			RebateCap:         decimal.NewFromInt(60000),
			StandardDeduction: decimal.NewFromInt(75000),
			SurchargeBands: []SurchargeBand{
				{Threshold: decimal.NewFromInt(5000000), Rate: decimal.NewFromFloat(0.10)},
				{Threshold: decimal.NewFromInt(10000000), Rate: decimal.NewFromFloat(0.15)},
				{Threshold: decimal.NewFromInt(20000000), Rate: decimal.NewFromFloat(0.25)},
			},
		},
		Old: RegimeRules{
			SlabsByAge: map[AgeBracket][]TaxSlab{
				AgeUnder60: {
					{UpTo: decimal.NewFromInt(250000), Rate: decimal.Zero},
					{UpTo: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.05)},
					{UpTo: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.20)},
					{UpTo: openEnd, Rate: decimal.NewFromFloat(0.30)},
				},
				AgeSenior: {
					{UpTo: decimal.NewFromInt(300000), Rate: decimal.Zero},
					{UpTo: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.05)},
					{UpTo: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.20)},
					{UpTo: openEnd, Rate: decimal.NewFromFloat(0.30)},
				},
				AgeSuperSenior: {
					{UpTo: decimal.NewFromInt(500000), Rate: decimal.Zero},
					{UpTo: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.20)},
					{UpTo: openEnd, Rate: decimal.NewFromFloat(0.30)},
				},
			},
			RebateThreshold:   decimal.NewFromInt(500000),
			RebateCap:         decimal.NewFromInt(12500),
			StandardDeduction: decimal.NewFromInt(50000),
			SurchargeBands: []SurchargeBand{
				{Threshold: decimal.NewFromInt(5000000), Rate: decimal.NewFromFloat(0.10)},
				{Threshold: decimal.NewFromInt(10000000), Rate: decimal.NewFromFloat(0.15)},
				{Threshold: decimal.NewFromInt(20000000), Rate: decimal.NewFromFloat(0.25)},
				{Threshold: decimal.NewFromInt(50000000), Rate: decimal.NewFromFloat(0.37)},
			},
		},
		Caps: SectionCaps{
			Section80C:             decimal.NewFromInt(150000),
			Section80CCD1B:         decimal.NewFromInt(50000),
			EmployerNPSRate:        decimal.NewFromFloat(0.14),
			Health80DSelf:          decimal.NewFromInt(25000),
			Health80DSelfSenior:    decimal.NewFromInt(50000),
			Health80DParents:       decimal.NewFromInt(25000),
			Health80DParentsSenior: decimal.NewFromInt(50000),
			SavingsInterest80TTA:   decimal.NewFromInt(10000),
			HomeLoanSelfOccupied:   decimal.NewFromInt(200000),
			HRAMetroRate:           decimal.NewFromFloat(0.50),
			HRANonMetroRate:        decimal.NewFromFloat(0.40),
			HRARentOffsetRate:      decimal.NewFromFloat(0.10),
		},
		CessRate: decimal.NewFromFloat(0.04),
	}
}
