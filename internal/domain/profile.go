package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidProfile is wrapped by every profile validation failure so callers
// can distinguish configuration mistakes from programming errors.
var ErrInvalidProfile = errors.New("invalid income profile")

// Regime identifies one of the two statutory tax computation schemes.
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// Regimes lists both regimes in comparison order.
func Regimes() []Regime {
	return []Regime{RegimeOld, RegimeNew}
}

// AgeBracket determines the Old-regime slab table and rebate handling.
type AgeBracket string

const (
	AgeUnder60     AgeBracket = "under_60"
	AgeSenior      AgeBracket = "senior_60_to_80"
	AgeSuperSenior AgeBracket = "super_senior_80_plus"
)

// CityClass determines the HRA exemption percentage.
type CityClass string

const (
	CityMetro    CityClass = "metro"
	CityNonMetro CityClass = "non_metro"
)

// IncomeProfile is the normalized, regime-independent description of a
// taxpayer's annual compensation and claimed deductions. All amounts are
// annual INR. It is built once by the loader and never mutated.
type IncomeProfile struct {
	AgeBracket AgeBracket `yaml:"age_bracket"`
	City       CityClass  `yaml:"city"`

	// Compensation
	BasicSalary        decimal.Decimal `yaml:"basic_salary"`
	DearnessAllowance  decimal.Decimal `yaml:"dearness_allowance"`
	HRAReceived        decimal.Decimal `yaml:"hra_received"`
	LTAReceived        decimal.Decimal `yaml:"lta_received"`
	SpecialAllowance   decimal.Decimal `yaml:"special_allowance"`
	Bonus              decimal.Decimal `yaml:"bonus"`
	OtherPerquisites   decimal.Decimal `yaml:"other_perquisites"`

	// Housing context
	RentPaid decimal.Decimal `yaml:"rent_paid"`

	// Investments and contributions
	EPFContribution           decimal.Decimal `yaml:"epf_contribution"`
	Section80CInvestments     decimal.Decimal `yaml:"section_80c_investments"`
	AdditionalNPSContribution decimal.Decimal `yaml:"additional_nps_contribution"`
	EmployerNPSContribution   decimal.Decimal `yaml:"employer_nps_contribution"`
	HealthInsuranceSelf       decimal.Decimal `yaml:"health_insurance_self"`
	HealthInsuranceParents    decimal.Decimal `yaml:"health_insurance_parents"`
	ParentsAreSenior          bool            `yaml:"parents_are_senior"`
	EducationLoanInterest     decimal.Decimal `yaml:"education_loan_interest"`
	EligibleDonations         decimal.Decimal `yaml:"eligible_donations"`
	SavingsInterest           decimal.Decimal `yaml:"savings_interest"`
	HomeLoanInterest          decimal.Decimal `yaml:"home_loan_interest"`
	HomeLoanLetOut            bool            `yaml:"home_loan_let_out"`
}

// BasicPlusDA is the base used by the HRA exemption and the employer NPS cap.
func (p *IncomeProfile) BasicPlusDA() decimal.Decimal {
	return p.BasicSalary.Add(p.DearnessAllowance)
}

// GrossIncome is the sum of every compensation field before exemptions
// and deductions.
func (p *IncomeProfile) GrossIncome() decimal.Decimal {
	return p.BasicSalary.
		Add(p.DearnessAllowance).
		Add(p.HRAReceived).
		Add(p.LTAReceived).
		Add(p.SpecialAllowance).
		Add(p.Bonus).
		Add(p.OtherPerquisites)
}

// Validate checks every invariant the engine relies on: all monetary fields
// non-negative and both enums set to a documented value. It fails fast rather
// than clamping, because a silently clamped input would produce a misleading
// regime recommendation.
func (p *IncomeProfile) Validate() error {
	switch p.AgeBracket {
	case AgeUnder60, AgeSenior, AgeSuperSenior:
	case "":
		return fmt.Errorf("%w: age_bracket is required", ErrInvalidProfile)
	default:
		return fmt.Errorf("%w: unknown age_bracket %q", ErrInvalidProfile, p.AgeBracket)
	}

	switch p.City {
	case CityMetro, CityNonMetro:
	case "":
		return fmt.Errorf("%w: city is required", ErrInvalidProfile)
	default:
		return fmt.Errorf("%w: unknown city %q", ErrInvalidProfile, p.City)
	}

	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"basic_salary", p.BasicSalary},
		{"dearness_allowance", p.DearnessAllowance},
		{"hra_received", p.HRAReceived},
		{"lta_received", p.LTAReceived},
		{"special_allowance", p.SpecialAllowance},
		{"bonus", p.Bonus},
		{"other_perquisites", p.OtherPerquisites},
		{"rent_paid", p.RentPaid},
		{"epf_contribution", p.EPFContribution},
		{"section_80c_investments", p.Section80CInvestments},
		{"additional_nps_contribution", p.AdditionalNPSContribution},
		{"employer_nps_contribution", p.EmployerNPSContribution},
		{"health_insurance_self", p.HealthInsuranceSelf},
		{"health_insurance_parents", p.HealthInsuranceParents},
		{"education_loan_interest", p.EducationLoanInterest},
		{"eligible_donations", p.EligibleDonations},
		{"savings_interest", p.SavingsInterest},
		{"home_loan_interest", p.HomeLoanInterest},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative (got %s)", ErrInvalidProfile, a.name, a.value.String())
		}
	}

	return nil
}

// IsSenior reports whether the taxpayer qualifies for senior-citizen limits
// (health insurance self cap).
func (p *IncomeProfile) IsSenior() bool {
	return p.AgeBracket != AgeUnder60
}
