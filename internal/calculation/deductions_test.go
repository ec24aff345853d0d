package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxgo/taxgo/internal/domain"
)

func TestCalculateDeductionsSectionCaps(t *testing.T) {
	rules := domain.DefaultRules2025()

	tests := []struct {
		name     string
		profile  domain.IncomeProfile
		section  string
		expected int64
	}{
		{
			name: "80C capped at ceiling",
			profile: domain.IncomeProfile{
				EPFContribution:       decimal.NewFromInt(100000),
				Section80CInvestments: decimal.NewFromInt(120000),
			},
			section:  domain.Section80C,
			expected: 150000,
		},
		{
			name: "80C below ceiling passes in full",
			profile: domain.IncomeProfile{
				EPFContribution:       decimal.NewFromInt(60000),
				Section80CInvestments: decimal.NewFromInt(40000),
			},
			section:  domain.Section80C,
			expected: 100000,
		},
		{
			name: "additional NPS has its own ceiling",
			profile: domain.IncomeProfile{
				AdditionalNPSContribution: decimal.NewFromInt(80000),
			},
			section:  domain.Section80CCD1B,
			expected: 50000,
		},
		{
			name: "employer NPS capped at 14 percent of basic plus DA",
			profile: domain.IncomeProfile{
				BasicSalary:             decimal.NewFromInt(900000),
				DearnessAllowance:       decimal.NewFromInt(100000),
				EmployerNPSContribution: decimal.NewFromInt(200000),
			},
			section:  domain.Section80CCD2,
			expected: 140000,
		},
		{
			name: "employer NPS never exceeds amount contributed",
			profile: domain.IncomeProfile{
				BasicSalary:             decimal.NewFromInt(900000),
				DearnessAllowance:       decimal.NewFromInt(100000),
				EmployerNPSContribution: decimal.NewFromInt(50000),
			},
			section:  domain.Section80CCD2,
			expected: 50000,
		},
		{
			name: "health insurance non-senior caps",
			profile: domain.IncomeProfile{
				AgeBracket:             domain.AgeUnder60,
				HealthInsuranceSelf:    decimal.NewFromInt(40000),
				HealthInsuranceParents: decimal.NewFromInt(40000),
			},
			section:  domain.Section80D,
			expected: 50000, // 25000 + 25000
		},
		{
			name: "health insurance senior caps",
			profile: domain.IncomeProfile{
				AgeBracket:             domain.AgeSenior,
				HealthInsuranceSelf:    decimal.NewFromInt(60000),
				HealthInsuranceParents: decimal.NewFromInt(60000),
				ParentsAreSenior:       true,
			},
			section:  domain.Section80D,
			expected: 100000, // 50000 + 50000
		},
		{
			name: "education loan interest uncapped",
			profile: domain.IncomeProfile{
				EducationLoanInterest: decimal.NewFromInt(320000),
			},
			section:  domain.Section80E,
			expected: 320000,
		},
		{
			name: "donations pass through",
			profile: domain.IncomeProfile{
				EligibleDonations: decimal.NewFromInt(75000),
			},
			section:  domain.Section80G,
			expected: 75000,
		},
		{
			name: "savings interest capped",
			profile: domain.IncomeProfile{
				SavingsInterest: decimal.NewFromInt(22000),
			},
			section:  domain.Section80TTA,
			expected: 10000,
		},
		{
			name: "self-occupied home loan interest capped",
			profile: domain.IncomeProfile{
				HomeLoanInterest: decimal.NewFromInt(350000),
			},
			section:  domain.Section24SelfOccupied,
			expected: 200000,
		},
		{
			name: "let-out home loan interest uncapped",
			profile: domain.IncomeProfile{
				HomeLoanInterest: decimal.NewFromInt(350000),
				HomeLoanLetOut:   true,
			},
			section:  domain.Section24LetOut,
			expected: 350000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deductions := CalculateDeductions(&tt.profile, domain.RegimeOld, rules)

			got, ok := deductions[tt.section]
			require.True(t, ok, "section %s missing from deduction set", tt.section)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.expected)),
				"expected %d, got %s", tt.expected, got)
		})
	}
}

func TestCalculateDeductionsNewRegimeSubset(t *testing.T) {
	rules := domain.DefaultRules2025()

	// A profile claiming every section.
	profile := &domain.IncomeProfile{
		AgeBracket:                domain.AgeUnder60,
		City:                      domain.CityMetro,
		BasicSalary:               decimal.NewFromInt(900000),
		DearnessAllowance:         decimal.NewFromInt(100000),
		EPFContribution:           decimal.NewFromInt(100000),
		Section80CInvestments:     decimal.NewFromInt(100000),
		AdditionalNPSContribution: decimal.NewFromInt(50000),
		EmployerNPSContribution:   decimal.NewFromInt(100000),
		HealthInsuranceSelf:       decimal.NewFromInt(25000),
		HealthInsuranceParents:    decimal.NewFromInt(25000),
		EducationLoanInterest:     decimal.NewFromInt(40000),
		EligibleDonations:         decimal.NewFromInt(20000),
		SavingsInterest:           decimal.NewFromInt(8000),
		HomeLoanInterest:          decimal.NewFromInt(300000),
		HomeLoanLetOut:            true,
	}

	newDeductions := CalculateDeductions(profile, domain.RegimeNew, rules)

	// Only employer NPS and let-out interest survive the regime switch.
	assert.Len(t, newDeductions, 2)
	assert.Contains(t, newDeductions, domain.Section80CCD2)
	assert.Contains(t, newDeductions, domain.Section24LetOut)

	// Every New-regime section also appears in the Old regime with the same
	// allowed amount.
	oldDeductions := CalculateDeductions(profile, domain.RegimeOld, rules)
	for section, amount := range newDeductions {
		require.Contains(t, oldDeductions, section)
		assert.True(t, oldDeductions[section].Equal(amount))
	}
}

func TestOldDeductionTotalNeverBelowNew(t *testing.T) {
	rules := domain.DefaultRules2025()

	profiles := []domain.IncomeProfile{
		{},
		{
			BasicSalary:             decimal.NewFromInt(1200000),
			EmployerNPSContribution: decimal.NewFromInt(150000),
		},
		{
			BasicSalary:           decimal.NewFromInt(800000),
			EPFContribution:       decimal.NewFromInt(150000),
			Section80CInvestments: decimal.NewFromInt(50000),
			SavingsInterest:       decimal.NewFromInt(12000),
			HomeLoanInterest:      decimal.NewFromInt(250000),
		},
		{
			BasicSalary:      decimal.NewFromInt(600000),
			HomeLoanInterest: decimal.NewFromInt(400000),
			HomeLoanLetOut:   true,
		},
	}

	for _, p := range profiles {
		p.AgeBracket = domain.AgeUnder60
		p.City = domain.CityNonMetro

		oldTotal := CalculateDeductions(&p, domain.RegimeOld, rules).Total()
		newTotal := CalculateDeductions(&p, domain.RegimeNew, rules).Total()

		assert.True(t, oldTotal.GreaterThanOrEqual(newTotal),
			"old total %s below new total %s", oldTotal, newTotal)
	}
}

func TestSelfOccupiedInterestExcludedFromNewRegime(t *testing.T) {
	rules := domain.DefaultRules2025()
	profile := &domain.IncomeProfile{
		AgeBracket:       domain.AgeUnder60,
		City:             domain.CityMetro,
		HomeLoanInterest: decimal.NewFromInt(180000),
	}

	newDeductions := CalculateDeductions(profile, domain.RegimeNew, rules)
	assert.NotContains(t, newDeductions, domain.Section24SelfOccupied)
	assert.NotContains(t, newDeductions, domain.Section24LetOut)
}
