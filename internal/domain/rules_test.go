package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRules2025(t *testing.T) {
	rules := DefaultRules2025()

	assert.Equal(t, "2026-27", rules.Metadata.AssessmentYear)
	assert.True(t, rules.CessRate.Equal(decimal.NewFromFloat(0.04)))

	assert.True(t, rules.Old.StandardDeduction.Equal(decimal.NewFromInt(50000)))
	assert.True(t, rules.New.StandardDeduction.Equal(decimal.NewFromInt(75000)))

	assert.True(t, rules.Old.RebateThreshold.Equal(decimal.NewFromInt(500000)))
	assert.True(t, rules.New.RebateThreshold.Equal(decimal.NewFromInt(1200000)))

	// Old regime carries the 37% top surcharge band the New regime dropped.
	assert.Len(t, rules.Old.SurchargeBands, 4)
	assert.Len(t, rules.New.SurchargeBands, 3)
}

func TestSlabsForSelection(t *testing.T) {
	rules := DefaultRules2025()

	tests := []struct {
		name        string
		regime      Regime
		age         AgeBracket
		wantNilBand decimal.Decimal
	}{
		{"new regime is age independent", RegimeNew, AgeSuperSenior, decimal.NewFromInt(400000)},
		{"old regime under 60", RegimeOld, AgeUnder60, decimal.NewFromInt(250000)},
		{"old regime senior", RegimeOld, AgeSenior, decimal.NewFromInt(300000)},
		{"old regime super senior", RegimeOld, AgeSuperSenior, decimal.NewFromInt(500000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slabs := rules.SlabsFor(tt.regime, tt.age)
			require.NotEmpty(t, slabs)
			assert.True(t, slabs[0].Rate.IsZero(), "first slab should be the nil band")
			assert.True(t, slabs[0].UpTo.Equal(tt.wantNilBand),
				"expected nil band up to %s, got %s", tt.wantNilBand, slabs[0].UpTo)
		})
	}
}

func TestSlabTablesAreProgressive(t *testing.T) {
	rules := DefaultRules2025()

	tables := map[string][]TaxSlab{
		"new": rules.New.Slabs,
	}
	for age, slabs := range rules.Old.SlabsByAge {
		tables["old/"+string(age)] = slabs
	}

	for name, slabs := range tables {
		t.Run(name, func(t *testing.T) {
			for i := 1; i < len(slabs); i++ {
				assert.True(t, slabs[i].Rate.GreaterThanOrEqual(slabs[i-1].Rate),
					"slab %d rate decreased", i)
				if !slabs[i].UpTo.IsZero() {
					assert.True(t, slabs[i].UpTo.GreaterThan(slabs[i-1].UpTo),
						"slab %d bound does not ascend", i)
				}
			}
			// Only the final slab is open-ended.
			for i := 0; i < len(slabs)-1; i++ {
				assert.False(t, slabs[i].UpTo.IsZero(), "slab %d must be bounded", i)
			}
			assert.True(t, slabs[len(slabs)-1].UpTo.IsZero(), "top slab must be open-ended")
		})
	}
}

func TestExemptionAndDeductionSetTotals(t *testing.T) {
	es := ExemptionSet{
		ExemptionHRA: decimal.NewFromInt(130000),
		ExemptionLTA: decimal.NewFromInt(20000),
	}
	assert.True(t, es.Total().Equal(decimal.NewFromInt(150000)))

	ds := DeductionSet{
		Section80C: decimal.NewFromInt(150000),
		Section80D: decimal.NewFromInt(25000),
	}
	assert.True(t, ds.Total().Equal(decimal.NewFromInt(175000)))

	assert.True(t, ExemptionSet{}.Total().IsZero())
	assert.True(t, DeductionSet{}.Total().IsZero())
}
