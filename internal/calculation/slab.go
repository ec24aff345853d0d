package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxgo/taxgo/internal/domain"
)

// SlabTaxEngine applies a regime's progressive slab schedule to taxable
// income and layers rebate, surcharge with marginal relief, and cess on
// top. All intermediate arithmetic stays in decimal; rounding to whole
// rupees happens once, after cess.
type SlabTaxEngine struct {
	Rules *domain.TaxYearRules
}

// NewSlabTaxEngine creates a slab tax engine for one rules vintage.
func NewSlabTaxEngine(rules *domain.TaxYearRules) *SlabTaxEngine {
	return &SlabTaxEngine{Rules: rules}
}

// TaxComputation holds the layered components of the final payable tax.
type TaxComputation struct {
	SlabTax   decimal.Decimal
	Rebate    decimal.Decimal
	Surcharge decimal.Decimal
	Cess      decimal.Decimal
	FinalTax  decimal.Decimal
}

// Compute produces the final payable tax for the given taxable income,
// regime, and age bracket. The result is never negative and FinalTax is an
// integer rupee amount.
func (e *SlabTaxEngine) Compute(taxableIncome decimal.Decimal, regime domain.Regime, age domain.AgeBracket) TaxComputation {
	slabs := e.Rules.SlabsFor(regime, age)
	regimeRules := e.Rules.RegimeFor(regime)

	tax := slabTax(taxableIncome, slabs)
	rebate := e.rebate(taxableIncome, tax, regimeRules)
	taxAfterRebate := tax.Sub(rebate)

	surcharge := e.surcharge(taxableIncome, taxAfterRebate, slabs, regimeRules.SurchargeBands)

	cess := taxAfterRebate.Add(surcharge).Mul(e.Rules.CessRate)

	finalTax := taxAfterRebate.Add(surcharge).Add(cess).Round(0)
	if finalTax.IsNegative() {
		finalTax = decimal.Zero
	}

	return TaxComputation{
		SlabTax:   tax,
		Rebate:    rebate,
		Surcharge: surcharge,
		Cess:      cess,
		FinalTax:  finalTax,
	}
}

// slabTax walks the contiguous brackets and taxes the portion of income
// falling in each at that bracket's marginal rate. A zero UpTo marks the
// open-ended top slab.
func slabTax(taxableIncome decimal.Decimal, slabs []domain.TaxSlab) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	tax := decimal.Zero
	lower := decimal.Zero
	for _, slab := range slabs {
		if taxableIncome.LessThanOrEqual(lower) {
			break
		}
		upper := slab.UpTo
		if upper.IsZero() {
			upper = taxableIncome
		}
		inSlab := decimal.Min(taxableIncome, upper).Sub(lower)
		if inSlab.IsPositive() {
			tax = tax.Add(inSlab.Mul(slab.Rate))
		}
		lower = upper
	}
	return tax
}

// rebate implements Section 87A: taxpayers at or below the regime's
// threshold get their slab tax offset up to the rebate cap. Applied before
// surcharge and cess, and never more than the tax itself.
func (e *SlabTaxEngine) rebate(taxableIncome, slabTax decimal.Decimal, rules *domain.RegimeRules) decimal.Decimal {
	if taxableIncome.GreaterThan(rules.RebateThreshold) {
		return decimal.Zero
	}
	return decimal.Min(slabTax, rules.RebateCap)
}

// surcharge levies the band rate on the tax, limited by marginal relief:
// crossing a band boundary never increases total tax by more than the
// income that crossed it.
func (e *SlabTaxEngine) surcharge(taxableIncome, taxAfterRebate decimal.Decimal, slabs []domain.TaxSlab, bands []domain.SurchargeBand) decimal.Decimal {
	band := applicableBand(taxableIncome, bands)
	if band == nil {
		return decimal.Zero
	}

	raw := taxAfterRebate.Mul(band.Rate)

	// Marginal relief ceiling: total payable cannot exceed what is payable
	// exactly at the band threshold plus the income above it. Rebates are
	// long gone at surcharge income levels, so the threshold tax needs no
	// rebate adjustment.
	payableAtThreshold := payableWithSurcharge(band.Threshold, slabs, bands)
	ceiling := payableAtThreshold.Add(taxableIncome.Sub(band.Threshold))

	if taxAfterRebate.Add(raw).GreaterThan(ceiling) {
		relieved := ceiling.Sub(taxAfterRebate)
		if relieved.IsNegative() {
			return decimal.Zero
		}
		return relieved
	}
	return raw
}

// payableWithSurcharge computes tax plus surcharge for an income, applying
// marginal relief recursively at each lower band boundary.
func payableWithSurcharge(taxableIncome decimal.Decimal, slabs []domain.TaxSlab, bands []domain.SurchargeBand) decimal.Decimal {
	tax := slabTax(taxableIncome, slabs)

	band := applicableBand(taxableIncome, bands)
	if band == nil {
		return tax
	}

	raw := tax.Add(tax.Mul(band.Rate))
	ceiling := payableWithSurcharge(band.Threshold, slabs, bands).Add(taxableIncome.Sub(band.Threshold))
	return decimal.Min(raw, ceiling)
}

// applicableBand returns the highest band whose threshold the income
// strictly exceeds, or nil when no surcharge applies. Bands are listed in
// ascending threshold order.
func applicableBand(taxableIncome decimal.Decimal, bands []domain.SurchargeBand) *domain.SurchargeBand {
	var band *domain.SurchargeBand
	for i := range bands {
		if taxableIncome.GreaterThan(bands[i].Threshold) {
			band = &bands[i]
		}
	}
	return band
}
