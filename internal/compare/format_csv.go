package compare

import (
	"encoding/csv"
	"strings"

	"github.com/taxgo/taxgo/internal/domain"
)

// CSVFormatter renders the comparison result as CSV, one row per regime.
type CSVFormatter struct{}

// Format generates CSV output for the comparison result.
func (cf *CSVFormatter) Format(result *domain.ComparisonResult) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Regime",
		"Gross Income",
		"Total Exemptions",
		"Total Deductions",
		"Standard Deduction",
		"Taxable Income",
		"Tax on Income",
		"Rebate",
		"Surcharge",
		"Cess",
		"Total Tax Payable",
		"Effective Rate %",
		"Recommended",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, rr := range []*domain.RegimeResult{result.Old, result.New} {
		if err := writer.Write(cf.formatRow(rr, result.Recommended)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats one regime's result as a CSV row.
func (cf *CSVFormatter) formatRow(rr *domain.RegimeResult, recommended domain.Regime) []string {
	recFlag := "no"
	if rr.Regime == recommended {
		recFlag = "yes"
	}
	return []string{
		string(rr.Regime),
		rr.GrossIncome.StringFixed(2),
		rr.TotalExemptions.StringFixed(2),
		rr.TotalDeductions.StringFixed(2),
		rr.StandardDeduction.StringFixed(2),
		rr.TaxableIncome.StringFixed(2),
		rr.SlabTax.StringFixed(2),
		rr.Rebate.StringFixed(2),
		rr.Surcharge.StringFixed(2),
		rr.Cess.StringFixed(2),
		rr.FinalTax.StringFixed(2),
		rr.EffectiveRate.StringFixed(2),
		recFlag,
	}
}
