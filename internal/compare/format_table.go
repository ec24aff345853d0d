package compare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/taxgo/taxgo/internal/domain"
)

// TableFormatter renders the regime comparison as a plain-text console
// table with a per-section breakdown and the recommendation.
type TableFormatter struct{}

const (
	labelWidth = 40
	amtWidth   = 14
)

// Format generates the comparison table.
func (tf *TableFormatter) Format(result *domain.ComparisonResult) (string, error) {
	var sb strings.Builder

	sb.WriteString("INCOME TAX REGIME COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 70) + "\n")

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n", labelWidth, "Particulars", amtWidth, "Old Regime", amtWidth, "New Regime"))
	sb.WriteString(strings.Repeat("-", 70) + "\n")

	tf.writeRow(&sb, "Gross Income", result.Old.GrossIncome, result.New.GrossIncome)

	tf.writeBreakdown(&sb, "Exemptions", result.Old.Exemptions, result.New.Exemptions)
	tf.writeRow(&sb, "Total Exemptions", result.Old.TotalExemptions, result.New.TotalExemptions)

	tf.writeBreakdown(&sb, "Deductions", result.Old.Deductions, result.New.Deductions)
	tf.writeRow(&sb, "Total Deductions", result.Old.TotalDeductions, result.New.TotalDeductions)
	tf.writeRow(&sb, "Standard Deduction", result.Old.StandardDeduction, result.New.StandardDeduction)

	sb.WriteString(strings.Repeat("-", 70) + "\n")
	tf.writeRow(&sb, "Taxable Income", result.Old.TaxableIncome, result.New.TaxableIncome)
	tf.writeRow(&sb, "Tax on Income", result.Old.SlabTax, result.New.SlabTax)
	tf.writeRow(&sb, "Rebate (87A)", result.Old.Rebate, result.New.Rebate)
	tf.writeRow(&sb, "Surcharge", result.Old.Surcharge, result.New.Surcharge)
	tf.writeRow(&sb, "Health & Education Cess", result.Old.Cess, result.New.Cess)

	sb.WriteString(strings.Repeat("=", 70) + "\n")
	tf.writeRow(&sb, "TOTAL TAX PAYABLE", result.Old.FinalTax, result.New.FinalTax)
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n", labelWidth, "Effective Tax Rate",
		amtWidth, result.Old.EffectiveRate.StringFixed(2)+"%",
		amtWidth, result.New.EffectiveRate.StringFixed(2)+"%"))
	sb.WriteString(strings.Repeat("=", 70) + "\n\n")

	tf.writeRecommendation(&sb, result)

	return sb.String(), nil
}

// writeRecommendation prints the savings delta and the recommended regime.
func (tf *TableFormatter) writeRecommendation(sb *strings.Builder, result *domain.ComparisonResult) {
	switch {
	case result.Savings.IsPositive():
		sb.WriteString(fmt.Sprintf("RECOMMENDATION: New Regime saves %s per year\n", formatINR(result.Savings)))
	case result.Savings.IsNegative():
		sb.WriteString(fmt.Sprintf("RECOMMENDATION: Old Regime saves %s per year\n", formatINR(result.Savings.Abs())))
	default:
		sb.WriteString("RECOMMENDATION: Both regimes are equal; New Regime is the statutory default\n")
	}
}

// writeBreakdown prints one indented row per section, merging the keys of
// both regimes so missing sections render as "-".
func (tf *TableFormatter) writeBreakdown(sb *strings.Builder, title string, oldSet, newSet map[string]decimal.Decimal) {
	keys := map[string]struct{}{}
	for k := range oldSet {
		keys[k] = struct{}{}
	}
	for k := range newSet {
		keys[k] = struct{}{}
	}
	if len(keys) == 0 {
		return
	}

	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	sb.WriteString(title + ":\n")
	for _, k := range sorted {
		oldVal, newVal := "-", "-"
		if v, ok := oldSet[k]; ok {
			oldVal = formatINR(v)
		}
		if v, ok := newSet[k]; ok {
			newVal = formatINR(v)
		}
		sb.WriteString(fmt.Sprintf("  %-*s %*s %*s\n", labelWidth-2, truncate(k, labelWidth-2), amtWidth, oldVal, amtWidth, newVal))
	}
}

// writeRow prints one aligned comparison row.
func (tf *TableFormatter) writeRow(sb *strings.Builder, label string, oldAmt, newAmt decimal.Decimal) {
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n", labelWidth, label, amtWidth, formatINR(oldAmt), amtWidth, formatINR(newAmt)))
}

// formatINR renders a whole-rupee amount with the currency marker.
func formatINR(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-Rs " + d.Abs().StringFixed(0)
	}
	return "Rs " + d.StringFixed(0)
}

// truncate shortens a label to fit its column.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
