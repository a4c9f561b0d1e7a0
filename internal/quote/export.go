package quote

import (
	"strings"

	"github.com/luna-panel/luna/internal/money"
)

const ruleLine = "=================================================="

func modeLabel(m Mode) string {
	switch m {
	case ModeIncrease:
		return "Increase"
	case ModeDiscount:
		return "Discount"
	default:
		return "None"
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// FormatRecord renders one record as the labeled text block the panel copies
// and downloads. Currency and percentage values go back through the shared
// formatters, so formatting an exported block's values again is a no-op.
func FormatRecord(rec Record) string {
	var b strings.Builder

	b.WriteString("Timestamp: " + rec.Timestamp + "\n")
	b.WriteString("Company Name: " + rec.Input.CompanyName + "\n")
	if rec.Input.ERPLink != "" {
		b.WriteString("ERP Link: " + rec.Input.ERPLink + "\n")
	}
	b.WriteString("Last Year Price: " + money.Currency(rec.Input.LastYearPrice) + "\n")
	b.WriteString("MSRP Total: " + money.Currency(rec.Input.MSRPTotal) + "\n")
	b.WriteString("Integrations Selected: " + yesNo(rec.Input.IntegrationsActive) + "\n")
	b.WriteString("Discount/Increase Selected: " + modeLabel(rec.Input.Mode) + "\n")
	switch rec.Input.Mode {
	case ModeIncrease:
		b.WriteString("Increase Percentage: " + money.Percentage(rec.Input.IncreasePercent) + "\n")
	case ModeDiscount:
		b.WriteString("Discount Percentage: " + money.Percentage(rec.Input.DiscountPercent) + "\n")
	}

	b.WriteString("\nCalculated Values:\n")
	show := Visible(rec.Input)
	if show.IntegrationsCost {
		b.WriteString("Integrations Cost: " + money.Currency(rec.Output.IntegrationsCost) + "\n")
	}
	if show.DiscountForERP {
		b.WriteString("Discount for ERP: " + money.Percentage(rec.Output.DiscountForERP) + "\n")
	}
	if show.TotalEndPrice {
		b.WriteString("Total End Price: " + money.Currency(rec.Output.TotalEndPrice) + "\n")
	}

	b.WriteString("Notes: " + rec.Input.Notes + "\n")
	return b.String()
}

// ExportRecords concatenates record blocks, newest first, separated by a
// fixed-width rule line and preceded by an export-date header.
func ExportRecords(records []Record) string {
	var b strings.Builder
	b.WriteString("Exported: " + money.Timestamp(false) + "\n\n")
	for i, rec := range records {
		if i > 0 {
			b.WriteString(ruleLine + "\n\n")
		}
		b.WriteString(FormatRecord(rec))
		b.WriteString("\n")
	}
	return b.String()
}

// ExportFilename names a single-record download after its sortable timestamp.
func ExportFilename(rec Record, ext string) string {
	return "quote_" + rec.FilenameTimestamp + "." + ext
}
