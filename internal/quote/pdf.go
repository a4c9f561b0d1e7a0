package quote

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/luna-panel/luna/internal/money"
)

// RenderPDF renders a single quote record as an A4 PDF using the core
// Helvetica fonts, mirroring the layout of the text export.
func RenderPDF(rec Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quote Record", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Quote Record")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Created: %s", rec.Timestamp))
	pdf.Ln(8)

	field := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(60, 6, label)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, value)
		pdf.Ln(6)
	}

	field("Company Name", rec.Input.CompanyName)
	if rec.Input.ERPLink != "" {
		field("ERP Link", rec.Input.ERPLink)
	}
	field("Last Year Price", money.Currency(rec.Input.LastYearPrice))
	field("MSRP Total", money.Currency(rec.Input.MSRPTotal))
	field("Integrations Selected", yesNo(rec.Input.IntegrationsActive))
	field("Discount/Increase", modeLabel(rec.Input.Mode))
	switch rec.Input.Mode {
	case ModeIncrease:
		field("Increase Percentage", money.Percentage(rec.Input.IncreasePercent))
	case ModeDiscount:
		field("Discount Percentage", money.Percentage(rec.Input.DiscountPercent))
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Calculated Values")
	pdf.Ln(7)

	show := Visible(rec.Input)
	if show.IntegrationsCost {
		field("Integrations Cost", money.Currency(rec.Output.IntegrationsCost))
	}
	if show.DiscountForERP {
		field("Discount for ERP", money.Percentage(rec.Output.DiscountForERP))
	}
	if show.TotalEndPrice {
		field("Total End Price", money.Currency(rec.Output.TotalEndPrice))
	}

	if rec.Input.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, "Notes")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, rec.Input.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}
