package quote

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luna-panel/luna/internal/money"
)

func exportRecord() Record {
	in := Input{
		CompanyName:        "Acme Corp",
		ERPLink:            "https://erp.example.com/acme",
		LastYearPrice:      1234.5,
		MSRPTotal:          10000,
		IntegrationsActive: true,
		Mode:               ModeIncrease,
		IncreasePercent:    10,
		Notes:              "renewal quote",
	}
	return Record{
		ID:                "rec-1",
		Timestamp:         "7/1/2024, 3:04:05 PM",
		FilenameTimestamp: "20240701_150405",
		Input:             in,
		Output:            Calculate(in),
	}
}

func TestFormatRecord(t *testing.T) {
	text := FormatRecord(exportRecord())

	assert.Contains(t, text, "Company Name: Acme Corp\n")
	assert.Contains(t, text, "ERP Link: https://erp.example.com/acme\n")
	assert.Contains(t, text, "Last Year Price: $1,234.50\n")
	assert.Contains(t, text, "MSRP Total: $10,000.00\n")
	assert.Contains(t, text, "Integrations Selected: Yes\n")
	assert.Contains(t, text, "Discount/Increase Selected: Increase\n")
	assert.Contains(t, text, "Increase Percentage: 10.00%\n")
	assert.Contains(t, text, "Calculated Values:\n")
	assert.Contains(t, text, "Integrations Cost: $2,000.00\n")
	assert.Contains(t, text, "Total End Price: $1,357.95\n")
	assert.Contains(t, text, "Notes: renewal quote\n")

	// Field order is fixed.
	company := strings.Index(text, "Company Name:")
	calculated := strings.Index(text, "Calculated Values:")
	notes := strings.Index(text, "Notes:")
	assert.Less(t, company, calculated)
	assert.Less(t, calculated, notes)
}

func TestFormatRecordOmitsHiddenFields(t *testing.T) {
	rec := exportRecord()
	rec.Input.ERPLink = ""
	rec.Input.Mode = ModeNone
	rec.Output = Calculate(rec.Input)

	text := FormatRecord(rec)
	assert.NotContains(t, text, "ERP Link:")
	assert.NotContains(t, text, "Increase Percentage:")
	assert.NotContains(t, text, "Integrations Cost:")
	assert.NotContains(t, text, "Total End Price:")
	assert.Contains(t, text, "Discount/Increase Selected: None\n")
}

func TestFormatRecordLegacyDiscount(t *testing.T) {
	rec := exportRecord()
	rec.Input.Mode = ModeDiscount
	rec.Input.DiscountPercent = 15
	rec.Output = Calculate(rec.Input)

	text := FormatRecord(rec)
	assert.Contains(t, text, "Discount/Increase Selected: Discount\n")
	assert.Contains(t, text, "Discount Percentage: 15.00%\n")
}

func TestFormatRecordValuesIdempotent(t *testing.T) {
	text := FormatRecord(exportRecord())
	for _, line := range strings.Split(text, "\n") {
		_, value, found := strings.Cut(line, ": ")
		if !found || !strings.HasPrefix(value, "$") {
			continue
		}
		assert.Equal(t, value, money.FormatCurrency(value), "line %q", line)
	}
}

func TestExportRecords(t *testing.T) {
	a := exportRecord()
	b := exportRecord()
	b.Input.CompanyName = "Beta LLC"

	text := ExportRecords([]Record{a, b})

	assert.True(t, strings.HasPrefix(text, "Exported: "))
	assert.Equal(t, 1, strings.Count(text, ruleLine))
	assert.Contains(t, text, "Acme Corp")
	assert.Contains(t, text, "Beta LLC")
	assert.Less(t, strings.Index(text, "Acme Corp"), strings.Index(text, "Beta LLC"))
}

func TestExportRecordsEmpty(t *testing.T) {
	text := ExportRecords(nil)
	assert.True(t, strings.HasPrefix(text, "Exported: "))
	assert.NotContains(t, text, ruleLine)
}

func TestExportFilename(t *testing.T) {
	rec := exportRecord()
	assert.Equal(t, "quote_20240701_150405.txt", ExportFilename(rec, "txt"))
	assert.Equal(t, "quote_20240701_150405.pdf", ExportFilename(rec, "pdf"))
}

func TestRenderPDF(t *testing.T) {
	body, err := RenderPDF(exportRecord())
	require.NoError(t, err)
	require.NotEmpty(t, body)
	assert.Equal(t, "%PDF", string(body[:4]))
}
