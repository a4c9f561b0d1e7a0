package quote

import (
	"github.com/luna-panel/luna/internal/money"
)

// ComputeQuoteRequest carries the raw field text the panel collects. Numeric
// fields arrive as display strings ("$1,234.00", "10%"); missing or
// malformed values degrade to zero rather than failing the request.
type ComputeQuoteRequest struct {
	LastYearPrice      string `json:"last_year_price"`
	MSRPTotal          string `json:"msrp_total"`
	Integrations       string `json:"integrations" validate:"required,oneof=yes no"`
	Mode               string `json:"mode" validate:"required,oneof=increase none"`
	IncreasePercentage string `json:"increase_percentage,omitempty"`
}

// CompleteQuoteRequest is a ComputeQuoteRequest plus the identifying fields
// persisted with the record.
type CompleteQuoteRequest struct {
	ComputeQuoteRequest
	CompanyName string `json:"company_name" validate:"required"`
	ERPLink     string `json:"erp_link,omitempty" validate:"omitempty,url"`
	Notes       string `json:"notes,omitempty"`
}

// Input converts the raw request into engine inputs.
func (r ComputeQuoteRequest) Input() Input {
	lastYear, _ := money.ParseCurrency(r.LastYearPrice)
	msrp, _ := money.ParseCurrency(r.MSRPTotal)
	increase, _ := money.ParsePercentage(r.IncreasePercentage)
	return Input{
		LastYearPrice:      lastYear,
		MSRPTotal:          msrp,
		IntegrationsActive: r.Integrations == "yes",
		Mode:               Mode(r.Mode),
		IncreasePercent:    increase,
	}
}

// Input converts the raw request into engine inputs.
func (r CompleteQuoteRequest) Input() Input {
	in := r.ComputeQuoteRequest.Input()
	in.CompanyName = r.CompanyName
	in.ERPLink = r.ERPLink
	in.Notes = r.Notes
	return in
}

// ComputationResponse returns the derived values both as numbers and as the
// display strings the panel renders, together with the visibility policy.
type ComputationResponse struct {
	IntegrationsCost        float64    `json:"integrations_cost"`
	IntegrationsCostDisplay string     `json:"integrations_cost_display"`
	DiscountForERP          float64    `json:"discount_for_erp"`
	DiscountForERPDisplay   string     `json:"discount_for_erp_display"`
	TotalEndPrice           float64    `json:"total_end_price"`
	TotalEndPriceDisplay    string     `json:"total_end_price_display"`
	Show                    Visibility `json:"show"`
}

func newComputationResponse(in Input, out Output) ComputationResponse {
	return ComputationResponse{
		IntegrationsCost:        out.IntegrationsCost,
		IntegrationsCostDisplay: money.Currency(out.IntegrationsCost),
		DiscountForERP:          out.DiscountForERP,
		DiscountForERPDisplay:   money.Percentage(out.DiscountForERP),
		TotalEndPrice:           out.TotalEndPrice,
		TotalEndPriceDisplay:    money.Currency(out.TotalEndPrice),
		Show:                    Visible(in),
	}
}

// RecordResponse wraps a stored record with its computed display strings.
type RecordResponse struct {
	Record
	Computation ComputationResponse `json:"computation"`
}

func newRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		Record:      rec,
		Computation: newComputationResponse(rec.Input, rec.Output),
	}
}

// ListRecordsResponse is the record-log listing, newest first.
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}
