package credit

import (
	"time"

	"github.com/luna-panel/luna/internal/money"
)

const dateLayout = "2006-01-02"

// notAvailable is the display sentinel for short-circuited computations.
const notAvailable = "N/A"

// CalculateRequest carries the raw single-line calculator fields. Dates use
// YYYY-MM-DD; a malformed amount or date degrades to the invalid sentinel
// output rather than rejecting the request.
type CalculateRequest struct {
	Amount          string `json:"amount"`
	PurchaseDate    string `json:"purchase_date"`
	DurationYears   int    `json:"duration_years" validate:"required,min=1,max=3"`
	CalculationType string `json:"calculation_type" validate:"required,oneof=today custom"`
	CalculationDate string `json:"calculation_date,omitempty"`
	NewLicenseCost  string `json:"new_license_cost,omitempty"`
}

func parseDate(text string) time.Time {
	t, err := time.Parse(dateLayout, text)
	if err != nil {
		return time.Time{}
	}
	return t
}

// referenceDate resolves the "now" used for remaining-days math.
func referenceDate(calcType, calcDate string) time.Time {
	if calcType == "custom" {
		return parseDate(calcDate)
	}
	return time.Now()
}

// Input converts the raw request into engine inputs.
func (r CalculateRequest) Input() Input {
	amount, _ := money.ParseCurrency(r.Amount)
	cost, _ := money.ParseCurrency(r.NewLicenseCost)
	return Input{
		Amount:         amount,
		PurchaseDate:   parseDate(r.PurchaseDate),
		DurationYears:  r.DurationYears,
		ReferenceDate:  referenceDate(r.CalculationType, r.CalculationDate),
		NewLicenseCost: cost,
	}
}

// LineItemRequest is one raw line of the multi-line calculator.
type LineItemRequest struct {
	Name          string `json:"name,omitempty"`
	Amount        string `json:"amount"`
	StartDate     string `json:"start_date"`
	DurationYears int    `json:"duration_years" validate:"omitempty,min=1,max=3"`
	EndDate       string `json:"end_date,omitempty"`
}

func (r LineItemRequest) item() LineItem {
	amount, _ := money.ParseCurrency(r.Amount)
	return LineItem{
		Name:          r.Name,
		Amount:        amount,
		StartDate:     parseDate(r.StartDate),
		DurationYears: r.DurationYears,
		EndDate:       parseDate(r.EndDate),
	}
}

// CalculateMultiRequest carries the multi-line calculator fields.
type CalculateMultiRequest struct {
	Lines           []LineItemRequest `json:"lines" validate:"required,min=1,dive"`
	CalculationType string            `json:"calculation_type" validate:"required,oneof=today custom"`
	CalculationDate string            `json:"calculation_date,omitempty"`
	NewLicenseCost  string            `json:"new_license_cost,omitempty"`
}

func (r CalculateMultiRequest) items() []LineItem {
	items := make([]LineItem, 0, len(r.Lines))
	for _, line := range r.Lines {
		items = append(items, line.item())
	}
	return items
}

// CalculateResponse mirrors Output with display strings attached.
type CalculateResponse struct {
	Valid                 bool    `json:"valid"`
	ExpirationDate        string  `json:"expiration_date,omitempty"`
	DaysRemaining         int     `json:"days_remaining"`
	CreditPerDay          float64 `json:"credit_per_day"`
	CreditPerDayDisplay   string  `json:"credit_per_day_display"`
	TotalCredit           float64 `json:"total_credit"`
	TotalCreditDisplay    string  `json:"total_credit_display"`
	WhatTheyOwe           float64 `json:"what_they_owe"`
	WhatTheyOweDisplay    string  `json:"what_they_owe_display"`
	ExpirationDateDisplay string  `json:"expiration_date_display"`
}

func newCalculateResponse(out Output) CalculateResponse {
	if !out.Valid {
		return CalculateResponse{
			CreditPerDayDisplay:   notAvailable,
			TotalCreditDisplay:    notAvailable,
			WhatTheyOweDisplay:    notAvailable,
			ExpirationDateDisplay: notAvailable,
		}
	}
	return CalculateResponse{
		Valid:                 true,
		ExpirationDate:        out.ExpirationDate.Format(dateLayout),
		DaysRemaining:         out.DaysRemaining,
		CreditPerDay:          out.CreditPerDay,
		CreditPerDayDisplay:   money.Currency(out.CreditPerDay),
		TotalCredit:           out.TotalCredit,
		TotalCreditDisplay:    money.Currency(out.TotalCredit),
		WhatTheyOwe:           out.WhatTheyOwe,
		WhatTheyOweDisplay:    money.Currency(out.WhatTheyOwe),
		ExpirationDateDisplay: out.ExpirationDate.Format(dateLayout),
	}
}

// LineResultResponse mirrors LineResult with display strings attached.
type LineResultResponse struct {
	Name          string  `json:"name,omitempty"`
	Valid         bool    `json:"valid"`
	EndDate       string  `json:"end_date,omitempty"`
	TermDays      int     `json:"term_days"`
	CreditPerDay  float64 `json:"credit_per_day"`
	DaysRemaining int     `json:"days_remaining"`
	Credit        float64 `json:"credit"`
	CreditDisplay string  `json:"credit_display"`
}

// CalculateMultiResponse aggregates the multi-line result.
type CalculateMultiResponse struct {
	Lines              []LineResultResponse `json:"lines"`
	TotalCredit        float64              `json:"total_credit"`
	TotalCreditDisplay string               `json:"total_credit_display"`
	WhatTheyOwe        float64              `json:"what_they_owe"`
	WhatTheyOweDisplay string               `json:"what_they_owe_display"`
}

func newCalculateMultiResponse(out MultiOutput) CalculateMultiResponse {
	resp := CalculateMultiResponse{
		Lines:              make([]LineResultResponse, 0, len(out.Lines)),
		TotalCredit:        out.TotalCredit,
		TotalCreditDisplay: money.Currency(out.TotalCredit),
		WhatTheyOwe:        out.WhatTheyOwe,
		WhatTheyOweDisplay: money.Currency(out.WhatTheyOwe),
	}
	for _, line := range out.Lines {
		lr := LineResultResponse{
			Name:          line.Name,
			Valid:         line.Valid,
			TermDays:      line.TermDays,
			CreditPerDay:  line.CreditPerDay,
			DaysRemaining: line.DaysRemaining,
			Credit:        line.Credit,
			CreditDisplay: money.Currency(line.Credit),
		}
		if line.Valid {
			lr.EndDate = line.EndDate.Format(dateLayout)
		} else {
			lr.CreditDisplay = notAvailable
		}
		resp.Lines = append(resp.Lines, lr)
	}
	return resp
}
