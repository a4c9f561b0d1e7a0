package quote

// Mode selects how the quote total is derived from last year's price.
type Mode string

const (
	ModeIncrease Mode = "increase"
	// ModeDiscount is kept so records written by older panel versions still
	// decode; new quotes cannot be created with it.
	ModeDiscount Mode = "discount"
	ModeNone     Mode = "none"
)

// Input carries the raw quote fields for one calculation.
type Input struct {
	CompanyName        string  `json:"company_name"`
	ERPLink            string  `json:"erp_link,omitempty"`
	LastYearPrice      float64 `json:"last_year_price"`
	MSRPTotal          float64 `json:"msrp_total"`
	IntegrationsActive bool    `json:"integrations_active"`
	Mode               Mode    `json:"mode"`
	DiscountPercent    float64 `json:"discount_percent,omitempty"`
	IncreasePercent    float64 `json:"increase_percent"`
	Notes              string  `json:"notes,omitempty"`
}

// Output holds the three derived quote values. It is always fully populated;
// which values the panel shows is a display concern (see Visible).
type Output struct {
	IntegrationsCost float64 `json:"integrations_cost"`
	DiscountForERP   float64 `json:"discount_for_erp"`
	TotalEndPrice    float64 `json:"total_end_price"`
}

// Record is a persisted snapshot of one completed quote.
type Record struct {
	ID                string `json:"id"`
	Timestamp         string `json:"timestamp"`
	FilenameTimestamp string `json:"filename_timestamp"`
	Input             Input  `json:"input"`
	Output            Output `json:"output"`
}
