package quote

import "math"

// IntegrationRate is the fixed markup applied to MSRP when integrations are
// included. It is not user-editable.
const IntegrationRate = 0.20

// Calculate derives the quote outputs from the given inputs. It is a total,
// side-effect-free function: prices are clamped to zero, the increase
// percentage to [0,1000], and a zero denominator yields a zero ERP discount
// instead of an error. Modes other than increase produce zero totals.
func Calculate(in Input) Output {
	lastYear := math.Max(0, in.LastYearPrice)
	msrp := math.Max(0, in.MSRPTotal)
	increase := math.Min(1000, math.Max(0, in.IncreasePercent))

	var out Output
	if in.IntegrationsActive {
		out.IntegrationsCost = msrp * IntegrationRate
	}

	if in.Mode != ModeIncrease {
		return out
	}

	priceChange := lastYear * (increase / 100)
	out.TotalEndPrice = lastYear + priceChange

	denominator := msrp
	if in.IntegrationsActive {
		denominator = msrp * (1 + IntegrationRate)
	}
	if denominator != 0 {
		out.DiscountForERP = ((out.TotalEndPrice / denominator) - 1) * 100
	}
	return out
}

// Visibility reports which calculated values the panel should display for a
// given input. The engine always computes all three.
type Visibility struct {
	IntegrationsCost bool `json:"integrations_cost"`
	DiscountForERP   bool `json:"discount_for_erp"`
	TotalEndPrice    bool `json:"total_end_price"`
}

// Visible returns the display policy for in.
func Visible(in Input) Visibility {
	increase := in.Mode == ModeIncrease
	return Visibility{
		IntegrationsCost: in.IntegrationsActive && increase,
		DiscountForERP:   increase,
		TotalEndPrice:    increase,
	}
}
