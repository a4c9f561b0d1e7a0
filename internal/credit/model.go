package credit

import "time"

// Input carries one single-line credit calculation. A zero PurchaseDate or
// ReferenceDate marks that date as invalid.
type Input struct {
	Amount         float64
	PurchaseDate   time.Time
	DurationYears  int
	ReferenceDate  time.Time
	NewLicenseCost float64
}

// Output holds the derived credit values. Valid is false when the inputs
// short-circuited the computation; all numeric fields are zero in that case.
type Output struct {
	Valid          bool
	ExpirationDate time.Time
	DaysRemaining  int
	CreditPerDay   float64
	TotalCredit    float64
	WhatTheyOwe    float64
}

// LineItem is one entry of the multi-line calculator. EndDate is optional;
// when zero it is derived from StartDate plus DurationYears.
type LineItem struct {
	Name          string
	Amount        float64
	StartDate     time.Time
	DurationYears int
	EndDate       time.Time
}

// LineResult is the per-line outcome. Invalid lines contribute zero credit
// but do not abort the other lines.
type LineResult struct {
	Name          string
	Valid         bool
	EndDate       time.Time
	TermDays      int
	CreditPerDay  float64
	DaysRemaining int
	Credit        float64
}

// MultiOutput aggregates the multi-line computation.
type MultiOutput struct {
	Lines       []LineResult
	TotalCredit float64
	WhatTheyOwe float64
}
