package credit

import (
	"math"
	"time"
)

// daysPerYear is the denominator convention for per-day credit. Expiration
// dates use real calendar arithmetic, but the per-day rate deliberately does
// not account for leap years.
const daysPerYear = 365

// midnight truncates t to its own calendar day at UTC midnight.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the rounded number of days from a to b.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// Calculate derives the remaining prorated credit for a single purchase. It
// never fails: an amount of zero or an invalid date yields the zero Output
// with Valid false.
func Calculate(in Input) Output {
	if in.Amount <= 0 || in.PurchaseDate.IsZero() || in.ReferenceDate.IsZero() {
		return Output{}
	}
	if in.DurationYears <= 0 {
		return Output{}
	}

	purchase := midnight(in.PurchaseDate)
	reference := midnight(in.ReferenceDate)
	expiration := purchase.AddDate(in.DurationYears, 0, 0)

	days := daysBetween(reference, expiration)
	if days < 0 {
		days = 0
	}

	perDay := in.Amount / float64(in.DurationYears*daysPerYear)
	total := perDay * float64(days)

	out := Output{
		Valid:          true,
		ExpirationDate: expiration,
		DaysRemaining:  days,
		CreditPerDay:   perDay,
		TotalCredit:    total,
	}
	if in.NewLicenseCost > 0 {
		out.WhatTheyOwe = math.Max(0, in.NewLicenseCost-total)
	}
	return out
}

// calculateLine computes one line of the multi-line calculator. The per-day
// rate comes from the line's own term length rather than a fixed year count.
func calculateLine(item LineItem, reference time.Time) LineResult {
	res := LineResult{Name: item.Name}
	if item.Amount <= 0 || item.StartDate.IsZero() {
		return res
	}

	start := midnight(item.StartDate)
	var end time.Time
	switch {
	case !item.EndDate.IsZero():
		end = midnight(item.EndDate)
	case item.DurationYears > 0:
		end = start.AddDate(item.DurationYears, 0, 0)
	default:
		return res
	}

	termDays := daysBetween(start, end)
	var perDay float64
	if termDays > 0 {
		perDay = item.Amount / float64(termDays)
	}

	remaining := daysBetween(reference, end)
	if remaining < 0 {
		remaining = 0
	}

	res.Valid = true
	res.EndDate = end
	res.TermDays = termDays
	res.CreditPerDay = perDay
	res.DaysRemaining = remaining
	res.Credit = perDay * float64(remaining)
	return res
}

// CalculateLines runs every line independently against the same reference
// date and sums the per-line credits. Invalid lines stay in the result with
// zero credit so the caller can highlight them.
func CalculateLines(items []LineItem, referenceDate time.Time, newLicenseCost float64) MultiOutput {
	out := MultiOutput{Lines: make([]LineResult, 0, len(items))}
	if referenceDate.IsZero() {
		for _, item := range items {
			out.Lines = append(out.Lines, LineResult{Name: item.Name})
		}
		return out
	}

	reference := midnight(referenceDate)
	for _, item := range items {
		res := calculateLine(item, reference)
		out.Lines = append(out.Lines, res)
		out.TotalCredit += res.Credit
	}
	if newLicenseCost > 0 {
		out.WhatTheyOwe = math.Max(0, newLicenseCost-out.TotalCredit)
	}
	return out
}
