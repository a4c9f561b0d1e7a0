// Package money implements the display formatting and parsing rules shared by
// the calculators and the record log. Formatting is lossy only in precision
// (two decimals); parsing inverts formatting for any valid input and reports
// failure instead of panicking.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency renders a numeric amount as a $-prefixed, two-decimal,
// thousands-grouped string.
func Currency(v float64) string {
	return "$" + printer.Sprintf("%.2f", v)
}

// Percentage renders a numeric value as a two-decimal %-suffixed string.
func Percentage(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatCurrency normalizes free-form currency text into canonical display
// form. Empty or unparseable input yields "". Re-formatting an already
// formatted string returns it unchanged.
func FormatCurrency(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, text)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return ""
	}
	return Currency(v)
}

// ParseCurrency inverts Currency. The second return is false for empty or
// malformed input.
func ParseCurrency(text string) (float64, bool) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatPercentage normalizes free-form percentage text into canonical
// display form. Empty or unparseable input yields "".
func FormatPercentage(text string) string {
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, "%", ""))
	if cleaned == "" {
		return ""
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return ""
	}
	return Percentage(v)
}

// ParsePercentage inverts Percentage. The second return is false for empty or
// malformed input.
func ParsePercentage(text string) (float64, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, "%", ""))
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
