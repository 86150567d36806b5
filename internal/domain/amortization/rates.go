package amortization

import "github.com/shopspring/decimal"

var (
	rateShortTerm  = decimal.RequireFromString("0.06") // up to 3 months
	rateMediumTerm = decimal.RequireFromString("0.08") // up to 6 months
	rateOneYear    = decimal.RequireFromString("0.12") // up to 12 months
	rateLongTerm   = decimal.RequireFromString("0.15") // beyond a year
)

// RateForTerm maps a term length to its annual interest rate tier. The
// policy rate overrides any caller-supplied rate: what this returns at
// submission time is what gets recorded on the loan.
func RateForTerm(termMonths int) decimal.Decimal {
	switch {
	case termMonths <= 3:
		return rateShortTerm
	case termMonths <= 6:
		return rateMediumTerm
	case termMonths <= 12:
		return rateOneYear
	default:
		return rateLongTerm
	}
}
