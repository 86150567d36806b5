package amortization

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidArgument = errors.New("principal and term must be positive")

// Schedule is a simple-interest-over-term projection: the full-term interest
// is front-loaded and split evenly across installments. Total is
// Monthly × term, which may drift from principal × (1+rate) by up to term/2
// currency units because each installment is rounded; the drift is part of
// the contract, not an accumulation bug.
type Schedule struct {
	Monthly  decimal.Decimal
	Total    decimal.Decimal
	Interest decimal.Decimal
}

// MonthlyPayment rounds to whole currency units, half away from zero.
func MonthlyPayment(principal decimal.Decimal, termMonths int, annualRate decimal.Decimal) (decimal.Decimal, error) {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidArgument
	}
	total := principal.Mul(decimal.NewFromInt(1).Add(annualRate))
	return total.Div(decimal.NewFromInt(int64(termMonths))).Round(0), nil
}

func Compute(principal decimal.Decimal, termMonths int, annualRate decimal.Decimal) (Schedule, error) {
	monthly, err := MonthlyPayment(principal, termMonths, annualRate)
	if err != nil {
		return Schedule{}, err
	}
	total := monthly.Mul(decimal.NewFromInt(int64(termMonths)))
	return Schedule{
		Monthly:  monthly,
		Total:    total,
		Interest: total.Sub(principal),
	}, nil
}
