package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"loantrust/internal/domain/loan"
)

// Application is the transient input to AddLoan. InterestRate is advisory
// only: the rate recorded on the loan is recomputed from the term tier at
// submission time.
type Application struct {
	ClientID     string          `json:"client_id"`
	Amount       decimal.Decimal `json:"amount"`
	Term         int             `json:"term"`
	InterestRate decimal.Decimal `json:"interest_rate"`
}

// Patch carries the fields UpdateLoan may replace. Nil means "leave as is".
type Patch struct {
	Principal    *decimal.Decimal `json:"principal,omitempty"`
	TermMonths   *int             `json:"term_months,omitempty"`
	InterestRate *decimal.Decimal `json:"interest_rate,omitempty"`
	Status       *loan.Status     `json:"status,omitempty"`
	StartDate    *time.Time       `json:"start_date,omitempty"`
}

type ClientDTO struct {
	ClientID    string `json:"client_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	TrustRating int    `json:"trust_rating"`
}

type PaymentDTO struct {
	PaymentID string          `json:"payment_id"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
}

type LoanDTO struct {
	LoanID       string          `json:"loan_id"`
	ClientID     string          `json:"client_id"`
	Principal    decimal.Decimal `json:"principal"`
	TermMonths   int             `json:"term_months"`
	StartDate    time.Time       `json:"start_date"`
	DueDate      time.Time       `json:"due_date"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Status       string          `json:"status"`
	Payments     []PaymentDTO    `json:"payments"`
	CreatedAt    time.Time       `json:"created_at"`
}

type QuoteDTO struct {
	Principal      decimal.Decimal `json:"principal"`
	TermMonths     int             `json:"term_months"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
}
