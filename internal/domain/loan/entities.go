package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("loan not found")

type Status string

const (
	StatusPending       Status = "pending"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
	StatusFullyPaid     Status = "fully-paid"
	StatusPartiallyPaid Status = "partially-paid"
	StatusDefaulted     Status = "defaulted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected,
		StatusFullyPaid, StatusPartiallyPaid, StatusDefaulted:
		return true
	}
	return false
}

// LoanRecord references its Client by public id only; the ledger owns the
// id → client lookup. Invariant: DueDate = StartDate + TermMonths months.
type LoanRecord struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID       string          `gorm:"size:36;uniqueIndex:ux_loan_records_loan_id_active" json:"loan_id"`
	ClientID     string          `gorm:"size:36;index:idx_loan_records_client" json:"client_id"`
	Principal    decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	TermMonths   int             `gorm:"column:term_months" json:"term_months"`
	StartDate    time.Time       `gorm:"column:start_date" json:"start_date"`
	DueDate      time.Time       `gorm:"column:due_date" json:"due_date"`
	InterestRate decimal.Decimal `gorm:"type:decimal(6,4)" json:"interest_rate"`
	Status       Status          `gorm:"type:text;default:'pending'" json:"status"`
	Payments     []Payment       `gorm:"foreignKey:LoanRecordID;references:ID" json:"payments"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (LoanRecord) TableName() string { return "loan_records" }

// Payment is immutable once recorded. Insertion order (the numeric id) is
// the history order, which is not guaranteed to match payment-date order.
type Payment struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentID    string          `gorm:"size:36;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanRecordID uint64          `gorm:"column:loan_record_id;index" json:"-"`
	Date         time.Time       `gorm:"column:date" json:"date"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
