package sqlite

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "loantrust/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// payment history preloads in insertion order, matching how it was recorded
func withPayments(db *gorm.DB) *gorm.DB {
	return db.Preload("Payments", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("payments.id ASC")
	})
}

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.LoanRecord) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.LoanRecord, error) {
	var out loanDomain.LoanRecord
	res := withPayments(r.db.WithContext(ctx)).Where("loan_id = ?", loanID).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *LoanRepository) ListByClientID(ctx context.Context, clientID string) ([]loanDomain.LoanRecord, error) {
	var out []loanDomain.LoanRecord
	res := withPayments(r.db.WithContext(ctx)).
		Where("client_id = ?", clientID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.LoanRecord) error {
	// payments are append-only and written through AddPayment, never here
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error
}

func (r *LoanRepository) Delete(ctx context.Context, l *loanDomain.LoanRecord) error {
	return r.db.WithContext(ctx).Delete(l).Error
}

func (r *LoanRepository) AddPayment(ctx context.Context, p *loanDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}
