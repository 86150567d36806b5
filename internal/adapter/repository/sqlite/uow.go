package sqlite

import (
	"context"

	"gorm.io/gorm"

	loanDomain "loantrust/internal/domain/loan"
	"loantrust/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Clients: &ClientRepository{db: tx},
			Loans:   &LoanRepository{db: tx},
		})
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loanDomain.LoanRecord) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Clients: &ClientRepository{db: tx},
			Loans:   &LoanRepository{db: tx},
		}
		// resolve the loan inside the tx; sqlite serializes writers anyway
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
