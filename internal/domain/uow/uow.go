package uow

import (
	"context"

	"loantrust/internal/domain/client"
	"loantrust/internal/domain/loan"
)

type Repos struct {
	Clients client.Repository
	Loans   loan.Repository
}

// UnitOfWork runs ledger mutations transactionally so a loan write and the
// derived trust-rating write commit together or not at all.
type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: resolve the loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.LoanRecord) error) error
}
