package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *LoanRecord) error
	GetByLoanID(ctx context.Context, loanID string) (*LoanRecord, error)
	// ListByClientID returns the client's records in ledger insertion order.
	ListByClientID(ctx context.Context, clientID string) ([]LoanRecord, error)
	Save(ctx context.Context, l *LoanRecord) error
	Delete(ctx context.Context, l *LoanRecord) error
	AddPayment(ctx context.Context, p *Payment) error
}
