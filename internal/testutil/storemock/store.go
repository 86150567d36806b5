package storemock

import (
	"context"
	"errors"

	clientDomain "loantrust/internal/domain/client"
	loanDomain "loantrust/internal/domain/loan"
	"loantrust/internal/domain/uow"
)

// Ensure compile-time compliance
var (
	_ clientDomain.Repository = (*ClientRepo)(nil)
	_ loanDomain.Repository   = (*LoanRepo)(nil)
	_ uow.UnitOfWork          = (*UoW)(nil)
)

var errUnimplemented = errors.New("storemock: method not implemented")

// ClientRepo is a function-backed mock; fill in the fields a test needs,
// unfilled ones return errUnimplemented.
type ClientRepo struct {
	CreateFn        func(ctx context.Context, c *clientDomain.Client) error
	GetByClientIDFn func(ctx context.Context, clientID string) (*clientDomain.Client, error)
	ListFn          func(ctx context.Context) ([]clientDomain.Client, error)
	SaveFn          func(ctx context.Context, c *clientDomain.Client) error
}

func (m *ClientRepo) Create(ctx context.Context, c *clientDomain.Client) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return errUnimplemented
}

func (m *ClientRepo) GetByClientID(ctx context.Context, clientID string) (*clientDomain.Client, error) {
	if m.GetByClientIDFn != nil {
		return m.GetByClientIDFn(ctx, clientID)
	}
	return nil, errUnimplemented
}

func (m *ClientRepo) List(ctx context.Context) ([]clientDomain.Client, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *ClientRepo) Save(ctx context.Context, c *clientDomain.Client) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return errUnimplemented
}

type LoanRepo struct {
	CreateFn         func(ctx context.Context, l *loanDomain.LoanRecord) error
	GetByLoanIDFn    func(ctx context.Context, loanID string) (*loanDomain.LoanRecord, error)
	ListByClientIDFn func(ctx context.Context, clientID string) ([]loanDomain.LoanRecord, error)
	SaveFn           func(ctx context.Context, l *loanDomain.LoanRecord) error
	DeleteFn         func(ctx context.Context, l *loanDomain.LoanRecord) error
	AddPaymentFn     func(ctx context.Context, p *loanDomain.Payment) error
}

func (m *LoanRepo) Create(ctx context.Context, l *loanDomain.LoanRecord) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return errUnimplemented
}

func (m *LoanRepo) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.LoanRecord, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *LoanRepo) ListByClientID(ctx context.Context, clientID string) ([]loanDomain.LoanRecord, error) {
	if m.ListByClientIDFn != nil {
		return m.ListByClientIDFn(ctx, clientID)
	}
	return nil, errUnimplemented
}

func (m *LoanRepo) Save(ctx context.Context, l *loanDomain.LoanRecord) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return errUnimplemented
}

func (m *LoanRepo) Delete(ctx context.Context, l *loanDomain.LoanRecord) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, l)
	}
	return errUnimplemented
}

func (m *LoanRepo) AddPayment(ctx context.Context, p *loanDomain.Payment) error {
	if m.AddPaymentFn != nil {
		return m.AddPaymentFn(ctx, p)
	}
	return errUnimplemented
}

// UoW passes its Repos straight to the callback, with no transaction
// underneath; override the Fn fields to simulate failures.
type UoW struct {
	Repos          uow.Repos
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loanDomain.LoanRecord) error) error
}

func New(clients *ClientRepo, loans *LoanRepo) *UoW {
	return &UoW{Repos: uow.Repos{Clients: clients, Loans: loans}}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loanDomain.LoanRecord) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	l, err := m.Repos.Loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return err
	}
	return fn(m.Repos, l)
}
