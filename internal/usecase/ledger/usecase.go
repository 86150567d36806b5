package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loantrust/internal/domain/amortization"
	"loantrust/internal/domain/client"
	"loantrust/internal/domain/loan"
	"loantrust/internal/domain/rating"
	"loantrust/internal/domain/uow"
	"loantrust/internal/notify"
)

var (
	ErrInvalidArgument = errors.New("invalid input")
	ErrIneligible      = errors.New("client not eligible for a new loan")
)

// Usecase is the loan ledger: it owns the client/loan store, the
// selected-client session state, and is the only writer of trust ratings.
// Mutations are serialized behind mu because the echo host serves requests
// concurrently and a recompute reads the full history before writing the
// derived rating.
type Usecase struct {
	clients  client.Repository
	loans    loan.Repository
	uow      uow.UnitOfWork
	notifier notify.Notifier

	mu       sync.Mutex
	selected *ClientDTO
}

func NewUsecase(clients client.Repository, loans loan.Repository, tx uow.UnitOfWork, n notify.Notifier) *Usecase {
	if n == nil {
		n = notify.NewNopNotifier()
	}
	return &Usecase{clients: clients, loans: loans, uow: tx, notifier: n}
}

// ---- queries ----

func (u *Usecase) ListClients(ctx context.Context) ([]ClientDTO, error) {
	cls, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ClientDTO, 0, len(cls))
	for i := range cls {
		out = append(out, toClientDTO(&cls[i]))
	}
	return out, nil
}

func (u *Usecase) GetClient(ctx context.Context, clientID string) (*ClientDTO, error) {
	cl, err := getClient(ctx, u.clients, clientID)
	if err != nil {
		return nil, err
	}
	dto := toClientDTO(cl)
	return &dto, nil
}

// SelectClient sets the session's active client. Unknown ids are an error,
// never a silent no-op.
func (u *Usecase) SelectClient(ctx context.Context, clientID string) (*ClientDTO, error) {
	cl, err := getClient(ctx, u.clients, clientID)
	if err != nil {
		return nil, err
	}
	dto := toClientDTO(cl)
	u.mu.Lock()
	sel := dto
	u.selected = &sel
	u.mu.Unlock()
	return &dto, nil
}

// SelectedClient returns a copy of the active client, or nil if none is set.
func (u *Usecase) SelectedClient() *ClientDTO {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.selected == nil {
		return nil
	}
	out := *u.selected
	return &out
}

func (u *Usecase) TrustRating(ctx context.Context, clientID string) (int, error) {
	if _, err := getClient(ctx, u.clients, clientID); err != nil {
		return 0, err
	}
	records, err := u.loans.ListByClientID(ctx, clientID)
	if err != nil {
		return 0, err
	}
	return rating.Score(clientID, records), nil
}

func (u *Usecase) IsEligible(ctx context.Context, clientID string) (bool, error) {
	score, err := u.TrustRating(ctx, clientID)
	if err != nil {
		return false, err
	}
	return rating.Eligible(score), nil
}

func (u *Usecase) GetClientLoans(ctx context.Context, clientID string) ([]LoanDTO, error) {
	if _, err := getClient(ctx, u.clients, clientID); err != nil {
		return nil, err
	}
	records, err := u.loans.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(records))
	for i := range records {
		out = append(out, toLoanDTO(&records[i]))
	}
	return out, nil
}

// Quote prices a proposed loan for the interactive calculator flow: the
// term tier decides the rate regardless of what the caller had in mind.
func (u *Usecase) Quote(amount decimal.Decimal, termMonths int) (*QuoteDTO, error) {
	rate := amortization.RateForTerm(termMonths)
	sched, err := amortization.Compute(amount, termMonths, rate)
	if err != nil {
		return nil, err
	}
	return &QuoteDTO{
		Principal:      amount,
		TermMonths:     termMonths,
		InterestRate:   rate,
		MonthlyPayment: sched.Monthly,
		TotalPayment:   sched.Total,
		TotalInterest:  sched.Interest,
	}, nil
}

// ---- mutations ----

// AddLoan re-checks eligibility even though the form gate should already
// have done so; the threshold is the same constant, so the two checks
// cannot disagree. New records always enter repayment as approved with an
// empty payment history.
func (u *Usecase) AddLoan(ctx context.Context, in Application) (*LoanDTO, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) || in.Term <= 0 {
		return nil, fmt.Errorf("%w: amount and term must be positive", ErrInvalidArgument)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	var dto *LoanDTO
	var score int
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cl, err := getClient(ctx, r.Clients, in.ClientID)
		if err != nil {
			return err
		}

		records, err := r.Loans.ListByClientID(ctx, cl.ClientID)
		if err != nil {
			return err
		}
		current := rating.Score(cl.ClientID, records)
		if !rating.Eligible(current) {
			return fmt.Errorf("%w: trust rating %d is below the approval threshold of %d",
				ErrIneligible, current, rating.Threshold)
		}

		now := time.Now().UTC()
		rec := &loan.LoanRecord{
			LoanID:       uuid.NewString(),
			ClientID:     cl.ClientID,
			Principal:    in.Amount,
			TermMonths:   in.Term,
			StartDate:    now,
			DueDate:      now.AddDate(0, in.Term, 0),
			InterestRate: amortization.RateForTerm(in.Term),
			Status:       loan.StatusApproved,
		}
		if err := r.Loans.Create(ctx, rec); err != nil {
			return err
		}

		if score, err = u.recompute(ctx, r, cl.ClientID); err != nil {
			return err
		}
		d := toLoanDTO(rec)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.syncSelected(in.ClientID, score)
	u.notifier.Notify(notify.Notification{
		Title:       "Loan Approved",
		Description: fmt.Sprintf("Loan for ₱%s has been approved", in.Amount.StringFixed(2)),
		Severity:    notify.SeveritySuccess,
	})
	return dto, nil
}

func (u *Usecase) UpdateLoan(ctx context.Context, loanID string, p Patch) (*LoanDTO, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	var dto *LoanDTO
	var clientID string
	var score int
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.LoanRecord) error {
		p.apply(l)
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		clientID = l.ClientID
		var err error
		if score, err = u.recompute(ctx, r, l.ClientID); err != nil {
			return err
		}
		d := toLoanDTO(l)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, mapLoanErr(err)
	}

	u.syncSelected(clientID, score)
	u.notifier.Notify(notify.Notification{
		Title:       "Loan Updated",
		Description: "Loan details have been updated successfully",
		Severity:    notify.SeverityInfo,
	})
	return dto, nil
}

// DeleteLoan captures the owning client id before the record goes away; the
// recompute must not depend on looking the loan up afterwards.
func (u *Usecase) DeleteLoan(ctx context.Context, loanID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	var clientID string
	var score int
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.LoanRecord) error {
		clientID = l.ClientID
		if err := r.Loans.Delete(ctx, l); err != nil {
			return err
		}
		var err error
		score, err = u.recompute(ctx, r, clientID)
		return err
	})
	if err != nil {
		return mapLoanErr(err)
	}

	u.syncSelected(clientID, score)
	u.notifier.Notify(notify.Notification{
		Title:       "Loan Deleted",
		Description: "Loan has been deleted successfully",
		Severity:    notify.SeverityInfo,
	})
	return nil
}

// AddPayment appends to the loan's history. Ratings depend on loan statuses
// only, so no recompute happens here; a status change arrives via UpdateLoan.
func (u *Usecase) AddPayment(ctx context.Context, loanID string, amount decimal.Decimal, date time.Time) (*PaymentDTO, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrInvalidArgument)
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	var dto *PaymentDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.LoanRecord) error {
		p := &loan.Payment{
			PaymentID:    uuid.NewString(),
			LoanRecordID: l.ID,
			Date:         date.UTC(),
			Amount:       amount,
		}
		if err := r.Loans.AddPayment(ctx, p); err != nil {
			return err
		}
		dto = &PaymentDTO{PaymentID: p.PaymentID, Date: p.Date, Amount: p.Amount}
		return nil
	})
	if err != nil {
		return nil, mapLoanErr(err)
	}

	u.notifier.Notify(notify.Notification{
		Title:       "Payment Recorded",
		Description: fmt.Sprintf("Payment of ₱%s has been recorded", amount.StringFixed(2)),
		Severity:    notify.SeveritySuccess,
	})
	return dto, nil
}

// RecomputeAll refreshes every client's cached rating from history. Runs
// once at startup, after seeding.
func (u *Usecase) RecomputeAll(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	scores := map[string]int{}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cls, err := r.Clients.List(ctx)
		if err != nil {
			return err
		}
		for i := range cls {
			score, err := u.recompute(ctx, r, cls[i].ClientID)
			if err != nil {
				return err
			}
			scores[cls[i].ClientID] = score
		}
		return nil
	})
	if err != nil {
		return err
	}
	for id, score := range scores {
		u.syncSelected(id, score)
	}
	return nil
}

// ---- internals ----

// recompute projects the client's current record set into a rating and
// writes it back. It runs inside the same transaction as the mutation that
// triggered it.
func (u *Usecase) recompute(ctx context.Context, r uow.Repos, clientID string) (int, error) {
	records, err := r.Loans.ListByClientID(ctx, clientID)
	if err != nil {
		return 0, err
	}
	score := rating.Score(clientID, records)

	cl, err := getClient(ctx, r.Clients, clientID)
	if err != nil {
		return 0, err
	}
	cl.TrustRating = score
	if err := r.Clients.Save(ctx, cl); err != nil {
		return 0, err
	}
	return score, nil
}

// syncSelected keeps the session cache in step with the store. Caller must
// hold mu.
func (u *Usecase) syncSelected(clientID string, score int) {
	if u.selected != nil && u.selected.ClientID == clientID {
		u.selected.TrustRating = score
	}
}

func (p Patch) validate() error {
	if p.Principal != nil && p.Principal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: principal must be positive", ErrInvalidArgument)
	}
	if p.TermMonths != nil && *p.TermMonths <= 0 {
		return fmt.Errorf("%w: term must be positive", ErrInvalidArgument)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown loan status %q", ErrInvalidArgument, *p.Status)
	}
	return nil
}

// apply is a shallow field replace; payment history is never touched here.
// DueDate is re-derived when the term or start date moves so the
// start + term invariant keeps holding.
func (p Patch) apply(l *loan.LoanRecord) {
	if p.Principal != nil {
		l.Principal = *p.Principal
	}
	if p.StartDate != nil {
		l.StartDate = p.StartDate.UTC()
	}
	if p.TermMonths != nil {
		l.TermMonths = *p.TermMonths
	}
	if p.InterestRate != nil {
		l.InterestRate = *p.InterestRate
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.TermMonths != nil || p.StartDate != nil {
		l.DueDate = l.StartDate.AddDate(0, l.TermMonths, 0)
	}
}

func getClient(ctx context.Context, repo client.Repository, clientID string) (*client.Client, error) {
	cl, err := repo.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, client.ErrNotFound
		}
		return nil, err
	}
	return cl, nil
}

func mapLoanErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return loan.ErrNotFound
	}
	return err
}

func toClientDTO(c *client.Client) ClientDTO {
	return ClientDTO{
		ClientID:    c.ClientID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		TrustRating: c.TrustRating,
	}
}

func toLoanDTO(l *loan.LoanRecord) LoanDTO {
	payments := make([]PaymentDTO, 0, len(l.Payments))
	for _, p := range l.Payments {
		payments = append(payments, PaymentDTO{PaymentID: p.PaymentID, Date: p.Date, Amount: p.Amount})
	}
	return LoanDTO{
		LoanID:       l.LoanID,
		ClientID:     l.ClientID,
		Principal:    l.Principal,
		TermMonths:   l.TermMonths,
		StartDate:    l.StartDate,
		DueDate:      l.DueDate,
		InterestRate: l.InterestRate,
		Status:       string(l.Status),
		Payments:     payments,
		CreatedAt:    l.CreatedAt,
	}
}
