package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loantrust/internal/domain/loan"
	"loantrust/internal/usecase/ledger"
)

type LoanHandler struct{ uc *ledger.Usecase }

func NewLoanHandler(uc *ledger.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	ClientID string  `json:"client_id" validate:"required,uuid4"`
	Amount   float64 `json:"amount" validate:"required,gt=0,dec2"`
	Term     int     `json:"term" validate:"required,gte=1,lte=360"`
	// advisory only; the term tier decides the recorded rate
	InterestRate float64 `json:"interest_rate" validate:"omitempty,gte=0,lte=1"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.AddLoan(c.Request().Context(), ledger.Application{
		ClientID:     req.ClientID,
		Amount:       decimal.NewFromFloat(req.Amount),
		Term:         req.Term,
		InterestRate: decimal.NewFromFloat(req.InterestRate),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type updateLoanReq struct {
	Principal    *float64   `json:"principal" validate:"omitempty,gt=0,dec2"`
	TermMonths   *int       `json:"term_months" validate:"omitempty,gte=1,lte=360"`
	InterestRate *float64   `json:"interest_rate" validate:"omitempty,gte=0,lte=1"`
	Status       *string    `json:"status" validate:"omitempty,loanstatus"`
	StartDate    *time.Time `json:"start_date"`
}

func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	var req updateLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	var p ledger.Patch
	if req.Principal != nil {
		d := decimal.NewFromFloat(*req.Principal)
		p.Principal = &d
	}
	if req.TermMonths != nil {
		p.TermMonths = req.TermMonths
	}
	if req.InterestRate != nil {
		d := decimal.NewFromFloat(*req.InterestRate)
		p.InterestRate = &d
	}
	if req.Status != nil {
		s := loan.Status(*req.Status)
		p.Status = &s
	}
	if req.StartDate != nil {
		p.StartDate = req.StartDate
	}

	dto, err := h.uc.UpdateLoan(c.Request().Context(), c.Param("loan_id"), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	if err := h.uc.DeleteLoan(c.Request().Context(), c.Param("loan_id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type addPaymentReq struct {
	Amount float64    `json:"amount" validate:"required,gt=0,dec2"`
	Date   *time.Time `json:"date"`
}

func (h *LoanHandler) AddPayment(c echo.Context) error {
	var req addPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}
	dto, err := h.uc.AddPayment(c.Request().Context(), c.Param("loan_id"),
		decimal.NewFromFloat(req.Amount), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
