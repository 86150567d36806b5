package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"loantrust/internal/testutil/storemock"
	"loantrust/internal/usecase/ledger"
)

func TestQuote_OK(t *testing.T) {
	h := NewCalculatorHandler(ledgerOverMocks(&storemock.ClientRepo{}, &storemock.LoanRepo{}))

	c, rec := newTestContext(http.MethodPost, "/calculator/quote", `{"amount":10000,"term":12}`)
	if err := h.Quote(c); err != nil {
		t.Fatalf("Quote err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}

	var out ledger.QuoteDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !out.InterestRate.Equal(decimal.RequireFromString("0.12")) {
		t.Fatalf("rate = %s, want 0.12", out.InterestRate)
	}
	if !out.MonthlyPayment.Equal(decimal.NewFromInt(933)) {
		t.Fatalf("monthly = %s, want 933", out.MonthlyPayment)
	}
	if !out.TotalPayment.Equal(decimal.NewFromInt(11196)) {
		t.Fatalf("total = %s, want 11196", out.TotalPayment)
	}
	if !out.TotalInterest.Equal(decimal.NewFromInt(1196)) {
		t.Fatalf("interest = %s, want 1196", out.TotalInterest)
	}
}

func TestQuote_ValidationFailure(t *testing.T) {
	h := NewCalculatorHandler(ledgerOverMocks(&storemock.ClientRepo{}, &storemock.LoanRepo{}))

	c, rec := newTestContext(http.MethodPost, "/calculator/quote", `{"amount":0,"term":400}`)
	if err := h.Quote(c); err != nil {
		t.Fatalf("Quote err: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	resp := decodeError(t, rec)
	if !containsFieldMsg(resp.Details, "Amount", "required") {
		t.Fatalf("missing amount detail in %+v", resp.Details)
	}
	if !containsFieldMsg(resp.Details, "Term", "less than or equal to 360") {
		t.Fatalf("missing term detail in %+v", resp.Details)
	}
}
