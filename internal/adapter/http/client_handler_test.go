package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	clientDomain "loantrust/internal/domain/client"
	loanDomain "loantrust/internal/domain/loan"
	"loantrust/internal/testutil/storemock"
	"loantrust/internal/usecase/ledger"
)

func TestListClients_OK(t *testing.T) {
	clients := &storemock.ClientRepo{
		ListFn: func(context.Context) ([]clientDomain.Client, error) {
			return []clientDomain.Client{
				{ClientID: "a", Name: "Juan Dela Cruz", TrustRating: 85},
				{ClientID: "b", Name: "Maria Santos", TrustRating: 92},
			}, nil
		},
	}
	h := NewClientHandler(ledgerOverMocks(clients, &storemock.LoanRepo{}))

	c, rec := newTestContext(http.MethodGet, "/clients", "")
	if err := h.ListClients(c); err != nil {
		t.Fatalf("ListClients err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out []ledger.ClientDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(out) != 2 || out[0].Name != "Juan Dela Cruz" || out[1].TrustRating != 92 {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestGetClient_NotFound(t *testing.T) {
	clients := &storemock.ClientRepo{
		GetByClientIDFn: func(context.Context, string) (*clientDomain.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := NewClientHandler(ledgerOverMocks(clients, &storemock.LoanRepo{}))

	c, rec := newTestContext(http.MethodGet, "/clients/x", "")
	c.SetParamNames("client_id")
	c.SetParamValues(uuid.NewString())
	if err := h.GetClient(c); err != nil {
		t.Fatalf("GetClient err: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSelectClient_OK(t *testing.T) {
	cid := uuid.NewString()
	clients := &storemock.ClientRepo{
		GetByClientIDFn: func(_ context.Context, id string) (*clientDomain.Client, error) {
			return &clientDomain.Client{ClientID: id, Name: "Pedro Reyes", TrustRating: 80}, nil
		},
	}
	uc := ledgerOverMocks(clients, &storemock.LoanRepo{})
	h := NewClientHandler(uc)

	c, rec := newTestContext(http.MethodPost, "/clients/"+cid+"/select", "")
	c.SetParamNames("client_id")
	c.SetParamValues(cid)
	if err := h.SelectClient(c); err != nil {
		t.Fatalf("SelectClient err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if sel := uc.SelectedClient(); sel == nil || sel.ClientID != cid {
		t.Fatalf("selected = %+v, want client %s", sel, cid)
	}
}

func TestGetEligibility_BaselineClient(t *testing.T) {
	cid := uuid.NewString()
	clients := &storemock.ClientRepo{
		GetByClientIDFn: func(_ context.Context, id string) (*clientDomain.Client, error) {
			return &clientDomain.Client{ClientID: id}, nil
		},
	}
	loans := &storemock.LoanRepo{
		ListByClientIDFn: func(context.Context, string) ([]loanDomain.LoanRecord, error) {
			return nil, nil
		},
	}
	h := NewClientHandler(ledgerOverMocks(clients, loans))

	c, rec := newTestContext(http.MethodGet, "/clients/"+cid+"/eligibility", "")
	c.SetParamNames("client_id")
	c.SetParamValues(cid)
	if err := h.GetEligibility(c); err != nil {
		t.Fatalf("GetEligibility err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out eligibilityResp
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if out.TrustRating != 75 || out.Threshold != 80 || out.Eligible {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestGetClientLoans_OK(t *testing.T) {
	cid := uuid.NewString()
	clients := &storemock.ClientRepo{
		GetByClientIDFn: func(_ context.Context, id string) (*clientDomain.Client, error) {
			return &clientDomain.Client{ClientID: id}, nil
		},
	}
	loans := &storemock.LoanRepo{
		ListByClientIDFn: func(context.Context, string) ([]loanDomain.LoanRecord, error) {
			return []loanDomain.LoanRecord{
				{LoanID: "l1", ClientID: cid, Status: loanDomain.StatusFullyPaid},
				{LoanID: "l2", ClientID: cid, Status: loanDomain.StatusApproved},
			}, nil
		},
	}
	h := NewClientHandler(ledgerOverMocks(clients, loans))

	c, rec := newTestContext(http.MethodGet, "/clients/"+cid+"/loans", "")
	c.SetParamNames("client_id")
	c.SetParamValues(cid)
	if err := h.GetClientLoans(c); err != nil {
		t.Fatalf("GetClientLoans err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out []ledger.LoanDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(out) != 2 || out[0].LoanID != "l1" || out[1].LoanID != "l2" {
		t.Fatalf("unexpected body: %+v", out)
	}
}
