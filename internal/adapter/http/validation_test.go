package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidator_Dec2(t *testing.T) {
	type payload struct {
		Amount float64 `validate:"dec2"`
	}
	v := NewValidator()

	for _, ok := range []float64{100, 99.99, 0.5, 1234.10} {
		if err := v.Validate(&payload{Amount: ok}); err != nil {
			t.Fatalf("dec2 rejected %v: %v", ok, err)
		}
	}
	for _, bad := range []float64{99.999, 0.001, 1234.567} {
		if err := v.Validate(&payload{Amount: bad}); err == nil {
			t.Fatalf("dec2 accepted %v", bad)
		}
	}
}

func TestValidator_LoanStatus(t *testing.T) {
	type payload struct {
		Status string `validate:"loanstatus"`
	}
	v := NewValidator()

	for _, ok := range []string{"pending", "approved", "rejected", "fully-paid", "partially-paid", "defaulted"} {
		if err := v.Validate(&payload{Status: ok}); err != nil {
			t.Fatalf("loanstatus rejected %q: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "paid", "APPROVED", "fully_paid"} {
		if err := v.Validate(&payload{Status: bad}); err == nil {
			t.Fatalf("loanstatus accepted %q", bad)
		}
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	type payload struct {
		ClientID string  `validate:"required,uuid4"`
		Amount   float64 `validate:"required,gt=0,dec2"`
		Term     int     `validate:"required,gte=1,lte=360"`
	}
	v := NewValidator()

	err := v.Validate(&payload{ClientID: "not-a-uuid", Amount: 10.123, Term: 999})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	fields := ToFieldErrors(err)

	if !containsFieldMsg(fields, "ClientID", "v4 uuid") {
		t.Fatalf("missing uuid message in %+v", fields)
	}
	if !containsFieldMsg(fields, "Amount", "2 decimal places") {
		t.Fatalf("missing dec2 message in %+v", fields)
	}
	if !containsFieldMsg(fields, "Term", "less than or equal to 360") {
		t.Fatalf("missing lte message in %+v", fields)
	}

	err = v.Validate(&payload{})
	fields = ToFieldErrors(err)
	if !containsFieldMsg(fields, "ClientID", "required") {
		t.Fatalf("missing required message in %+v", fields)
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	fields := ToFieldErrors(errors.New("something else"))
	if len(fields) != 1 || fields[0].Field != "_" {
		t.Fatalf("fields = %+v, want single catch-all entry", fields)
	}
}
