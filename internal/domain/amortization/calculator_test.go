package amortization

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMonthlyPayment_KnownExample(t *testing.T) {
	// 10000 at 12% over 12 months: round(11200/12) = 933
	got, err := MonthlyPayment(d("10000"), 12, d("0.12"))
	if err != nil {
		t.Fatalf("MonthlyPayment err: %v", err)
	}
	if !got.Equal(d("933")) {
		t.Fatalf("monthly = %s, want 933", got)
	}
}

func TestCompute_TotalsFollowRoundedInstallment(t *testing.T) {
	sched, err := Compute(d("10000"), 12, d("0.12"))
	if err != nil {
		t.Fatalf("Compute err: %v", err)
	}
	if !sched.Monthly.Equal(d("933")) {
		t.Fatalf("monthly = %s, want 933", sched.Monthly)
	}
	if !sched.Total.Equal(d("11196")) {
		t.Fatalf("total = %s, want 11196", sched.Total)
	}
	if !sched.Interest.Equal(d("1196")) {
		t.Fatalf("interest = %s, want 1196", sched.Interest)
	}
}

func TestCompute_DriftStaysWithinHalfTermUnits(t *testing.T) {
	// Total is monthly×term, not principal×(1+rate); per-installment
	// rounding may drift the total by at most term/2 currency units.
	cases := []struct {
		principal string
		term      int
		rate      string
	}{
		{"10000", 12, "0.12"},
		{"25000", 3, "0.06"},
		{"30000", 6, "0.08"},
		{"99999", 24, "0.15"},
		{"12345", 7, "0.15"},
	}
	for _, tc := range cases {
		sched, err := Compute(d(tc.principal), tc.term, d(tc.rate))
		if err != nil {
			t.Fatalf("Compute(%s, %d, %s) err: %v", tc.principal, tc.term, tc.rate, err)
		}
		exact := d(tc.principal).Mul(decimal.NewFromInt(1).Add(d(tc.rate)))
		drift := sched.Total.Sub(exact).Abs()
		bound := decimal.NewFromInt(int64(tc.term)).Div(decimal.NewFromInt(2))
		if drift.GreaterThan(bound) {
			t.Fatalf("drift %s exceeds %s for %s over %d months", drift, bound, tc.principal, tc.term)
		}
	}
}

func TestMonthlyPayment_RejectsNonPositiveInput(t *testing.T) {
	if _, err := MonthlyPayment(d("0"), 12, d("0.12")); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("zero principal: err = %v, want ErrInvalidArgument", err)
	}
	if _, err := MonthlyPayment(d("-500"), 12, d("0.12")); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("negative principal: err = %v, want ErrInvalidArgument", err)
	}
	if _, err := MonthlyPayment(d("10000"), 0, d("0.12")); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("zero term: err = %v, want ErrInvalidArgument", err)
	}
	if _, err := Compute(d("10000"), -3, d("0.12")); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("negative term: err = %v, want ErrInvalidArgument", err)
	}
}

func TestRateForTerm_Tiers(t *testing.T) {
	cases := []struct {
		term int
		want string
	}{
		{1, "0.06"},
		{3, "0.06"},
		{4, "0.08"},
		{6, "0.08"},
		{7, "0.12"},
		{12, "0.12"},
		{13, "0.15"},
		{36, "0.15"},
	}
	for _, tc := range cases {
		if got := RateForTerm(tc.term); !got.Equal(d(tc.want)) {
			t.Fatalf("RateForTerm(%d) = %s, want %s", tc.term, got, tc.want)
		}
	}
}
