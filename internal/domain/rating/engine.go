package rating

import (
	"math"

	"loantrust/internal/domain/loan"
)

const (
	// Baseline sits just below Threshold: a client with no history has to
	// complete at least one loan before qualifying for the next.
	Baseline  = 75
	Threshold = 80
)

const (
	weightFullyPaid     = 100
	weightPartiallyPaid = 50
	weightDefaulted     = -100
)

// Score folds a client's loan outcomes into a 0-100 trust rating.
//
// Records of other clients are ignored. With no history the Baseline is
// returned. Otherwise each outcome bucket contributes its weight, loans in
// flight (pending/approved/rejected) contribute zero but still dilute the
// average, and the weighted mean is applied as a deviation from Baseline.
// The score depends only on outcome counts, never on loan amounts.
func Score(clientID string, records []loan.LoanRecord) int {
	var total, fullyPaid, partiallyPaid, defaulted int
	for _, r := range records {
		if r.ClientID != clientID {
			continue
		}
		total++
		switch r.Status {
		case loan.StatusFullyPaid:
			fullyPaid++
		case loan.StatusPartiallyPaid:
			partiallyPaid++
		case loan.StatusDefaulted:
			defaulted++
		}
	}
	if total == 0 {
		return Baseline
	}

	weighted := float64(fullyPaid*weightFullyPaid+
		partiallyPaid*weightPartiallyPaid+
		defaulted*weightDefaulted) / float64(total)

	score := math.Max(0, math.Min(100, Baseline+weighted))
	return int(math.Round(score))
}

// Eligible is the single gate for both showing the application form and
// accepting a submission. Both call sites must use this function so the two
// checks can never disagree.
func Eligible(score int) bool { return score >= Threshold }
