package seed

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loantrust/internal/domain/client"
	"loantrust/internal/domain/loan"
)

// Snapshot is the static sample set the ledger boots from. The seeded
// trust ratings are placeholders; the startup recompute pass derives the
// real values from the loan history.
type Snapshot struct {
	Clients []client.Client
	Loans   []loan.LoanRecord
}

func monthsAway(n int) time.Time {
	return time.Now().UTC().AddDate(0, n, 0)
}

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func payment(monthsAgo int, amount string) loan.Payment {
	return loan.Payment{
		PaymentID: uuid.NewString(),
		Date:      monthsAway(-monthsAgo),
		Amount:    amt(amount),
	}
}

func record(clientID, amount string, term, startMonthsAgo, dueMonthsAgo int, status loan.Status, rate string, payments ...loan.Payment) loan.LoanRecord {
	return loan.LoanRecord{
		LoanID:       uuid.NewString(),
		ClientID:     clientID,
		Principal:    amt(amount),
		TermMonths:   term,
		StartDate:    monthsAway(-startMonthsAgo),
		DueDate:      monthsAway(-dueMonthsAgo),
		InterestRate: amt(rate),
		Status:       status,
		Payments:     payments,
	}
}

// Sample returns seven clients and their loan histories: two reliable
// payers, one spotless, two partial payers, and two defaulters.
func Sample() Snapshot {
	clients := []client.Client{
		{ClientID: uuid.NewString(), Name: "Juan Dela Cruz", Email: "juan@example.com", Phone: "09123456789", Address: "Manila, Philippines", TrustRating: 92},
		{ClientID: uuid.NewString(), Name: "Maria Santos", Email: "maria@example.com", Phone: "09123456790", Address: "Quezon City, Philippines", TrustRating: 85},
		{ClientID: uuid.NewString(), Name: "Pedro Reyes", Email: "pedro@example.com", Phone: "09123456791", Address: "Cebu, Philippines", TrustRating: 78},
		{ClientID: uuid.NewString(), Name: "Ana Gonzales", Email: "ana@example.com", Phone: "09123456792", Address: "Davao, Philippines", TrustRating: 95},
		{ClientID: uuid.NewString(), Name: "Carlos Mendoza", Email: "carlos@example.com", Phone: "09123456793", Address: "Baguio, Philippines", TrustRating: 65},
		{ClientID: uuid.NewString(), Name: "Sofia Cruz", Email: "sofia@example.com", Phone: "09123456794", Address: "Iloilo, Philippines", TrustRating: 50},
		{ClientID: uuid.NewString(), Name: "Miguel Lim", Email: "miguel@example.com", Phone: "09123456795", Address: "Batangas, Philippines", TrustRating: 40},
	}

	juan, maria, pedro := clients[0].ClientID, clients[1].ClientID, clients[2].ClientID
	ana, carlos, sofia, miguel := clients[3].ClientID, clients[4].ClientID, clients[5].ClientID, clients[6].ClientID

	loans := []loan.LoanRecord{
		// Juan Dela Cruz: consistently fully paid
		record(juan, "50000", 12, 14, 2, loan.StatusFullyPaid, "0.10",
			payment(12, "4583"), payment(10, "4583"), payment(8, "4583"),
			payment(6, "4583"), payment(4, "4583"), payment(2, "4583")),
		record(juan, "30000", 6, 8, 2, loan.StatusFullyPaid, "0.08",
			payment(6, "5200"), payment(4, "5200"), payment(2, "5200")),
		record(juan, "25000", 3, 24, 21, loan.StatusFullyPaid, "0.06",
			payment(23, "8833"), payment(22, "8833"), payment(21, "8834")),

		// Maria Santos: fully paid
		record(maria, "40000", 12, 15, 3, loan.StatusFullyPaid, "0.12",
			payment(13, "3733"), payment(11, "3733"), payment(9, "3733"),
			payment(7, "3733"), payment(5, "3733"), payment(3, "3733")),
		record(maria, "20000", 3, 20, 17, loan.StatusFullyPaid, "0.06",
			payment(19, "7067"), payment(18, "7067"), payment(17, "7066")),

		// Pedro Reyes: stops short of the last installment
		record(pedro, "25000", 6, 7, 1, loan.StatusPartiallyPaid, "0.09",
			payment(5, "4542"), payment(3, "4542")),
		record(pedro, "15000", 3, 12, 9, loan.StatusPartiallyPaid, "0.07",
			payment(11, "5350"), payment(10, "5350")),

		// Ana Gonzales: spotless
		record(ana, "100000", 24, 30, 6, loan.StatusFullyPaid, "0.15",
			payment(28, "4792"), payment(26, "4792"), payment(24, "4792"),
			payment(22, "4792"), payment(20, "4792"), payment(18, "4792"),
			payment(16, "4792"), payment(14, "4792"), payment(12, "4792"),
			payment(10, "4792"), payment(8, "4792"), payment(6, "4792")),
		record(ana, "75000", 12, 18, 6, loan.StatusFullyPaid, "0.10",
			payment(16, "6875"), payment(14, "6875"), payment(12, "6875"),
			payment(10, "6875"), payment(8, "6875"), payment(6, "6875")),

		// Carlos Mendoza: mixed
		record(carlos, "35000", 12, 14, 2, loan.StatusPartiallyPaid, "0.12",
			payment(12, "3267"), payment(10, "3267"), payment(8, "3267"), payment(6, "3267")),
		record(carlos, "20000", 6, 20, 14, loan.StatusPartiallyPaid, "0.09",
			payment(18, "3633"), payment(16, "3633"), payment(16, "3633")),

		// Sofia Cruz: defaulted after a single installment each time
		record(sofia, "20000", 6, 8, 2, loan.StatusDefaulted, "0.08",
			payment(6, "3467")),
		record(sofia, "10000", 3, 15, 12, loan.StatusDefaulted, "0.05",
			payment(14, "3500")),

		// Miguel Lim: never paid
		record(miguel, "15000", 3, 5, 2, loan.StatusDefaulted, "0.06"),
		record(miguel, "5000", 1, 8, 7, loan.StatusDefaulted, "0.04"),
	}

	return Snapshot{Clients: clients, Loans: loans}
}

// Run inserts the sample snapshot unless the store already holds clients.
func Run(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&client.Client{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	snap := Sample()
	for i := range snap.Clients {
		if err := gdb.Create(&snap.Clients[i]).Error; err != nil {
			return err
		}
	}
	for i := range snap.Loans {
		if err := gdb.Create(&snap.Loans[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("seed: %d clients, %d loan records", len(snap.Clients), len(snap.Loans))
	return nil
}
