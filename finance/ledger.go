package finance

import (
	"time"

	"github.com/vikasverma4851/Neoteric-backend/models"
)

// Aggregates are the running totals the ledger supplies for one installment.
// These figures, not the cached installment fields, are the authority on how
// much an installment has actually received.
type Aggregates struct {
	PrincipalReceived  float64
	InterestReceived   float64
	LatestReceivedDate *time.Time
	LastInterest       float64
	HasEntries         bool
}

// AggregateLedger folds raw reconciliation rows into per-installment totals.
func AggregateLedger(records []models.PaymentReconciliation) map[string]Aggregates {
	agg := make(map[string]Aggregates)
	for i := range records {
		r := &records[i]
		a := agg[r.InstallmentNo]
		a.PrincipalReceived += r.TodayReceiving
		a.InterestReceived += r.InterestReceived
		if a.LatestReceivedDate == nil || r.ReceivedDate.After(*a.LatestReceivedDate) {
			d := r.ReceivedDate
			a.LatestReceivedDate = &d
			a.LastInterest = r.Interest
		}
		a.HasEntries = true
		agg[r.InstallmentNo] = a
	}
	return agg
}
