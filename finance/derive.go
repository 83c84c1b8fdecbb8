package finance

import (
	"strings"
	"time"

	"github.com/vikasverma4851/Neoteric-backend/models"
)

// DerivedInstallment is the read-path view of an installment: the persisted
// record with its received totals, balance, interest and due-day count
// reconstructed from ledger aggregates.
type DerivedInstallment struct {
	models.Installment
	DueDays         int     `json:"dueDays"`
	InterestBalance float64 `json:"interestBalance"`
}

// SubInterestStart resolves the date interest starts accruing for a
// sub-installment: the latest recorded payment date on its parent, else the
// supplied parentDueDate, else the one stored on the sub, else the parent's
// own due date.
func SubInterestStart(inst models.Installment, schedule []models.Installment, agg map[string]Aggregates, supplied *time.Time) *time.Time {
	parentNo := inst.ParentNo
	if parentNo == "" {
		parentNo = strings.TrimSuffix(inst.InstallmentNo, SubSuffix)
	}
	if pa, ok := agg[parentNo]; ok && pa.LatestReceivedDate != nil {
		return pa.LatestReceivedDate
	}
	if supplied != nil {
		return supplied
	}
	if inst.ParentDueDate != nil {
		return inst.ParentDueDate
	}
	if i := FindInstallment(schedule, parentNo); i >= 0 {
		return schedule[i].DueDate
	}
	return nil
}

// DeriveInstallment reconstructs display figures for one installment from the
// persisted schedule row and the ledger aggregates, without mutating either.
// The interest basis rules are the same ones the reconciliation engine
// applies; the toDate is the latest recorded payment date, or now when no
// payment has landed yet.
func DeriveInstallment(inst models.Installment, schedule []models.Installment, agg map[string]Aggregates, now time.Time) DerivedInstallment {
	out := DerivedInstallment{Installment: inst}
	a := agg[inst.InstallmentNo]

	out.TotalReceived = a.PrincipalReceived
	out.Balance = inst.Amount - a.PrincipalReceived
	out.TotalInterestReceived = a.InterestReceived

	toDate := a.LatestReceivedDate
	if toDate == nil {
		toDate = &now
	}

	interest := inst.Interest
	var start *time.Time
	if inst.IsSubInstallment {
		start = SubInterestStart(inst, schedule, agg, nil)
		interest = Interest(inst.OriginalAmount, start, toDate)
	} else if inst.DueDate != nil && toDate.After(*inst.DueDate) {
		start = inst.DueDate
		interest = Interest(inst.OriginalAmount, inst.DueDate, toDate)
	}
	out.Interest = interest
	out.InterestBalance = interest - a.InterestReceived

	if inst.IsSubInstallment {
		out.DueDays = DaysBetween(start, toDate)
	} else {
		out.DueDays = DaysBetween(inst.DueDate, toDate)
	}

	// Paid is sticky once the engine sets it (a collapsed parent stays paid);
	// otherwise both obligations must be met.
	out.Paid = inst.Paid || (out.Balance <= amountEpsilon && out.InterestBalance <= amountEpsilon)

	return out
}

// DeriveSchedule derives the whole schedule in canonical display order.
func DeriveSchedule(installments []models.Installment, ledger []models.PaymentReconciliation, now time.Time) []DerivedInstallment {
	work := make([]models.Installment, len(installments))
	copy(work, installments)
	SortInstallments(work)
	agg := AggregateLedger(ledger)

	out := make([]DerivedInstallment, 0, len(work))
	for _, inst := range work {
		out = append(out, DeriveInstallment(inst, work, agg, now))
	}
	return out
}
