package finance

import (
	"fmt"
	"math"
	"time"

	"github.com/vikasverma4851/Neoteric-backend/models"
)

// amountEpsilon absorbs float noise when comparing currency amounts.
const amountEpsilon = 1e-6

// Entry is one reconciliation event submitted against a schedule.
type Entry struct {
	InstallmentNo    string
	TodayReceiving   float64
	InterestReceived float64
	ReceivedDate     time.Time
	UTR              string
	BankDetail       string
	IsSubInstallment bool
	ParentDueDate    *time.Time
	CommitmentDate   *time.Time
}

// Applied reports the outcome of one entry: the installment after the entry
// took effect, the interest figure in force at that moment, and the
// sub-installment spawned by a shortfall, if any.
type Applied struct {
	Installment models.Installment
	Interest    float64
	CreatedSub  *models.Installment
}

// Batch applies a sequence of reconciliation entries against an in-memory
// working copy of the schedule. Nothing is persisted here: the caller loads
// the schedule and ledger, applies every entry, and only writes if all of
// them succeeded, which is what makes the batch all-or-nothing.
type Batch struct {
	installments []models.Installment
	agg          map[string]Aggregates
}

// NewBatch snapshots the schedule and folds the ledger into aggregates.
func NewBatch(installments []models.Installment, ledger []models.PaymentReconciliation) *Batch {
	work := make([]models.Installment, len(installments))
	copy(work, installments)
	SortInstallments(work)
	return &Batch{installments: work, agg: AggregateLedger(ledger)}
}

// Installments returns the working schedule in canonical order.
func (b *Batch) Installments() []models.Installment {
	SortInstallments(b.installments)
	return b.installments
}

// Apply validates and applies a single entry. On any error the batch must be
// discarded unpersisted.
func (b *Batch) Apply(e Entry) (Applied, error) {
	if e.InstallmentNo == "" {
		return Applied{}, &ValidationError{Message: "Installment number is required."}
	}
	if e.ReceivedDate.IsZero() {
		return Applied{}, &ValidationError{Message: fmt.Sprintf("Received date is required for installment %s.", e.InstallmentNo)}
	}
	if e.TodayReceiving < 0 {
		return Applied{}, &ValidationError{Message: fmt.Sprintf("Amount receiving cannot be negative for installment %s.", e.InstallmentNo)}
	}
	if e.InterestReceived < 0 {
		return Applied{}, &ValidationError{Message: fmt.Sprintf("Interest receiving cannot be negative for installment %s.", e.InstallmentNo)}
	}

	idx := FindInstallment(b.installments, e.InstallmentNo)
	if idx < 0 {
		return Applied{}, &NotFoundError{Message: fmt.Sprintf("Installment %s not found.", e.InstallmentNo)}
	}
	inst := b.installments[idx]
	isSub := inst.IsSubInstallment || e.IsSubInstallment

	if isSub && e.CommitmentDate == nil && inst.CommitmentDate == nil {
		return Applied{}, &ValidationError{Message: fmt.Sprintf("Commitment date is required for sub-installment %s.", e.InstallmentNo)}
	}

	a := b.agg[e.InstallmentNo]

	// A sub-installment never splits again: once any money is submitted it
	// must clear the whole remaining amount in this same transaction.
	if isSub && e.TodayReceiving > amountEpsilon {
		remaining := inst.Amount - a.PrincipalReceived
		if math.Abs(e.TodayReceiving-remaining) > amountEpsilon {
			return Applied{}, &ValidationError{
				Message: fmt.Sprintf("Sub-installment %s must be paid in full (%.2f) in one transaction.", e.InstallmentNo, remaining),
			}
		}
	}

	// Interest is only recomputed for a late base installment or for a
	// sub-installment, and only when the entry actually moves money. The
	// basis is always the original obligation, never the collapsed amount.
	interest := inst.Interest
	recvDate := e.ReceivedDate
	if e.TodayReceiving > amountEpsilon || e.InterestReceived > amountEpsilon {
		if isSub {
			start := SubInterestStart(inst, b.installments, b.agg, e.ParentDueDate)
			interest = Interest(inst.OriginalAmount, start, &recvDate)
		} else if inst.DueDate != nil && recvDate.After(*inst.DueDate) {
			interest = Interest(inst.OriginalAmount, inst.DueDate, &recvDate)
		}
	}

	newTotal := a.PrincipalReceived + e.TodayReceiving
	if newTotal > inst.Amount+amountEpsilon {
		return Applied{}, &ValidationError{
			Message: fmt.Sprintf("Payment exceeds installment amount for installment %s. Allowed: %.2f, Attempted Total: %.2f",
				e.InstallmentNo, inst.Amount, newTotal),
		}
	}

	newInterestTotal := a.InterestReceived + e.InterestReceived
	if newInterestTotal > interest+amountEpsilon {
		return Applied{}, &ValidationError{
			Message: fmt.Sprintf("Interest received exceeds accrued interest for installment %s. Accrued: %.2f, Attempted Total: %.2f",
				e.InstallmentNo, interest, newInterestTotal),
		}
	}

	inst.Interest = interest
	inst.TotalReceived = newTotal
	inst.TotalInterestReceived = newInterestTotal
	inst.Balance = inst.Amount - newTotal
	inst.Paid = newTotal >= inst.Amount-amountEpsilon && newInterestTotal >= interest-amountEpsilon
	if isSub && e.CommitmentDate != nil {
		inst.CommitmentDate = e.CommitmentDate
	}

	var createdSub *models.Installment
	if !isSub && newTotal < inst.Amount-amountEpsilon && e.TodayReceiving > amountEpsilon {
		// Shortfall: collapse the parent around what was actually received
		// and push the remainder onto a sub-installment.
		shortfall := inst.Amount - newTotal
		inst.Amount = newTotal
		inst.Balance = 0
		inst.Paid = true

		subNo := inst.InstallmentNo + SubSuffix
		if FindInstallment(b.installments, subNo) < 0 {
			parentDue := &recvDate
			if inst.DueDate != nil && recvDate.IsZero() {
				parentDue = inst.DueDate
			}
			sub := models.Installment{
				EMIID:            inst.EMIID,
				InstallmentNo:    subNo,
				Amount:           shortfall,
				OriginalAmount:   shortfall,
				Balance:          shortfall,
				Interest:         0,
				Paid:             false,
				IsSubInstallment: true,
				ParentNo:         inst.InstallmentNo,
				ParentDueDate:    parentDue,
				CommitmentDate:   e.CommitmentDate,
			}
			createdSub = &sub
		}
	}

	b.installments[idx] = inst
	if createdSub != nil {
		b.installments = append(b.installments, *createdSub)
		SortInstallments(b.installments)
	}

	if recvDate.After(deref(a.LatestReceivedDate)) {
		a.LatestReceivedDate = &recvDate
		a.LastInterest = interest
	}
	a.PrincipalReceived = newTotal
	a.InterestReceived = newInterestTotal
	a.HasEntries = true
	b.agg[e.InstallmentNo] = a

	return Applied{Installment: inst, Interest: interest, CreatedSub: createdSub}, nil
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
