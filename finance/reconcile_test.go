package finance

import (
	"testing"

	"github.com/vikasverma4851/Neoteric-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseSchedule() []models.Installment {
	return []models.Installment{
		{InstallmentNo: "1", Amount: 1000, OriginalAmount: 1000, Balance: 1000, DueDate: date(2024, 1, 1)},
		{InstallmentNo: "2", Amount: 2000, OriginalAmount: 2000, Balance: 2000, DueDate: date(2024, 2, 1)},
	}
}

func TestApplyFullPaymentOnTime(t *testing.T) {
	b := NewBatch(baseSchedule(), nil)

	applied, err := b.Apply(Entry{
		InstallmentNo:  "1",
		TodayReceiving: 1000,
		ReceivedDate:   *date(2023, 12, 20),
	})
	require.NoError(t, err)

	assert.Equal(t, float64(1000), applied.Installment.TotalReceived)
	assert.Zero(t, applied.Installment.Balance)
	assert.True(t, applied.Installment.Paid)
	assert.Zero(t, applied.Interest)
	assert.Nil(t, applied.CreatedSub)
	assert.Len(t, b.Installments(), 2)
}

func TestApplySplitOnShortfall(t *testing.T) {
	b := NewBatch(baseSchedule(), nil)

	applied, err := b.Apply(Entry{
		InstallmentNo:  "1",
		TodayReceiving: 400,
		ReceivedDate:   *date(2023, 12, 20),
	})
	require.NoError(t, err)

	// Parent collapses around what was received.
	assert.Equal(t, float64(400), applied.Installment.Amount)
	assert.Equal(t, float64(1000), applied.Installment.OriginalAmount)
	assert.Zero(t, applied.Installment.Balance)
	assert.True(t, applied.Installment.Paid)

	// The shortfall moves onto a fresh sub-installment.
	require.NotNil(t, applied.CreatedSub)
	sub := *applied.CreatedSub
	assert.Equal(t, "1-sub", sub.InstallmentNo)
	assert.Equal(t, float64(600), sub.Amount)
	assert.Equal(t, float64(600), sub.Balance)
	assert.Zero(t, sub.Interest)
	assert.False(t, sub.Paid)
	assert.True(t, sub.IsSubInstallment)
	assert.Equal(t, "1", sub.ParentNo)
	require.NotNil(t, sub.ParentDueDate)
	assert.Equal(t, *date(2023, 12, 20), *sub.ParentDueDate)

	// Sub sits immediately after its parent.
	installments := b.Installments()
	require.Len(t, installments, 3)
	assert.Equal(t, "1", installments[0].InstallmentNo)
	assert.Equal(t, "1-sub", installments[1].InstallmentNo)
	assert.Equal(t, "2", installments[2].InstallmentNo)
}

func TestApplySplitDoesNotDuplicateSub(t *testing.T) {
	commit := date(2024, 3, 1)
	schedule := baseSchedule()
	schedule = append(schedule, models.Installment{
		InstallmentNo: "1-sub", Amount: 600, OriginalAmount: 600, Balance: 600,
		IsSubInstallment: true, ParentNo: "1",
		ParentDueDate: date(2024, 1, 10), CommitmentDate: commit,
	})
	schedule[0].Amount = 400
	schedule[0].Balance = 0
	schedule[0].Paid = true

	ledger := []models.PaymentReconciliation{
		{InstallmentNo: "1", TodayReceiving: 400, ReceivedDate: *date(2024, 1, 10)},
	}

	b := NewBatch(schedule, ledger)
	_, err := b.Apply(Entry{
		InstallmentNo:    "1-sub",
		TodayReceiving:   600,
		ReceivedDate:     *date(2024, 3, 1),
		CommitmentDate:   commit,
		IsSubInstallment: true,
	})
	require.NoError(t, err)
	assert.Len(t, b.Installments(), 3)
}

func TestApplyOverPaymentRejected(t *testing.T) {
	ledger := []models.PaymentReconciliation{
		{InstallmentNo: "1", TodayReceiving: 800, ReceivedDate: *date(2023, 12, 1)},
	}
	b := NewBatch(baseSchedule(), ledger)

	_, err := b.Apply(Entry{
		InstallmentNo:  "1",
		TodayReceiving: 300,
		ReceivedDate:   *date(2023, 12, 20),
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "exceeds installment amount")

	// Nothing changed.
	installments := b.Installments()
	assert.Zero(t, installments[0].TotalReceived)
	assert.Len(t, installments, 2)
}

func TestApplyUnknownInstallment(t *testing.T) {
	b := NewBatch(baseSchedule(), nil)
	_, err := b.Apply(Entry{
		InstallmentNo:  "99",
		TodayReceiving: 100,
		ReceivedDate:   *date(2023, 12, 20),
	})
	var ne *NotFoundError
	require.ErrorAs(t, err, &ne)
}

func TestApplyNegativeAmountsRejected(t *testing.T) {
	b := NewBatch(baseSchedule(), nil)

	_, err := b.Apply(Entry{InstallmentNo: "1", TodayReceiving: -1, ReceivedDate: *date(2023, 12, 20)})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = b.Apply(Entry{InstallmentNo: "1", InterestReceived: -1, ReceivedDate: *date(2023, 12, 20)})
	require.ErrorAs(t, err, &ve)
}

func TestApplySubInstallmentPartialRejected(t *testing.T) {
	commit := date(2024, 3, 1)
	schedule := []models.Installment{
		{InstallmentNo: "1", Amount: 400, OriginalAmount: 1000, Balance: 0, Paid: true, DueDate: date(2024, 1, 1)},
		{InstallmentNo: "1-sub", Amount: 600, OriginalAmount: 600, Balance: 600,
			IsSubInstallment: true, ParentNo: "1",
			ParentDueDate: date(2024, 1, 10), CommitmentDate: commit},
	}
	b := NewBatch(schedule, nil)

	_, err := b.Apply(Entry{
		InstallmentNo:    "1-sub",
		TodayReceiving:   200,
		ReceivedDate:     *date(2024, 3, 1),
		CommitmentDate:   commit,
		IsSubInstallment: true,
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "paid in full")
}

func TestApplySubInstallmentRequiresCommitmentDate(t *testing.T) {
	schedule := []models.Installment{
		{InstallmentNo: "1-sub", Amount: 600, OriginalAmount: 600, Balance: 600,
			IsSubInstallment: true, ParentNo: "1", ParentDueDate: date(2024, 1, 10)},
	}
	b := NewBatch(schedule, nil)

	_, err := b.Apply(Entry{
		InstallmentNo:  "1-sub",
		TodayReceiving: 600,
		ReceivedDate:   *date(2024, 3, 1),
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "Commitment date is required")
}

func TestApplyLatePaymentAccruesInterest(t *testing.T) {
	schedule := []models.Installment{
		{InstallmentNo: "3", Amount: 5000, OriginalAmount: 5000, Balance: 5000, DueDate: date(2024, 1, 1)},
	}

	// 45 days late: interest = round(5000 * (0.02/30) * 45) = 150.
	b := NewBatch(schedule, nil)
	applied, err := b.Apply(Entry{
		InstallmentNo:  "3",
		TodayReceiving: 5000,
		ReceivedDate:   *date(2024, 2, 15),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(150), applied.Interest)
	assert.Equal(t, float64(150), applied.Installment.Interest)
	// Principal met, interest outstanding.
	assert.False(t, applied.Installment.Paid)

	// Paying exactly the accrued interest is accepted and settles it.
	applied, err = b.Apply(Entry{
		InstallmentNo:    "3",
		InterestReceived: 150,
		ReceivedDate:     *date(2024, 2, 15),
	})
	require.NoError(t, err)
	assert.True(t, applied.Installment.Paid)
}

func TestApplyInterestOverPaymentRejected(t *testing.T) {
	schedule := []models.Installment{
		{InstallmentNo: "3", Amount: 5000, OriginalAmount: 5000, Balance: 5000, DueDate: date(2024, 1, 1)},
	}
	b := NewBatch(schedule, nil)

	_, err := b.Apply(Entry{
		InstallmentNo:    "3",
		TodayReceiving:   5000,
		InterestReceived: 151,
		ReceivedDate:     *date(2024, 2, 15),
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "exceeds accrued interest")
}

func TestApplyInterestBasisIsOriginalAmount(t *testing.T) {
	// A collapsed parent keeps accruing on its original obligation.
	schedule := []models.Installment{
		{InstallmentNo: "1", Amount: 1000, OriginalAmount: 1000, Balance: 1000, DueDate: date(2024, 1, 1)},
	}
	b := NewBatch(schedule, nil)

	// 30 days late, partial 400: interest on the full 1000, not on 400.
	applied, err := b.Apply(Entry{
		InstallmentNo:  "1",
		TodayReceiving: 400,
		ReceivedDate:   *date(2024, 1, 31),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(20), applied.Interest)
	assert.Equal(t, float64(400), applied.Installment.Amount)
	assert.Equal(t, float64(1000), applied.Installment.OriginalAmount)
}

func TestApplyOnTimePaymentKeepsStoredInterest(t *testing.T) {
	schedule := []models.Installment{
		{InstallmentNo: "1", Amount: 1000, OriginalAmount: 1000, Balance: 1000,
			DueDate: date(2024, 6, 1), Interest: 7},
	}
	b := NewBatch(schedule, nil)

	applied, err := b.Apply(Entry{
		InstallmentNo:  "1",
		TodayReceiving: 1000,
		ReceivedDate:   *date(2024, 5, 1),
	})
	require.NoError(t, err)
	// Not late: the previously recorded figure carries forward.
	assert.Equal(t, float64(7), applied.Interest)
}

func TestApplySubInterestStartsAtParentPayment(t *testing.T) {
	commit := date(2024, 2, 15)
	schedule := []models.Installment{
		{InstallmentNo: "1", Amount: 400, OriginalAmount: 1000, Balance: 0, Paid: true, DueDate: date(2024, 1, 1)},
		{InstallmentNo: "1-sub", Amount: 600, OriginalAmount: 600, Balance: 600,
			IsSubInstallment: true, ParentNo: "1",
			ParentDueDate: date(2024, 1, 5), CommitmentDate: commit},
	}
	ledger := []models.PaymentReconciliation{
		{InstallmentNo: "1", TodayReceiving: 400, ReceivedDate: *date(2024, 1, 16)},
	}
	b := NewBatch(schedule, ledger)

	// Interest runs from the parent's payment (Jan 16) to the received date
	// (Feb 15): 30 days on 600 = 12.
	applied, err := b.Apply(Entry{
		InstallmentNo:    "1-sub",
		TodayReceiving:   600,
		InterestReceived: 12,
		ReceivedDate:     *date(2024, 2, 15),
		CommitmentDate:   commit,
		IsSubInstallment: true,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(12), applied.Interest)
	assert.True(t, applied.Installment.Paid)
}

func TestApplyBatchAccumulatesWithinBatch(t *testing.T) {
	b := NewBatch(baseSchedule(), nil)

	// Two entries in the same batch against the same installment must see
	// each other's totals: 600 + 500 overshoots 1000.
	_, err := b.Apply(Entry{InstallmentNo: "1", TodayReceiving: 600, ReceivedDate: *date(2023, 12, 1)})
	require.NoError(t, err)

	_, err = b.Apply(Entry{InstallmentNo: "1-sub", TodayReceiving: 500, ReceivedDate: *date(2023, 12, 2), CommitmentDate: date(2023, 12, 20)})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestApplyZeroAmountEntryLeavesInterestAlone(t *testing.T) {
	schedule := []models.Installment{
		{InstallmentNo: "1", Amount: 1000, OriginalAmount: 1000, Balance: 1000,
			DueDate: date(2024, 1, 1), Interest: 33},
	}
	b := NewBatch(schedule, nil)

	applied, err := b.Apply(Entry{
		InstallmentNo: "1",
		ReceivedDate:  *date(2024, 3, 1),
	})
	require.NoError(t, err)
	// No money moved, so the stored figure is not recomputed.
	assert.Equal(t, float64(33), applied.Interest)
	assert.Nil(t, applied.CreatedSub)
}
