package finance

import (
	"testing"
	"time"

	"github.com/vikasverma4851/Neoteric-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveScheduleIdempotent(t *testing.T) {
	schedule := baseSchedule()
	ledger := []models.PaymentReconciliation{
		{InstallmentNo: "1", TodayReceiving: 400, ReceivedDate: *date(2024, 1, 10)},
	}
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	first := DeriveSchedule(schedule, ledger, now)
	second := DeriveSchedule(schedule, ledger, now)
	assert.Equal(t, first, second)
}

func TestDeriveScheduleDoesNotMutateInputs(t *testing.T) {
	schedule := baseSchedule()
	ledger := []models.PaymentReconciliation{
		{InstallmentNo: "1", TodayReceiving: 400, ReceivedDate: *date(2024, 2, 1)},
	}

	DeriveSchedule(schedule, ledger, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	assert.Zero(t, schedule[0].TotalReceived)
	assert.Equal(t, float64(1000), schedule[0].Balance)
}

func TestDeriveInstallmentTotalsFromLedger(t *testing.T) {
	schedule := baseSchedule()
	ledger := []models.PaymentReconciliation{
		{InstallmentNo: "1", TodayReceiving: 300, InterestReceived: 0, ReceivedDate: *date(2023, 12, 10)},
		{InstallmentNo: "1", TodayReceiving: 200, InterestReceived: 5, ReceivedDate: *date(2023, 12, 20)},
	}
	now := time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)

	derived := DeriveSchedule(schedule, ledger, now)

	assert.Equal(t, float64(500), derived[0].TotalReceived)
	assert.Equal(t, float64(500), derived[0].Balance)
	assert.Equal(t, float64(5), derived[0].TotalInterestReceived)
	assert.False(t, derived[0].Paid)
}

func TestDeriveLateUnpaidInstallmentUsesNow(t *testing.T) {
	schedule := []models.Installment{
		{InstallmentNo: "1", Amount: 6000, OriginalAmount: 6000, Balance: 6000, DueDate: date(2024, 1, 1)},
	}
	// 30 days past due, nothing paid: interest accrues to now.
	now := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)

	derived := DeriveSchedule(schedule, nil, now)

	assert.Equal(t, float64(120), derived[0].Interest)
	assert.Equal(t, float64(120), derived[0].InterestBalance)
	assert.Equal(t, 30, derived[0].DueDays)
	assert.False(t, derived[0].Paid)
}

func TestDeriveUsesLatestPaymentDateWhenPaid(t *testing.T) {
	schedule := []models.Installment{
		{InstallmentNo: "1", Amount: 5000, OriginalAmount: 5000, Balance: 5000, DueDate: date(2024, 1, 1)},
	}
	ledger := []models.PaymentReconciliation{
		{InstallmentNo: "1", TodayReceiving: 5000, InterestReceived: 150, Interest: 150, ReceivedDate: *date(2024, 2, 15)},
	}
	// Long after settlement: interest must stay pinned to the payment date.
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	derived := DeriveSchedule(schedule, ledger, now)

	assert.Equal(t, float64(150), derived[0].Interest)
	assert.Zero(t, derived[0].InterestBalance)
	assert.Equal(t, 45, derived[0].DueDays)
	assert.True(t, derived[0].Paid)
}

func TestDeriveNotYetDueCarriesStoredInterest(t *testing.T) {
	schedule := []models.Installment{
		{InstallmentNo: "1", Amount: 1000, OriginalAmount: 1000, Balance: 1000, DueDate: date(2024, 6, 1)},
	}
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	derived := DeriveSchedule(schedule, nil, now)

	assert.Zero(t, derived[0].Interest)
	assert.Zero(t, derived[0].DueDays)
}

func TestDeriveSubInstallment(t *testing.T) {
	commit := date(2024, 2, 15)
	schedule := []models.Installment{
		{InstallmentNo: "1", Amount: 400, OriginalAmount: 1000, Balance: 0, Paid: true, DueDate: date(2024, 1, 1)},
		{InstallmentNo: "1-sub", Amount: 600, OriginalAmount: 600, Balance: 600,
			IsSubInstallment: true, ParentNo: "1",
			ParentDueDate: date(2024, 1, 16), CommitmentDate: commit},
	}
	ledger := []models.PaymentReconciliation{
		{InstallmentNo: "1", TodayReceiving: 400, ReceivedDate: *date(2024, 1, 16)},
	}
	// 30 days after the parent's payment.
	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	derived := DeriveSchedule(schedule, ledger, now)
	require.Len(t, derived, 2)

	sub := derived[1]
	assert.Equal(t, "1-sub", sub.InstallmentNo)
	assert.Equal(t, float64(12), sub.Interest)
	assert.Equal(t, 30, sub.DueDays)
	assert.False(t, sub.Paid)

	// Collapsed parent stays paid even though the read path recomputes.
	assert.True(t, derived[0].Paid)
}
