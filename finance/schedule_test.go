package finance

import (
	"testing"

	"github.com/vikasverma4851/Neoteric-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseNumber(t *testing.T) {
	assert.Equal(t, 3, BaseNumber("3"))
	assert.Equal(t, 3, BaseNumber("3-sub"))
	assert.Equal(t, 12, BaseNumber("12"))
}

func TestSortInstallmentsParentBeforeSub(t *testing.T) {
	installments := []models.Installment{
		{InstallmentNo: "2-sub", IsSubInstallment: true, ParentNo: "2"},
		{InstallmentNo: "10"},
		{InstallmentNo: "2"},
		{InstallmentNo: "1"},
		{InstallmentNo: "1-sub", IsSubInstallment: true, ParentNo: "1"},
	}

	SortInstallments(installments)

	got := make([]string, 0, len(installments))
	for _, inst := range installments {
		got = append(got, inst.InstallmentNo)
	}
	assert.Equal(t, []string{"1", "1-sub", "2", "2-sub", "10"}, got)

	for i, inst := range installments {
		assert.Equal(t, i, inst.Position)
	}
}

func TestValidateInstallments(t *testing.T) {
	due := date(2025, 1, 1)
	commit := date(2025, 2, 1)

	tests := []struct {
		name         string
		installments []models.Installment
		paymentType1 float64
		wantErr      string
	}{
		{
			name:         "empty list",
			installments: nil,
			paymentType1: 1000,
			wantErr:      "At least one installment",
		},
		{
			name: "missing installment number",
			installments: []models.Installment{
				{Amount: 100, DueDate: due},
			},
			paymentType1: 1000,
			wantErr:      "Installment number is required",
		},
		{
			name: "non-positive amount",
			installments: []models.Installment{
				{InstallmentNo: "1", Amount: 0, DueDate: due},
			},
			paymentType1: 1000,
			wantErr:      "positive amount",
		},
		{
			name: "duplicate number",
			installments: []models.Installment{
				{InstallmentNo: "1", Amount: 100, DueDate: due},
				{InstallmentNo: "1", Amount: 100, DueDate: due},
			},
			paymentType1: 1000,
			wantErr:      "Duplicate installment number",
		},
		{
			name: "base installment without due date",
			installments: []models.Installment{
				{InstallmentNo: "1", Amount: 100},
			},
			paymentType1: 1000,
			wantErr:      "requires a dueDate",
		},
		{
			name: "sub without parent due date",
			installments: []models.Installment{
				{InstallmentNo: "1", Amount: 100, DueDate: due},
				{InstallmentNo: "1-sub", Amount: 50, CommitmentDate: commit},
			},
			paymentType1: 1000,
			wantErr:      "requires a parentDueDate",
		},
		{
			name: "sub without commitment date",
			installments: []models.Installment{
				{InstallmentNo: "1", Amount: 100, DueDate: due},
				{InstallmentNo: "1-sub", Amount: 50, ParentDueDate: due},
			},
			paymentType1: 1000,
			wantErr:      "requires a commitmentDate",
		},
		{
			name: "sub with its own due date",
			installments: []models.Installment{
				{InstallmentNo: "1", Amount: 100, DueDate: due},
				{InstallmentNo: "1-sub", Amount: 50, DueDate: due, ParentDueDate: due, CommitmentDate: commit},
			},
			paymentType1: 1000,
			wantErr:      "cannot carry a dueDate",
		},
		{
			name: "total exceeds payment type 1",
			installments: []models.Installment{
				{InstallmentNo: "1", Amount: 700, DueDate: due},
				{InstallmentNo: "2", Amount: 400, DueDate: due},
			},
			paymentType1: 1000,
			wantErr:      "cannot exceed Payment Type 1",
		},
		{
			name: "valid schedule",
			installments: []models.Installment{
				{InstallmentNo: "1", Amount: 500, DueDate: due},
				{InstallmentNo: "2", Amount: 500, DueDate: due},
			},
			paymentType1: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInstallments(tt.installments, tt.paymentType1)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Message, tt.wantErr)
		})
	}
}

func TestValidateInstallmentsFillsSubFields(t *testing.T) {
	due := date(2025, 1, 1)
	commit := date(2025, 2, 1)
	installments := []models.Installment{
		{InstallmentNo: "2", Amount: 100, DueDate: due},
		{InstallmentNo: "2-sub", Amount: 50, ParentDueDate: due, CommitmentDate: commit},
	}

	require.NoError(t, ValidateInstallments(installments, 1000))
	assert.True(t, installments[1].IsSubInstallment)
	assert.Equal(t, "2", installments[1].ParentNo)
}
