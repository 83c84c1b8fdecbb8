package finance

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vikasverma4851/Neoteric-backend/models"
)

// SubSuffix is appended to a parent's installment number to name the
// sub-installment tracking its shortfall. At most one sub exists per parent.
const SubSuffix = "-sub"

// BaseNumber returns the numeric value of the base installment number, i.e.
// the part before any "-sub" suffix. Non-numeric numbers sort last.
func BaseNumber(installmentNo string) int {
	base := strings.TrimSuffix(installmentNo, SubSuffix)
	n, err := strconv.Atoi(base)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}

// IsSubNo reports whether the installment number names a sub-installment.
func IsSubNo(installmentNo string) bool {
	return strings.HasSuffix(installmentNo, SubSuffix)
}

// SortInstallments orders installments for display: base number ascending,
// with each parent immediately before its sub-installment. Position fields
// are rewritten to match.
func SortInstallments(installments []models.Installment) {
	sort.SliceStable(installments, func(i, j int) bool {
		bi, bj := BaseNumber(installments[i].InstallmentNo), BaseNumber(installments[j].InstallmentNo)
		if bi != bj {
			return bi < bj
		}
		return !installments[i].IsSubInstallment && installments[j].IsSubInstallment
	})
	for i := range installments {
		installments[i].Position = i
	}
}

// FindInstallment returns the index of the installment with the given number,
// or -1.
func FindInstallment(installments []models.Installment, installmentNo string) int {
	for i := range installments {
		if installments[i].InstallmentNo == installmentNo {
			return i
		}
	}
	return -1
}

// ValidateInstallments checks a schedule submitted for create or replace-all:
// every installment needs a number and a positive amount, numbers must be
// unique, base installments need a due date, sub-installments must carry
// parentDueDate and commitmentDate and no due date of their own, and the
// total must not exceed the booking's Payment Type 1 allowance.
func ValidateInstallments(installments []models.Installment, paymentType1 float64) error {
	if len(installments) == 0 {
		return &ValidationError{Message: "At least one installment is required."}
	}
	seen := make(map[string]bool, len(installments))
	total := 0.0
	for i := range installments {
		inst := &installments[i]
		if inst.InstallmentNo == "" {
			return &ValidationError{Message: "Installment number is required for every installment."}
		}
		if inst.Amount <= 0 {
			return &ValidationError{Message: fmt.Sprintf("Installment %s must have a positive amount.", inst.InstallmentNo)}
		}
		if seen[inst.InstallmentNo] {
			return &ValidationError{Message: fmt.Sprintf("Duplicate installment number %s.", inst.InstallmentNo)}
		}
		seen[inst.InstallmentNo] = true

		if inst.IsSubInstallment || IsSubNo(inst.InstallmentNo) {
			inst.IsSubInstallment = true
			if inst.ParentNo == "" {
				inst.ParentNo = strings.TrimSuffix(inst.InstallmentNo, SubSuffix)
			}
			if inst.ParentDueDate == nil {
				return &ValidationError{Message: fmt.Sprintf("Sub-installment %s requires a parentDueDate.", inst.InstallmentNo)}
			}
			if inst.CommitmentDate == nil {
				return &ValidationError{Message: fmt.Sprintf("Sub-installment %s requires a commitmentDate.", inst.InstallmentNo)}
			}
			if inst.DueDate != nil {
				return &ValidationError{Message: fmt.Sprintf("Sub-installment %s cannot carry a dueDate.", inst.InstallmentNo)}
			}
		} else if inst.DueDate == nil {
			return &ValidationError{Message: fmt.Sprintf("Installment %s requires a dueDate.", inst.InstallmentNo)}
		}
		total += inst.Amount
	}
	if total > paymentType1 {
		return &ValidationError{
			Message: fmt.Sprintf("Total EMI amount (%.2f) cannot exceed Payment Type 1 amount (%.2f).", total, paymentType1),
		}
	}
	return nil
}
