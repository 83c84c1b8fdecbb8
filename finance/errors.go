package finance

// ValidationError marks malformed or out-of-range reconciliation input:
// missing fields, negative amounts, over-payment, partial payment of a
// sub-installment, schedule totals exceeding the tranche allowance.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError marks a reference to an installment that does not exist in
// the schedule.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }
