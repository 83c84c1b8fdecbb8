package emi

import "sync"

// Reconciliation and schedule updates read ledger aggregates, mutate an
// in-memory schedule copy, then write it back. Two concurrent batches for the
// same booking could both validate against the same snapshot and overcommit
// an installment, so every read-validate-write span holds the booking's lock.
var bookingLocks sync.Map

func lockBooking(bookingID uint) func() {
	v, _ := bookingLocks.LoadOrStore(bookingID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
