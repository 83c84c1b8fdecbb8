// Package finance holds the pure installment arithmetic shared by the
// reconciliation write path and the schedule read path. Keeping the interest
// and derivation rules in one place is what keeps the two paths from
// drifting apart.
package finance

import (
	"math"
	"time"
)

// DailyInterestRate is a nominal 2% per 30 days. It is deliberately kept at
// full floating precision; only the final interest figure is rounded.
const DailyInterestRate = 0.02 / 30

// Interest returns the simple interest accrued on amount between from and to,
// rounded to the nearest whole currency unit. Both dates are normalized to
// midnight UTC so accrual counts whole calendar days regardless of
// time-of-day. Returns 0 when either date is missing or the window is not
// positive.
func Interest(amount float64, from, to *time.Time) float64 {
	days := DaysBetween(from, to)
	if days <= 0 || amount <= 0 {
		return 0
	}
	return math.Round(amount * DailyInterestRate * float64(days))
}

// DaysBetween returns the whole calendar days from from to to, floored at 0.
// Returns 0 when either date is missing.
func DaysBetween(from, to *time.Time) int {
	if from == nil || to == nil {
		return 0
	}
	f := startOfDayUTC(*from)
	t := startOfDayUTC(*to)
	if !t.After(f) {
		return 0
	}
	return int(math.Floor(t.Sub(f).Hours() / 24))
}

func startOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
