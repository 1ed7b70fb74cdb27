package loan

import "time"

// DefaultRatePerDay is the fine accrued per whole day overdue, in rupees.
const DefaultRatePerDay int64 = 2

// DefaultPeriod is how long a book may be kept when no due date is given.
const DefaultPeriod = 14 * 24 * time.Hour

// ComputeFine returns the fine owed on a loan due at dueDate when observed
// at asOf. On or before the due date the fine is zero; after it, the fine
// is ratePerDay per whole elapsed day, partial days truncated.
func ComputeFine(dueDate, asOf time.Time, ratePerDay int64) int64 {
	if !asOf.After(dueDate) {
		return 0
	}
	days := int64(asOf.Sub(dueDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days * ratePerDay
}
