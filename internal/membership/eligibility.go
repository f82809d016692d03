package membership

import (
	"errors"
	"time"
)

// Check-in rejection reasons. The messages are surfaced verbatim to API
// clients.
var (
	ErrCanceled   = errors.New("membership is canceled")
	ErrNoCredits  = errors.New("no credits available")
	ErrExpired    = errors.New("membership has expired")
	ErrNotStarted = errors.New("membership has not started")
)

// CanCheckIn reports whether a check-in may proceed for the membership on
// the given day. The first failing rule determines the returned reason:
// canceled, then credits, then expiry, then a start date in the future.
// It is a pure predicate; dates are compared at day granularity.
func CanCheckIn(m *Membership, today time.Time) error {
	day := dateOnly(today)

	if m.State == StateCanceled {
		return ErrCanceled
	}

	if m.Credits <= 0 {
		return ErrNoCredits
	}

	if m.EndDate != nil && dateOnly(*m.EndDate).Before(day) {
		return ErrExpired
	}

	if dateOnly(m.StartDate).After(day) {
		return ErrNotStarted
	}

	return nil
}

// dateOnly normalizes to calendar-date precision so that wall-clock
// location differences between stored dates and "now" cannot shift a day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
