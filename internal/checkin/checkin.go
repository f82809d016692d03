package checkin

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// LineDescription is the fixed description written to the invoice line
// created by every successful check-in.
const LineDescription = "Monthly Membership Fee"

var (
	ErrNotFound     = errors.New("checkin not found")
	ErrUserNotFound = errors.New("user not found")
)

// Checkin records a user's use of a membership at a point in time. The
// timestamp is assigned by the database at insert and never changes.
type Checkin struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	MembershipID uuid.UUID
	Timestamp    time.Time
}
