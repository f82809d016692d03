package membership

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// State represents the lifecycle state of a membership.
type State string

const (
	StateActive   State = "active"
	StateCanceled State = "canceled"
)

func (s State) Valid() bool {
	return s == StateActive || s == StateCanceled
}

var ErrNotFound = errors.New("membership not found")

// Membership is a user's subscription record carrying a credit balance and
// a validity window. EndDate nil means open-ended.
type Membership struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	State     State
	Credits   int
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
}
