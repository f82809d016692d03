package membership_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/gymd/internal/membership"
)

func TestCanCheckIn(t *testing.T) {
	today := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)
	nextYear := today.AddDate(1, 0, 0)
	lastYear := today.AddDate(-1, 0, 0)

	type testCase struct {
		name    string
		m       membership.Membership
		wantErr error
	}

	tests := []testCase{
		{
			name: "ActiveWithCredits",
			m: membership.Membership{
				State:     membership.StateActive,
				Credits:   5,
				StartDate: lastYear,
				EndDate:   &nextYear,
			},
		},
		{
			name: "OpenEnded",
			m: membership.Membership{
				State:     membership.StateActive,
				Credits:   1,
				StartDate: lastYear,
			},
		},
		{
			name: "Canceled",
			m: membership.Membership{
				State:     membership.StateCanceled,
				Credits:   5,
				StartDate: lastYear,
				EndDate:   &nextYear,
			},
			wantErr: membership.ErrCanceled,
		},
		{
			name: "CanceledWinsOverEverything",
			m: membership.Membership{
				State:     membership.StateCanceled,
				Credits:   0,
				StartDate: lastYear,
				EndDate:   &lastYear,
			},
			wantErr: membership.ErrCanceled,
		},
		{
			name: "NoCredits",
			m: membership.Membership{
				State:     membership.StateActive,
				Credits:   0,
				StartDate: lastYear,
				EndDate:   &nextYear,
			},
			wantErr: membership.ErrNoCredits,
		},
		{
			name: "NegativeCredits",
			m: membership.Membership{
				State:     membership.StateActive,
				Credits:   -1,
				StartDate: lastYear,
			},
			wantErr: membership.ErrNoCredits,
		},
		{
			name: "NoCreditsWinsOverExpiry",
			m: membership.Membership{
				State:     membership.StateActive,
				Credits:   0,
				StartDate: lastYear,
				EndDate:   &lastYear,
			},
			wantErr: membership.ErrNoCredits,
		},
		{
			name: "Expired",
			m: membership.Membership{
				State:     membership.StateActive,
				Credits:   5,
				StartDate: lastYear,
				EndDate:   &yesterday,
			},
			wantErr: membership.ErrExpired,
		},
		{
			name: "EndsTodayStillEligible",
			m: membership.Membership{
				State:     membership.StateActive,
				Credits:   5,
				StartDate: lastYear,
				EndDate:   &today,
			},
		},
		{
			name: "NotStarted",
			m: membership.Membership{
				State:   membership.StateActive,
				Credits: 5, StartDate: tomorrow,
			},
			wantErr: membership.ErrNotStarted,
		},
		{
			name: "StartsTodayEligible",
			m: membership.Membership{
				State:     membership.StateActive,
				Credits:   5,
				StartDate: today,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := membership.CanCheckIn(&tt.m, today)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCanCheckIn_DayGranularity(t *testing.T) {
	// An end date stored at midnight UTC must still admit a check-in later
	// the same day in a western timezone.
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2024, 6, 15, 22, 0, 0, 0, loc)
	end := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	m := membership.Membership{
		State:     membership.StateActive,
		Credits:   1,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	}

	assert.NoError(t, membership.CanCheckIn(&m, now))
}
