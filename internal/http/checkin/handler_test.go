package checkin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gymd/internal/billing"
	"github.com/MrJamesThe3rd/gymd/internal/checkin"
	"github.com/MrJamesThe3rd/gymd/internal/http/middleware"
	"github.com/MrJamesThe3rd/gymd/internal/membership"
)

func newInvoice() *billing.Invoice {
	return &billing.Invoice{
		ID:     uuid.New(),
		Date:   time.Now(),
		Status: billing.StatusOutstanding,
	}
}

func TestHandler_Create(t *testing.T) {
	userID := uuid.New()
	membershipID := uuid.New()

	activeMembership := func() *membership.Membership {
		return &membership.Membership{
			ID:        membershipID,
			UserID:    userID,
			State:     membership.StateActive,
			Credits:   5,
			StartDate: time.Now().AddDate(0, -1, 0),
		}
	}

	type testCase struct {
		name       string
		body       string
		setup      func(repo *checkin.MockRepository, tx *checkin.MockTx)
		wantStatus int
		wantDetail string
	}

	tests := []testCase{
		{
			name: "Success",
			body: fmt.Sprintf(`{"user": %q, "membership": %q}`, userID, membershipID),
			setup: func(repo *checkin.MockRepository, tx *checkin.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().MembershipForUpdate(gomock.Any(), membershipID).Return(activeMembership(), nil)
				tx.EXPECT().UserExists(gomock.Any(), userID).Return(true, nil)
				tx.EXPECT().UpdateCredits(gomock.Any(), membershipID, 4).Return(nil)
				tx.EXPECT().CreateCheckin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *checkin.Checkin) error {
						c.ID = uuid.New()
						c.Timestamp = time.Now()

						return nil
					})
				tx.EXPECT().InvoiceForDate(gomock.Any(), gomock.Any()).Return(newInvoice(), nil)
				tx.EXPECT().CreateLine(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().LinkInvoice(gomock.Any(), membershipID, gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "NoCredits",
			body: fmt.Sprintf(`{"user": %q, "membership": %q}`, userID, membershipID),
			setup: func(repo *checkin.MockRepository, tx *checkin.MockTx) {
				m := activeMembership()
				m.Credits = 0

				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().MembershipForUpdate(gomock.Any(), membershipID).Return(m, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusBadRequest,
			wantDetail: "no credits available",
		},
		{
			name: "CanceledMembership",
			body: fmt.Sprintf(`{"user": %q, "membership": %q}`, userID, membershipID),
			setup: func(repo *checkin.MockRepository, tx *checkin.MockTx) {
				m := activeMembership()
				m.State = membership.StateCanceled

				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().MembershipForUpdate(gomock.Any(), membershipID).Return(m, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusBadRequest,
			wantDetail: "membership is canceled",
		},
		{
			name: "MembershipMissing",
			body: fmt.Sprintf(`{"user": %q, "membership": %q}`, userID, membershipID),
			setup: func(repo *checkin.MockRepository, tx *checkin.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().MembershipForUpdate(gomock.Any(), membershipID).Return(nil, membership.ErrNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusBadRequest,
			wantDetail: "membership not found",
		},
		{
			name:       "MembershipRequired",
			body:       fmt.Sprintf(`{"user": %q}`, userID),
			setup:      func(repo *checkin.MockRepository, tx *checkin.MockTx) {},
			wantStatus: http.StatusBadRequest,
			wantDetail: "membership is required",
		},
		{
			name:       "InvalidBody",
			body:       `{invalid}`,
			setup:      func(repo *checkin.MockRepository, tx *checkin.MockTx) {},
			wantStatus: http.StatusBadRequest,
			wantDetail: "invalid request body",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := checkin.NewMockRepository(ctrl)
			tx := checkin.NewMockTx(ctrl)
			tc.setup(repo, tx)

			h := NewHandler(checkin.NewService(repo))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/checkins", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			h.create(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantDetail != "" {
				var body map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tc.wantDetail, body["detail"])
			}
		})
	}
}

func TestHandler_Create_DefaultsToAuthenticatedUser(t *testing.T) {
	userID := uuid.New()
	membershipID := uuid.New()

	ctrl := gomock.NewController(t)

	repo := checkin.NewMockRepository(ctrl)
	tx := checkin.NewMockTx(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().MembershipForUpdate(gomock.Any(), membershipID).Return(&membership.Membership{
		ID:        membershipID,
		UserID:    userID,
		State:     membership.StateActive,
		Credits:   1,
		StartDate: time.Now().AddDate(0, -1, 0),
	}, nil)
	tx.EXPECT().UserExists(gomock.Any(), userID).Return(true, nil)
	tx.EXPECT().UpdateCredits(gomock.Any(), membershipID, 0).Return(nil)
	tx.EXPECT().CreateCheckin(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().InvoiceForDate(gomock.Any(), gomock.Any()).Return(newInvoice(), nil)
	tx.EXPECT().CreateLine(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().LinkInvoice(gomock.Any(), membershipID, gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	h := NewHandler(checkin.NewService(repo))

	body := fmt.Sprintf(`{"membership": %q}`, membershipID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkins", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, userID))
	rec := httptest.NewRecorder()

	h.create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, userID.String(), resp["user"])
}
