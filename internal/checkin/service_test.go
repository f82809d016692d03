package checkin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gymd/internal/billing"
	"github.com/MrJamesThe3rd/gymd/internal/checkin"
	"github.com/MrJamesThe3rd/gymd/internal/membership"
)

func activeMembership(credits int) *membership.Membership {
	end := time.Now().AddDate(1, 0, 0)

	return &membership.Membership{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		State:     membership.StateActive,
		Credits:   credits,
		StartDate: time.Now().AddDate(-1, 0, 0),
		EndDate:   &end,
	}
}

func TestService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := checkin.NewMockRepository(ctrl)
	tx := checkin.NewMockTx(ctrl)
	svc := checkin.NewService(repo)

	userID := uuid.New()
	m := activeMembership(2)
	invoice := &billing.Invoice{ID: uuid.New(), Status: billing.StatusOutstanding}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().MembershipForUpdate(gomock.Any(), m.ID).Return(m, nil)
	tx.EXPECT().UserExists(gomock.Any(), userID).Return(true, nil)
	tx.EXPECT().UpdateCredits(gomock.Any(), m.ID, 1).Return(nil)
	tx.EXPECT().
		CreateCheckin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *checkin.Checkin) error {
			c.ID = uuid.New()
			c.Timestamp = time.Now()
			return nil
		})
	tx.EXPECT().InvoiceForDate(gomock.Any(), gomock.Any()).Return(invoice, nil)
	tx.EXPECT().
		CreateLine(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, line *billing.InvoiceLine) error {
			assert.Equal(t, invoice.ID, line.InvoiceID)
			assert.Equal(t, checkin.LineDescription, line.Description)
			assert.True(t, line.Amount.IsZero())
			line.ID = uuid.New()
			return nil
		})
	tx.EXPECT().LinkInvoice(gomock.Any(), m.ID, invoice.ID).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	c, err := svc.Create(context.Background(), userID, m.ID)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, userID, c.UserID)
	assert.Equal(t, m.ID, c.MembershipID)
	assert.NotEmpty(t, c.ID)
	assert.False(t, c.Timestamp.IsZero())
}

func TestService_Create_EligibilityFailures(t *testing.T) {
	canceled := activeMembership(5)
	canceled.State = membership.StateCanceled

	broke := activeMembership(0)

	expired := activeMembership(5)
	past := time.Now().AddDate(0, 0, -2)
	expired.EndDate = &past

	notStarted := activeMembership(5)
	notStarted.StartDate = time.Now().AddDate(0, 1, 0)

	type testCase struct {
		name    string
		m       *membership.Membership
		wantErr error
	}

	tests := []testCase{
		{name: "Canceled", m: canceled, wantErr: membership.ErrCanceled},
		{name: "NoCredits", m: broke, wantErr: membership.ErrNoCredits},
		{name: "Expired", m: expired, wantErr: membership.ErrExpired},
		{name: "NotStarted", m: notStarted, wantErr: membership.ErrNotStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := checkin.NewMockRepository(ctrl)
			tx := checkin.NewMockTx(ctrl)
			svc := checkin.NewService(repo)

			repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
			tx.EXPECT().MembershipForUpdate(gomock.Any(), tt.m.ID).Return(tt.m, nil)
			// Nothing past validation may run; the unit rolls back.
			tx.EXPECT().Rollback().Return(nil)

			c, err := svc.Create(context.Background(), uuid.New(), tt.m.ID)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, c)
		})
	}
}

func TestService_Create_MembershipMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := checkin.NewMockRepository(ctrl)
	tx := checkin.NewMockTx(ctrl)
	svc := checkin.NewService(repo)

	id := uuid.New()
	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().MembershipForUpdate(gomock.Any(), id).Return(nil, membership.ErrNotFound)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Create(context.Background(), uuid.New(), id)
	assert.ErrorIs(t, err, membership.ErrNotFound)
}

func TestService_Create_UserMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := checkin.NewMockRepository(ctrl)
	tx := checkin.NewMockTx(ctrl)
	svc := checkin.NewService(repo)

	userID := uuid.New()
	m := activeMembership(3)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().MembershipForUpdate(gomock.Any(), m.ID).Return(m, nil)
	tx.EXPECT().UserExists(gomock.Any(), userID).Return(false, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Create(context.Background(), userID, m.ID)
	assert.ErrorIs(t, err, checkin.ErrUserNotFound)
}

func TestService_Create_RollsBackOnLineFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := checkin.NewMockRepository(ctrl)
	tx := checkin.NewMockTx(ctrl)
	svc := checkin.NewService(repo)

	userID := uuid.New()
	m := activeMembership(1)
	invoice := &billing.Invoice{ID: uuid.New()}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().MembershipForUpdate(gomock.Any(), m.ID).Return(m, nil)
	tx.EXPECT().UserExists(gomock.Any(), userID).Return(true, nil)
	tx.EXPECT().UpdateCredits(gomock.Any(), m.ID, 0).Return(nil)
	tx.EXPECT().CreateCheckin(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().InvoiceForDate(gomock.Any(), gomock.Any()).Return(invoice, nil)
	tx.EXPECT().CreateLine(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
	// No Commit; only Rollback.
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Create(context.Background(), userID, m.ID)
	assert.Error(t, err)
}

func TestService_Create_CreditsRunOut(t *testing.T) {
	// credits=2: two sequential check-ins succeed, the third fails with the
	// no-credits reason and credits stay at zero.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := checkin.NewMockRepository(ctrl)
	svc := checkin.NewService(repo)

	userID := uuid.New()
	m := activeMembership(2)
	invoice := &billing.Invoice{ID: uuid.New()}

	repo.EXPECT().Begin(gomock.Any()).DoAndReturn(func(context.Context) (checkin.Tx, error) {
		tx := checkin.NewMockTx(ctrl)
		tx.EXPECT().MembershipForUpdate(gomock.Any(), m.ID).DoAndReturn(
			func(context.Context, uuid.UUID) (*membership.Membership, error) {
				snapshot := *m
				return &snapshot, nil
			})

		if m.Credits > 0 {
			tx.EXPECT().UserExists(gomock.Any(), userID).Return(true, nil)
			tx.EXPECT().UpdateCredits(gomock.Any(), m.ID, m.Credits-1).DoAndReturn(
				func(_ context.Context, _ uuid.UUID, credits int) error {
					m.Credits = credits
					return nil
				})
			tx.EXPECT().CreateCheckin(gomock.Any(), gomock.Any()).Return(nil)
			tx.EXPECT().InvoiceForDate(gomock.Any(), gomock.Any()).Return(invoice, nil)
			tx.EXPECT().CreateLine(gomock.Any(), gomock.Any()).Return(nil)
			tx.EXPECT().LinkInvoice(gomock.Any(), m.ID, invoice.ID).Return(nil)
			tx.EXPECT().Commit().Return(nil)
		}

		tx.EXPECT().Rollback().Return(nil)

		return tx, nil
	}).Times(3)

	_, err := svc.Create(context.Background(), userID, m.ID)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), userID, m.ID)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), userID, m.ID)
	assert.ErrorIs(t, err, membership.ErrNoCredits)
	assert.Equal(t, 0, m.Credits)
}
