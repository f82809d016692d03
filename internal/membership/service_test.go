package membership_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gymd/internal/membership"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		params    membership.CreateParams
		setupMock func(m *membership.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: membership.CreateParams{
				UserID:    userID,
				State:     membership.StateActive,
				Credits:   10,
				StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *membership.MockRepository) {
				m.EXPECT().
					CreateMembership(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ms *membership.Membership) error {
						ms.ID = uuid.New()
						ms.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "InvalidState",
			params: membership.CreateParams{
				UserID: userID,
				State:  membership.State("frozen"),
			},
			wantErr: true,
		},
		{
			name: "RepoError",
			params: membership.CreateParams{
				UserID: userID,
				State:  membership.StateActive,
			},
			setupMock: func(m *membership.MockRepository) {
				m.EXPECT().
					CreateMembership(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := membership.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := membership.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, userID, got.UserID)
		})
	}
}

func TestService_List_PassesFilterThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	state := membership.StateActive
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := membership.ListFilter{
		UserID:    &userID,
		State:     &state,
		StartDate: &start,
	}

	repo := membership.NewMockRepository(ctrl)
	repo.EXPECT().
		ListMemberships(gomock.Any(), filter).
		Return([]*membership.Membership{{ID: uuid.New(), UserID: userID}}, nil)

	svc := membership.NewService(repo)
	got, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := membership.NewMockRepository(ctrl)
	repo.EXPECT().GetMembership(gomock.Any(), id).Return(nil, membership.ErrNotFound)

	svc := membership.NewService(repo)
	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, membership.ErrNotFound)
}
