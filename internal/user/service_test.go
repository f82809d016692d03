package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gymd/internal/auth"
	"github.com/MrJamesThe3rd/gymd/internal/user"
)

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().GetUserByEmail(gomock.Any(), "new@example.com").Return(nil, user.ErrNotFound)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *user.User) error {
			u.ID = uuid.New()
			return nil
		})

	svc := user.NewService(repo)
	u, err := svc.Register(context.Background(), "new@example.com", "New Member", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "hunter2", u.PasswordHash)
	assert.True(t, auth.VerifyPassword(u.PasswordHash, "hunter2"))
}

func TestService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "taken@example.com").
		Return(&user.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	svc := user.NewService(repo)
	_, err := svc.Register(context.Background(), "taken@example.com", "", "pw")
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestService_Authenticate(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	existing := &user.User{ID: uuid.New(), Email: "m@example.com", PasswordHash: hash}

	type testCase struct {
		name      string
		password  string
		setupMock func(m *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			password: "correct-horse",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "m@example.com").Return(existing, nil)
			},
		},
		{
			name:     "WrongPassword",
			password: "battery-staple",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "m@example.com").Return(existing, nil)
			},
			wantErr: user.ErrInvalidCredentials,
		},
		{
			name:     "UnknownEmail",
			password: "anything",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "m@example.com").Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := user.NewService(repo)
			u, err := svc.Authenticate(context.Background(), "m@example.com", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, existing.ID, u.ID)
		})
	}
}

func TestService_EnsureByEmail_CreatesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	existing := &user.User{ID: uuid.New(), Email: "roster@example.com"}

	repo.EXPECT().GetUserByEmail(gomock.Any(), "roster@example.com").Return(nil, user.ErrNotFound)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *user.User) error {
			u.ID = existing.ID
			return nil
		})
	repo.EXPECT().GetUserByEmail(gomock.Any(), "roster@example.com").Return(existing, nil)

	svc := user.NewService(repo)

	first, err := svc.EnsureByEmail(context.Background(), "roster@example.com", "Roster Member")
	require.NoError(t, err)

	second, err := svc.EnsureByEmail(context.Background(), "roster@example.com", "Roster Member")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
