package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gymd/internal/billing"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params billing.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *billing.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: billing.CreateParams{
					Date:        time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC),
					Status:      billing.StatusOutstanding,
					Description: "October dues",
					Amount:      decimal.NewFromInt(100),
				},
			},
			setupMock: func(m *billing.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *billing.Invoice) error {
						inv.ID = uuid.New()
						inv.CreatedAt = time.Now()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "InvalidStatus",
			args: args{
				params: billing.CreateParams{
					Date:   time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC),
					Status: billing.Status("overdue"),
				},
			},
			wantErr: true,
		},
		{
			name: "RepoError",
			args: args{
				params: billing.CreateParams{
					Date:   time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC),
					Status: billing.StatusPaid,
				},
			},
			setupMock: func(m *billing.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := billing.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := billing.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_AddLine(t *testing.T) {
	invoiceID := uuid.New()

	type args struct {
		description string
		amount      decimal.Decimal
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *billing.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{description: "Towel rental", amount: decimal.NewFromInt(5)},
			setupMock: func(m *billing.MockRepository) {
				m.EXPECT().
					GetInvoice(gomock.Any(), invoiceID).
					Return(&billing.Invoice{ID: invoiceID, Status: billing.StatusOutstanding}, nil)
				m.EXPECT().
					CreateLine(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, line *billing.InvoiceLine) error {
						line.ID = uuid.New()
						line.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name:    "EmptyDescription",
			args:    args{description: "", amount: decimal.NewFromInt(5)},
			wantErr: billing.ErrInvalidLine,
		},
		{
			name:    "NegativeAmount",
			args:    args{description: "Towel rental", amount: decimal.NewFromInt(-5)},
			wantErr: billing.ErrInvalidLine,
		},
		{
			name: "InvoiceMissing",
			args: args{description: "Towel rental", amount: decimal.NewFromInt(5)},
			setupMock: func(m *billing.MockRepository) {
				m.EXPECT().
					GetInvoice(gomock.Any(), invoiceID).
					Return(nil, billing.ErrNotFound)
			},
			wantErr: billing.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := billing.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := billing.NewService(repo)
			line, err := svc.AddLine(context.Background(), invoiceID, tt.args.description, tt.args.amount)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, line)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, line)
			assert.Equal(t, invoiceID, line.InvoiceID)
			assert.Equal(t, tt.args.description, line.Description)
			assert.True(t, line.Amount.Equal(tt.args.amount))
		})
	}
}

func TestService_AddLine_ZeroAmountAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceID := uuid.New()
	repo := billing.NewMockRepository(ctrl)
	repo.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(&billing.Invoice{ID: invoiceID}, nil)
	repo.EXPECT().CreateLine(gomock.Any(), gomock.Any()).Return(nil)

	svc := billing.NewService(repo)
	line, err := svc.AddLine(context.Background(), invoiceID, "Monthly Membership Fee", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, line.Amount.IsZero())
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := billing.NewMockRepository(ctrl)
	repo.EXPECT().
		ListInvoices(gomock.Any(), billing.ListFilter{}).
		Return([]*billing.Invoice{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	svc := billing.NewService(repo)
	got, err := svc.List(context.Background(), billing.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_Update_RejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := billing.NewMockRepository(ctrl)
	svc := billing.NewService(repo)

	err := svc.Update(context.Background(), &billing.Invoice{ID: uuid.New(), Status: "overdue"})
	assert.Error(t, err)
}
