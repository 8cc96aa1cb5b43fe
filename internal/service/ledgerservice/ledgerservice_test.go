package ledgerservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	memrepo "github.com/GlebRadaev/bonusledger/internal/repo/mem-repo"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGetBalance(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name            string
		userID          int
		prepareMock     func()
		expectedBalance int
		expectedError   error
	}{
		{
			name:   "Retrieve balance successfully",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().SumUnexpired(gomock.Any(), 1, gomock.Any()).Return(120, nil)
			},
			expectedBalance: 120,
			expectedError:   nil,
		},
		{
			name:   "Negative raw sum is clamped to zero",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().SumUnexpired(gomock.Any(), 1, gomock.Any()).Return(-20, nil)
			},
			expectedBalance: 0,
			expectedError:   nil,
		},
		{
			name:   "Error retrieving balance",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().SumUnexpired(gomock.Any(), 1, gomock.Any()).Return(0, errors.New("db error"))
			},
			expectedBalance: 0,
			expectedError:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			balance, err := service.GetBalance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestGetHistory(t *testing.T) {
	service, repo := NewMock(t)
	now := time.Now()
	entries := []domain.LedgerEntry{
		{ID: 2, UserID: 1, Points: -70, Kind: domain.KindOrderSpend, CreatedAt: now},
		{ID: 1, UserID: 1, Points: 100, Kind: domain.KindOrderEarn, CreatedAt: now.Add(-time.Hour)},
	}

	tests := []struct {
		name            string
		prepareMock     func()
		expectedEntries []domain.LedgerEntry
		expectedBalance int
		expectedError   error
	}{
		{
			name: "Retrieve history successfully",
			prepareMock: func() {
				repo.EXPECT().SumUnexpired(gomock.Any(), 1, gomock.Any()).Return(30, nil)
				repo.EXPECT().ListForUserPage(gomock.Any(), 1, 50, 0).Return(entries, nil)
			},
			expectedEntries: entries,
			expectedBalance: 30,
			expectedError:   nil,
		},
		{
			name: "Error retrieving balance",
			prepareMock: func() {
				repo.EXPECT().SumUnexpired(gomock.Any(), 1, gomock.Any()).Return(0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name: "Error retrieving page",
			prepareMock: func() {
				repo.EXPECT().SumUnexpired(gomock.Any(), 1, gomock.Any()).Return(30, nil)
				repo.EXPECT().ListForUserPage(gomock.Any(), 1, 50, 0).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			result, balance, err := service.GetHistory(context.Background(), 1, 50, 0)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEntries, result)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestEarn(t *testing.T) {
	service, repo := NewMock(t)
	expiresAt := time.Now().AddDate(0, 0, 365)

	tests := []struct {
		name          string
		amount        int
		kind          domain.TxnKind
		expiresAt     *time.Time
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Cashback earn with expiry",
			amount:    75,
			kind:      domain.KindOrderEarn,
			expiresAt: &expiresAt,
			prepareMock: func() {
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, 75, entry.Points)
						assert.Equal(t, domain.KindOrderEarn, entry.Kind)
						assert.NotNil(t, entry.ExpiresAt)
						entry.ID = 1
						return entry, nil
					})
			},
			expectedError: nil,
		},
		{
			name:          "Zero amount rejected",
			amount:        0,
			kind:          domain.KindPromoWelcome,
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount rejected for non-admin kinds",
			amount:        -50,
			kind:          domain.KindOrderEarn,
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Admin adjustment may be negative",
			amount: -50,
			kind:   domain.KindAdminAdjust,
			prepareMock: func() {
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						entry.ID = 2
						return entry, nil
					})
				repo.EXPECT().SumUnexpired(gomock.Any(), 1, gomock.Any()).Return(-10, nil)
			},
			expectedError: nil,
		},
		{
			name:   "Append error",
			amount: 10,
			kind:   domain.KindPromoBirthday,
			prepareMock: func() {
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			entry, err := service.Earn(context.Background(), 1, tt.amount, tt.kind, tt.expiresAt, nil)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, entry)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, entry)
			}
		})
	}
}

func TestReserve(t *testing.T) {
	service, repo := NewMock(t)

	lockedPassthrough := func() {
		repo.EXPECT().Locked(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ int, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
	}

	tests := []struct {
		name          string
		amount        int
		pending       bool
		prepareMock   func()
		expectedKind  domain.TxnKind
		expectedError error
	}{
		{
			name:    "Successful pending reservation",
			amount:  80,
			pending: true,
			prepareMock: func() {
				lockedPassthrough()
				repo.EXPECT().SumUnexpired(gomock.Any(), 1, gomock.Any()).Return(100, nil)
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, -80, entry.Points)
						assert.Equal(t, domain.KindOrderPendingSpend, entry.Kind)
						entry.ID = 1
						return entry, nil
					})
			},
			expectedKind: domain.KindOrderPendingSpend,
		},
		{
			name:    "Direct spend uses the confirmed kind",
			amount:  100,
			pending: false,
			prepareMock: func() {
				lockedPassthrough()
				repo.EXPECT().SumUnexpired(gomock.Any(), 1, gomock.Any()).Return(100, nil)
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, domain.KindOrderSpend, entry.Kind)
						entry.ID = 2
						return entry, nil
					})
			},
			expectedKind: domain.KindOrderSpend,
		},
		{
			name:          "Zero amount rejected",
			amount:        0,
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount rejected",
			amount:        -5,
			expectedError: ErrInvalidAmount,
		},
		{
			name:    "Insufficient balance",
			amount:  150,
			pending: true,
			prepareMock: func() {
				lockedPassthrough()
				repo.EXPECT().SumUnexpired(gomock.Any(), 1, gomock.Any()).Return(100, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:    "Balance recheck error",
			amount:  10,
			pending: true,
			prepareMock: func() {
				lockedPassthrough()
				repo.EXPECT().SumUnexpired(gomock.Any(), 1, gomock.Any()).Return(0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			entry, err := service.Reserve(context.Background(), 1, tt.amount, "ref-1", tt.pending)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, entry)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, entry)
				assert.Equal(t, tt.expectedKind, entry.Kind)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful confirmation",
			prepareMock: func() {
				repo.EXPECT().ConfirmPending(gomock.Any(), "prov-1", "10421").Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name: "No live reservation",
			prepareMock: func() {
				repo.EXPECT().ConfirmPending(gomock.Any(), "prov-1", "10421").Return(false, nil)
			},
			expectedError: ErrReservationNotFound,
		},
		{
			name: "Database error",
			prepareMock: func() {
				repo.EXPECT().ConfirmPending(gomock.Any(), "prov-1", "10421").Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Confirm(context.Background(), "prov-1", "10421")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRefund(t *testing.T) {
	service, repo := NewMock(t)
	ref := "prov-1"
	stale := domain.LedgerEntry{ID: 5, UserID: 1, Points: -80, Kind: domain.KindOrderPendingSpend, ExternalRef: &ref}

	lockedPassthrough := func() {
		repo.EXPECT().Locked(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ int, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
	}

	tests := []struct {
		name           string
		prepareMock    func()
		expectedPoints int
		expectedError  error
	}{
		{
			name: "Successful refund",
			prepareMock: func() {
				lockedPassthrough()
				repo.EXPECT().MarkSpendFailed(gomock.Any(), int64(5)).Return(true, nil)
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, 80, entry.Points)
						assert.Equal(t, domain.KindSpendRefund, entry.Kind)
						entry.ID = 6
						return entry, nil
					})
			},
			expectedPoints: 80,
		},
		{
			name: "Already confirmed or refunded",
			prepareMock: func() {
				lockedPassthrough()
				repo.EXPECT().MarkSpendFailed(gomock.Any(), int64(5)).Return(false, nil)
			},
			expectedError: ErrReservationNotFound,
		},
		{
			name: "Database error",
			prepareMock: func() {
				lockedPassthrough()
				repo.EXPECT().MarkSpendFailed(gomock.Any(), int64(5)).Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			refund, err := service.Refund(context.Background(), stale)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, refund)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, refund)
				assert.Equal(t, tt.expectedPoints, refund.Points)
			}
		})
	}
}

func TestRefundOrder(t *testing.T) {
	service, repo := NewMock(t)
	ref := "10421"
	spend := domain.LedgerEntry{ID: 7, UserID: 1, Points: -70, Kind: domain.KindOrderSpend, ExternalRef: &ref}

	lockedPassthrough := func() {
		repo.EXPECT().Locked(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ int, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
	}

	tests := []struct {
		name           string
		prepareMock    func()
		expectedPoints int
		expectedError  error
	}{
		{
			name: "Successful order refund",
			prepareMock: func() {
				repo.EXPECT().FindSpendByReference(gomock.Any(), 1, "10421").Return(&spend, nil)
				lockedPassthrough()
				repo.EXPECT().HasRefundForReference(gomock.Any(), 1, "10421").Return(false, nil)
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, 70, entry.Points)
						assert.Equal(t, domain.KindSpendRefund, entry.Kind)
						entry.ID = 8
						return entry, nil
					})
			},
			expectedPoints: 70,
		},
		{
			name: "No spend recorded for order",
			prepareMock: func() {
				repo.EXPECT().FindSpendByReference(gomock.Any(), 1, "10421").Return(nil, nil)
			},
			expectedError: ErrReservationNotFound,
		},
		{
			name: "Refund already issued",
			prepareMock: func() {
				repo.EXPECT().FindSpendByReference(gomock.Any(), 1, "10421").Return(&spend, nil)
				lockedPassthrough()
				repo.EXPECT().HasRefundForReference(gomock.Any(), 1, "10421").Return(true, nil)
			},
			expectedError: ErrReservationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			refund, err := service.RefundOrder(context.Background(), 1, "10421")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, refund)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, refund)
				assert.Equal(t, tt.expectedPoints, refund.Points)
			}
		})
	}
}

// Concurrent reservations against the same balance must never overdraw it,
// regardless of interleaving.
func TestReserveConcurrent(t *testing.T) {
	repo := memrepo.New()
	service := New(repo)
	ctx := context.Background()

	_, err := service.Earn(ctx, 1, 100, domain.KindPromoWelcome, nil, nil)
	assert.NoError(t, err)

	const attempts = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Reserve(ctx, 1, 30, "prov-concurrent", true)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, ErrInsufficientBalance)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, succeeded)

	balance, err := service.GetBalance(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 10, balance)
}
