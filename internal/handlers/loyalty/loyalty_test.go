package loyalty

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/dto"
	"github.com/GlebRadaev/bonusledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/bonusledger/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*LoyaltyHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string, body []byte) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	return r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(120, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Balance: 120},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(0, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodGet, "/api/user/balance", nil)
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "Default paging",
			target: "/api/user/points/history",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1, 50, 0).Return([]domain.LedgerEntry{
					{ID: 2, Points: -70, Kind: domain.KindOrderSpend, CreatedAt: now},
					{ID: 1, Points: 100, Kind: domain.KindOrderEarn, CreatedAt: now.Add(-time.Hour)},
				}, 30, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "Explicit paging",
			target: "/api/user/points/history?limit=10&offset=20",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1, 10, 20).Return(nil, 30, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:   "Oversized limit falls back to default",
			target: "/api/user/points/history?limit=1000",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1, 50, 0).Return(nil, 30, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:   "Internal server error",
			target: "/api/user/points/history",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1, 50, 0).Return(nil, 0, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			handler.GetHistory(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.HistoryResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body.Transactions, tt.expectedLen)
			}
		})
	}
}

func TestSpendHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful reservation",
			body: `{"points":80}`,
			prepareMock: func() {
				service.EXPECT().Reserve(gomock.Any(), 1, 80, gomock.Any(), true).Return(
					&domain.LedgerEntry{ID: 1, Points: -80, Kind: domain.KindOrderPendingSpend}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"points":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Non-positive amount",
			body: `{"points":0}`,
			prepareMock: func() {
				service.EXPECT().Reserve(gomock.Any(), 1, 0, gomock.Any(), true).
					Return(nil, ledgerservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient balance",
			body: `{"points":500}`,
			prepareMock: func() {
				service.EXPECT().Reserve(gomock.Any(), 1, 500, gomock.Any(), true).
					Return(nil, ledgerservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Internal server error",
			body: `{"points":80}`,
			prepareMock: func() {
				service.EXPECT().Reserve(gomock.Any(), 1, 80, gomock.Any(), true).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/api/user/points/spend", []byte(tt.body))
			w := httptest.NewRecorder()
			handler.Spend(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.SpendResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 80, body.Points)
				assert.NotEmpty(t, body.ProvisionalRef)
			}
		})
	}
}

func TestConfirmHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful confirmation",
			body: `{"provisional_ref":"prov-1","order_id":"10421"}`,
			prepareMock: func() {
				service.EXPECT().Confirm(gomock.Any(), "prov-1", "10421").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Duplicate confirmation is a no-op",
			body: `{"provisional_ref":"prov-1","order_id":"10421"}`,
			prepareMock: func() {
				service.EXPECT().Confirm(gomock.Any(), "prov-1", "10421").
					Return(ledgerservice.ErrReservationNotFound)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing fields",
			body:         `{"provisional_ref":""}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"provisional_ref":"prov-1","order_id":"10421"}`,
			prepareMock: func() {
				service.EXPECT().Confirm(gomock.Any(), "prov-1", "10421").Return(errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/api/user/points/confirm", []byte(tt.body))
			w := httptest.NewRecorder()
			handler.Confirm(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
