package admin

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/dto"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AdminHandler, *MockBonusService) {
	ctrl := gomock.NewController(t)
	bonusService := NewMockBonusService(ctrl)
	handler := New(bonusService)
	defer ctrl.Finish()
	return handler, bonusService
}

func TestAdjustPointsHandler(t *testing.T) {
	handler, bonusService := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.AdminAdjustResponseDTO
	}{
		{
			name: "Successful credit",
			body: `{"user_id":1,"points":40}`,
			prepareMock: func() {
				bonusService.EXPECT().AdminAdjust(gomock.Any(), 1, 40).
					Return(&domain.LedgerEntry{ID: 11, Points: 40, Kind: domain.KindAdminAdjust}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.AdminAdjustResponseDTO{EntryID: 11, Points: 40},
		},
		{
			name: "Successful debit",
			body: `{"user_id":1,"points":-40}`,
			prepareMock: func() {
				bonusService.EXPECT().AdminAdjust(gomock.Any(), 1, -40).
					Return(&domain.LedgerEntry{ID: 12, Points: -40, Kind: domain.KindAdminAdjust}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.AdminAdjustResponseDTO{EntryID: 12, Points: -40},
		},
		{
			name:         "Invalid request body",
			body:         `{"user_id":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Zero points rejected",
			body:         `{"user_id":1,"points":0}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"user_id":1,"points":40}`,
			prepareMock: func() {
				bonusService.EXPECT().AdminAdjust(gomock.Any(), 1, 40).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/points/adjust", bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()
			handler.AdjustPoints(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AdminAdjustResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGrantWelcomeHandler(t *testing.T) {
	handler, bonusService := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedPoints int
	}{
		{
			name: "Plain signup",
			body: `{"user_id":1}`,
			prepareMock: func() {
				bonusService.EXPECT().WelcomeBonus(gomock.Any(), 1, false).Return(300, nil)
			},
			expectedCode:   http.StatusOK,
			expectedPoints: 300,
		},
		{
			name: "Referral signup",
			body: `{"user_id":1,"via_referral":true}`,
			prepareMock: func() {
				bonusService.EXPECT().WelcomeBonus(gomock.Any(), 1, true).Return(500, nil)
			},
			expectedCode:   http.StatusOK,
			expectedPoints: 500,
		},
		{
			name:         "Missing user id",
			body:         `{"via_referral":true}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"user_id":1}`,
			prepareMock: func() {
				bonusService.EXPECT().WelcomeBonus(gomock.Any(), 1, false).Return(0, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/points/welcome", bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()
			handler.GrantWelcome(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.GrantBonusResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedPoints, body.Points)
			}
		})
	}
}

func TestGrantBirthdayHandler(t *testing.T) {
	handler, bonusService := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedPoints int
	}{
		{
			name: "Successful grant",
			body: `{"user_id":1}`,
			prepareMock: func() {
				bonusService.EXPECT().BirthdayBonus(gomock.Any(), 1).Return(200, nil)
			},
			expectedCode:   http.StatusOK,
			expectedPoints: 200,
		},
		{
			name:         "Invalid request body",
			body:         `{"user_id":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"user_id":1}`,
			prepareMock: func() {
				bonusService.EXPECT().BirthdayBonus(gomock.Any(), 1).Return(0, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/points/birthday", bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()
			handler.GrantBirthday(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.GrantBonusResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedPoints, body.Points)
			}
		})
	}
}
