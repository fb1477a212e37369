package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/foodgram/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"email":"alice@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice@example.com", "secret123").Return("jwt-token", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"auth_token":"jwt-token"}`,
		},
		{
			name: "invalid credentials",
			body: `{"email":"alice@example.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice@example.com", "wrong").Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"detail":"unable to log in with provided credentials"}`,
		},
		{
			name: "internal server error",
			body: `{"email":"alice@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice@example.com", "secret123").Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"internal server error"}`,
		},
		{
			name:         "invalid json",
			body:         `not json`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"detail":"invalid request body"}`,
		},
		{
			name:         "missing email",
			body:         `{"password":"secret123"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"detail":"failed on the 'required' rule","field":"email"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			rr := serve(NewLoginHandler(m), http.MethodPost, "/auth/token/login/", "/auth/token/login/", tt.body, nil)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
