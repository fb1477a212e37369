package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/jwt"
	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.UserDB{ID: 7, Username: "alice"}

	tests := []struct {
		name             string
		mockSetup        func(tok *MockTokener, users *MockUserGetter)
		expectedStatus   int
		expectNextCalled bool
		expectedUser     *models.UserDB
	}{
		{
			name: "Anonymous",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrNoAuthHeader)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name: "MalformedHeader",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrInvalidAuthHeader)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, jwt.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "DeletedUser",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{UserID: 7}, nil)
				users.EXPECT().User(gomock.Any(), int64(7)).
					Return(nil, apperr.NewNotFound("user", 7))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "StorageFailure",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{UserID: 7}, nil)
				users.EXPECT().User(gomock.Any(), int64(7)).
					Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "ValidToken",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{UserID: 7}, nil)
				users.EXPECT().User(gomock.Any(), int64(7)).
					Return(alice, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
			expectedUser:     alice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockUsers := NewMockUserGetter(ctrl)
			tt.mockSetup(mockTokener, mockUsers)

			nextCalled := false
			var seen *models.UserDB
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				seen = UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockUsers)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			assert.Equal(t, tt.expectedUser, seen)
			if rr.Code == http.StatusUnauthorized {
				assert.Contains(t, rr.Body.String(), `"detail"`)
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireAuth(next)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"detail":"authentication credentials were not provided"}`, rr.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(WithUser(req.Context(), &models.UserDB{ID: 1}))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
