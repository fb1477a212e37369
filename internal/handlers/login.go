package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/sbilibin2017/foodgram/internal/services"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate by email and password and return a token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "Token returned"
// @Failure 400 {object} models.ErrorResponse "Invalid request body or credentials"
// @Router /auth/token/login/ [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Detail: "unable to log in with provided credentials"})
			return
		}
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.LoginResponse{Token: token})
	}
}
