package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/foodgram/internal/middlewares"
	"github.com/sbilibin2017/foodgram/internal/models"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

// ProfileGetter returns public user profiles.
type ProfileGetter interface {
	Profile(ctx context.Context, id, viewerID int64) (*models.UserProfile, error)
}

// UserLister pages through all users.
type UserLister interface {
	Users(ctx context.Context, viewerID int64, page models.Page) ([]models.UserProfile, int, error)
}

// PasswordSetter changes the password of the authenticated user.
type PasswordSetter interface {
	SetPassword(ctx context.Context, user *models.UserDB, req models.SetPasswordRequest) error
}

// NewMeHandler returns the profile of the authenticated user.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} models.UserProfile
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /users/me/ [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		writeJSON(w, http.StatusOK, models.UserProfile{
			ID:        user.ID,
			Email:     user.Email,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		})
	}
}

// NewUserProfileHandler returns a user profile with the viewer's subscription flag.
// @Summary User profile
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /users/{id}/ [get]
func NewUserProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		profile, err := svc.Profile(r.Context(), id, viewerID(middlewares.UserFromContext(r.Context())))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewUserListHandler returns a page of users with the viewer's subscription flags.
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.PageResponse[models.UserProfile]
// @Failure 400 {object} models.ErrorResponse "Invalid paging parameters"
// @Router /users/ [get]
func NewUserListHandler(svc UserLister, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageFromQuery(r, pageSize)
		if err != nil {
			writeError(w, err)
			return
		}

		users, total, err := svc.Users(r.Context(), viewerID(middlewares.UserFromContext(r.Context())), page)
		if err != nil {
			writeError(w, err)
			return
		}
		if users == nil {
			users = []models.UserProfile{}
		}

		writeJSON(w, http.StatusOK, models.PageResponse[models.UserProfile]{Count: total, Results: users})
	}
}

// NewSetPasswordHandler changes the password of the authenticated user.
// @Summary Change password
// @Tags users
// @Accept json
// @Param setPasswordRequest body models.SetPasswordRequest true "Current and new password"
// @Success 204 "Password changed"
// @Failure 400 {object} models.ErrorResponse "Invalid request or wrong current password"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /users/set_password/ [post]
// @Security BearerAuth
func NewSetPasswordHandler(svc PasswordSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SetPasswordRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		if err := svc.SetPassword(r.Context(), middlewares.UserFromContext(r.Context()), req); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
