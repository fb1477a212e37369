package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/logger"
	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/sbilibin2017/foodgram/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// ErrInvalidCredentials is returned when the email or password does not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetProfile(ctx context.Context, id, viewerID int64) (*models.UserProfile, error)
	List(ctx context.Context, viewerID int64, page models.Page) ([]models.UserProfile, int, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user models.NewUser) (int64, error)
	SetPassword(ctx context.Context, id int64, passwordHash string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration, login and profile lookups.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a user and returns its public profile. A taken email or
// username is reported by the store as a ConflictError.
func (svc *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.UserProfile, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validation.Username(req.Username); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := models.NewUser{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hashedPassword),
	}
	id, err := svc.writer.Create(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", req.Username, "err", err)
		return nil, err
	}

	return &models.UserProfile{
		ID:        id,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

// Login authenticates a user by email and returns an access token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	var nf *apperr.NotFoundError
	if errors.As(err, &nf) {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// User returns the full user record, used to resolve the request identity.
func (svc *AuthService) User(ctx context.Context, id int64) (*models.UserDB, error) {
	return svc.reader.GetByID(ctx, id)
}

// Profile returns the public profile of id as seen by viewerID.
func (svc *AuthService) Profile(ctx context.Context, id, viewerID int64) (*models.UserProfile, error) {
	return svc.reader.GetProfile(ctx, id, viewerID)
}

// Users returns one page of all users as seen by viewerID.
func (svc *AuthService) Users(ctx context.Context, viewerID int64, page models.Page) ([]models.UserProfile, int, error) {
	return svc.reader.List(ctx, viewerID, page)
}

// SetPassword replaces the password of user after checking the current one.
// A wrong current password is a ValidationError on current_password.
func (svc *AuthService) SetPassword(ctx context.Context, user *models.UserDB, req models.SetPasswordRequest) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		logger.Log.Errorw("invalid current password", "user_id", user.ID)
		return apperr.NewValidation("current_password", "invalid password")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.SetPassword(ctx, user.ID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "user_id", user.ID, "err", err)
		return err
	}
	return nil
}
