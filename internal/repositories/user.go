package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/models"
)

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with the given email, credentials included.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, username, first_name, last_name, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email)
	logQuery(query, []any{email}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NewNotFound("user", 0)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, email, username, first_name, last_name, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, id)
	logQuery(query, []any{id}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NewNotFound("user", id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile returns the public profile of id as seen by viewerID (0 for anonymous).
func (r *UserReadRepository) GetProfile(ctx context.Context, id, viewerID int64) (*models.UserProfile, error) {
	const query = `
		SELECT u.id, u.email, u.username, u.first_name, u.last_name,
		       EXISTS (SELECT 1 FROM follows f WHERE f.follower_id = $2 AND f.author_id = u.id) AS is_subscribed
		FROM users u
		WHERE u.id = $1
	`
	args := []any{id, viewerID}

	var profile models.UserProfile
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &profile, query, args...)
	logQuery(query, args, profile, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NewNotFound("user", id)
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns one page of users ordered by id as seen by viewerID, and the
// total number of users.
func (r *UserReadRepository) List(ctx context.Context, viewerID int64, page models.Page) ([]models.UserProfile, int, error) {
	const countQuery = `SELECT COUNT(*) FROM users`
	const listQuery = `
		SELECT u.id, u.email, u.username, u.first_name, u.last_name,
		       EXISTS (SELECT 1 FROM follows f WHERE f.follower_id = $1 AND f.author_id = u.id) AS is_subscribed
		FROM users u
		ORDER BY u.id
		LIMIT $2 OFFSET $3
	`

	var total int
	users := []models.UserProfile{}
	err := inSnapshot(ctx, r.db, r.txGetter, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &total, countQuery)
		logQuery(countQuery, nil, total, err)
		if err != nil {
			return err
		}

		args := []any{viewerID, page.Limit, page.Offset}
		err = tx.SelectContext(ctx, &users, listQuery, args...)
		logQuery(listQuery, args, len(users), err)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a user with the default role and returns its id. A taken
// email or username yields a ConflictError.
func (r *UserWriteRepository) Create(ctx context.Context, user models.NewUser) (int64, error) {
	const query = `
		INSERT INTO users (email, username, first_name, last_name, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`
	args := []any{user.Email, user.Username, user.FirstName, user.LastName, user.PasswordHash, models.RoleUser}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	// Never log the password hash
	logQuery(query, args[:4], id, err)

	if err != nil {
		return 0, translate(err, "user", 0)
	}
	return id, nil
}

// SetPassword replaces the password hash of user id.
func (r *UserWriteRepository) SetPassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $1 WHERE id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, passwordHash, id)
	rows := rowsAffected(res)

	// Never log the password hash
	logQuery(query, []any{id}, rows, err)

	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NewNotFound("user", id)
	}
	return nil
}
