package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/models"
)

// FollowWriteRepository stores follower/author pairs.
type FollowWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFollowWriteRepository(db *sqlx.DB, txGetter TxGetter) *FollowWriteRepository {
	return &FollowWriteRepository{db: db, txGetter: txGetter}
}

// Add subscribes followerID to authorID.
func (r *FollowWriteRepository) Add(ctx context.Context, followerID, authorID int64) error {
	const query = `INSERT INTO follows (follower_id, author_id) VALUES ($1, $2)`
	args := []any{followerID, authorID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, rowsAffected(res), err)

	if err != nil {
		return translate(err, "subscription", authorID)
	}
	return nil
}

// Remove unsubscribes followerID from authorID.
func (r *FollowWriteRepository) Remove(ctx context.Context, followerID, authorID int64) error {
	const query = `DELETE FROM follows WHERE follower_id = $1 AND author_id = $2`
	args := []any{followerID, authorID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	rows := rowsAffected(res)
	logQuery(query, args, rows, err)

	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NewNotFound("subscription", 0)
	}
	return nil
}

// FollowReadRepository lists subscriptions.
type FollowReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFollowReadRepository(db *sqlx.DB, txGetter TxGetter) *FollowReadRepository {
	return &FollowReadRepository{db: db, txGetter: txGetter}
}

// ListAuthors returns one page of the authors followerID follows, ordered by
// author id, and the total number of followed authors.
func (r *FollowReadRepository) ListAuthors(ctx context.Context, followerID int64, page models.Page) ([]models.UserProfile, int, error) {
	const countQuery = `SELECT COUNT(*) FROM follows WHERE follower_id = $1`
	const listQuery = `
		SELECT u.id, u.email, u.username, u.first_name, u.last_name, TRUE AS is_subscribed
		FROM follows f
		JOIN users u ON u.id = f.author_id
		WHERE f.follower_id = $1
		ORDER BY u.id
		LIMIT $2 OFFSET $3
	`

	var total int
	authors := []models.UserProfile{}
	err := inSnapshot(ctx, r.db, r.txGetter, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &total, countQuery, followerID)
		logQuery(countQuery, []any{followerID}, total, err)
		if err != nil {
			return err
		}

		args := []any{followerID, page.Limit, page.Offset}
		err = tx.SelectContext(ctx, &authors, listQuery, args...)
		logQuery(listQuery, args, len(authors), err)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}
