package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/models"
)

// MembershipWriteRepository toggles rows of the favorites and shopping cart
// relations. Uniqueness is left to the primary key.
type MembershipWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMembershipWriteRepository(db *sqlx.DB, txGetter TxGetter) *MembershipWriteRepository {
	return &MembershipWriteRepository{db: db, txGetter: txGetter}
}

// Add inserts (userID, recipeID) into the set. A present pair yields a
// ConflictError and a missing recipe a NotFoundError.
func (r *MembershipWriteRepository) Add(ctx context.Context, kind models.MembershipKind, userID, recipeID int64) error {
	query := fmt.Sprintf(`INSERT INTO %s (user_id, recipe_id) VALUES ($1, $2)`, kind.Table())
	args := []any{userID, recipeID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, rowsAffected(res), err)

	if err != nil {
		return translate(err, kind.String(), recipeID)
	}
	return nil
}

// Remove deletes (userID, recipeID) from the set. An absent pair yields a
// NotFoundError.
func (r *MembershipWriteRepository) Remove(ctx context.Context, kind models.MembershipKind, userID, recipeID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND recipe_id = $2`, kind.Table())
	args := []any{userID, recipeID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	rows := rowsAffected(res)
	logQuery(query, args, rows, err)

	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NewNotFound(kind.String(), 0)
	}
	return nil
}
