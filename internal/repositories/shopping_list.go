package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/models"
)

// ShoppingListReadRepository sums ingredient amounts over a shopping cart.
type ShoppingListReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewShoppingListReadRepository(db *sqlx.DB, txGetter TxGetter) *ShoppingListReadRepository {
	return &ShoppingListReadRepository{db: db, txGetter: txGetter}
}

// Aggregate returns one line per (name, measurement unit) across the recipes
// in the user's cart, ordered byte-wise by name then unit. An empty cart is
// reported as EmptyCartError. Both statements share one snapshot.
func (r *ShoppingListReadRepository) Aggregate(ctx context.Context, userID int64) ([]models.ShoppingListItem, error) {
	const countQuery = `SELECT COUNT(*) FROM shopping_cart WHERE user_id = $1`
	const aggregateQuery = `
		SELECT i.name, i.measurement_unit, SUM(ri.amount) AS total_amount
		FROM shopping_cart sc
		JOIN recipe_ingredients ri ON ri.recipe_id = sc.recipe_id
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE sc.user_id = $1
		GROUP BY i.name, i.measurement_unit
		ORDER BY i.name COLLATE "C", i.measurement_unit COLLATE "C"
	`

	items := []models.ShoppingListItem{}
	err := inSnapshot(ctx, r.db, r.txGetter, func(tx *sqlx.Tx) error {
		var count int
		err := tx.GetContext(ctx, &count, countQuery, userID)
		logQuery(countQuery, []any{userID}, count, err)
		if err != nil {
			return err
		}
		if count == 0 {
			return &apperr.EmptyCartError{UserID: userID}
		}

		err = tx.SelectContext(ctx, &items, aggregateQuery, userID)
		logQuery(aggregateQuery, []any{userID}, len(items), err)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
