package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/foodgram/internal/logger"
)

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor joins the ambient transaction when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// inTx runs fn inside the ambient transaction, or inside a new one that is
// committed when fn succeeds and rolled back otherwise.
func inTx(ctx context.Context, db *sqlx.DB, txGetter TxGetter, fn func(tx *sqlx.Tx) error) (err error) {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return fn(tx)
		}
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
			}
			return
		}
		if err = tx.Commit(); err != nil {
			err = fmt.Errorf("commit transaction: %w", err)
		}
	}()

	return fn(tx)
}

// inSnapshot runs fn in a read-only REPEATABLE READ transaction so all of its
// statements observe one snapshot. Inside an ambient transaction fn runs on
// it instead, so reads see the caller's own uncommitted writes.
func inSnapshot(ctx context.Context, db *sqlx.DB, txGetter TxGetter, fn func(tx *sqlx.Tx) error) error {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return fn(tx)
		}
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query",
		"sql", logger.Query(query),
		"args", args,
		"result", result,
		"error", err,
	)
}
