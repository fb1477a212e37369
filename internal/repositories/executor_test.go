package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(db, "pgx"), mock
}

func TestInTx_CommitAndRollback(t *testing.T) {
	ctx := context.Background()

	t.Run("commit on success", func(t *testing.T) {
		db, mock := newMockDB(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := inTx(ctx, db, nil, func(tx *sqlx.Tx) error { return nil })
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		db, mock := newMockDB(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := inTx(ctx, db, nil, func(tx *sqlx.Tx) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on panic", func(t *testing.T) {
		db, mock := newMockDB(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = inTx(ctx, db, nil, func(tx *sqlx.Tx) error { panic("boom") })
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("joins ambient transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		defer db.Close()

		mock.ExpectBegin()
		ambient, err := db.Beginx()
		require.NoError(t, err)

		var got *sqlx.Tx
		err = inTx(ctx, db, func(context.Context) *sqlx.Tx { return ambient }, func(tx *sqlx.Tx) error {
			got = tx
			return nil
		})
		assert.NoError(t, err)
		assert.Same(t, ambient, got)
		assert.NoError(t, mock.ExpectationsWereMet(), "no commit of an ambient transaction")
	})
}

func TestReadRepositories_JoinAmbientTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	// The request transaction holds the only connection.
	db.SetMaxOpenConns(1)

	mock.ExpectBegin()
	ambient, err := db.Beginx()
	require.NoError(t, err)
	txGetter := func(context.Context) *sqlx.Tx { return ambient }

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	mock.ExpectQuery(`SELECT id FROM ingredients WHERE id IN`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	found, err := NewIngredientReadRepository(db, txGetter).ExistingIDs(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, found)

	mock.ExpectQuery(`FROM tags`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "slug"}).AddRow(int64(1), "Breakfast", "#E26C2D", "breakfast"))
	tags, err := NewTagReadRepository(db, txGetter).List(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	mock.ExpectQuery(`FROM users u`).
		WithArgs(int64(2), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "username", "first_name", "last_name", "is_subscribed"}).
			AddRow(int64(2), "bob@example.com", "bob", "Bob", "Smith", true))
	profile, err := NewUserReadRepository(db, txGetter).GetProfile(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, profile.IsSubscribed)

	mock.ExpectQuery(`SELECT author_id, COUNT\(\*\) AS total`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"author_id", "total"}).AddRow(int64(2), 3))
	counts, err := NewRecipeReadRepository(db, txGetter).CountByAuthors(ctx, []int64{2})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{2: 3}, counts)

	mock.ExpectRollback()
	require.NoError(t, ambient.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeWriteRepository_CreateRollsBackOnLineFailure(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO recipes`).
		WithArgs(int64(1), "Soup", "Boil", 30, "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectExec(`INSERT INTO recipe_ingredients`).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolation, ConstraintName: "recipe_ingredients_ingredient_id_fkey"})
	mock.ExpectRollback()

	repo := NewRecipeWriteRepository(db, nil)
	_, err := repo.Create(context.Background(), 1, models.RecipeInput{
		Name: "Soup", Text: "Boil", CookingTime: 30,
		Ingredients: []models.IngredientLine{{IngredientID: 404, Amount: 1}},
	})

	var nf *apperr.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "ingredient", nf.Resource)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslate(t *testing.T) {
	var conflict *apperr.ConflictError
	err := translate(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"}, "user", 0)
	require.True(t, errors.As(err, &conflict))
	assert.Contains(t, conflict.Message, "email")

	var verr *apperr.ValidationError
	err = translate(&pgconn.PgError{Code: checkViolation, ConstraintName: "follows_no_self_follow"}, "subscription", 1)
	assert.True(t, errors.As(err, &verr))

	plain := errors.New("connection reset")
	assert.Same(t, plain, translate(plain, "recipe", 1))
}
