package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/models"
)

// IngredientReadRepository reads the ingredient catalog.
type IngredientReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewIngredientReadRepository(db *sqlx.DB, txGetter TxGetter) *IngredientReadRepository {
	return &IngredientReadRepository{db: db, txGetter: txGetter}
}

// List returns ingredients whose name starts with prefix, case-insensitively.
// An empty prefix returns the whole catalog.
func (r *IngredientReadRepository) List(ctx context.Context, prefix string) ([]models.Ingredient, error) {
	const query = `
		SELECT id, name, measurement_unit
		FROM ingredients
		WHERE name ILIKE $1 ESCAPE '\'
		ORDER BY name, id
	`
	pattern := escapeLike(prefix) + "%"

	ingredients := []models.Ingredient{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ingredients, query, pattern)
	logQuery(query, []any{pattern}, len(ingredients), err)

	return ingredients, err
}

// GetByID returns one ingredient or a NotFoundError.
func (r *IngredientReadRepository) GetByID(ctx context.Context, id int64) (*models.Ingredient, error) {
	const query = `
		SELECT id, name, measurement_unit
		FROM ingredients
		WHERE id = $1
	`

	var ingredient models.Ingredient
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &ingredient, query, id)
	logQuery(query, []any{id}, ingredient, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NewNotFound("ingredient", id)
	}
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// ExistingIDs returns the subset of ids present in the catalog.
func (r *IngredientReadRepository) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}

	query, args, err := sqlx.In(`SELECT id FROM ingredients WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	found := []int64{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &found, query, args...)
	logQuery(query, args, found, err)

	return found, err
}

// TagReadRepository reads the tag catalog from PostgreSQL.
type TagReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTagReadRepository(db *sqlx.DB, txGetter TxGetter) *TagReadRepository {
	return &TagReadRepository{db: db, txGetter: txGetter}
}

// List returns all tags ordered by id.
func (r *TagReadRepository) List(ctx context.Context) ([]models.Tag, error) {
	const query = `
		SELECT id, name, color, slug
		FROM tags
		ORDER BY id
	`

	tags := []models.Tag{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &tags, query)
	logQuery(query, nil, len(tags), err)

	return tags, err
}

// GetByID returns one tag or a NotFoundError.
func (r *TagReadRepository) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	const query = `
		SELECT id, name, color, slug
		FROM tags
		WHERE id = $1
	`

	var tag models.Tag
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &tag, query, id)
	logQuery(query, []any{id}, tag, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NewNotFound("tag", id)
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
