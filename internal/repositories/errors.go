package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/foodgram/internal/apperr"
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// translate maps constraint violations to domain errors. resource names the
// row being written; id is the referenced entity for foreign key failures.
func translate(err error, resource string, id int64) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolation:
		return apperr.NewConflict(resource, conflictMessage(resource, pgErr))
	case foreignKeyViolation:
		return apperr.NewNotFound(referencedResource(pgErr), id)
	case checkViolation:
		return &apperr.ValidationError{Field: pgErr.ColumnName, Message: pgErr.ConstraintName + " violated"}
	}
	return err
}

func conflictMessage(resource string, pgErr *pgconn.PgError) string {
	switch resource {
	case "favorite":
		return "recipe is already in favorites"
	case "shopping_cart":
		return "recipe is already in the shopping cart"
	case "subscription":
		return "already subscribed to this author"
	case "user":
		if pgErr.ConstraintName == "users_email_key" {
			return "a user with this email already exists"
		}
		return "a user with this username already exists"
	}
	return resource + " already exists"
}

func referencedResource(pgErr *pgconn.PgError) string {
	switch pgErr.ConstraintName {
	case "follows_author_id_fkey", "follows_follower_id_fkey",
		"favorites_user_id_fkey", "shopping_cart_user_id_fkey", "recipes_author_id_fkey":
		return "user"
	case "recipe_ingredients_ingredient_id_fkey":
		return "ingredient"
	case "recipe_tags_tag_id_fkey":
		return "tag"
	}
	return "recipe"
}
