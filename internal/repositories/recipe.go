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

// RecipeWriteRepository persists recipes together with their ingredient
// lines and tag links. Every method is atomic.
type RecipeWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRecipeWriteRepository(db *sqlx.DB, txGetter TxGetter) *RecipeWriteRepository {
	return &RecipeWriteRepository{db: db, txGetter: txGetter}
}

type ingredientRow struct {
	RecipeID     int64 `db:"recipe_id"`
	IngredientID int64 `db:"ingredient_id"`
	Amount       int   `db:"amount"`
}

type tagRow struct {
	RecipeID int64 `db:"recipe_id"`
	TagID    int64 `db:"tag_id"`
}

// Create inserts the recipe, its ingredient lines and its tag links and
// returns the new recipe id.
func (r *RecipeWriteRepository) Create(ctx context.Context, authorID int64, in models.RecipeInput) (int64, error) {
	const query = `
		INSERT INTO recipes (author_id, name, text, cooking_time, image, pub_date)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`
	args := []any{authorID, in.Name, in.Text, in.CookingTime, in.Image}

	var id int64
	err := inTx(ctx, r.db, r.txGetter, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &id, query, args...)
		logQuery(query, args, id, err)
		if err != nil {
			return translate(err, "recipe", authorID)
		}

		if err := insertIngredients(ctx, tx, id, in.Ingredients); err != nil {
			return err
		}
		return insertTags(ctx, tx, id, in.TagIDs)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites the scalar fields and replaces the ingredient lines and
// tag links. The author and publication date never change; an empty image
// keeps the stored one.
func (r *RecipeWriteRepository) Update(ctx context.Context, id int64, in models.RecipeInput) error {
	const query = `
		UPDATE recipes
		SET name = $2,
		    text = $3,
		    cooking_time = $4,
		    image = CASE WHEN $5::text = '' THEN image ELSE $5::text END
		WHERE id = $1
	`
	args := []any{id, in.Name, in.Text, in.CookingTime, in.Image}

	return inTx(ctx, r.db, r.txGetter, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		rows := rowsAffected(res)
		logQuery(query, args, rows, err)
		if err != nil {
			return translate(err, "recipe", id)
		}
		if rows == 0 {
			return apperr.NewNotFound("recipe", id)
		}

		if err := deleteLinks(ctx, tx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, id); err != nil {
			return err
		}
		if err := insertIngredients(ctx, tx, id, in.Ingredients); err != nil {
			return err
		}
		if err := deleteLinks(ctx, tx, `DELETE FROM recipe_tags WHERE recipe_id = $1`, id); err != nil {
			return err
		}
		return insertTags(ctx, tx, id, in.TagIDs)
	})
}

// Delete removes the recipe. Its lines, links and memberships cascade.
func (r *RecipeWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM recipes WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	rows := rowsAffected(res)
	logQuery(query, []any{id}, rows, err)

	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NewNotFound("recipe", id)
	}
	return nil
}

func insertIngredients(ctx context.Context, tx *sqlx.Tx, recipeID int64, lines []models.IngredientLine) error {
	if len(lines) == 0 {
		return nil
	}
	const query = `
		INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount)
		VALUES (:recipe_id, :ingredient_id, :amount)
	`

	rows := make([]ingredientRow, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, ingredientRow{RecipeID: recipeID, IngredientID: l.IngredientID, Amount: l.Amount})
	}

	res, err := tx.NamedExecContext(ctx, query, rows)
	logQuery(query, []any{rows}, rowsAffected(res), err)
	if err != nil {
		return translate(err, "recipe ingredient", recipeID)
	}
	return nil
}

func insertTags(ctx context.Context, tx *sqlx.Tx, recipeID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	const query = `
		INSERT INTO recipe_tags (recipe_id, tag_id)
		VALUES (:recipe_id, :tag_id)
	`

	rows := make([]tagRow, 0, len(tagIDs))
	for _, id := range tagIDs {
		rows = append(rows, tagRow{RecipeID: recipeID, TagID: id})
	}

	res, err := tx.NamedExecContext(ctx, query, rows)
	logQuery(query, []any{rows}, rowsAffected(res), err)
	if err != nil {
		return translate(err, "recipe tag", recipeID)
	}
	return nil
}

func deleteLinks(ctx context.Context, tx *sqlx.Tx, query string, recipeID int64) error {
	res, err := tx.ExecContext(ctx, query, recipeID)
	logQuery(query, []any{recipeID}, rowsAffected(res), err)
	return err
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}

// RecipeReadRepository builds the read projections of recipes.
type RecipeReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRecipeReadRepository(db *sqlx.DB, txGetter TxGetter) *RecipeReadRepository {
	return &RecipeReadRepository{db: db, txGetter: txGetter}
}

// selectRecipeRows expects the viewer id as its first three bind arguments.
const selectRecipeRows = `
	SELECT r.id, r.author_id, r.name, r.text, r.cooking_time, r.image, r.pub_date,
	       u.email AS author_email,
	       u.username AS author_username,
	       u.first_name AS author_first_name,
	       u.last_name AS author_last_name,
	       EXISTS (SELECT 1 FROM follows f WHERE f.follower_id = ? AND f.author_id = r.author_id) AS author_is_subscribed,
	       EXISTS (SELECT 1 FROM favorites fv WHERE fv.user_id = ? AND fv.recipe_id = r.id) AS is_favorited,
	       EXISTS (SELECT 1 FROM shopping_cart sc WHERE sc.user_id = ? AND sc.recipe_id = r.id) AS is_in_shopping_cart
	FROM recipes r
	JOIN users u ON u.id = r.author_id
`

// GetByID returns the recipe as seen by viewerID (0 for anonymous).
// The recipe, its ingredients and its tags are read from one snapshot.
func (r *RecipeReadRepository) GetByID(ctx context.Context, id, viewerID int64) (*models.RecipeDetail, error) {
	query := sqlx.Rebind(sqlx.DOLLAR, selectRecipeRows+` WHERE r.id = ?`)
	args := []any{viewerID, viewerID, viewerID, id}

	var detail models.RecipeDetail
	err := inSnapshot(ctx, r.db, r.txGetter, func(tx *sqlx.Tx) error {
		var row models.RecipeRow
		err := tx.GetContext(ctx, &row, query, args...)
		logQuery(query, args, row.ID, err)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NewNotFound("recipe", id)
		}
		if err != nil {
			return err
		}

		details, err := attachRelations(ctx, tx, []models.RecipeRow{row})
		if err != nil {
			return err
		}
		detail = details[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// List returns one page of recipes matching filter, newest first, and the
// total number of matches.
func (r *RecipeReadRepository) List(ctx context.Context, filter models.RecipeFilter) ([]models.RecipeDetail, int, error) {
	where, whereArgs := recipeFilterClause(filter)

	countQuery, countArgs, err := sqlx.In(`SELECT COUNT(*) FROM recipes r WHERE `+where, whereArgs...)
	if err != nil {
		return nil, 0, err
	}
	countQuery = sqlx.Rebind(sqlx.DOLLAR, countQuery)

	listArgs := append([]any{filter.ViewerID, filter.ViewerID, filter.ViewerID}, whereArgs...)
	listArgs = append(listArgs, filter.Page.Limit, filter.Page.Offset)
	listQuery, listArgs, err := sqlx.In(
		selectRecipeRows+` WHERE `+where+` ORDER BY r.pub_date DESC, r.id DESC LIMIT ? OFFSET ?`,
		listArgs...,
	)
	if err != nil {
		return nil, 0, err
	}
	listQuery = sqlx.Rebind(sqlx.DOLLAR, listQuery)

	var (
		total   int
		details []models.RecipeDetail
	)
	err = inSnapshot(ctx, r.db, r.txGetter, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &total, countQuery, countArgs...)
		logQuery(countQuery, countArgs, total, err)
		if err != nil {
			return err
		}

		rows := []models.RecipeRow{}
		err = tx.SelectContext(ctx, &rows, listQuery, listArgs...)
		logQuery(listQuery, listArgs, len(rows), err)
		if err != nil {
			return err
		}

		details, err = attachRelations(ctx, tx, rows)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

func recipeFilterClause(filter models.RecipeFilter) (string, []any) {
	conds := []string{"TRUE"}
	args := []any{}

	if len(filter.TagSlugs) > 0 {
		conds = append(conds, `EXISTS (
			SELECT 1 FROM recipe_tags rt
			JOIN tags t ON t.id = rt.tag_id
			WHERE rt.recipe_id = r.id AND t.slug IN (?))`)
		args = append(args, filter.TagSlugs)
	}
	if filter.AuthorID != 0 {
		conds = append(conds, `r.author_id = ?`)
		args = append(args, filter.AuthorID)
	}
	if filter.IsFavorited {
		conds = append(conds, `EXISTS (SELECT 1 FROM favorites fv WHERE fv.user_id = ? AND fv.recipe_id = r.id)`)
		args = append(args, filter.ViewerID)
	}
	if filter.IsInShoppingCart {
		conds = append(conds, `EXISTS (SELECT 1 FROM shopping_cart sc WHERE sc.user_id = ? AND sc.recipe_id = r.id)`)
		args = append(args, filter.ViewerID)
	}

	return strings.Join(conds, " AND "), args
}

// attachRelations loads ingredient lines and tags for rows in two queries.
func attachRelations(ctx context.Context, tx *sqlx.Tx, rows []models.RecipeRow) ([]models.RecipeDetail, error) {
	details := make([]models.RecipeDetail, 0, len(rows))
	if len(rows) == 0 {
		return details, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	ingredientQuery, args, err := sqlx.In(`
		SELECT ri.recipe_id, i.id, i.name, i.measurement_unit, ri.amount
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id IN (?)
		ORDER BY ri.recipe_id, i.name, i.id
	`, ids)
	if err != nil {
		return nil, err
	}
	ingredientQuery = sqlx.Rebind(sqlx.DOLLAR, ingredientQuery)

	ingredients := []models.RecipeIngredient{}
	err = tx.SelectContext(ctx, &ingredients, ingredientQuery, args...)
	logQuery(ingredientQuery, args, len(ingredients), err)
	if err != nil {
		return nil, err
	}

	tagQuery, args, err := sqlx.In(`
		SELECT rt.recipe_id, t.id, t.name, t.color, t.slug
		FROM recipe_tags rt
		JOIN tags t ON t.id = rt.tag_id
		WHERE rt.recipe_id IN (?)
		ORDER BY rt.recipe_id, t.id
	`, ids)
	if err != nil {
		return nil, err
	}
	tagQuery = sqlx.Rebind(sqlx.DOLLAR, tagQuery)

	tags := []models.RecipeTag{}
	err = tx.SelectContext(ctx, &tags, tagQuery, args...)
	logQuery(tagQuery, args, len(tags), err)
	if err != nil {
		return nil, err
	}

	ingredientsByRecipe := make(map[int64][]models.RecipeIngredient, len(rows))
	for _, ing := range ingredients {
		ingredientsByRecipe[ing.RecipeID] = append(ingredientsByRecipe[ing.RecipeID], ing)
	}
	tagsByRecipe := make(map[int64][]models.Tag, len(rows))
	for _, tag := range tags {
		tagsByRecipe[tag.RecipeID] = append(tagsByRecipe[tag.RecipeID], tag.Tag)
	}

	for _, row := range rows {
		details = append(details, models.NewRecipeDetail(row, tagsByRecipe[row.ID], ingredientsByRecipe[row.ID]))
	}
	return details, nil
}

// GetAuthorID returns the owner of a recipe.
func (r *RecipeReadRepository) GetAuthorID(ctx context.Context, id int64) (int64, error) {
	const query = `SELECT author_id FROM recipes WHERE id = $1`

	var authorID int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &authorID, query, id)
	logQuery(query, []any{id}, authorID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperr.NewNotFound("recipe", id)
	}
	return authorID, err
}

// GetShort returns the reduced projection of a recipe.
func (r *RecipeReadRepository) GetShort(ctx context.Context, id int64) (*models.RecipeShort, error) {
	const query = `
		SELECT id, name, image, cooking_time
		FROM recipes
		WHERE id = $1
	`

	var recipe models.RecipeShort
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &recipe, query, id)
	logQuery(query, []any{id}, recipe, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NewNotFound("recipe", id)
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

type authorRecipeShort struct {
	AuthorID int64 `db:"author_id"`
	models.RecipeShort
}

// ListShortByAuthors returns up to limit newest recipes per author.
func (r *RecipeReadRepository) ListShortByAuthors(ctx context.Context, authorIDs []int64, limit int) (map[int64][]models.RecipeShort, error) {
	result := make(map[int64][]models.RecipeShort, len(authorIDs))
	if len(authorIDs) == 0 || limit <= 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT author_id, id, name, image, cooking_time
		FROM (
			SELECT r.author_id, r.id, r.name, r.image, r.cooking_time,
			       ROW_NUMBER() OVER (PARTITION BY r.author_id ORDER BY r.pub_date DESC, r.id DESC) AS rn
			FROM recipes r
			WHERE r.author_id IN (?)
		) ranked
		WHERE rn <= ?
		ORDER BY author_id, rn
	`, authorIDs, limit)
	if err != nil {
		return nil, err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	rows := []authorRecipeShort{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, args...)
	logQuery(query, args, len(rows), err)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.AuthorID] = append(result[row.AuthorID], row.RecipeShort)
	}
	return result, nil
}

// CountByAuthors returns the number of recipes per author. Authors without
// recipes are absent from the map.
func (r *RecipeReadRepository) CountByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int, error) {
	result := make(map[int64]int, len(authorIDs))
	if len(authorIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT author_id, COUNT(*) AS total
		FROM recipes
		WHERE author_id IN (?)
		GROUP BY author_id
	`, authorIDs)
	if err != nil {
		return nil, err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	var rows []struct {
		AuthorID int64 `db:"author_id"`
		Total    int   `db:"total"`
	}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, args...)
	logQuery(query, args, len(rows), err)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.AuthorID] = row.Total
	}
	return result, nil
}
