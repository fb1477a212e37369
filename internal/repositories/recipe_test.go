package repositories

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineSet(lines []models.RecipeIngredient) map[int64]int {
	set := make(map[int64]int, len(lines))
	for _, l := range lines {
		set[l.ID] = l.Amount
	}
	return set
}

func inputSet(lines []models.IngredientLine) map[int64]int {
	set := make(map[int64]int, len(lines))
	for _, l := range lines {
		set[l.IngredientID] = l.Amount
	}
	return set
}

func tagIDs(tags []models.Tag) []int64 {
	ids := make([]int64, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func TestRecipeRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	author := insertUser(t, db, "author")
	viewer := insertUser(t, db, "viewer")
	flour := insertIngredient(t, db, "flour", "g")
	sugar := insertIngredient(t, db, "sugar", "g")
	milk := insertIngredient(t, db, "milk", "ml")
	breakfast := insertTag(t, db, "Breakfast", "#E26C2D", "breakfast")
	dinner := insertTag(t, db, "Dinner", "#49B64E", "dinner")

	writer := NewRecipeWriteRepository(db, nil)
	reader := NewRecipeReadRepository(db, nil)

	input := models.RecipeInput{
		Name:        "Pancakes",
		Text:        "Mix and fry",
		CookingTime: 20,
		Image:       "recipes/images/pancakes.png",
		TagIDs:      []int64{breakfast},
		Ingredients: []models.IngredientLine{{IngredientID: flour, Amount: 200}, {IngredientID: milk, Amount: 300}},
	}

	var recipeID int64

	t.Run("create round-trip", func(t *testing.T) {
		var err error
		recipeID, err = writer.Create(ctx, author, input)
		require.NoError(t, err)
		assert.NotZero(t, recipeID)

		got, err := reader.GetByID(ctx, recipeID, 0)
		require.NoError(t, err)
		assert.Equal(t, inputSet(input.Ingredients), lineSet(got.Ingredients))
		assert.Equal(t, []int64{breakfast}, tagIDs(got.Tags))
		assert.Equal(t, author, got.Author.ID)
		assert.Equal(t, "author", got.Author.Username)
		assert.False(t, got.IsFavorited)
		assert.False(t, got.IsInShoppingCart)
		assert.False(t, got.PubDate.IsZero())
	})

	t.Run("update replaces lines and tags", func(t *testing.T) {
		before, err := reader.GetByID(ctx, recipeID, 0)
		require.NoError(t, err)

		updated := models.RecipeInput{
			Name:        "Sweet pancakes",
			Text:        "Mix, sweeten and fry",
			CookingTime: 25,
			TagIDs:      []int64{breakfast, dinner},
			Ingredients: []models.IngredientLine{{IngredientID: flour, Amount: 250}, {IngredientID: sugar, Amount: 50}},
		}
		require.NoError(t, writer.Update(ctx, recipeID, updated))

		got, err := reader.GetByID(ctx, recipeID, 0)
		require.NoError(t, err)
		assert.Equal(t, inputSet(updated.Ingredients), lineSet(got.Ingredients))
		assert.Equal(t, []int64{breakfast, dinner}, tagIDs(got.Tags))
		assert.Equal(t, "Sweet pancakes", got.Name)
		assert.Equal(t, 25, got.CookingTime)
		assert.Equal(t, input.Image, got.Image, "empty image keeps the stored one")
		assert.True(t, before.PubDate.Equal(got.PubDate), "pub_date is immutable")
		assert.Equal(t, author, got.Author.ID)
	})

	t.Run("failed create leaves nothing behind", func(t *testing.T) {
		var before int
		require.NoError(t, db.Get(&before, `SELECT COUNT(*) FROM recipes`))

		bad := input
		bad.TagIDs = []int64{dinner, 9999}
		_, err := writer.Create(ctx, author, bad)

		var nf *apperr.NotFoundError
		require.True(t, errors.As(err, &nf), "got %v", err)
		assert.Equal(t, "tag", nf.Resource)

		var after int
		require.NoError(t, db.Get(&after, `SELECT COUNT(*) FROM recipes`))
		assert.Equal(t, before, after)
	})

	t.Run("failed update keeps previous lines", func(t *testing.T) {
		before, err := reader.GetByID(ctx, recipeID, 0)
		require.NoError(t, err)

		bad := input
		bad.Ingredients = []models.IngredientLine{{IngredientID: 9999, Amount: 1}}
		err = writer.Update(ctx, recipeID, bad)
		assert.Error(t, err)

		after, err := reader.GetByID(ctx, recipeID, 0)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("viewer flags", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO favorites (user_id, recipe_id) VALUES ($1, $2)`, viewer, recipeID)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO follows (follower_id, author_id) VALUES ($1, $2)`, viewer, author)
		require.NoError(t, err)

		got, err := reader.GetByID(ctx, recipeID, viewer)
		require.NoError(t, err)
		assert.True(t, got.IsFavorited)
		assert.False(t, got.IsInShoppingCart)
		assert.True(t, got.Author.IsSubscribed)

		anon, err := reader.GetByID(ctx, recipeID, 0)
		require.NoError(t, err)
		assert.False(t, anon.IsFavorited)
		assert.False(t, anon.Author.IsSubscribed)
	})

	t.Run("list filters", func(t *testing.T) {
		second, err := writer.Create(ctx, viewer, models.RecipeInput{
			Name: "Soup", Text: "Boil", CookingTime: 40,
			TagIDs:      []int64{dinner},
			Ingredients: []models.IngredientLine{{IngredientID: milk, Amount: 500}},
		})
		require.NoError(t, err)

		all, total, err := reader.List(ctx, models.RecipeFilter{ViewerID: viewer, Page: models.NewPage(1, 10)})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, all, 2)
		assert.Equal(t, second, all[0].ID, "newest first")

		byTag, total, err := reader.List(ctx, models.RecipeFilter{TagSlugs: []string{"breakfast"}, Page: models.NewPage(1, 10)})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, recipeID, byTag[0].ID)

		byAuthor, total, err := reader.List(ctx, models.RecipeFilter{AuthorID: viewer, Page: models.NewPage(1, 10)})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, second, byAuthor[0].ID)

		favorites, total, err := reader.List(ctx, models.RecipeFilter{ViewerID: viewer, IsFavorited: true, Page: models.NewPage(1, 10)})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, recipeID, favorites[0].ID)
		assert.True(t, favorites[0].IsFavorited)

		page2, total, err := reader.List(ctx, models.RecipeFilter{Page: models.NewPage(2, 1)})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, page2, 1)
		assert.Equal(t, recipeID, page2[0].ID)
	})

	t.Run("author projections", func(t *testing.T) {
		authorID, err := reader.GetAuthorID(ctx, recipeID)
		require.NoError(t, err)
		assert.Equal(t, author, authorID)

		short, err := reader.GetShort(ctx, recipeID)
		require.NoError(t, err)
		assert.Equal(t, "Sweet pancakes", short.Name)

		recipes, err := reader.ListShortByAuthors(ctx, []int64{author, viewer}, 1)
		require.NoError(t, err)
		assert.Len(t, recipes[author], 1)
		assert.Len(t, recipes[viewer], 1)

		none, err := reader.ListShortByAuthors(ctx, []int64{author}, 0)
		require.NoError(t, err)
		assert.Empty(t, none)

		counts, err := reader.CountByAuthors(ctx, []int64{author, viewer, 12345})
		require.NoError(t, err)
		assert.Equal(t, map[int64]int{author: 1, viewer: 1}, counts)
	})

	t.Run("missing recipe", func(t *testing.T) {
		var nf *apperr.NotFoundError

		_, err := reader.GetByID(ctx, 9999, 0)
		assert.True(t, errors.As(err, &nf))

		_, err = reader.GetAuthorID(ctx, 9999)
		assert.True(t, errors.As(err, &nf))

		err = writer.Update(ctx, 9999, input)
		assert.True(t, errors.As(err, &nf))

		err = writer.Delete(ctx, 9999)
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("delete cascades", func(t *testing.T) {
		require.NoError(t, writer.Delete(ctx, recipeID))

		var lines, favorites int
		require.NoError(t, db.Get(&lines, `SELECT COUNT(*) FROM recipe_ingredients WHERE recipe_id = $1`, recipeID))
		require.NoError(t, db.Get(&favorites, `SELECT COUNT(*) FROM favorites WHERE recipe_id = $1`, recipeID))
		assert.Zero(t, lines)
		assert.Zero(t, favorites)
	})
}
