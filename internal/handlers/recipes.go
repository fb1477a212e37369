package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/middlewares"
	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/sbilibin2017/foodgram/internal/permissions"
)

//go:generate mockgen -source=recipes.go -destination=mock_recipes.go -package=handlers

// RecipeLister lists recipes.
type RecipeLister interface {
	List(ctx context.Context, filter models.RecipeFilter) ([]models.RecipeDetail, int, error)
}

// RecipeGetter reads one recipe.
type RecipeGetter interface {
	Get(ctx context.Context, id, viewerID int64) (*models.RecipeDetail, error)
}

// RecipeCreator stores new recipes.
type RecipeCreator interface {
	Create(ctx context.Context, authorID int64, in models.RecipeInput) (*models.RecipeDetail, error)
}

// RecipeUpdater replaces recipe contents.
type RecipeUpdater interface {
	AuthorID(ctx context.Context, id int64) (int64, error)
	Update(ctx context.Context, id, viewerID int64, in models.RecipeInput) (*models.RecipeDetail, error)
}

// RecipeDeleter removes recipes.
type RecipeDeleter interface {
	AuthorID(ctx context.Context, id int64) (int64, error)
	Delete(ctx context.Context, id, viewerID int64) error
}

// NewRecipeListHandler returns a page of recipes, newest first.
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param tags query []string false "Tag slugs, any of" collectionFormat(multi)
// @Param author query int false "Author ID"
// @Param is_favorited query int false "Only favorites of the current user (0/1)"
// @Param is_in_shopping_cart query int false "Only recipes in the current user's cart (0/1)"
// @Success 200 {object} models.PageResponse[models.RecipeDetail]
// @Failure 400 {object} models.ErrorResponse "Invalid filter"
// @Router /recipes/ [get]
func NewRecipeListHandler(svc RecipeLister, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageFromQuery(r, pageSize)
		if err != nil {
			writeError(w, err)
			return
		}

		filter := models.RecipeFilter{
			ViewerID:         viewerID(middlewares.UserFromContext(r.Context())),
			TagSlugs:         r.URL.Query()["tags"],
			IsFavorited:      queryFlag(r, "is_favorited"),
			IsInShoppingCart: queryFlag(r, "is_in_shopping_cart"),
			Page:             page,
		}
		if raw := r.URL.Query().Get("author"); raw != "" {
			author, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || author < 1 {
				writeError(w, apperr.NewValidation("author", "must be a positive integer"))
				return
			}
			filter.AuthorID = author
		}

		recipes, total, err := svc.List(r.Context(), filter)
		if err != nil {
			writeError(w, err)
			return
		}
		if recipes == nil {
			recipes = []models.RecipeDetail{}
		}

		writeJSON(w, http.StatusOK, models.PageResponse[models.RecipeDetail]{Count: total, Results: recipes})
	}
}

// NewRecipeGetHandler returns one recipe.
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} models.RecipeDetail
// @Failure 404 {object} models.ErrorResponse "Recipe not found"
// @Router /recipes/{id}/ [get]
func NewRecipeGetHandler(svc RecipeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		recipe, err := svc.Get(r.Context(), id, viewerID(middlewares.UserFromContext(r.Context())))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, recipe)
	}
}

// NewRecipeCreateHandler creates a recipe authored by the current user.
// @Summary Create recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body models.RecipeRequest true "Recipe"
// @Success 201 {object} models.RecipeDetail
// @Failure 400 {object} models.ErrorResponse "Invalid recipe"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /recipes/ [post]
// @Security BearerAuth
func NewRecipeCreateHandler(svc RecipeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RecipeRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		user := middlewares.UserFromContext(r.Context())
		recipe, err := svc.Create(r.Context(), user.ID, req.Input())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, recipe)
	}
}

// NewRecipeUpdateHandler replaces a recipe. Only the author or an admin may do so.
// @Summary Update recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipe body models.RecipeRequest true "Recipe"
// @Success 200 {object} models.RecipeDetail
// @Failure 400 {object} models.ErrorResponse "Invalid recipe"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Not the author"
// @Failure 404 {object} models.ErrorResponse "Recipe not found"
// @Router /recipes/{id}/ [patch]
// @Security BearerAuth
func NewRecipeUpdateHandler(svc RecipeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		user := middlewares.UserFromContext(r.Context())
		if err := authorize(r, svc.AuthorID, id, user); err != nil {
			writeError(w, err)
			return
		}

		var req models.RecipeRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		recipe, err := svc.Update(r.Context(), id, user.ID, req.Input())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, recipe)
	}
}

// NewRecipeDeleteHandler deletes a recipe. Only the author or an admin may do so.
// @Summary Delete recipe
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204 "Deleted"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Not the author"
// @Failure 404 {object} models.ErrorResponse "Recipe not found"
// @Router /recipes/{id}/ [delete]
// @Security BearerAuth
func NewRecipeDeleteHandler(svc RecipeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		user := middlewares.UserFromContext(r.Context())
		if err := authorize(r, svc.AuthorID, id, user); err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), id, user.ID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// authorize resolves the recipe owner and applies the modify policy.
// A missing recipe is reported before the permission check.
func authorize(
	r *http.Request,
	authorOf func(ctx context.Context, id int64) (int64, error),
	id int64,
	user *models.UserDB,
) error {
	authorID, err := authorOf(r.Context(), id)
	if err != nil {
		return err
	}
	if !permissions.CanModifyRecipe(permissions.Request{Method: r.Method, User: user, AuthorID: authorID}) {
		return &apperr.AuthorizationError{}
	}
	return nil
}
