package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/foodgram/internal/models"
)

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=handlers

// TagGetter reads the tag catalog.
type TagGetter interface {
	Tags(ctx context.Context) ([]models.Tag, error)
	Tag(ctx context.Context, id int64) (*models.Tag, error)
}

// IngredientGetter reads the ingredient catalog.
type IngredientGetter interface {
	Ingredients(ctx context.Context, prefix string) ([]models.Ingredient, error)
	Ingredient(ctx context.Context, id int64) (*models.Ingredient, error)
}

// NewTagListHandler lists all tags.
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {array} models.Tag
// @Router /tags/ [get]
func NewTagListHandler(svc TagGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := svc.Tags(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, tags)
	}
}

// NewTagHandler returns one tag.
// @Summary Get tag
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} models.Tag
// @Failure 404 {object} models.ErrorResponse "Tag not found"
// @Router /tags/{id}/ [get]
func NewTagHandler(svc TagGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}
		tag, err := svc.Tag(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, tag)
	}
}

// NewIngredientListHandler lists ingredients, optionally filtered by a case-insensitive name prefix.
// @Summary List ingredients
// @Tags ingredients
// @Produce json
// @Param name query string false "Name prefix"
// @Success 200 {array} models.Ingredient
// @Router /ingredients/ [get]
func NewIngredientListHandler(svc IngredientGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ingredients, err := svc.Ingredients(r.Context(), r.URL.Query().Get("name"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ingredients)
	}
}

// NewIngredientHandler returns one ingredient.
// @Summary Get ingredient
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} models.Ingredient
// @Failure 404 {object} models.ErrorResponse "Ingredient not found"
// @Router /ingredients/{id}/ [get]
func NewIngredientHandler(svc IngredientGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}
		ingredient, err := svc.Ingredient(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ingredient)
	}
}
