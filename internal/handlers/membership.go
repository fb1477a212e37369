package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/foodgram/internal/middlewares"
	"github.com/sbilibin2017/foodgram/internal/models"
)

//go:generate mockgen -source=membership.go -destination=mock_membership.go -package=handlers

// MembershipSetter adds recipes to and removes them from a user's favorites or cart.
type MembershipSetter interface {
	SetMembership(ctx context.Context, kind models.MembershipKind, userID, recipeID int64, desired bool) (*models.RecipeShort, error)
}

// NewMembershipAddHandler adds the recipe to the current user's set of the given kind.
// @Summary Add recipe to favorites or shopping cart
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} models.RecipeShort
// @Failure 400 {object} models.ErrorResponse "Already added"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Recipe not found"
// @Router /recipes/{id}/favorite/ [post]
// @Router /recipes/{id}/shopping_cart/ [post]
// @Security BearerAuth
func NewMembershipAddHandler(svc MembershipSetter, kind models.MembershipKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		user := middlewares.UserFromContext(r.Context())
		recipe, err := svc.SetMembership(r.Context(), kind, user.ID, id, true)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, recipe)
	}
}

// NewMembershipRemoveHandler removes the recipe from the current user's set of the given kind.
// @Summary Remove recipe from favorites or shopping cart
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204 "Removed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Recipe not found or not in the set"
// @Router /recipes/{id}/favorite/ [delete]
// @Router /recipes/{id}/shopping_cart/ [delete]
// @Security BearerAuth
func NewMembershipRemoveHandler(svc MembershipSetter, kind models.MembershipKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		user := middlewares.UserFromContext(r.Context())
		if _, err := svc.SetMembership(r.Context(), kind, user.ID, id, false); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
