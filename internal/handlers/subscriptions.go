package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/foodgram/internal/middlewares"
	"github.com/sbilibin2017/foodgram/internal/models"
)

//go:generate mockgen -source=subscriptions.go -destination=mock_subscriptions.go -package=handlers

// Subscriber manages follows of the current user.
type Subscriber interface {
	Subscribe(ctx context.Context, followerID, authorID int64, recipesLimit int) (*models.Subscription, error)
	Unsubscribe(ctx context.Context, followerID, authorID int64) error
}

// SubscriptionLister lists the authors a user follows.
type SubscriptionLister interface {
	Subscriptions(ctx context.Context, followerID int64, page models.Page, recipesLimit int) ([]models.Subscription, int, error)
}

// NewSubscriptionListHandler returns a page of followed authors with their newest recipes.
// @Summary List subscriptions
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param recipes_limit query int false "Recipes per author"
// @Success 200 {object} models.PageResponse[models.Subscription]
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /users/subscriptions/ [get]
// @Security BearerAuth
func NewSubscriptionListHandler(svc SubscriptionLister, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageFromQuery(r, pageSize)
		if err != nil {
			writeError(w, err)
			return
		}
		limit, err := recipesLimit(r)
		if err != nil {
			writeError(w, err)
			return
		}

		user := middlewares.UserFromContext(r.Context())
		subs, total, err := svc.Subscriptions(r.Context(), user.ID, page, limit)
		if err != nil {
			writeError(w, err)
			return
		}
		if subs == nil {
			subs = []models.Subscription{}
		}

		writeJSON(w, http.StatusOK, models.PageResponse[models.Subscription]{Count: total, Results: subs})
	}
}

// NewSubscribeHandler makes the current user follow an author.
// @Summary Subscribe to author
// @Tags users
// @Produce json
// @Param id path int true "Author ID"
// @Param recipes_limit query int false "Recipes in the response"
// @Success 201 {object} models.Subscription
// @Failure 400 {object} models.ErrorResponse "Self-follow or already subscribed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Author not found"
// @Router /users/{id}/subscribe/ [post]
// @Security BearerAuth
func NewSubscribeHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}
		limit, err := recipesLimit(r)
		if err != nil {
			writeError(w, err)
			return
		}

		user := middlewares.UserFromContext(r.Context())
		sub, err := svc.Subscribe(r.Context(), user.ID, authorID, limit)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, sub)
	}
}

// NewUnsubscribeHandler removes a follow of the current user.
// @Summary Unsubscribe from author
// @Tags users
// @Param id path int true "Author ID"
// @Success 204 "Unsubscribed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Author not found or not subscribed"
// @Router /users/{id}/subscribe/ [delete]
// @Security BearerAuth
func NewUnsubscribeHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		user := middlewares.UserFromContext(r.Context())
		if err := svc.Unsubscribe(r.Context(), user.ID, authorID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
