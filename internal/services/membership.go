package services

import (
	"context"

	"github.com/sbilibin2017/foodgram/internal/logger"
	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/sbilibin2017/foodgram/internal/validation"
)

//go:generate mockgen -source=membership.go -destination=mock_membership.go -package=services

// MembershipWriter toggles favorites and shopping cart rows.
type MembershipWriter interface {
	Add(ctx context.Context, kind models.MembershipKind, userID, recipeID int64) error
	Remove(ctx context.Context, kind models.MembershipKind, userID, recipeID int64) error
}

// RecipeShortReader reads reduced recipe projections.
type RecipeShortReader interface {
	GetShort(ctx context.Context, id int64) (*models.RecipeShort, error)
	ListShortByAuthors(ctx context.Context, authorIDs []int64, limit int) (map[int64][]models.RecipeShort, error)
	CountByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int, error)
}

// FollowWriter stores subscriptions.
type FollowWriter interface {
	Add(ctx context.Context, followerID, authorID int64) error
	Remove(ctx context.Context, followerID, authorID int64) error
}

// FollowReader lists subscriptions.
type FollowReader interface {
	ListAuthors(ctx context.Context, followerID int64, page models.Page) ([]models.UserProfile, int, error)
}

// ProfileReader reads public user profiles.
type ProfileReader interface {
	GetProfile(ctx context.Context, id, viewerID int64) (*models.UserProfile, error)
}

var membershipEvents = map[models.MembershipKind][2]string{
	models.Favorite:     {models.EventFavoriteRemoved, models.EventFavoriteAdded},
	models.ShoppingCart: {models.EventShoppingCartRemoved, models.EventShoppingCartAdded},
}

// MembershipService manages the favorites, shopping cart and follow sets.
type MembershipService struct {
	memberships  MembershipWriter
	recipes      RecipeShortReader
	follows      FollowWriter
	followReader FollowReader
	profiles     ProfileReader
	events       Publisher
	recipesLimit int
}

// NewMembershipService creates a MembershipService. recipesLimit is the
// default number of recipes embedded per followed author.
func NewMembershipService(
	memberships MembershipWriter,
	recipes RecipeShortReader,
	follows FollowWriter,
	followReader FollowReader,
	profiles ProfileReader,
	events Publisher,
	recipesLimit int,
) *MembershipService {
	return &MembershipService{
		memberships:  memberships,
		recipes:      recipes,
		follows:      follows,
		followReader: followReader,
		profiles:     profiles,
		events:       events,
		recipesLimit: recipesLimit,
	}
}

// SetMembership makes the presence of (userID, recipeID) in the kind set
// equal to desired. Adding a present pair is a ConflictError, removing an
// absent one a NotFoundError, and a missing recipe a NotFoundError either way.
// On add the reduced recipe projection is returned.
func (s *MembershipService) SetMembership(ctx context.Context, kind models.MembershipKind, userID, recipeID int64, desired bool) (*models.RecipeShort, error) {
	recipe, err := s.recipes.GetShort(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if desired {
		err = s.memberships.Add(ctx, kind, userID, recipeID)
	} else {
		err = s.memberships.Remove(ctx, kind, userID, recipeID)
	}
	if err != nil {
		logger.Log.Errorw("failed to change membership", "kind", kind.String(), "user_id", userID, "recipe_id", recipeID, "desired", desired, "error", err)
		return nil, err
	}

	eventType := membershipEvents[kind][0]
	if desired {
		eventType = membershipEvents[kind][1]
	}
	s.events.Publish(ctx, models.Event{Type: eventType, UserID: userID, RecipeID: recipeID})

	if !desired {
		return nil, nil
	}
	return recipe, nil
}

// AddFavorite adds the recipe to the user's favorites.
func (s *MembershipService) AddFavorite(ctx context.Context, userID, recipeID int64) (*models.RecipeShort, error) {
	return s.SetMembership(ctx, models.Favorite, userID, recipeID, true)
}

// RemoveFavorite removes the recipe from the user's favorites.
func (s *MembershipService) RemoveFavorite(ctx context.Context, userID, recipeID int64) error {
	_, err := s.SetMembership(ctx, models.Favorite, userID, recipeID, false)
	return err
}

// AddToCart adds the recipe to the user's shopping cart.
func (s *MembershipService) AddToCart(ctx context.Context, userID, recipeID int64) (*models.RecipeShort, error) {
	return s.SetMembership(ctx, models.ShoppingCart, userID, recipeID, true)
}

// RemoveFromCart removes the recipe from the user's shopping cart.
func (s *MembershipService) RemoveFromCart(ctx context.Context, userID, recipeID int64) error {
	_, err := s.SetMembership(ctx, models.ShoppingCart, userID, recipeID, false)
	return err
}

// Subscribe makes followerID follow authorID and returns the author with up
// to recipesLimit newest recipes. A negative limit selects the default.
func (s *MembershipService) Subscribe(ctx context.Context, followerID, authorID int64, recipesLimit int) (*models.Subscription, error) {
	if err := validation.SelfFollow(followerID, authorID); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetProfile(ctx, authorID, followerID)
	if err != nil {
		return nil, err
	}

	if err := s.follows.Add(ctx, followerID, authorID); err != nil {
		logger.Log.Errorw("failed to subscribe", "follower_id", followerID, "author_id", authorID, "error", err)
		return nil, err
	}

	s.events.Publish(ctx, models.Event{Type: models.EventSubscriptionAdded, UserID: followerID, AuthorID: authorID})

	profile.IsSubscribed = true
	subs, err := s.withRecipes(ctx, []models.UserProfile{*profile}, recipesLimit)
	if err != nil {
		return nil, err
	}
	return &subs[0], nil
}

// Unsubscribe removes the follow of authorID by followerID.
func (s *MembershipService) Unsubscribe(ctx context.Context, followerID, authorID int64) error {
	if _, err := s.profiles.GetProfile(ctx, authorID, followerID); err != nil {
		return err
	}

	if err := s.follows.Remove(ctx, followerID, authorID); err != nil {
		logger.Log.Errorw("failed to unsubscribe", "follower_id", followerID, "author_id", authorID, "error", err)
		return err
	}

	s.events.Publish(ctx, models.Event{Type: models.EventSubscriptionRemoved, UserID: followerID, AuthorID: authorID})
	return nil
}

// Subscriptions returns one page of the authors followerID follows and
// their total number.
func (s *MembershipService) Subscriptions(ctx context.Context, followerID int64, page models.Page, recipesLimit int) ([]models.Subscription, int, error) {
	authors, total, err := s.followReader.ListAuthors(ctx, followerID, page)
	if err != nil {
		logger.Log.Errorw("failed to list subscriptions", "follower_id", followerID, "error", err)
		return nil, 0, err
	}

	subs, err := s.withRecipes(ctx, authors, recipesLimit)
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (s *MembershipService) withRecipes(ctx context.Context, authors []models.UserProfile, recipesLimit int) ([]models.Subscription, error) {
	if recipesLimit < 0 {
		recipesLimit = s.recipesLimit
	}

	ids := make([]int64, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}

	recipes, err := s.recipes.ListShortByAuthors(ctx, ids, recipesLimit)
	if err != nil {
		return nil, err
	}
	counts, err := s.recipes.CountByAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}

	subs := make([]models.Subscription, 0, len(authors))
	for _, a := range authors {
		list := recipes[a.ID]
		if list == nil {
			list = []models.RecipeShort{}
		}
		subs = append(subs, models.Subscription{
			UserProfile:  a,
			Recipes:      list,
			RecipesCount: counts[a.ID],
		})
	}
	return subs, nil
}
