package services

import (
	"context"

	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/logger"
	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/sbilibin2017/foodgram/internal/validation"
)

//go:generate mockgen -source=recipe.go -destination=mock_recipe.go -package=services

// RecipeWriter persists recipes atomically.
type RecipeWriter interface {
	Create(ctx context.Context, authorID int64, in models.RecipeInput) (int64, error)
	Update(ctx context.Context, id int64, in models.RecipeInput) error
	Delete(ctx context.Context, id int64) error
}

// RecipeReader builds recipe read projections.
type RecipeReader interface {
	GetByID(ctx context.Context, id, viewerID int64) (*models.RecipeDetail, error)
	List(ctx context.Context, filter models.RecipeFilter) ([]models.RecipeDetail, int, error)
	GetAuthorID(ctx context.Context, id int64) (int64, error)
}

// TagCatalog provides the set of known tags.
type TagCatalog interface {
	Tags(ctx context.Context) ([]models.Tag, error)
}

// IngredientCatalog checks ingredient ids against the catalog.
type IngredientCatalog interface {
	ExistingIngredientIDs(ctx context.Context, ids []int64) ([]int64, error)
}

// RecipeService validates and persists recipes with their ingredient lines and tags.
type RecipeService struct {
	writer      RecipeWriter
	reader      RecipeReader
	tags        TagCatalog
	ingredients IngredientCatalog
	events      Publisher
}

// NewRecipeService creates a RecipeService.
func NewRecipeService(
	writer RecipeWriter,
	reader RecipeReader,
	tags TagCatalog,
	ingredients IngredientCatalog,
	events Publisher,
) *RecipeService {
	return &RecipeService{
		writer:      writer,
		reader:      reader,
		tags:        tags,
		ingredients: ingredients,
		events:      events,
	}
}

// Create validates in, stores the recipe for authorID and returns it as the author sees it.
func (s *RecipeService) Create(ctx context.Context, authorID int64, in models.RecipeInput) (*models.RecipeDetail, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	id, err := s.writer.Create(ctx, authorID, in)
	if err != nil {
		logger.Log.Errorw("failed to create recipe", "author_id", authorID, "error", err)
		return nil, err
	}

	s.events.Publish(ctx, models.Event{Type: models.EventRecipeCreated, UserID: authorID, RecipeID: id})

	return s.reader.GetByID(ctx, id, authorID)
}

// Update validates in and replaces the recipe contents. viewerID is the
// acting user, used for the returned projection and the event.
func (s *RecipeService) Update(ctx context.Context, id, viewerID int64, in models.RecipeInput) (*models.RecipeDetail, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	if err := s.writer.Update(ctx, id, in); err != nil {
		logger.Log.Errorw("failed to update recipe", "recipe_id", id, "error", err)
		return nil, err
	}

	s.events.Publish(ctx, models.Event{Type: models.EventRecipeUpdated, UserID: viewerID, RecipeID: id})

	return s.reader.GetByID(ctx, id, viewerID)
}

// Delete removes the recipe.
func (s *RecipeService) Delete(ctx context.Context, id, viewerID int64) error {
	if err := s.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete recipe", "recipe_id", id, "error", err)
		return err
	}

	s.events.Publish(ctx, models.Event{Type: models.EventRecipeDeleted, UserID: viewerID, RecipeID: id})
	return nil
}

// Get returns one recipe as seen by viewerID (0 for anonymous).
func (s *RecipeService) Get(ctx context.Context, id, viewerID int64) (*models.RecipeDetail, error) {
	return s.reader.GetByID(ctx, id, viewerID)
}

// List returns one page of recipes and the total count. Anonymous viewers
// cannot filter by their own favorites or cart.
func (s *RecipeService) List(ctx context.Context, filter models.RecipeFilter) ([]models.RecipeDetail, int, error) {
	if filter.ViewerID == 0 && filter.IsFavorited {
		return nil, 0, apperr.NewValidation("is_favorited", "authentication is required to filter by favorites")
	}
	if filter.ViewerID == 0 && filter.IsInShoppingCart {
		return nil, 0, apperr.NewValidation("is_in_shopping_cart", "authentication is required to filter by shopping cart")
	}
	return s.reader.List(ctx, filter)
}

// AuthorID returns the owner of a recipe.
func (s *RecipeService) AuthorID(ctx context.Context, id int64) (int64, error) {
	return s.reader.GetAuthorID(ctx, id)
}

func (s *RecipeService) validate(ctx context.Context, in models.RecipeInput) error {
	if err := validation.CookingTime(in.CookingTime); err != nil {
		return err
	}
	if err := validation.IngredientLines(in.Ingredients); err != nil {
		return err
	}

	known, err := s.tags.Tags(ctx)
	if err != nil {
		return err
	}
	if err := validation.TagIDs(in.TagIDs, known); err != nil {
		return err
	}

	ids := make([]int64, 0, len(in.Ingredients))
	for _, l := range in.Ingredients {
		ids = append(ids, l.IngredientID)
	}
	found, err := s.ingredients.ExistingIngredientIDs(ctx, ids)
	if err != nil {
		return err
	}
	exists := make(map[int64]struct{}, len(found))
	for _, id := range found {
		exists[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := exists[id]; !ok {
			return apperr.NewValidation("ingredients", "ingredient %d does not exist", id)
		}
	}
	return nil
}
