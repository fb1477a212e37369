package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/foodgram/internal/logger"
	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/sbilibin2017/foodgram/internal/repositories"
)

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=services

// TagReader reads the tag catalog from the primary store.
type TagReader interface {
	List(ctx context.Context) ([]models.Tag, error)
	GetByID(ctx context.Context, id int64) (*models.Tag, error)
}

// TagCache caches the tag catalog.
type TagCache interface {
	Get(ctx context.Context) ([]models.Tag, error)
	Set(ctx context.Context, tags []models.Tag) error
}

// IngredientReader reads the ingredient catalog.
type IngredientReader interface {
	List(ctx context.Context, prefix string) ([]models.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*models.Ingredient, error)
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

// CatalogService exposes tags and ingredients. Tags are served read-through
// from the cache when one is configured.
type CatalogService struct {
	tags        TagReader
	cache       TagCache
	ingredients IngredientReader
}

// NewCatalogService creates a CatalogService. cache may be nil.
func NewCatalogService(tags TagReader, cache TagCache, ingredients IngredientReader) *CatalogService {
	return &CatalogService{tags: tags, cache: cache, ingredients: ingredients}
}

// Tags returns the whole tag catalog.
func (s *CatalogService) Tags(ctx context.Context) ([]models.Tag, error) {
	if s.cache != nil {
		tags, err := s.cache.Get(ctx)
		if err == nil {
			return tags, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("tag cache unavailable, reading from database", "error", err)
		}
	}

	tags, err := s.tags.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list tags", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, tags); err != nil {
			logger.Log.Warnw("failed to cache tags", "error", err)
		}
	}
	return tags, nil
}

// Tag returns one tag.
func (s *CatalogService) Tag(ctx context.Context, id int64) (*models.Tag, error) {
	return s.tags.GetByID(ctx, id)
}

// Ingredients returns ingredients whose name starts with prefix.
func (s *CatalogService) Ingredients(ctx context.Context, prefix string) ([]models.Ingredient, error) {
	return s.ingredients.List(ctx, prefix)
}

// Ingredient returns one ingredient.
func (s *CatalogService) Ingredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	return s.ingredients.GetByID(ctx, id)
}

// ExistingIngredientIDs returns the subset of ids present in the catalog.
func (s *CatalogService) ExistingIngredientIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return s.ingredients.ExistingIDs(ctx, ids)
}
