package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/sbilibin2017/foodgram/internal/repositories"
	"github.com/sbilibin2017/foodgram/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Tags(t *testing.T) {
	tags := []models.Tag{{ID: 1, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}}

	t.Run("cache hit skips the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := services.NewMockTagReader(ctrl)
		cache := services.NewMockTagCache(ctrl)
		cache.EXPECT().Get(gomock.Any()).Return(tags, nil)

		svc := services.NewCatalogService(reader, cache, services.NewMockIngredientReader(ctrl))
		got, err := svc.Tags(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tags, got)
	})

	t.Run("cache miss reads through and fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := services.NewMockTagReader(ctrl)
		cache := services.NewMockTagCache(ctrl)
		gomock.InOrder(
			cache.EXPECT().Get(gomock.Any()).Return(nil, repositories.ErrCacheMiss),
			reader.EXPECT().List(gomock.Any()).Return(tags, nil),
			cache.EXPECT().Set(gomock.Any(), tags).Return(nil),
		)

		svc := services.NewCatalogService(reader, cache, services.NewMockIngredientReader(ctrl))
		got, err := svc.Tags(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tags, got)
	})

	t.Run("cache failure falls back to the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := services.NewMockTagReader(ctrl)
		cache := services.NewMockTagCache(ctrl)
		cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("connection refused"))
		reader.EXPECT().List(gomock.Any()).Return(tags, nil)
		cache.EXPECT().Set(gomock.Any(), tags).Return(errors.New("connection refused"))

		svc := services.NewCatalogService(reader, cache, services.NewMockIngredientReader(ctrl))
		got, err := svc.Tags(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tags, got)
	})

	t.Run("no cache configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := services.NewMockTagReader(ctrl)
		reader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		svc := services.NewCatalogService(reader, nil, services.NewMockIngredientReader(ctrl))
		_, err := svc.Tags(context.Background())
		assert.EqualError(t, err, "db down")
	})
}

func TestCatalogService_Ingredients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ingredients := services.NewMockIngredientReader(ctrl)
	tags := services.NewMockTagReader(ctrl)
	svc := services.NewCatalogService(tags, nil, ingredients)

	ingredients.EXPECT().List(gomock.Any(), "fl").Return([]models.Ingredient{{ID: 1, Name: "flour", MeasurementUnit: "g"}}, nil)
	ingredients.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Ingredient{ID: 1, Name: "flour"}, nil)
	ingredients.EXPECT().ExistingIDs(gomock.Any(), []int64{1, 2}).Return([]int64{1}, nil)
	tags.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&models.Tag{ID: 5}, nil)

	list, err := svc.Ingredients(context.Background(), "fl")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	one, err := svc.Ingredient(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "flour", one.Name)

	found, err := svc.ExistingIngredientIDs(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, found)

	tag, err := svc.Tag(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), tag.ID)
}
