package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/stretchr/testify/assert"
)

const recipeBody = `{"ingredients":[{"id":1,"amount":200}],"tags":[1],"name":"Pancakes","text":"Mix and fry","cooking_time":15}`

var recipeInput = models.RecipeInput{
	Name:        "Pancakes",
	Text:        "Mix and fry",
	CookingTime: 15,
	TagIDs:      []int64{1},
	Ingredients: []models.IngredientLine{{IngredientID: 1, Amount: 200}},
}

func TestRecipeListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockRecipeLister(ctrl)
	m.EXPECT().List(gomock.Any(), models.RecipeFilter{
		ViewerID:         1,
		TagSlugs:         []string{"breakfast", "dinner"},
		AuthorID:         2,
		IsFavorited:      true,
		IsInShoppingCart: false,
		Page:             models.Page{Limit: 6, Offset: 6},
	}).Return([]models.RecipeDetail{{ID: 9, Name: "Soup"}}, 7, nil)

	rr := serve(NewRecipeListHandler(m, 6), http.MethodGet, "/recipes/",
		"/recipes/?page=2&tags=breakfast&tags=dinner&author=2&is_favorited=1&is_in_shopping_cart=0", "", alice)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"count":7`)
	assert.Contains(t, rr.Body.String(), `"name":"Soup"`)
}

func TestRecipeListHandler_EmptyAndErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("empty page", func(t *testing.T) {
		m := NewMockRecipeLister(ctrl)
		m.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil)

		rr := serve(NewRecipeListHandler(m, 6), http.MethodGet, "/recipes/", "/recipes/", "", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"count":0,"results":[]}`, rr.Body.String())
	})

	t.Run("anonymous favorites filter", func(t *testing.T) {
		m := NewMockRecipeLister(ctrl)
		m.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, 0, apperr.NewValidation("is_favorited", "authentication is required to filter by favorites"))

		rr := serve(NewRecipeListHandler(m, 6), http.MethodGet, "/recipes/", "/recipes/?is_favorited=1", "", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		m := NewMockRecipeLister(ctrl)
		m.EXPECT().List(gomock.Any(), models.RecipeFilter{Page: models.Page{Limit: maxPageLimit, Offset: maxPageLimit}}).
			Return(nil, 0, nil)

		rr := serve(NewRecipeListHandler(m, 6), http.MethodGet, "/recipes/", "/recipes/?page=2&limit=100000", "", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	for _, target := range []string{
		"/recipes/?page=0",
		"/recipes/?limit=abc",
		"/recipes/?author=x",
		"/recipes/?page=9223372036854775807&limit=6",
		"/recipes/?page=9223372036854775807",
		"/recipes/?page=99999999999999999999",
	} {
		t.Run(target, func(t *testing.T) {
			rr := serve(NewRecipeListHandler(NewMockRecipeLister(ctrl), 6), http.MethodGet, "/recipes/", target, "", nil)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestRecipeGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		user         *models.UserDB
		mockSetup    func(m *MockRecipeGetter)
		expectedCode int
	}{
		{
			name:   "anonymous",
			target: "/recipes/5/",
			mockSetup: func(m *MockRecipeGetter) {
				m.EXPECT().Get(gomock.Any(), int64(5), int64(0)).Return(&models.RecipeDetail{ID: 5}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "viewer",
			target: "/recipes/5/",
			user:   alice,
			mockSetup: func(m *MockRecipeGetter) {
				m.EXPECT().Get(gomock.Any(), int64(5), int64(1)).Return(&models.RecipeDetail{ID: 5, IsFavorited: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "missing",
			target: "/recipes/404/",
			mockSetup: func(m *MockRecipeGetter) {
				m.EXPECT().Get(gomock.Any(), int64(404), int64(0)).Return(nil, apperr.NewNotFound("recipe", 404))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "bad id",
			target:       "/recipes/abc/",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockRecipeGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}
			rr := serve(NewRecipeGetHandler(m), http.MethodGet, "/recipes/{id}/", tt.target, "", tt.user)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRecipeCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRecipeCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: recipeBody,
			mockSetup: func(m *MockRecipeCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), recipeInput).Return(&models.RecipeDetail{ID: 10, Name: "Pancakes"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate ingredients",
			body: recipeBody,
			mockSetup: func(m *MockRecipeCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), recipeInput).
					Return(nil, apperr.NewValidation("ingredients", "ingredients must not repeat"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"detail":"ingredients must not repeat","field":"ingredients"}`,
		},
		{
			name:         "missing name",
			body:         `{"ingredients":[{"id":1,"amount":2}],"tags":[1],"text":"t","cooking_time":1}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"detail":"failed on the 'required' rule","field":"name"}`,
		},
		{
			name: "storage failure",
			body: recipeBody,
			mockSetup: func(m *MockRecipeCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), recipeInput).Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockRecipeCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}
			rr := serve(NewRecipeCreateHandler(m), http.MethodPost, "/recipes/", "/recipes/", tt.body, alice)
			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestRecipeUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		user         *models.UserDB
		mockSetup    func(m *MockRecipeUpdater)
		expectedCode int
	}{
		{
			name: "author",
			user: alice,
			mockSetup: func(m *MockRecipeUpdater) {
				m.EXPECT().AuthorID(gomock.Any(), int64(5)).Return(int64(1), nil)
				m.EXPECT().Update(gomock.Any(), int64(5), int64(1), recipeInput).Return(&models.RecipeDetail{ID: 5}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "admin",
			user: admin,
			mockSetup: func(m *MockRecipeUpdater) {
				m.EXPECT().AuthorID(gomock.Any(), int64(5)).Return(int64(1), nil)
				m.EXPECT().Update(gomock.Any(), int64(5), int64(3), recipeInput).Return(&models.RecipeDetail{ID: 5}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "stranger",
			user: bob,
			mockSetup: func(m *MockRecipeUpdater) {
				m.EXPECT().AuthorID(gomock.Any(), int64(5)).Return(int64(1), nil)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "missing recipe",
			user: bob,
			mockSetup: func(m *MockRecipeUpdater) {
				m.EXPECT().AuthorID(gomock.Any(), int64(5)).Return(int64(0), apperr.NewNotFound("recipe", 5))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockRecipeUpdater(ctrl)
			tt.mockSetup(m)
			rr := serve(NewRecipeUpdateHandler(m), http.MethodPatch, "/recipes/{id}/", "/recipes/5/", recipeBody, tt.user)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRecipeDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		user         *models.UserDB
		mockSetup    func(m *MockRecipeDeleter)
		expectedCode int
	}{
		{
			name: "author",
			user: alice,
			mockSetup: func(m *MockRecipeDeleter) {
				m.EXPECT().AuthorID(gomock.Any(), int64(5)).Return(int64(1), nil)
				m.EXPECT().Delete(gomock.Any(), int64(5), int64(1)).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "stranger",
			user: bob,
			mockSetup: func(m *MockRecipeDeleter) {
				m.EXPECT().AuthorID(gomock.Any(), int64(5)).Return(int64(1), nil)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "already deleted",
			user: alice,
			mockSetup: func(m *MockRecipeDeleter) {
				m.EXPECT().AuthorID(gomock.Any(), int64(5)).Return(int64(1), nil)
				m.EXPECT().Delete(gomock.Any(), int64(5), int64(1)).Return(apperr.NewNotFound("recipe", 5))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockRecipeDeleter(ctrl)
			tt.mockSetup(m)
			rr := serve(NewRecipeDeleteHandler(m), http.MethodDelete, "/recipes/{id}/", "/recipes/5/", "", tt.user)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
