package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/foodgram/internal/logger"
	"github.com/sbilibin2017/foodgram/internal/models"
)

//go:generate mockgen -source=shopping_list.go -destination=mock_shopping_list.go -package=services

// ShoppingListReader aggregates the ingredients of a user's cart.
type ShoppingListReader interface {
	Aggregate(ctx context.Context, userID int64) ([]models.ShoppingListItem, error)
}

// Renderer turns a shopping list into a downloadable document.
type Renderer interface {
	Render(username string, items []models.ShoppingListItem, generatedAt time.Time) ([]byte, error)
	ContentType() string
	Extension() string
}

// Document is a rendered shopping list ready to be served as a download.
type Document struct {
	FileName    string
	ContentType string
	Body        []byte
	List        models.ShoppingList
}

// ShoppingListService builds shopping lists from the cart.
type ShoppingListService struct {
	reader   ShoppingListReader
	renderer Renderer
	now      func() time.Time
}

// NewShoppingListService creates a ShoppingListService.
func NewShoppingListService(reader ShoppingListReader, renderer Renderer) *ShoppingListService {
	return &ShoppingListService{reader: reader, renderer: renderer, now: time.Now}
}

// Aggregate returns the summed ingredient lines of the user's cart.
func (s *ShoppingListService) Aggregate(ctx context.Context, userID int64) ([]models.ShoppingListItem, error) {
	return s.reader.Aggregate(ctx, userID)
}

// Export aggregates the cart of user and renders it.
func (s *ShoppingListService) Export(ctx context.Context, user *models.UserDB) (*Document, error) {
	items, err := s.reader.Aggregate(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	list := models.ShoppingList{
		Username:    user.Username,
		Items:       items,
		GeneratedAt: s.now(),
	}

	body, err := s.renderer.Render(list.Username, list.Items, list.GeneratedAt)
	if err != nil {
		logger.Log.Errorw("failed to render shopping list", "user_id", user.ID, "error", err)
		return nil, err
	}

	return &Document{
		FileName:    fmt.Sprintf("%s_download_list.%s", user.Username, s.renderer.Extension()),
		ContentType: s.renderer.ContentType(),
		Body:        body,
		List:        list,
	}, nil
}
