package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/foodgram/internal/logger"
	"github.com/sbilibin2017/foodgram/internal/middlewares"
	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/sbilibin2017/foodgram/internal/services"
)

//go:generate mockgen -source=shopping_list.go -destination=mock_shopping_list.go -package=handlers

// ShoppingListExporter renders the current user's cart.
type ShoppingListExporter interface {
	Export(ctx context.Context, user *models.UserDB) (*services.Document, error)
}

// NewDownloadShoppingCartHandler serves the aggregated shopping list as an attachment.
// @Summary Download shopping list
// @Tags recipes
// @Produce plain
// @Success 200 {file} file "Shopping list"
// @Failure 400 {object} models.ErrorResponse "Shopping cart is empty"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /recipes/download_shopping_cart/ [get]
// @Security BearerAuth
func NewDownloadShoppingCartHandler(svc ShoppingListExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := svc.Export(r.Context(), middlewares.UserFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", doc.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(doc.Body); err != nil {
			logger.Log.Errorw("failed to write shopping list", "error", err)
		}
	}
}
