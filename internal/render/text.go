// Package render turns shopping lists into downloadable documents.
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/sbilibin2017/foodgram/internal/models"
)

// Text renders a shopping list as a numbered plain-text document.
type Text struct{}

// NewText creates a plain-text renderer.
func NewText() *Text {
	return &Text{}
}

// Render writes a header, one numbered line per item and a footer.
func (Text) Render(username string, items []models.ShoppingListItem, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Shopping list for %s\n", username)
	fmt.Fprintf(&buf, "Generated at %s\n\n", generatedAt.UTC().Format("2006-01-02 15:04"))

	for i, item := range items {
		fmt.Fprintf(&buf, "%d. %s (%s) - %d\n", i+1, item.Name, item.MeasurementUnit, item.TotalAmount)
	}

	fmt.Fprintf(&buf, "\nTotal items: %d\nFoodgram\n", len(items))
	return buf.Bytes(), nil
}

// ContentType returns the MIME type of rendered documents.
func (Text) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Extension returns the file extension of rendered documents.
func (Text) Extension() string {
	return "txt"
}
