package models

import (
	"time"
)

// ShoppingListItem is one aggregated ingredient total.
type ShoppingListItem struct {
	Name            string `json:"name" db:"name"`                         // Ingredient name
	MeasurementUnit string `json:"measurement_unit" db:"measurement_unit"` // Unit
	TotalAmount     int64  `json:"total_amount" db:"total_amount"`         // Sum over the cart
}

// ShoppingList is the export handed to a document renderer.
type ShoppingList struct {
	Username    string             `json:"username"`
	Items       []ShoppingListItem `json:"items"`
	GeneratedAt time.Time          `json:"generated_at"`
}
