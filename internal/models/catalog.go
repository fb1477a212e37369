package models

// Ingredient is catalog reference data.
// swagger:model Ingredient
type Ingredient struct {
	ID              int64  `json:"id" db:"id"`                             // Primary key
	Name            string `json:"name" db:"name"`                         // Not unique
	MeasurementUnit string `json:"measurement_unit" db:"measurement_unit"` // e.g. g, ml, pcs
}

// Tag is catalog reference data.
// swagger:model Tag
type Tag struct {
	ID    int64  `json:"id" db:"id"`       // Primary key
	Name  string `json:"name" db:"name"`   // Unique name
	Color string `json:"color" db:"color"` // Unique HEX color, e.g. #E26C2D
	Slug  string `json:"slug" db:"slug"`   // ^[-a-zA-Z0-9_]+$
}
