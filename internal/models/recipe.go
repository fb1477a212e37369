package models

import (
	"time"
)

// RecipeDB represents a recipe row in the database
type RecipeDB struct {
	ID          int64     `json:"id" db:"id"`                     // Primary key
	AuthorID    int64     `json:"author_id" db:"author_id"`       // Owning user
	Name        string    `json:"name" db:"name"`                 // Recipe title
	Text        string    `json:"text" db:"text"`                 // Description
	CookingTime int       `json:"cooking_time" db:"cooking_time"` // Minutes, at least 1
	Image       string    `json:"image" db:"image"`               // Optional image reference
	PubDate     time.Time `json:"pub_date" db:"pub_date"`         // Set once on insert
}

// IngredientLine is one (ingredient, amount) pair of a recipe write.
type IngredientLine struct {
	IngredientID int64 `json:"id"`
	Amount       int   `json:"amount"`
}

// RecipeInput carries the writable fields of a recipe.
type RecipeInput struct {
	Name        string
	Text        string
	CookingTime int
	Image       string
	TagIDs      []int64
	Ingredients []IngredientLine
}

// RecipeIngredient is an ingredient line resolved against the catalog.
// swagger:model RecipeIngredient
type RecipeIngredient struct {
	RecipeID        int64  `json:"-" db:"recipe_id"`
	ID              int64  `json:"id" db:"id"`
	Name            string `json:"name" db:"name"`
	MeasurementUnit string `json:"measurement_unit" db:"measurement_unit"`
	Amount          int    `json:"amount" db:"amount"`
}

// RecipeTag links a tag to a recipe when loading tags in bulk.
type RecipeTag struct {
	RecipeID int64 `db:"recipe_id"`
	Tag
}

// RecipeRow is a recipe joined with its author and the viewer flags.
type RecipeRow struct {
	RecipeDB
	AuthorEmail        string `db:"author_email"`
	AuthorUsername     string `db:"author_username"`
	AuthorFirstName    string `db:"author_first_name"`
	AuthorLastName     string `db:"author_last_name"`
	AuthorIsSubscribed bool   `db:"author_is_subscribed"`
	IsFavorited        bool   `db:"is_favorited"`
	IsInShoppingCart   bool   `db:"is_in_shopping_cart"`
}

// RecipeDetail is the full read projection of a recipe for a viewer.
// swagger:model RecipeDetail
type RecipeDetail struct {
	ID               int64              `json:"id"`
	Tags             []Tag              `json:"tags"`
	Author           UserProfile        `json:"author"`
	Ingredients      []RecipeIngredient `json:"ingredients"`
	IsFavorited      bool               `json:"is_favorited"`
	IsInShoppingCart bool               `json:"is_in_shopping_cart"`
	Name             string             `json:"name"`
	Image            string             `json:"image"`
	Text             string             `json:"text"`
	CookingTime      int                `json:"cooking_time"`
	PubDate          time.Time          `json:"pub_date"`
}

// NewRecipeDetail builds the read projection from a joined row.
func NewRecipeDetail(row RecipeRow, tags []Tag, ingredients []RecipeIngredient) RecipeDetail {
	if tags == nil {
		tags = []Tag{}
	}
	if ingredients == nil {
		ingredients = []RecipeIngredient{}
	}
	return RecipeDetail{
		ID:   row.ID,
		Tags: tags,
		Author: UserProfile{
			ID:           row.AuthorID,
			Email:        row.AuthorEmail,
			Username:     row.AuthorUsername,
			FirstName:    row.AuthorFirstName,
			LastName:     row.AuthorLastName,
			IsSubscribed: row.AuthorIsSubscribed,
		},
		Ingredients:      ingredients,
		IsFavorited:      row.IsFavorited,
		IsInShoppingCart: row.IsInShoppingCart,
		Name:             row.Name,
		Image:            row.Image,
		Text:             row.Text,
		CookingTime:      row.CookingTime,
		PubDate:          row.PubDate,
	}
}

// RecipeShort is the reduced projection used in membership responses.
// swagger:model RecipeShort
type RecipeShort struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Image       string `json:"image" db:"image"`
	CookingTime int    `json:"cooking_time" db:"cooking_time"`
}

// RecipeFilter narrows a recipe listing.
type RecipeFilter struct {
	ViewerID         int64    // 0 for anonymous
	TagSlugs         []string // any of
	AuthorID         int64    // 0 for any author
	IsFavorited      bool
	IsInShoppingCart bool
	Page             Page
}
