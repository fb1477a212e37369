package models

// IngredientAmountRequest is one ingredient line of a recipe write
// swagger:model IngredientAmountRequest
type IngredientAmountRequest struct {
	// Ingredient id
	// example: 1123
	ID int64 `json:"id" validate:"required"`

	// Amount
	// example: 10
	Amount int `json:"amount"`
}

// RecipeRequest represents the JSON body for recipe create and update
// swagger:model RecipeRequest
type RecipeRequest struct {
	// Ingredient lines
	// required: true
	Ingredients []IngredientAmountRequest `json:"ingredients" validate:"dive"`

	// Tag ids
	// required: true
	// example: [1, 2]
	Tags []int64 `json:"tags"`

	// Image reference
	// example: recipes/images/pancakes.png
	Image string `json:"image" validate:"max=255"`

	// Name
	// required: true
	// example: Pancakes
	Name string `json:"name" validate:"required,max=200"`

	// Description
	// required: true
	// example: Mix and fry
	Text string `json:"text" validate:"required"`

	// Cooking time in minutes
	// required: true
	// example: 20
	CookingTime int `json:"cooking_time"`
}

// Input converts the request into the domain input.
func (r RecipeRequest) Input() RecipeInput {
	lines := make([]IngredientLine, 0, len(r.Ingredients))
	for _, l := range r.Ingredients {
		lines = append(lines, IngredientLine{IngredientID: l.ID, Amount: l.Amount})
	}
	return RecipeInput{
		Name:        r.Name,
		Text:        r.Text,
		CookingTime: r.CookingTime,
		Image:       r.Image,
		TagIDs:      r.Tags,
		Ingredients: lines,
	}
}
