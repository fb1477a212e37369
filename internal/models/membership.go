package models

// MembershipKind selects one of the user/recipe membership sets.
type MembershipKind int

const (
	Favorite MembershipKind = iota
	ShoppingCart
)

// Table returns the relation backing the membership set.
func (k MembershipKind) Table() string {
	switch k {
	case ShoppingCart:
		return "shopping_cart"
	default:
		return "favorites"
	}
}

// String returns a human readable name used in messages and events.
func (k MembershipKind) String() string {
	switch k {
	case ShoppingCart:
		return "shopping_cart"
	default:
		return "favorite"
	}
}

// Subscription is an author as seen by a follower.
// swagger:model Subscription
type Subscription struct {
	UserProfile
	Recipes      []RecipeShort `json:"recipes"`
	RecipesCount int           `json:"recipes_count"`
}
