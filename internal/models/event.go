package models

// Event types published after a successful write.
const (
	EventRecipeCreated       = "recipe.created"
	EventRecipeUpdated       = "recipe.updated"
	EventRecipeDeleted       = "recipe.deleted"
	EventFavoriteAdded       = "favorite.added"
	EventFavoriteRemoved     = "favorite.removed"
	EventShoppingCartAdded   = "shopping_cart.added"
	EventShoppingCartRemoved = "shopping_cart.removed"
	EventSubscriptionAdded   = "subscription.added"
	EventSubscriptionRemoved = "subscription.removed"
)

// Event represents a domain change, including actor, target, timestamp, and type.
type Event struct {
	EventID   string `json:"event_id"`            // EventID is a unique identifier for the event.
	Type      string `json:"type"`                // Type is one of the Event* constants.
	Timestamp int64  `json:"timestamp"`           // Timestamp is the Unix timestamp (in seconds) when the change was committed.
	UserID    int64  `json:"user_id"`             // UserID is the user who performed the change.
	RecipeID  int64  `json:"recipe_id,omitempty"` // RecipeID is the affected recipe, if any.
	AuthorID  int64  `json:"author_id,omitempty"` // AuthorID is the followed author, if any.
}
