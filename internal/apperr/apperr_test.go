package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation with field", NewValidation("cooking_time", "must be at least %d", 1), "cooking_time: must be at least 1"},
		{"validation without field", &ValidationError{Message: "bad"}, "bad"},
		{"conflict", NewConflict("favorite", "recipe is already in favorites"), "recipe is already in favorites"},
		{"not found with id", NewNotFound("recipe", 7), "recipe 7 not found"},
		{"not found without id", NewNotFound("favorite", 0), "favorite not found"},
		{"empty cart", &EmptyCartError{UserID: 1}, "shopping cart is empty"},
		{"authorization default", &AuthorizationError{}, "you do not have permission to perform this action"},
		{"authorization custom", &AuthorizationError{Message: "nope"}, "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create recipe: %w", NewConflict("recipe_ingredient", "duplicate"))

	var conflict *ConflictError
	assert.True(t, errors.As(err, &conflict))
	assert.Equal(t, "recipe_ingredient", conflict.Resource)

	var notFound *NotFoundError
	assert.False(t, errors.As(err, &notFound))
}
