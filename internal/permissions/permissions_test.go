package permissions

import (
	"net/http"
	"testing"

	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCanModifyRecipe(t *testing.T) {
	author := &models.UserDB{ID: 1, Role: models.RoleUser}
	stranger := &models.UserDB{ID: 2, Role: models.RoleUser}
	admin := &models.UserDB{ID: 3, Role: models.RoleAdmin}

	tests := []struct {
		name string
		req  Request
		want bool
	}{
		{"author patches", Request{Method: http.MethodPatch, User: author, AuthorID: 1}, true},
		{"admin deletes", Request{Method: http.MethodDelete, User: admin, AuthorID: 1}, true},
		{"stranger patches", Request{Method: http.MethodPatch, User: stranger, AuthorID: 1}, false},
		{"anonymous deletes", Request{Method: http.MethodDelete, AuthorID: 1}, false},
		{"anonymous reads", Request{Method: http.MethodGet, AuthorID: 1}, true},
		{"author of unknown recipe", Request{Method: http.MethodPatch, User: author}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModifyRecipe(tt.req))
		})
	}
}

func TestComposition(t *testing.T) {
	user := &models.UserDB{ID: 7}
	req := Request{Method: http.MethodPost, User: user}

	assert.True(t, Any(IsSafeMethod, IsAuthenticated)(req))
	assert.False(t, Any(IsSafeMethod, IsAdmin)(req))
	assert.False(t, Any()(req))
	assert.False(t, IsAuthenticated(Request{}))
}
