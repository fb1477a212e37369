// Package permissions expresses access policies as named predicates that
// are composed with Any at the call site.
package permissions

import (
	"net/http"

	"github.com/sbilibin2017/foodgram/internal/models"
)

// Request is what a policy can look at.
type Request struct {
	Method   string
	User     *models.UserDB // nil for anonymous
	AuthorID int64          // owner of the target resource, 0 if none
}

// Predicate is a single yes/no policy.
type Predicate func(Request) bool

// IsSafeMethod allows read-only HTTP methods.
func IsSafeMethod(r Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// IsAuthenticated matches requests with a user.
func IsAuthenticated(r Request) bool {
	return r.User != nil
}

// IsAuthor matches the owner of the resource.
func IsAuthor(r Request) bool {
	return r.User != nil && r.AuthorID != 0 && r.User.ID == r.AuthorID
}

// IsAdmin matches users with the admin role.
func IsAdmin(r Request) bool {
	return r.User.IsAdmin()
}

// Any passes when at least one predicate passes.
func Any(preds ...Predicate) Predicate {
	return func(r Request) bool {
		for _, p := range preds {
			if p(r) {
				return true
			}
		}
		return false
	}
}

// CanModifyRecipe is the policy for recipe update and delete.
var CanModifyRecipe = Any(IsSafeMethod, IsAuthor, IsAdmin)
