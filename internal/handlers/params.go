package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/models"
)

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.NewValidation(name, "must be a positive integer")
	}
	return id, nil
}

// queryInt parses an optional integer query parameter, returning def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.NewValidation(name, "must be an integer")
	}
	return n, nil
}

// queryFlag treats "1" and "true" as set.
func queryFlag(r *http.Request, name string) bool {
	switch r.URL.Query().Get(name) {
	case "1", "true":
		return true
	}
	return false
}

// maxPageLimit caps the limit query parameter.
const maxPageLimit = 100

// pageFromQuery reads page (1-based) and limit. A limit above maxPageLimit is
// clamped; a page whose offset does not fit in an int is rejected.
func pageFromQuery(r *http.Request, pageSize int) (models.Page, error) {
	number, err := queryInt(r, "page", 1)
	if err != nil {
		return models.Page{}, err
	}
	if number < 1 {
		return models.Page{}, apperr.NewValidation("page", "must be at least 1")
	}
	limit, err := queryInt(r, "limit", pageSize)
	if err != nil {
		return models.Page{}, err
	}
	if limit < 1 {
		return models.Page{}, apperr.NewValidation("limit", "must be at least 1")
	}
	limit = min(limit, maxPageLimit)
	if number-1 > math.MaxInt/limit {
		return models.Page{}, apperr.NewValidation("page", "is out of range")
	}
	return models.NewPage(number, limit), nil
}

// recipesLimit reads recipes_limit. An absent parameter yields -1, which
// selects the service default; any explicit negative value is rejected.
func recipesLimit(r *http.Request) (int, error) {
	if !r.URL.Query().Has("recipes_limit") {
		return -1, nil
	}
	n, err := strconv.Atoi(r.URL.Query().Get("recipes_limit"))
	if err != nil {
		return 0, apperr.NewValidation("recipes_limit", "must be an integer")
	}
	if n < 0 {
		return 0, apperr.NewValidation("recipes_limit", "must not be negative")
	}
	return n, nil
}

// viewerID is 0 for anonymous requests.
func viewerID(user *models.UserDB) int64 {
	if user == nil {
		return 0
	}
	return user.ID
}
