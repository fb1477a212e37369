package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/foodgram/internal/middlewares"
	"github.com/sbilibin2017/foodgram/internal/models"
)

var (
	alice = &models.UserDB{ID: 1, Email: "alice@example.com", Username: "alice", FirstName: "Alice", LastName: "Liddell", Role: models.RoleUser}
	bob   = &models.UserDB{ID: 2, Email: "bob@example.com", Username: "bob", Role: models.RoleUser}
	admin = &models.UserDB{ID: 3, Email: "root@example.com", Username: "root", Role: models.RoleAdmin}
)

// serve mounts h at pattern and performs one request as user (nil for anonymous).
func serve(h http.HandlerFunc, method, pattern, target, body string, user *models.UserDB) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if user != nil {
		req = req.WithContext(middlewares.WithUser(req.Context(), user))
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
