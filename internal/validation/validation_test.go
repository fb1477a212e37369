package validation

import (
	"errors"
	"math"
	"testing"

	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/stretchr/testify/assert"
)

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var verr *apperr.ValidationError
	if assert.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err) {
		assert.Equal(t, field, verr.Field)
	}
}

func TestIngredientLines(t *testing.T) {
	tests := []struct {
		name    string
		lines   []models.IngredientLine
		wantErr bool
		message string
	}{
		{
			name:  "valid lines",
			lines: []models.IngredientLine{{IngredientID: 1, Amount: 2}, {IngredientID: 2, Amount: 1}},
		},
		{
			name:    "duplicate ingredient",
			lines:   []models.IngredientLine{{IngredientID: 1, Amount: 2}, {IngredientID: 1, Amount: 3}},
			wantErr: true,
			message: "ingredients must not repeat",
		},
		{
			name:    "zero amount",
			lines:   []models.IngredientLine{{IngredientID: 1, Amount: 0}},
			wantErr: true,
			message: "less than 1",
		},
		{
			name:    "negative amount",
			lines:   []models.IngredientLine{{IngredientID: 1, Amount: 5}, {IngredientID: 2, Amount: -4}},
			wantErr: true,
			message: "less than 1",
		},
		{
			name:    "empty list",
			lines:   nil,
			wantErr: true,
			message: "at least one ingredient",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IngredientLines(tt.lines)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.message)
			var verr *apperr.ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestAmountAndCookingTimeBoundaries(t *testing.T) {
	for _, n := range []int{-1000, -1, 0} {
		assertValidationError(t, Amount(n), "amount")
		assertValidationError(t, CookingTime(n), "cooking_time")
	}
	for _, n := range []int{1, 2, 60, 1 << 20, math.MaxInt32} {
		assert.NoError(t, Amount(n))
		assert.NoError(t, CookingTime(n))
	}
	for _, n := range []int{math.MaxInt32 + 1, 3000000000} {
		assertValidationError(t, Amount(n), "amount")
		assertValidationError(t, CookingTime(n), "cooking_time")
	}
}

func TestTagIDs(t *testing.T) {
	known := []models.Tag{
		{ID: 1, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
		{ID: 2, Name: "Dinner", Color: "#49B64E", Slug: "dinner"},
	}

	assert.NoError(t, TagIDs([]int64{1, 2}, known))
	assert.ErrorContains(t, TagIDs(nil, known), "at least one tag")
	assert.ErrorContains(t, TagIDs([]int64{1, 3}, known), "tag 3 does not exist")
	assert.ErrorContains(t, TagIDs([]int64{2, 2}, known), "unique")
	assertValidationError(t, TagIDs([]int64{9}, nil), "tags")
}

func TestUsername(t *testing.T) {
	tests := []struct {
		username string
		wantErr  string
	}{
		{"john_doe", ""},
		{"a.b@c+d-e", ""},
		{"ab", ""},
		{"Иван", ""},
		{"josé", ""},
		{"user42", ""},
		{"a", "at least 2"},
		{"  a  ", "at least 2"},
		{"me", "reserved"},
		{" me ", "reserved"},
		{"bad name", "may contain only"},
		{"semi;colon", "may contain only"},
		{"emoji😀", "may contain only"},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			err := Username(tt.username)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSelfFollow(t *testing.T) {
	assertValidationError(t, SelfFollow(5, 5), "author")
	assert.NoError(t, SelfFollow(5, 6))
}

type registerDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(registerDTO{Email: "a@b.io", Username: "alice", Password: "12345678"}))

	err := Struct(registerDTO{Email: "not-an-email", Username: "alice", Password: "12345678"})
	assertValidationError(t, err, "email")

	err = Struct(registerDTO{Email: "a@b.io", Username: "me", Password: "12345678"})
	assertValidationError(t, err, "username")
	assert.ErrorContains(t, err, "reserved")

	err = Struct(registerDTO{Email: "a@b.io", Username: "alice", Password: "short"})
	assertValidationError(t, err, "password")
	assert.ErrorContains(t, err, "min=8")
}
