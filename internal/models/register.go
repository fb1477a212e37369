package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: vpupkin@yandex.ru
	Email string `json:"email" validate:"required,email,max=254"`

	// Username
	// required: true
	// example: vasya.pupkin
	Username string `json:"username" validate:"required,username"`

	// First name
	// required: true
	// example: Vasya
	FirstName string `json:"first_name" validate:"required,max=150"`

	// Last name
	// required: true
	// example: Pupkin
	LastName string `json:"last_name" validate:"required,max=150"`

	// Password
	// required: true
	// example: Qwerty123
	Password string `json:"password" validate:"required,min=8,max=150"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: recipe 7 not found
	Detail string `json:"detail"`

	// Offending field, if any
	// example: cooking_time
	Field string `json:"field,omitempty"`
}

// PageResponse wraps one page of a listing
// swagger:model PageResponse
type PageResponse[T any] struct {
	// Total number of matches
	// example: 123
	Count int `json:"count"`

	// Items of the current page
	Results []T `json:"results"`
}
