package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: vpupkin@yandex.ru
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// example: Qwerty123
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Access token
	// example: JWT_TOKEN
	Token string `json:"auth_token"`
}

// SetPasswordRequest represents the JSON body for a password change
// swagger:model SetPasswordRequest
type SetPasswordRequest struct {
	// New password
	// required: true
	// example: Qwerty456
	NewPassword string `json:"new_password" validate:"required,min=8,max=150"`

	// Current password
	// required: true
	// example: Qwerty123
	CurrentPassword string `json:"current_password" validate:"required"`
}
