package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email address identifying the user
	// required: true
	// default: jane@example.com
	Email string `json:"email"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// default: Login successful
	Message string  `json:"message"`
	User    *UserDB `json:"user"`
}

// UserResponse wraps the current user.
// swagger:model UserResponse
type UserResponse struct {
	User *UserDB `json:"user"`
}
