package dto

// SignupRequest represents the request payload for user registration
type SignupRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     *string `json:"name,omitempty"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserPayload is the user data embedded in auth responses
type UserPayload struct {
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

// AuthResponse wraps the user payload with an optional status message
type AuthResponse struct {
	User    UserPayload `json:"user"`
	Message string      `json:"message,omitempty"`
}

// MessageResponse carries a bare status message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
