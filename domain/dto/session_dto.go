package dto

// SignupRequest creates a new channel owner
type SignupRequest struct {
	Name   string `json:"name" binding:"required"`
	Handle string `json:"handle" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
}

// LoginRequest selects an existing user by id
type LoginRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// DirectorLoginRequest carries the static director password
type DirectorLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AddUserRequest adds another account to the roster and switches to it
type AddUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}
