package model

import "errors"

// Auth errors
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginRequest represents login parameters.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued session token and the signed-in user.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
