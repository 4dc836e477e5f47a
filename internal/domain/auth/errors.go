package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidSession     = errors.New("Invalid session")
	ErrUsernameTaken      = errors.New("Username already exists")
)
