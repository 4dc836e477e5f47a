package auth

import (
	"context"
)

// AuthService defines the credential checks backing the login flow.
// Accounts live in memory only and reseed on restart.
type AuthService interface {
	// Login checks a username/password pair and returns the matching
	// profile, or ErrInvalidCredentials
	Login(ctx context.Context, req LoginRequest) (User, error)

	// Validate looks up a user by id for session revalidation
	Validate(ctx context.Context, userID int) (User, error)

	// ListUsers returns every profile
	ListUsers(ctx context.Context) ([]User, error)

	// Register appends a new account; usernames are unique
	Register(ctx context.Context, req RegisterRequest) (User, error)
}
