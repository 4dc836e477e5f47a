package auth

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
)

type AuthServiceImpl struct {
	mu     sync.RWMutex
	users  []auth.User
	nextID int
}

// seedUser is a demo account hashed at startup.
type seedUser struct {
	username   string
	password   string
	role       string
	name       string
	employeeID *int
}

func intPtr(v int) *int { return &v }

var seedUsers = []seedUser{
	{username: "hr@company.com", password: "hr123", role: "hr", name: "HR Manager"},
	{username: "john@company.com", password: "john123", role: "employee", name: "John Doe", employeeID: intPtr(1)},
	{username: "jane@company.com", password: "jane123", role: "employee", name: "Jane Smith", employeeID: intPtr(2)},
	{username: "bob@company.com", password: "bob123", role: "employee", name: "Bob Johnson", employeeID: intPtr(3)},
}

// NewAuthService seeds the in-memory user list with the demo
// accounts, bcrypt-hashing their passwords.
func NewAuthService() (*AuthServiceImpl, error) {
	s := &AuthServiceImpl{}
	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password: %w", err)
		}
		s.nextID++
		s.users = append(s.users, auth.User{
			ID:           s.nextID,
			Username:     u.username,
			PasswordHash: string(hash),
			Role:         u.role,
			Name:         u.name,
			EmployeeID:   u.employeeID,
		})
	}
	return s, nil
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.User, error) {
	if err := req.Validate(); err != nil {
		return auth.User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username != req.Username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
			return auth.User{}, auth.ErrInvalidCredentials
		}
		return u, nil
	}
	return auth.User{}, auth.ErrInvalidCredentials
}

// Validate implements auth.AuthService.
func (s *AuthServiceImpl) Validate(ctx context.Context, userID int) (auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrInvalidSession
}

// ListUsers implements auth.AuthService.
func (s *AuthServiceImpl) ListUsers(ctx context.Context) ([]auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]auth.User{}, s.users...), nil
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.User, error) {
	if err := req.Validate(); err != nil {
		return auth.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == req.Username {
			return auth.User{}, auth.ErrUsernameTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	s.nextID++
	user := auth.User{
		ID:           s.nextID,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		Name:         req.Name,
		EmployeeID:   req.EmployeeID,
	}
	s.users = append(s.users, user)
	return user, nil
}
