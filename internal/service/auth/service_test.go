package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
)

func TestAuthService_Login_Success(t *testing.T) {
	svc, err := NewAuthService()
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "hr@company.com",
		Password: "hr123",
	})
	require.NoError(t, err)
	assert.Equal(t, "hr", user.Role)
	assert.Equal(t, "HR Manager", user.Name)
	assert.Nil(t, user.EmployeeID)
}

func TestAuthService_Login_EmployeeAccountLinksEmployee(t *testing.T) {
	svc, err := NewAuthService()
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "john@company.com",
		Password: "john123",
	})
	require.NoError(t, err)
	assert.Equal(t, "employee", user.Role)
	require.NotNil(t, user.EmployeeID)
	assert.Equal(t, 1, *user.EmployeeID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, err := NewAuthService()
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Username: "hr@company.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, err := NewAuthService()
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Username: "ghost@company.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, err := NewAuthService()
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{Username: "hr@company.com"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Validate(t *testing.T) {
	svc, err := NewAuthService()
	require.NoError(t, err)
	ctx := context.Background()

	user, err := svc.Validate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "hr@company.com", user.Username)

	_, err = svc.Validate(ctx, 99)
	assert.ErrorIs(t, err, auth.ErrInvalidSession)
}

func TestAuthService_Register(t *testing.T) {
	svc, err := NewAuthService()
	require.NoError(t, err)
	ctx := context.Background()

	user, err := svc.Register(ctx, auth.RegisterRequest{
		Username: "new@company.com",
		Password: "secret1",
		Role:     "employee",
		Name:     "New Hire",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, user.ID)

	// The new account can log in.
	logged, err := svc.Login(ctx, auth.LoginRequest{Username: "new@company.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, err := NewAuthService()
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), auth.RegisterRequest{
		Username: "hr@company.com",
		Password: "x",
		Role:     "hr",
		Name:     "Imposter",
	})
	assert.ErrorIs(t, err, auth.ErrUsernameTaken)
}

func TestAuthService_ListUsers(t *testing.T) {
	svc, err := NewAuthService()
	require.NoError(t, err)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 4)
}
