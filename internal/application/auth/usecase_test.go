package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/karimbadr/mohasib-api/internal/application/auth"
	"github.com/karimbadr/mohasib-api/internal/application/dto"
	"github.com/karimbadr/mohasib-api/internal/domain"
	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/infrastructure/memory"
	"github.com/karimbadr/mohasib-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase(t *testing.T, users ...*entity.User) *auth.AuthUseCase {
	t.Helper()
	store := memory.NewStore()
	repo := memory.NewUserRepository(store)
	for _, u := range users {
		require.NoError(t, repo.Create(u))
	}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "mohasib-test",
	})
}

func testUser(t *testing.T, username, password, role string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		Username:     username,
		Name:         "Test User",
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         role,
		Active:       active,
	}
}

func TestLogin(t *testing.T) {
	user := testUser(t, "karim", "s3cret-pass", entity.RoleAccountant, true)
	uc := newUseCase(t, user)

	resp, err := uc.Login(dto.LoginRequest{Username: "karim", Password: "s3cret-pass"})
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, entity.RoleAccountant, resp.User.Role)

	// The token carries the identity the middleware will load.
	userID, role, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, entity.RoleAccountant, role)
}

func TestLoginWrongPassword(t *testing.T) {
	uc := newUseCase(t, testUser(t, "karim", "s3cret-pass", entity.RoleAccountant, true))
	_, err := uc.Login(dto.LoginRequest{Username: "karim", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginUnknownUser(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Login(dto.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLoginInactiveAccount(t *testing.T) {
	uc := newUseCase(t, testUser(t, "karim", "s3cret-pass", entity.RoleEmployee, false))
	_, err := uc.Login(dto.LoginRequest{Username: "karim", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
