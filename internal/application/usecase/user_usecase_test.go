package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/karimbadr/mohasib-api/internal/application/dto"
	"github.com/karimbadr/mohasib-api/internal/application/usecase"
	"github.com/karimbadr/mohasib-api/internal/domain"
	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/policy"
	"github.com/karimbadr/mohasib-api/internal/infrastructure/memory"
)

var (
	manager    = policy.Actor{ID: "mgr-1", Role: entity.RoleManager}
	accountant = policy.Actor{ID: "acc-1", Role: entity.RoleAccountant}
)

func newFixture(t *testing.T) (*usecase.UserUseCase, *memory.UserRepo) {
	t.Helper()
	repo := memory.NewUserRepository(memory.NewStore())
	return usecase.NewUserUseCase(repo), repo
}

func createRequest(username string) dto.UserCreateRequest {
	return dto.UserCreateRequest{
		Username: username,
		Password: "s3cret-pass",
		Name:     "Test User",
		Email:    username + "@example.com",
		Role:     entity.RoleEmployee,
	}
}

func TestCreate(t *testing.T) {
	uc, repo := newFixture(t)

	created, err := uc.Create(manager, createRequest("fatma"))
	require.NoError(t, err)
	assert.Equal(t, "fatma", created.Username)
	assert.True(t, created.Active, "accounts start active by default")

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))
}

func TestCreateDuplicateUsername(t *testing.T) {
	uc, _ := newFixture(t)
	_, err := uc.Create(manager, createRequest("fatma"))
	require.NoError(t, err)
	_, err = uc.Create(manager, createRequest("fatma"))
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestCreateInvalidRole(t *testing.T) {
	uc, _ := newFixture(t)
	in := createRequest("fatma")
	in.Role = "owner"
	_, err := uc.Create(manager, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestManagerOnly(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.List(accountant)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	_, err = uc.Create(accountant, createRequest("fatma"))
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	_, err = uc.Update(accountant, "any", dto.UserUpdateRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.ErrorIs(t, uc.Delete(accountant, "any"), domain.ErrPermissionDenied)
}

func TestUpdatePatchesOnlyGivenFields(t *testing.T) {
	uc, _ := newFixture(t)
	created, err := uc.Create(manager, createRequest("fatma"))
	require.NoError(t, err)

	inactive := false
	updated, err := uc.Update(manager, created.ID, dto.UserUpdateRequest{
		Role:   entity.RoleAccountant,
		Active: &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAccountant, updated.Role)
	assert.False(t, updated.Active)
	assert.Equal(t, created.Name, updated.Name, "untouched fields keep their value")
	assert.Equal(t, created.Email, updated.Email)
}

func TestUpdateUnknownUser(t *testing.T) {
	uc, _ := newFixture(t)
	_, err := uc.Update(manager, "missing", dto.UserUpdateRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDelete(t *testing.T) {
	uc, repo := newFixture(t)
	created, err := uc.Create(manager, createRequest("fatma"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(manager, created.ID))
	gone, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDeleteSelfBlocked(t *testing.T) {
	uc, _ := newFixture(t)
	assert.ErrorIs(t, uc.Delete(manager, manager.ID), domain.ErrInvalidInput)
}
