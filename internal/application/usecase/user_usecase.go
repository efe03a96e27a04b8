package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/karimbadr/mohasib-api/internal/application/dto"
	"github.com/karimbadr/mohasib-api/internal/domain"
	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/policy"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

// UserUseCase is manager-only account administration.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List returns all accounts. Manager only.
func (uc *UserUseCase) List(actor policy.Actor) ([]*dto.UserResponse, error) {
	if !policy.CanManageUsers(actor) {
		return nil, domain.ErrPermissionDenied
	}
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}

// Create adds an account: hashes the password with bcrypt and persists.
// Manager only; duplicate usernames fail with ErrUsernameTaken.
func (uc *UserUseCase) Create(actor policy.Actor, in dto.UserCreateRequest) (*dto.UserResponse, error) {
	if !policy.CanManageUsers(actor) {
		return nil, domain.ErrPermissionDenied
	}
	if in.Username == "" || in.Password == "" || in.Name == "" || in.Email == "" || !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Update patches an account. Manager only. Empty fields in the request are
// left untouched; a non-empty password is re-hashed.
func (uc *UserUseCase) Update(actor policy.Actor, id string, in dto.UserUpdateRequest) (*dto.UserResponse, error) {
	if !policy.CanManageUsers(actor) {
		return nil, domain.ErrPermissionDenied
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Role != "" {
		if !entity.ValidRole(in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = in.Role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Delete removes an account. Manager only; managers cannot delete themselves.
func (uc *UserUseCase) Delete(actor policy.Actor, id string) error {
	if !policy.CanManageUsers(actor) {
		return domain.ErrPermissionDenied
	}
	if actor.ID == id {
		return domain.ErrInvalidInput
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.users.Delete(id)
}
