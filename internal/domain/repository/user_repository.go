package repository

import "github.com/karimbadr/mohasib-api/internal/domain/entity"

// UserRepository is the persistence port for user accounts.
type UserRepository interface {
	Create(u *entity.User) error
	// GetByID returns (nil, nil) when the ID does not resolve.
	GetByID(id string) (*entity.User, error)
	// FindByUsername returns (nil, nil) when no user has that username.
	FindByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(u *entity.User) error
	Delete(id string) error
}
