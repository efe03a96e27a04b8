package repository

import "github.com/karimbadr/mohasib-api/internal/domain/entity"

// ProjectRepository is the persistence port for real-estate projects.
type ProjectRepository interface {
	Create(p *entity.Project) error
	// GetByID returns (nil, nil) when the ID does not resolve.
	GetByID(id string) (*entity.Project, error)
	List() ([]*entity.Project, error)
	Delete(id string) error
}
