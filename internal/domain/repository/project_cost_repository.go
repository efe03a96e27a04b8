package repository

import "github.com/karimbadr/mohasib-api/internal/domain/entity"

// ProjectCostRepository is the persistence port for project costs.
type ProjectCostRepository interface {
	Create(c *entity.ProjectCost) error
	// GetByID returns (nil, nil) when the ID does not resolve.
	GetByID(id string) (*entity.ProjectCost, error)
	// ListByProject returns costs of a project within the inclusive date
	// range; empty bounds mean unbounded.
	ListByProject(projectID, from, to string) ([]*entity.ProjectCost, error)
	Delete(id string) error
}
