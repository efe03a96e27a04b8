package repository

import "github.com/karimbadr/mohasib-api/internal/domain/entity"

// ProjectSaleRepository is the persistence port for project unit sales.
type ProjectSaleRepository interface {
	Create(s *entity.ProjectSale) error
	// GetByID returns (nil, nil) when the ID does not resolve.
	GetByID(id string) (*entity.ProjectSale, error)
	// ListByProject returns sales of a project within the inclusive date
	// range; empty bounds mean unbounded.
	ListByProject(projectID, from, to string) ([]*entity.ProjectSale, error)
	Delete(id string) error
}
