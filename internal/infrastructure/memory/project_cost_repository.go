package memory

import (
	"sort"

	"github.com/google/uuid"

	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

var _ repository.ProjectCostRepository = (*ProjectCostRepo)(nil)

// ProjectCostRepo is the in-memory adapter for project costs.
type ProjectCostRepo struct {
	s *Store
}

func NewProjectCostRepository(s *Store) *ProjectCostRepo {
	return &ProjectCostRepo{s: s}
}

func (r *ProjectCostRepo) Create(c *entity.ProjectCost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	r.s.costs[c.ID] = *c
	return nil
}

func (r *ProjectCostRepo) GetByID(id string) (*entity.ProjectCost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.costs[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ProjectCostRepo) ListByProject(projectID, from, to string) ([]*entity.ProjectCost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.ProjectCost
	for _, c := range r.s.costs {
		if c.ProjectID != projectID {
			continue
		}
		if from != "" && c.Date < from {
			continue
		}
		if to != "" && c.Date > to {
			continue
		}
		c := c
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date > list[j].Date })
	return list, nil
}

func (r *ProjectCostRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.costs, id)
	return nil
}
