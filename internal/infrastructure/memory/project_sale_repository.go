package memory

import (
	"sort"

	"github.com/google/uuid"

	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

var _ repository.ProjectSaleRepository = (*ProjectSaleRepo)(nil)

// ProjectSaleRepo is the in-memory adapter for project unit sales.
type ProjectSaleRepo struct {
	s *Store
}

func NewProjectSaleRepository(s *Store) *ProjectSaleRepo {
	return &ProjectSaleRepo{s: s}
}

func (r *ProjectSaleRepo) Create(sale *entity.ProjectSale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	r.s.sales[sale.ID] = *sale
	return nil
}

func (r *ProjectSaleRepo) GetByID(id string) (*entity.ProjectSale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return &sale, nil
}

func (r *ProjectSaleRepo) ListByProject(projectID, from, to string) ([]*entity.ProjectSale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.ProjectSale
	for _, sale := range r.s.sales {
		if sale.ProjectID != projectID {
			continue
		}
		if from != "" && sale.Date < from {
			continue
		}
		if to != "" && sale.Date > to {
			continue
		}
		sale := sale
		list = append(list, &sale)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date > list[j].Date })
	return list, nil
}

func (r *ProjectSaleRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.sales, id)
	return nil
}
