package memory

import (
	"sort"

	"github.com/google/uuid"

	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo is the in-memory adapter for real-estate projects.
type ProjectRepo struct {
	s *Store
}

func NewProjectRepository(s *Store) *ProjectRepo {
	return &ProjectRepo{s: s}
}

func (r *ProjectRepo) Create(p *entity.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt == "" {
		p.CreatedAt = entity.Today()
	}
	r.s.projects[p.ID] = *p
	return nil
}

func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.projects[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProjectRepo) List() ([]*entity.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Project, 0, len(r.s.projects))
	for _, p := range r.s.projects {
		p := p
		list = append(list, &p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt != list[j].CreatedAt {
			return list[i].CreatedAt > list[j].CreatedAt
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (r *ProjectRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.projects, id)
	return nil
}
