package memory

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo is the in-memory adapter for the stock audit trail.
type MovementRepo struct {
	s *Store
}

func NewMovementRepository(s *Store) *MovementRepo {
	return &MovementRepo{s: s}
}

func (r *MovementRepo) Create(m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	r.s.movements[m.ID] = *m
	return nil
}

func (r *MovementRepo) ListByItem(itemID string) ([]*entity.Movement, error) {
	return r.collect(func(m entity.Movement) bool { return m.ItemID == itemID })
}

func (r *MovementRepo) List(from, to string) ([]*entity.Movement, error) {
	return r.collect(func(m entity.Movement) bool {
		if from != "" && m.Date < from {
			return false
		}
		if to != "" && m.Date > to {
			return false
		}
		return true
	})
}

func (r *MovementRepo) collect(keep func(entity.Movement) bool) ([]*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Movement
	for _, m := range r.s.movements {
		if !keep(m) {
			continue
		}
		m := m
		list = append(list, &m)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date > list[j].Date
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}
