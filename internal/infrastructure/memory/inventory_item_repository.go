package memory

import (
	"sort"

	"github.com/google/uuid"

	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo is the in-memory adapter for stocked items.
type InventoryItemRepo struct {
	s *Store
}

func NewInventoryItemRepository(s *Store) *InventoryItemRepo {
	return &InventoryItemRepo{s: s}
}

func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.s.items[item.ID] = *item
	return nil
}

func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	item, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// GetForUpdate behaves like GetByID here; TxRunner already serializes
// transactional runs, so no extra row lock is needed.
func (r *InventoryItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.GetByID(id)
}

func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[item.ID] = *item
	return nil
}

func (r *InventoryItemRepo) List() ([]*entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.InventoryItem, 0, len(r.s.items))
	for _, item := range r.s.items {
		item := item
		list = append(list, &item)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].UpdatedAt != list[j].UpdatedAt {
			return list[i].UpdatedAt > list[j].UpdatedAt
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (r *InventoryItemRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items, id)
	return nil
}
