package memory

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo is the in-memory adapter for ledger entries.
type TransactionRepo struct {
	s *Store
}

func NewTransactionRepository(s *Store) *TransactionRepo {
	return &TransactionRepo{s: s}
}

func (r *TransactionRepo) Create(t *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	r.s.transactions[t.ID] = *t
	return nil
}

func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.transactions[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *TransactionRepo) SetApproved(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t, ok := r.s.transactions[id]; ok {
		t.Approved = true
		r.s.transactions[id] = t
	}
	return nil
}

func (r *TransactionRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.transactions, id)
	return nil
}

func (r *TransactionRepo) DeleteBySourceID(sourceID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, t := range r.s.transactions {
		if t.SourceID == sourceID {
			delete(r.s.transactions, id)
		}
	}
	return nil
}

func (r *TransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Transaction
	for _, t := range r.s.transactions {
		if filter.From != "" && t.Date < filter.From {
			continue
		}
		if filter.To != "" && t.Date > filter.To {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		t := t
		list = append(list, &t)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date > list[j].Date
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}
