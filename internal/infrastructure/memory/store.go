// Package memory holds an in-process implementation of the persistence ports.
// It backs STORE_DRIVER=memory and the application test suites, mirroring the
// ordering and not-found semantics of the PostgreSQL adapters.
package memory

import (
	"sync"

	"github.com/karimbadr/mohasib-api/internal/application/ledger"
	"github.com/karimbadr/mohasib-api/internal/domain/entity"
)

// Store keeps every collection in maps guarded by one mutex.
type Store struct {
	mu sync.RWMutex
	// txMu serializes TxRunner.Run so snapshot/restore stays consistent.
	txMu sync.Mutex

	transactions map[string]entity.Transaction
	items        map[string]entity.InventoryItem
	movements    map[string]entity.Movement
	projects     map[string]entity.Project
	costs        map[string]entity.ProjectCost
	sales        map[string]entity.ProjectSale
	users        map[string]entity.User
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{
		transactions: map[string]entity.Transaction{},
		items:        map[string]entity.InventoryItem{},
		movements:    map[string]entity.Movement{},
		projects:     map[string]entity.Project{},
		costs:        map[string]entity.ProjectCost{},
		sales:        map[string]entity.ProjectSale{},
		users:        map[string]entity.User{},
	}
}

// Repos returns the full repository set bound to this store.
func (s *Store) Repos() ledger.Repos {
	return ledger.Repos{
		Transactions: NewTransactionRepository(s),
		Items:        NewInventoryItemRepository(s),
		Movements:    NewMovementRepository(s),
		Projects:     NewProjectRepository(s),
		Costs:        NewProjectCostRepository(s),
		Sales:        NewProjectSaleRepository(s),
	}
}

type snapshot struct {
	transactions map[string]entity.Transaction
	items        map[string]entity.InventoryItem
	movements    map[string]entity.Movement
	projects     map[string]entity.Project
	costs        map[string]entity.ProjectCost
	sales        map[string]entity.ProjectSale
	users        map[string]entity.User
}

func copyMap[V any](src map[string]V) map[string]V {
	dst := make(map[string]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		transactions: copyMap(s.transactions),
		items:        copyMap(s.items),
		movements:    copyMap(s.movements),
		projects:     copyMap(s.projects),
		costs:        copyMap(s.costs),
		sales:        copyMap(s.sales),
		users:        copyMap(s.users),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = snap.transactions
	s.items = snap.items
	s.movements = snap.movements
	s.projects = snap.projects
	s.costs = snap.costs
	s.sales = snap.sales
	s.users = snap.users
}
