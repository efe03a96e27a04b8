package repository

import "github.com/karimbadr/mohasib-api/internal/domain/entity"

// TransactionFilter narrows List results. Empty fields mean "no constraint";
// From/To are inclusive calendar dates.
type TransactionFilter struct {
	From string
	To   string
	Type string
}

// TransactionRepository is the persistence port for ledger entries.
type TransactionRepository interface {
	Create(t *entity.Transaction) error
	// GetByID returns (nil, nil) when the ID does not resolve.
	GetByID(id string) (*entity.Transaction, error)
	// SetApproved flips the approved flag on. The transition is one-way.
	SetApproved(id string) error
	Delete(id string) error
	// DeleteBySourceID removes the ledger entry derived from the given
	// movement/cost/sale. Deleting zero rows is not an error: the entry may
	// have been removed by hand already.
	DeleteBySourceID(sourceID string) error
	List(filter TransactionFilter) ([]*entity.Transaction, error)
}
