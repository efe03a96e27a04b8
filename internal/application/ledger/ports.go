package ledger

import (
	"context"

	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

// Repos bundles the repositories a ledger mutation may touch, bound to one
// database transaction when handed out by a TxRunner.
type Repos struct {
	Transactions repository.TransactionRepository
	Items        repository.InventoryItemRepository
	Movements    repository.MovementRepository
	Projects     repository.ProjectRepository
	Costs        repository.ProjectCostRepository
	Sales        repository.ProjectSaleRepository
}

// TxRunner executes fn inside a single database transaction, passing
// repositories bound to that transaction. This is what makes a domain record
// and its paired ledger entry exist both-or-neither.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
