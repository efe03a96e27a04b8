package memory

import (
	"context"

	"github.com/karimbadr/mohasib-api/internal/application/ledger"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner gives the in-memory store transaction semantics: the callback
// works on the live store, and an error rolls the store back to the snapshot
// taken before the callback ran. Runs are serialized.
type TxRunner struct {
	store *Store
}

// NewTxRunner builds the runner over a store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run executes fn against the store and undoes its writes on error.
func (r *TxRunner) Run(ctx context.Context, fn func(repos ledger.Repos) error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()

	snap := r.store.snapshot()
	if err := fn(r.store.Repos()); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
