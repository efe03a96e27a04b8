package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TransactionRevenue = "revenue"
	TransactionExpense = "expense"
)

// ValidTransactionType reports whether t is a known ledger entry type.
func ValidTransactionType(t string) bool {
	return t == TransactionRevenue || t == TransactionExpense
}

// Transaction is one entry in the financial ledger. Entries are created by a
// manual quick-entry, or derived from an inventory movement or a project
// cost/sale; derived entries carry the originating record's ID in SourceID so
// deleting the source can remove its ledger entry without string matching.
type Transaction struct {
	ID          string
	Date        string // calendar date, YYYY-MM-DD
	Type        string // revenue | expense
	Description string
	Amount      decimal.Decimal // always positive; Type carries the sign
	Approved    bool
	CreatedBy   string // acting user ID, empty when unknown
	SourceID    string // movement/cost/sale ID for derived entries, empty for manual ones
	CreatedAt   time.Time
}
