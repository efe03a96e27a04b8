package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement kinds.
const (
	MovementIn  = "in"  // receipt from a supplier
	MovementOut = "out" // issue to a project
)

// Movement is the append-only audit record of a single stock change.
// Movements are never updated or deleted once written.
type Movement struct {
	ID        string
	ItemID    string
	Kind      string          // in | out
	Qty       decimal.Decimal // positive
	UnitPrice decimal.Decimal // positive
	Total     decimal.Decimal // Qty × UnitPrice
	Party     string          // supplier name for "in", project name for "out"
	Date      string          // YYYY-MM-DD
	CreatedAt time.Time
}
