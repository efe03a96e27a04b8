package entity

import "github.com/shopspring/decimal"

// Project cost types.
const (
	CostConstruction = "construction"
	CostOperation    = "operation"
	CostExpense      = "expense"
)

// ValidCostType reports whether t is a known project cost type.
func ValidCostType(t string) bool {
	return t == CostConstruction || t == CostOperation || t == CostExpense
}

// CostTypeLabel is the human-readable form used in ledger descriptions.
func CostTypeLabel(t string) string {
	switch t {
	case CostConstruction:
		return "construction"
	case CostOperation:
		return "operation"
	default:
		return "expense"
	}
}

// ProjectCost is a cost booked against a project. Each cost has exactly one
// paired expense Transaction, linked through Transaction.SourceID.
type ProjectCost struct {
	ID        string
	ProjectID string
	Type      string // construction | operation | expense
	Amount    decimal.Decimal
	Date      string // YYYY-MM-DD
	Note      string
}
