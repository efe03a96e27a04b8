package entity

import "github.com/shopspring/decimal"

// ProjectSale records the sale of one unit of a project. Each sale has exactly
// one paired revenue Transaction, linked through Transaction.SourceID.
// Nothing enforces that sold units stay within Project.Units.
type ProjectSale struct {
	ID        string
	ProjectID string
	UnitNo    string
	Buyer     string
	Price     decimal.Decimal
	Date      string // YYYY-MM-DD
	Terms     string // optional payment terms
}
