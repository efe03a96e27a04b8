package entity

import "github.com/shopspring/decimal"

// InventoryItem is a stocked material (cement, steel, ...). Quantity is only
// ever adjusted through the stock use case and never goes negative: issues
// larger than the on-hand quantity clamp at zero.
type InventoryItem struct {
	ID        string
	Name      string
	Quantity  decimal.Decimal
	Unit      string          // unit-of-measure label, e.g. "ton"
	Min       decimal.Decimal // reorder threshold; quantity below it flags low stock
	UpdatedAt string          // date of the last mutation, YYYY-MM-DD
}

// LowStock reports whether the item sits below its reorder threshold.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity.LessThan(i.Min)
}
