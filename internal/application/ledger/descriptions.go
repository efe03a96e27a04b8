package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ledger descriptions are generated from templates so that derived entries
// read uniformly in reports. Decimal values render via decimal.String, which
// never adds trailing zeros, so the same event always produces the same text.

// ReceiptDescription describes an inventory receipt from a supplier.
func ReceiptDescription(item, supplier, unit string, qty, unitPrice decimal.Decimal) string {
	return fmt.Sprintf("purchase of %s from %s (%s %s × %s)", item, supplier, qty.String(), unit, unitPrice.String())
}

// IssueDescription describes an inventory issue to a project.
func IssueDescription(item, project, unit string, qty, unitPrice decimal.Decimal) string {
	return fmt.Sprintf("issue of %s to project %s (%s %s × %s)", item, project, qty.String(), unit, unitPrice.String())
}

// CostDescription describes a project cost entry.
func CostDescription(costTypeLabel, projectName string) string {
	return fmt.Sprintf("%s cost for project %s", costTypeLabel, projectName)
}

// SaleDescription describes the sale of one project unit.
func SaleDescription(unitNo, projectName, buyer string) string {
	return fmt.Sprintf("sale of unit %s of project %s to %s", unitNo, projectName, buyer)
}
