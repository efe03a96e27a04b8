package report

// Report kinds.
const (
	KindProfitLoss = "profit-loss"
	KindRevenue    = "revenue"
	KindExpense    = "expense"
	KindSalary     = "salary"
	KindInventory  = "inventory"
	KindProject    = "project"
)

// Report is a rectangular table ready for rendering or flat-file export.
// Rows is never nil; an empty result set produces zero rows, not an error.
type Report struct {
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}
