package report

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/karimbadr/mohasib-api/internal/domain"
	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

// Descriptions matching any of these (case-folded substring) count as payroll
// spending in the salary report.
var salaryKeywords = []string{"salary", "payroll", "employee"}

// currency suffix on rendered amounts.
const currency = " EGP"

// UseCase builds tabular reports over already-persisted state. Read-only:
// calling the same report twice with no intervening mutation yields identical
// output.
type UseCase struct {
	transactions repository.TransactionRepository
	items        repository.InventoryItemRepository
	projects     repository.ProjectRepository
	costs        repository.ProjectCostRepository
	sales        repository.ProjectSaleRepository
}

// NewUseCase builds the aggregator.
func NewUseCase(
	transactions repository.TransactionRepository,
	items repository.InventoryItemRepository,
	projects repository.ProjectRepository,
	costs repository.ProjectCostRepository,
	sales repository.ProjectSaleRepository,
) *UseCase {
	return &UseCase{
		transactions: transactions,
		items:        items,
		projects:     projects,
		costs:        costs,
		sales:        sales,
	}
}

// Build produces the report for the given kind over the inclusive date range
// [from, to] (empty bound = unbounded). projectID is only used by the
// "project" kind. Unknown kinds and malformed dates fail with ErrInvalidInput.
func (uc *UseCase) Build(ctx context.Context, kind, from, to, projectID string) (*Report, error) {
	if (from != "" && !entity.ValidDate(from)) || (to != "" && !entity.ValidDate(to)) {
		return nil, domain.ErrInvalidInput
	}
	switch kind {
	case KindProfitLoss:
		return uc.profitLoss(from, to)
	case KindRevenue:
		return uc.transactionRows("Revenue Report", entity.TransactionRevenue, from, to, nil)
	case KindExpense:
		return uc.transactionRows("Expense Report", entity.TransactionExpense, from, to, nil)
	case KindSalary:
		return uc.transactionRows("Payroll Report", entity.TransactionExpense, from, to, isSalary)
	case KindInventory:
		return uc.inventory()
	case KindProject:
		return uc.project(projectID, from, to)
	default:
		return nil, domain.ErrInvalidInput
	}
}

func (uc *UseCase) profitLoss(from, to string) (*Report, error) {
	list, err := uc.transactions.List(repository.TransactionFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	revenue, expense := decimal.Zero, decimal.Zero
	for _, t := range list {
		switch t.Type {
		case entity.TransactionRevenue:
			revenue = revenue.Add(t.Amount)
		case entity.TransactionExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return &Report{
		Title:   "Profit & Loss Report",
		Headers: []string{"Item", "Value"},
		Rows: [][]string{
			{"Total revenue", money(revenue)},
			{"Total expenses", money(expense)},
			{"Net profit", money(revenue.Sub(expense))},
		},
	}, nil
}

func (uc *UseCase) transactionRows(title, typ, from, to string, keep func(*entity.Transaction) bool) (*Report, error) {
	list, err := uc.transactions.List(repository.TransactionFilter{From: from, To: to, Type: typ})
	if err != nil {
		return nil, err
	}
	rows := [][]string{}
	for _, t := range list {
		if keep != nil && !keep(t) {
			continue
		}
		rows = append(rows, []string{t.Date, t.Description, money(t.Amount)})
	}
	return &Report{
		Title:   title,
		Headers: []string{"Date", "Description", "Amount"},
		Rows:    rows,
	}, nil
}

func (uc *UseCase) inventory() (*Report, error) {
	// All items are listed; the date range does not apply to stock status.
	items, err := uc.items.List()
	if err != nil {
		return nil, err
	}
	rows := [][]string{}
	for _, i := range items {
		status := "ok"
		if i.LowStock() {
			status = "low"
		}
		rows = append(rows, []string{i.Name, i.Quantity.String() + " " + i.Unit, i.Min.String(), status})
	}
	return &Report{
		Title:   "Inventory Report",
		Headers: []string{"Item", "Quantity", "Min", "Status"},
		Rows:    rows,
	}, nil
}

func (uc *UseCase) project(projectID, from, to string) (*Report, error) {
	p, err := uc.projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	costs, err := uc.costs.ListByProject(projectID, from, to)
	if err != nil {
		return nil, err
	}
	sales, err := uc.sales.ListByProject(projectID, from, to)
	if err != nil {
		return nil, err
	}
	totalCosts, totalSales := decimal.Zero, decimal.Zero
	for _, c := range costs {
		totalCosts = totalCosts.Add(c.Amount)
	}
	for _, s := range sales {
		totalSales = totalSales.Add(s.Price)
	}
	return &Report{
		Title:   "Project Report",
		Headers: []string{"Item", "Value"},
		Rows: [][]string{
			{"Project", p.Name},
			{"Location", p.Location},
			{"Floors", strconv.Itoa(p.Floors)},
			{"Units", strconv.Itoa(p.Units)},
			{"Total costs", money(totalCosts)},
			{"Total sales", money(totalSales)},
			{"Profit/Loss", money(totalSales.Sub(totalCosts))},
		},
	}, nil
}

// isSalary reports whether a ledger description looks like payroll spending.
// Matching is a case-folded substring check so mixed-case entries count.
func isSalary(t *entity.Transaction) bool {
	folded := cases.Fold().String(t.Description)
	for _, kw := range salaryKeywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

func money(d decimal.Decimal) string {
	return d.String() + currency
}
