package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimbadr/mohasib-api/internal/application/report"
	"github.com/karimbadr/mohasib-api/internal/domain"
	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/infrastructure/memory"
)

type fixture struct {
	uc    *report.UseCase
	store *memory.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repos()
	return &fixture{
		uc:    report.NewUseCase(repos.Transactions, repos.Items, repos.Projects, repos.Costs, repos.Sales),
		store: store,
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (f *fixture) addTx(t *testing.T, date, typ, description, amount string) {
	t.Helper()
	err := f.store.Repos().Transactions.Create(&entity.Transaction{
		Date:        date,
		Type:        typ,
		Description: description,
		Amount:      dec(amount),
		Approved:    true,
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)
}

func TestProfitLoss(t *testing.T) {
	f := newFixture(t)
	f.addTx(t, "2025-01-10", entity.TransactionRevenue, "sale of unit 12A of project Nile View to Mona Hassan", "3200000")
	f.addTx(t, "2025-01-20", entity.TransactionExpense, "construction cost for project Nile View", "250000")
	f.addTx(t, "2025-03-01", entity.TransactionExpense, "outside the range", "999999")

	rep, err := f.uc.Build(context.Background(), report.KindProfitLoss, "2025-01-01", "2025-01-31", "")
	require.NoError(t, err)

	assert.Equal(t, "Profit & Loss Report", rep.Title)
	assert.Equal(t, []string{"Item", "Value"}, rep.Headers)
	assert.Equal(t, [][]string{
		{"Total revenue", "3200000 EGP"},
		{"Total expenses", "250000 EGP"},
		{"Net profit", "2950000 EGP"},
	}, rep.Rows)
}

func TestRevenueAndExpenseReports(t *testing.T) {
	f := newFixture(t)
	f.addTx(t, "2025-01-10", entity.TransactionRevenue, "unit down payment", "500000")
	f.addTx(t, "2025-01-20", entity.TransactionExpense, "office rent", "12000")

	rev, err := f.uc.Build(context.Background(), report.KindRevenue, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Revenue Report", rev.Title)
	require.Len(t, rev.Rows, 1)
	assert.Equal(t, []string{"2025-01-10", "unit down payment", "500000 EGP"}, rev.Rows[0])

	exp, err := f.uc.Build(context.Background(), report.KindExpense, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Expense Report", exp.Title)
	require.Len(t, exp.Rows, 1)
	assert.Equal(t, []string{"2025-01-20", "office rent", "12000 EGP"}, exp.Rows[0])
}

func TestSalaryReportMatchesKeywordsCaseInsensitively(t *testing.T) {
	f := newFixture(t)
	f.addTx(t, "2025-01-25", entity.TransactionExpense, "Monthly SALARY for site crew", "45000")
	f.addTx(t, "2025-01-26", entity.TransactionExpense, "Payroll transfer January", "30000")
	f.addTx(t, "2025-01-27", entity.TransactionExpense, "new employee equipment", "5000")
	f.addTx(t, "2025-01-28", entity.TransactionExpense, "office rent", "12000")
	// Revenue never counts as payroll even if it mentions it.
	f.addTx(t, "2025-01-29", entity.TransactionRevenue, "salary refund", "1000")

	rep, err := f.uc.Build(context.Background(), report.KindSalary, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Payroll Report", rep.Title)
	require.Len(t, rep.Rows, 3)
	for _, row := range rep.Rows {
		assert.NotEqual(t, "office rent", row[1])
	}
}

func TestInventoryReportStatus(t *testing.T) {
	f := newFixture(t)
	items := f.store.Repos().Items
	require.NoError(t, items.Create(&entity.InventoryItem{
		Name: "Cement", Quantity: dec("15"), Unit: "ton", Min: dec("20"), UpdatedAt: "2025-01-20",
	}))
	require.NoError(t, items.Create(&entity.InventoryItem{
		Name: "Steel", Quantity: dec("80"), Unit: "ton", Min: dec("10"), UpdatedAt: "2025-01-10",
	}))

	rep, err := f.uc.Build(context.Background(), report.KindInventory, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Inventory Report", rep.Title)
	assert.Equal(t, []string{"Item", "Quantity", "Min", "Status"}, rep.Headers)
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, []string{"Cement", "15 ton", "20", "low"}, rep.Rows[0])
	assert.Equal(t, []string{"Steel", "80 ton", "10", "ok"}, rep.Rows[1])
}

func TestProjectReport(t *testing.T) {
	f := newFixture(t)
	repos := f.store.Repos()
	p := &entity.Project{Name: "Nile View", Location: "New Cairo", Floors: 12, Units: 48, CreatedAt: "2025-01-05"}
	require.NoError(t, repos.Projects.Create(p))
	require.NoError(t, repos.Costs.Create(&entity.ProjectCost{
		ProjectID: p.ID, Type: entity.CostConstruction, Amount: dec("250000"), Date: "2025-01-20",
	}))
	require.NoError(t, repos.Costs.Create(&entity.ProjectCost{
		ProjectID: p.ID, Type: entity.CostOperation, Amount: dec("7000"), Date: "2025-01-25",
	}))
	require.NoError(t, repos.Sales.Create(&entity.ProjectSale{
		ProjectID: p.ID, UnitNo: "12A", Buyer: "Mona Hassan", Price: dec("3200000"), Date: "2025-02-10",
	}))

	rep, err := f.uc.Build(context.Background(), report.KindProject, "", "", p.ID)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Project", "Nile View"},
		{"Location", "New Cairo"},
		{"Floors", "12"},
		{"Units", "48"},
		{"Total costs", "257000 EGP"},
		{"Total sales", "3200000 EGP"},
		{"Profit/Loss", "2943000 EGP"},
	}, rep.Rows)

	// The date range narrows which events count.
	january, err := f.uc.Build(context.Background(), report.KindProject, "2025-01-01", "2025-01-31", p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Total sales", "0 EGP"}, january.Rows[5])
}

func TestProjectReportMissingProject(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Build(context.Background(), report.KindProject, "", "", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuildIsReadOnly(t *testing.T) {
	f := newFixture(t)
	f.addTx(t, "2025-01-10", entity.TransactionRevenue, "unit down payment", "500000")

	first, err := f.uc.Build(context.Background(), report.KindProfitLoss, "", "", "")
	require.NoError(t, err)
	second, err := f.uc.Build(context.Background(), report.KindProfitLoss, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, first, second, "building a report twice gives identical tables")
}

func TestEmptyRangeGivesEmptyRowsNotNil(t *testing.T) {
	f := newFixture(t)
	rep, err := f.uc.Build(context.Background(), report.KindExpense, "2025-01-01", "2025-01-31", "")
	require.NoError(t, err)
	assert.NotNil(t, rep.Rows)
	assert.Empty(t, rep.Rows)
}

func TestBuildValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Build(context.Background(), "balance-sheet", "", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Build(context.Background(), report.KindRevenue, "01/01/2025", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
