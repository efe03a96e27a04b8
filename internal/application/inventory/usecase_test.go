package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimbadr/mohasib-api/internal/application/inventory"
	"github.com/karimbadr/mohasib-api/internal/domain"
	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/policy"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
	"github.com/karimbadr/mohasib-api/internal/infrastructure/memory"
)

type fakeNotifier struct {
	levels   []string
	messages []string
}

func (f *fakeNotifier) Notify(_ context.Context, level, message string) {
	f.levels = append(f.levels, level)
	f.messages = append(f.messages, message)
}

type fixture struct {
	uc       *inventory.UseCase
	store    *memory.Store
	txs      repository.TransactionRepository
	notifier *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repos()
	notifier := &fakeNotifier{}
	return &fixture{
		uc:       inventory.NewUseCase(memory.NewTxRunner(store), repos.Items, repos.Movements, notifier),
		store:    store,
		txs:      repos.Transactions,
		notifier: notifier,
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var accountant = policy.Actor{ID: "acc-1", Role: entity.RoleAccountant}

func (f *fixture) createItem(t *testing.T, name, unit, qty, min string) *entity.InventoryItem {
	t.Helper()
	item, err := f.uc.CreateItem(context.Background(), inventory.CreateItemInput{
		Name:     name,
		Quantity: dec(qty),
		Unit:     unit,
		Min:      dec(min),
		Date:     "2025-01-10",
	})
	require.NoError(t, err)
	return item
}

func TestRecordReceipt(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "Cement", "ton", "50", "20")

	result, err := f.uc.RecordReceipt(context.Background(), accountant, inventory.StockInput{
		ItemID:    item.ID,
		Qty:       dec("100"),
		UnitPrice: dec("1700"),
		Party:     "Helwan Cement",
		Date:      "2025-01-15",
	})
	require.NoError(t, err)

	assert.True(t, result.Item.Quantity.Equal(dec("150")))
	assert.Equal(t, "2025-01-15", result.Item.UpdatedAt)

	assert.Equal(t, entity.MovementIn, result.Movement.Kind)
	assert.True(t, result.Movement.Total.Equal(dec("170000")))

	tx := result.Transaction
	assert.Equal(t, entity.TransactionExpense, tx.Type)
	assert.Equal(t, "purchase of Cement from Helwan Cement (100 ton × 1700)", tx.Description)
	assert.True(t, tx.Amount.Equal(dec("170000")))
	assert.Equal(t, result.Movement.ID, tx.SourceID)
	assert.True(t, tx.Approved, "accountant entries start approved")
	assert.Equal(t, accountant.ID, tx.CreatedBy)

	// The paired entry is persisted, not just returned.
	stored, err := f.txs.GetByID(tx.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, tx.Description, stored.Description)
}

func TestRecordReceiptByEmployeeStaysPending(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "Steel", "ton", "0", "0")

	result, err := f.uc.RecordReceipt(context.Background(), policy.Actor{ID: "emp-1", Role: entity.RoleEmployee}, inventory.StockInput{
		ItemID:    item.ID,
		Qty:       dec("10"),
		UnitPrice: dec("30000"),
		Party:     "Ezz Steel",
		Date:      "2025-02-01",
	})
	require.NoError(t, err)
	assert.False(t, result.Transaction.Approved)
}

func TestRecordIssue(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "Cement", "ton", "150", "20")

	result, err := f.uc.RecordIssue(context.Background(), accountant, inventory.StockInput{
		ItemID:    item.ID,
		Qty:       dec("40"),
		UnitPrice: dec("1700"),
		Party:     "Tower A",
		Date:      "2025-01-20",
	})
	require.NoError(t, err)

	assert.True(t, result.Item.Quantity.Equal(dec("110")))
	assert.Equal(t, entity.MovementOut, result.Movement.Kind)
	assert.Equal(t, "issue of Cement to project Tower A (40 ton × 1700)", result.Transaction.Description)
	assert.Equal(t, entity.TransactionExpense, result.Transaction.Type)
	assert.True(t, result.Transaction.Amount.Equal(dec("68000")))
}

func TestRecordIssueClampsAtZero(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "Sand", "m3", "30", "0")

	result, err := f.uc.RecordIssue(context.Background(), accountant, inventory.StockInput{
		ItemID:    item.ID,
		Qty:       dec("50"),
		UnitPrice: dec("200"),
		Party:     "Tower A",
		Date:      "2025-01-20",
	})
	require.NoError(t, err)

	// Quantity floors at zero; movement and ledger keep the requested amount.
	assert.True(t, result.Item.Quantity.IsZero())
	assert.True(t, result.Movement.Qty.Equal(dec("50")))
	assert.True(t, result.Transaction.Amount.Equal(dec("10000")))
}

func TestRecordIssueLowStockNotifies(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "Cement", "ton", "25", "20")

	_, err := f.uc.RecordIssue(context.Background(), accountant, inventory.StockInput{
		ItemID:    item.ID,
		Qty:       dec("10"),
		UnitPrice: dec("1700"),
		Party:     "Tower A",
		Date:      "2025-01-20",
	})
	require.NoError(t, err)

	require.Len(t, f.notifier.messages, 1)
	assert.Equal(t, inventory.LevelWarn, f.notifier.levels[0])
	assert.Equal(t, "low stock for Cement: 15 ton remaining (min 20)", f.notifier.messages[0])
}

func TestRecordReceiptNoNotificationAboveMin(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "Cement", "ton", "10", "20")

	_, err := f.uc.RecordReceipt(context.Background(), accountant, inventory.StockInput{
		ItemID:    item.ID,
		Qty:       dec("100"),
		UnitPrice: dec("1700"),
		Party:     "Helwan Cement",
		Date:      "2025-01-15",
	})
	require.NoError(t, err)
	assert.Empty(t, f.notifier.messages)
}

func TestRecordUnknownItem(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.RecordReceipt(context.Background(), accountant, inventory.StockInput{
		ItemID:    "missing",
		Qty:       dec("1"),
		UnitPrice: dec("1"),
		Party:     "x",
		Date:      "2025-01-15",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordValidation(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "Cement", "ton", "10", "0")

	base := inventory.StockInput{
		ItemID:    item.ID,
		Qty:       dec("5"),
		UnitPrice: dec("100"),
		Party:     "Helwan Cement",
		Date:      "2025-01-15",
	}

	cases := map[string]func(in *inventory.StockInput){
		"zero qty":       func(in *inventory.StockInput) { in.Qty = decimal.Zero },
		"negative qty":   func(in *inventory.StockInput) { in.Qty = dec("-5") },
		"zero price":     func(in *inventory.StockInput) { in.UnitPrice = decimal.Zero },
		"empty party":    func(in *inventory.StockInput) { in.Party = "" },
		"malformed date": func(in *inventory.StockInput) { in.Date = "15/01/2025" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := base
			mutate(&in)
			_, err := f.uc.RecordReceipt(context.Background(), accountant, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			// Nothing was written.
			movements, err := f.uc.ListMovements(context.Background(), "", "")
			require.NoError(t, err)
			assert.Empty(t, movements)
		})
	}
}

func TestMovementsAreAppendOnlyHistory(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "Cement", "ton", "0", "0")

	for _, date := range []string{"2025-01-10", "2025-01-12"} {
		_, err := f.uc.RecordReceipt(context.Background(), accountant, inventory.StockInput{
			ItemID:    item.ID,
			Qty:       dec("10"),
			UnitPrice: dec("1700"),
			Party:     "Helwan Cement",
			Date:      date,
		})
		require.NoError(t, err)
	}

	movements, err := f.uc.ListMovements(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, "2025-01-12", movements[0].Date, "newest first")

	// The date filter is inclusive on both ends.
	movements, err = f.uc.ListMovements(context.Background(), "2025-01-11", "2025-01-12")
	require.NoError(t, err)
	assert.Len(t, movements, 1)

	// Deleting the item keeps the audit trail.
	require.NoError(t, f.uc.DeleteItem(context.Background(), item.ID))
	movements, err = f.uc.ListMovements(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, movements, 2)
}

func TestItemMovements(t *testing.T) {
	f := newFixture(t)
	cement := f.createItem(t, "Cement", "ton", "0", "0")
	steel := f.createItem(t, "Steel", "ton", "0", "0")

	for _, in := range []inventory.StockInput{
		{ItemID: cement.ID, Qty: dec("10"), UnitPrice: dec("1700"), Party: "Helwan Cement", Date: "2025-01-10"},
		{ItemID: cement.ID, Qty: dec("5"), UnitPrice: dec("1700"), Party: "Helwan Cement", Date: "2025-01-12"},
		{ItemID: steel.ID, Qty: dec("2"), UnitPrice: dec("40000"), Party: "Ezz Steel", Date: "2025-01-11"},
	} {
		_, err := f.uc.RecordReceipt(context.Background(), accountant, in)
		require.NoError(t, err)
	}

	movements, err := f.uc.ItemMovements(context.Background(), cement.ID)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, "2025-01-12", movements[0].Date, "newest first")
	for _, m := range movements {
		assert.Equal(t, cement.ID, m.ItemID)
	}

	// History survives the item's deletion.
	require.NoError(t, f.uc.DeleteItem(context.Background(), cement.ID))
	movements, err = f.uc.ItemMovements(context.Background(), cement.ID)
	require.NoError(t, err)
	assert.Len(t, movements, 2)

	_, err = f.uc.ItemMovements(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateItemValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CreateItem(context.Background(), inventory.CreateItemInput{
		Name: "", Unit: "ton", Date: "2025-01-10",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.CreateItem(context.Background(), inventory.CreateItemInput{
		Name: "Cement", Unit: "ton", Quantity: dec("-1"), Date: "2025-01-10",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteItemMissing(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.uc.DeleteItem(context.Background(), "missing"), domain.ErrNotFound)
}
