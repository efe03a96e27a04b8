package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimbadr/mohasib-api/internal/application/ledger"
	"github.com/karimbadr/mohasib-api/internal/domain"
	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/policy"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
	"github.com/karimbadr/mohasib-api/internal/infrastructure/memory"
)

var (
	manager    = policy.Actor{ID: "mgr-1", Role: entity.RoleManager}
	accountant = policy.Actor{ID: "acc-1", Role: entity.RoleAccountant}
	employee   = policy.Actor{ID: "emp-1", Role: entity.RoleEmployee}
)

func newUseCase(t *testing.T) *ledger.TransactionUseCase {
	t.Helper()
	return ledger.NewTransactionUseCase(memory.NewStore().Repos().Transactions)
}

func entry(date, typ, description, amount string) ledger.ManualEntryInput {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	return ledger.ManualEntryInput{Date: date, Type: typ, Description: description, Amount: d}
}

func TestCreateManualApprovalByRole(t *testing.T) {
	cases := []struct {
		actor    policy.Actor
		approved bool
	}{
		{manager, true},
		{accountant, true},
		{employee, false},
	}
	for _, tc := range cases {
		t.Run(tc.actor.Role, func(t *testing.T) {
			uc := newUseCase(t)
			tx, err := uc.CreateManual(context.Background(), tc.actor,
				entry("2025-01-15", entity.TransactionExpense, "office rent", "12000"))
			require.NoError(t, err)
			assert.Equal(t, tc.approved, tx.Approved)
			assert.Equal(t, tc.actor.ID, tx.CreatedBy)
			assert.Empty(t, tx.SourceID, "manual entries have no source")
		})
	}
}

func TestCreateManualValidation(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateManual(ctx, manager, entry("2025-01-15", "transfer", "x", "10"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateManual(ctx, manager, entry("15-01-2025", entity.TransactionRevenue, "x", "10"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateManual(ctx, manager, entry("2025-01-15", entity.TransactionRevenue, "", "10"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateManual(ctx, manager, entry("2025-01-15", entity.TransactionRevenue, "x", "0"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApproveManagerOnly(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	pending, err := uc.CreateManual(ctx, employee,
		entry("2025-01-15", entity.TransactionExpense, "site supplies", "900"))
	require.NoError(t, err)
	require.False(t, pending.Approved)

	_, err = uc.Approve(ctx, accountant, pending.ID)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	_, err = uc.Approve(ctx, employee, pending.ID)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	approved, err := uc.Approve(ctx, manager, pending.ID)
	require.NoError(t, err)
	assert.True(t, approved.Approved)
}

func TestApproveIsOneWay(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	tx, err := uc.CreateManual(ctx, employee,
		entry("2025-01-15", entity.TransactionExpense, "site supplies", "900"))
	require.NoError(t, err)

	_, err = uc.Approve(ctx, manager, tx.ID)
	require.NoError(t, err)

	_, err = uc.Approve(ctx, manager, tx.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyApproved)
}

func TestApproveMissing(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Approve(context.Background(), manager, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListFilters(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	seed := []ledger.ManualEntryInput{
		entry("2025-01-10", entity.TransactionRevenue, "unit down payment", "500000"),
		entry("2025-01-20", entity.TransactionExpense, "office rent", "12000"),
		entry("2025-02-05", entity.TransactionExpense, "monthly salary for site crew", "45000"),
	}
	for _, in := range seed {
		_, err := uc.CreateManual(ctx, manager, in)
		require.NoError(t, err)
	}

	all, err := uc.List(ctx, repository.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-02-05", all[0].Date, "newest first")

	expenses, err := uc.List(ctx, repository.TransactionFilter{Type: entity.TransactionExpense})
	require.NoError(t, err)
	assert.Len(t, expenses, 2)

	january, err := uc.List(ctx, repository.TransactionFilter{From: "2025-01-01", To: "2025-01-31"})
	require.NoError(t, err)
	assert.Len(t, january, 2)

	// Bounds are inclusive.
	exact, err := uc.List(ctx, repository.TransactionFilter{From: "2025-01-20", To: "2025-01-20"})
	require.NoError(t, err)
	assert.Len(t, exact, 1)
}

func TestListValidatesFilter(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.List(ctx, repository.TransactionFilter{From: "Jan 1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.List(ctx, repository.TransactionFilter{Type: "transfer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	tx, err := uc.CreateManual(ctx, manager,
		entry("2025-01-15", entity.TransactionRevenue, "misc income", "100"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, tx.ID))
	assert.ErrorIs(t, uc.Delete(ctx, tx.ID), domain.ErrNotFound)
}
