package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/karimbadr/mohasib-api/internal/application/ledger"
	"github.com/karimbadr/mohasib-api/internal/domain"
	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/policy"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

// UseCase manages inventory items and records stock movements. Every receipt
// or issue adjusts the item quantity, appends an audit Movement and writes the
// paired ledger transaction, all inside one database transaction.
type UseCase struct {
	txRunner  ledger.TxRunner
	items     repository.InventoryItemRepository
	movements repository.MovementRepository
	notifier  Notifier
}

// NewUseCase builds the use case.
func NewUseCase(txRunner ledger.TxRunner, items repository.InventoryItemRepository, movements repository.MovementRepository, notifier Notifier) *UseCase {
	return &UseCase{txRunner: txRunner, items: items, movements: movements, notifier: notifier}
}

// CreateItemInput is a new stocked material.
type CreateItemInput struct {
	Name     string
	Quantity decimal.Decimal
	Unit     string
	Min      decimal.Decimal
	Date     string // becomes the item's UpdatedAt
}

// StockInput is one receipt or issue against an item. Party is the supplier
// for receipts and the receiving project for issues.
type StockInput struct {
	ItemID    string
	Qty       decimal.Decimal
	UnitPrice decimal.Decimal
	Party     string
	Date      string
}

// StockResult is everything a receipt/issue produced, returned together so
// the caller sees the atomic outcome.
type StockResult struct {
	Item        *entity.InventoryItem
	Movement    *entity.Movement
	Transaction *entity.Transaction
}

// CreateItem registers a new material.
func (uc *UseCase) CreateItem(ctx context.Context, in CreateItemInput) (*entity.InventoryItem, error) {
	if in.Name == "" || in.Unit == "" || !entity.ValidDate(in.Date) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() || in.Min.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		Min:       in.Min,
		UpdatedAt: in.Date,
	}
	if err := uc.items.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns all items.
func (uc *UseCase) ListItems(ctx context.Context) ([]*entity.InventoryItem, error) {
	return uc.items.List()
}

// ListMovements returns the audit trail, optionally bounded by dates.
func (uc *UseCase) ListMovements(ctx context.Context, from, to string) ([]*entity.Movement, error) {
	if (from != "" && !entity.ValidDate(from)) || (to != "" && !entity.ValidDate(to)) {
		return nil, domain.ErrInvalidInput
	}
	return uc.movements.List(from, to)
}

// ItemMovements returns one item's audit trail, newest first. Movements
// outlive their item, so the history of a deleted item is still served.
func (uc *UseCase) ItemMovements(ctx context.Context, itemID string) ([]*entity.Movement, error) {
	if itemID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.movements.ListByItem(itemID)
}

// DeleteItem removes a material. Its movements stay behind as history.
func (uc *UseCase) DeleteItem(ctx context.Context, id string) error {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.items.Delete(id)
}

// RecordReceipt books a stock receipt: quantity goes up by Qty, a Movement
// (kind "in") is appended and an expense transaction of Qty×UnitPrice is
// written to the ledger.
func (uc *UseCase) RecordReceipt(ctx context.Context, actor policy.Actor, in StockInput) (*StockResult, error) {
	return uc.record(ctx, actor, in, entity.MovementIn)
}

// RecordIssue books a stock issue to a project: quantity goes down by Qty but
// never below zero (an issue larger than on-hand stock floors at zero, it
// does not fail), a Movement (kind "out") is appended and an expense
// transaction of Qty×UnitPrice is written to the ledger.
func (uc *UseCase) RecordIssue(ctx context.Context, actor policy.Actor, in StockInput) (*StockResult, error) {
	return uc.record(ctx, actor, in, entity.MovementOut)
}

func (uc *UseCase) record(ctx context.Context, actor policy.Actor, in StockInput, kind string) (*StockResult, error) {
	// Fail fast, before any write.
	if !in.Qty.GreaterThan(decimal.Zero) || !in.UnitPrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Party == "" || !entity.ValidDate(in.Date) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.items.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var result StockResult

	err = uc.txRunner.Run(ctx, func(r ledger.Repos) error {
		// Lock the item row so concurrent adjustments serialize.
		item, err := r.Items.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		if kind == entity.MovementIn {
			item.Quantity = item.Quantity.Add(in.Qty)
		} else {
			item.Quantity = decimal.Max(decimal.Zero, item.Quantity.Sub(in.Qty))
		}
		item.UpdatedAt = in.Date
		if err := r.Items.Update(item); err != nil {
			return err
		}

		mov := &entity.Movement{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Kind:      kind,
			Qty:       in.Qty,
			UnitPrice: in.UnitPrice,
			Total:     in.Qty.Mul(in.UnitPrice),
			Party:     in.Party,
			Date:      in.Date,
			CreatedAt: now,
		}
		if err := r.Movements.Create(mov); err != nil {
			return err
		}

		var description string
		if kind == entity.MovementIn {
			description = ledger.ReceiptDescription(item.Name, in.Party, item.Unit, in.Qty, in.UnitPrice)
		} else {
			description = ledger.IssueDescription(item.Name, in.Party, item.Unit, in.Qty, in.UnitPrice)
		}
		tx := ledger.Paired(actor, in.Date, entity.TransactionExpense, description, mov.Total, mov.ID)
		if err := r.Transactions.Create(tx); err != nil {
			return err
		}

		result = StockResult{Item: item, Movement: mov, Transaction: tx}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Low-stock signal fires after commit and never blocks the operation.
	if result.Item.LowStock() {
		uc.notifier.Notify(ctx, LevelWarn, fmt.Sprintf(
			"low stock for %s: %s %s remaining (min %s)",
			result.Item.Name, result.Item.Quantity.String(), result.Item.Unit, result.Item.Min.String(),
		))
	}
	return &result, nil
}
