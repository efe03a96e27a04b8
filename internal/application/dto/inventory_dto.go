package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/karimbadr/mohasib-api/internal/domain/entity"
)

// CreateItemRequest body for POST /api/inventory/items.
type CreateItemRequest struct {
	Name     string          `json:"name" validate:"required"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit" validate:"required"`
	Min      decimal.Decimal `json:"min"`
	Date     string          `json:"date,omitempty"` // defaults to today
}

// StockRequest body for POST /api/inventory/receipts and /api/inventory/issues.
// Party is the supplier for receipts and the receiving project for issues.
type StockRequest struct {
	ItemID    string          `json:"item_id" validate:"required"`
	Qty       decimal.Decimal `json:"qty" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
	Party     string          `json:"party" validate:"required"`
	Date      string          `json:"date" validate:"required"`
}

// ItemResponse is one stocked material.
type ItemResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	Min       decimal.Decimal `json:"min"`
	UpdatedAt string          `json:"updated_at"`
	LowStock  bool            `json:"low_stock"`
}

// MovementResponse is one audit-trail record.
type MovementResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	Kind      string          `json:"kind"`
	Qty       decimal.Decimal `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	Party     string          `json:"party"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// StockResponse is the atomic outcome of a receipt or issue.
type StockResponse struct {
	Item        ItemResponse        `json:"item"`
	Movement    MovementResponse    `json:"movement"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToItemResponse maps an item entity.
func ToItemResponse(i *entity.InventoryItem) *ItemResponse {
	if i == nil {
		return nil
	}
	return &ItemResponse{
		ID:        i.ID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Unit:      i.Unit,
		Min:       i.Min,
		UpdatedAt: i.UpdatedAt,
		LowStock:  i.LowStock(),
	}
}

// ToMovementResponse maps a movement entity.
func ToMovementResponse(m *entity.Movement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Kind:      m.Kind,
		Qty:       m.Qty,
		UnitPrice: m.UnitPrice,
		Total:     m.Total,
		Party:     m.Party,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
}
