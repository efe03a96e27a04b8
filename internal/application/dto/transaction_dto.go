package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/karimbadr/mohasib-api/internal/domain/entity"
)

// CreateTransactionRequest body for POST /api/transactions (manual quick-entry).
type CreateTransactionRequest struct {
	Date        string          `json:"date" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=revenue expense"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
}

// TransactionResponse is one ledger entry.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Approved    bool            `json:"approved"`
	CreatedBy   string          `json:"created_by,omitempty"`
	SourceID    string          `json:"source_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToTransactionResponse maps a ledger entity.
func ToTransactionResponse(t *entity.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}
	return &TransactionResponse{
		ID:          t.ID,
		Date:        t.Date,
		Type:        t.Type,
		Description: t.Description,
		Amount:      t.Amount,
		Approved:    t.Approved,
		CreatedBy:   t.CreatedBy,
		SourceID:    t.SourceID,
		CreatedAt:   t.CreatedAt,
	}
}

// ToTransactionResponses maps a list.
func ToTransactionResponses(list []*entity.Transaction) []*TransactionResponse {
	out := make([]*TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, ToTransactionResponse(t))
	}
	return out
}
