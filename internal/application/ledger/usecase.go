package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/karimbadr/mohasib-api/internal/domain"
	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/policy"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

// TransactionUseCase covers the ledger operations that are not derived from
// inventory or project events: manual quick-entries, listing, the approval
// transition and independent deletion.
type TransactionUseCase struct {
	transactions repository.TransactionRepository
}

// NewTransactionUseCase builds the use case.
func NewTransactionUseCase(transactions repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{transactions: transactions}
}

// ManualEntryInput is a user-entered ledger entry.
type ManualEntryInput struct {
	Date        string
	Type        string // revenue | expense
	Description string
	Amount      decimal.Decimal
}

// Paired builds the ledger entry derived from a domain event. Approved comes
// from the role policy, CreatedBy from the actor, SourceID from the
// originating record. The caller persists it inside the same transaction as
// the source record.
func Paired(actor policy.Actor, date, typ, description string, amount decimal.Decimal, sourceID string) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New().String(),
		Date:        date,
		Type:        typ,
		Description: description,
		Amount:      amount,
		Approved:    policy.AutoApprove(actor),
		CreatedBy:   actor.ID,
		SourceID:    sourceID,
		CreatedAt:   time.Now(),
	}
}

// CreateManual records a quick-entry. Type, date and amount are validated
// before any write; the approved flag follows the role policy.
func (uc *TransactionUseCase) CreateManual(ctx context.Context, actor policy.Actor, in ManualEntryInput) (*entity.Transaction, error) {
	if !entity.ValidTransactionType(in.Type) || !entity.ValidDate(in.Date) {
		return nil, domain.ErrInvalidInput
	}
	if in.Description == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.Transaction{
		ID:          uuid.New().String(),
		Date:        in.Date,
		Type:        in.Type,
		Description: in.Description,
		Amount:      in.Amount,
		Approved:    policy.AutoApprove(actor),
		CreatedBy:   actor.ID,
		CreatedAt:   time.Now(),
	}
	if err := uc.transactions.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Approve flips an unapproved entry to approved. Manager only; one-way.
func (uc *TransactionUseCase) Approve(ctx context.Context, actor policy.Actor, id string) (*entity.Transaction, error) {
	if !policy.CanApprove(actor) {
		return nil, domain.ErrPermissionDenied
	}
	t, err := uc.transactions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if t.Approved {
		return nil, domain.ErrAlreadyApproved
	}
	if err := uc.transactions.SetApproved(id); err != nil {
		return nil, err
	}
	t.Approved = true
	return t, nil
}

// Delete removes a ledger entry on its own. If the entry was derived from a
// movement/cost/sale the source record stays behind; reconciliation happens
// through the report views.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) error {
	t, err := uc.transactions.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.transactions.Delete(id)
}

// List returns ledger entries matching the filter, newest first.
func (uc *TransactionUseCase) List(ctx context.Context, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	if filter.From != "" && !entity.ValidDate(filter.From) {
		return nil, domain.ErrInvalidInput
	}
	if filter.To != "" && !entity.ValidDate(filter.To) {
		return nil, domain.ErrInvalidInput
	}
	if filter.Type != "" && !entity.ValidTransactionType(filter.Type) {
		return nil, domain.ErrInvalidInput
	}
	return uc.transactions.List(filter)
}
