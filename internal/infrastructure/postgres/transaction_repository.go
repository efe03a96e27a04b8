package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo is the PostgreSQL adapter for ledger entries (usable with
// pool or tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository builds the adapter. Pass a pool or a tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, to_char(date, 'YYYY-MM-DD'), type, description, amount, approved, created_by, source_id, created_at`

// Create persists a ledger entry.
func (r *TransactionRepo) Create(t *entity.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transactions (id, date, type, description, amount, approved, created_by, source_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	createdBy := (*string)(nil)
	if t.CreatedBy != "" {
		createdBy = &t.CreatedBy
	}
	sourceID := (*string)(nil)
	if t.SourceID != "" {
		sourceID = &t.SourceID
	}
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Date, t.Type, t.Description, t.Amount, t.Approved, createdBy, sourceID, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// GetByID returns a ledger entry, or (nil, nil) when missing.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	t, err := scanTransaction(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// SetApproved flips the approved flag on.
func (r *TransactionRepo) SetApproved(id string) error {
	query := `UPDATE transactions SET approved = true WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("approve transaction: %w", err)
	}
	return nil
}

// Delete removes a ledger entry.
func (r *TransactionRepo) Delete(id string) error {
	query := `DELETE FROM transactions WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// DeleteBySourceID removes the entry derived from a movement/cost/sale.
// Zero affected rows is fine: the entry may have been deleted by hand.
func (r *TransactionRepo) DeleteBySourceID(sourceID string) error {
	query := `DELETE FROM transactions WHERE source_id = $1`
	if _, err := r.q.Exec(context.Background(), query, sourceID); err != nil {
		return fmt.Errorf("delete transaction by source: %w", err)
	}
	return nil
}

// List returns entries matching the filter, newest first.
func (r *TransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.From != "" {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, filter.From)
		pos++
	}
	if filter.To != "" {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, filter.To)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	var createdBy, sourceID *string
	err := row.Scan(&t.ID, &t.Date, &t.Type, &t.Description, &t.Amount, &t.Approved, &createdBy, &sourceID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		t.CreatedBy = *createdBy
	}
	if sourceID != nil {
		t.SourceID = *sourceID
	}
	return &t, nil
}
