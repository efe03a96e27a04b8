package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo is the PostgreSQL adapter for the stock audit trail (usable
// with pool or tx). Append-only: no update or delete statements exist here.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository builds the adapter. Pass a pool or a tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, item_id, kind, qty, unit_price, total, party, to_char(date, 'YYYY-MM-DD'), created_at`

// Create appends a movement.
func (r *MovementRepo) Create(m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (id, item_id, kind, qty, unit_price, total, party, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ItemID, m.Kind, m.Qty, m.UnitPrice, m.Total, m.Party, m.Date, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByItem returns the audit trail of one item, newest first.
func (r *MovementRepo) ListByItem(itemID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE item_id = $1 ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list movements by item: %w", err)
	}
	return collectMovements(rows)
}

// List returns movements within the inclusive date range, newest first.
func (r *MovementRepo) List(from, to string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE 1=1`
	args := []any{}
	pos := 1
	if from != "" {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, from)
		pos++
	}
	if to != "" {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, to)
		pos++
	}
	query += " ORDER BY date DESC, created_at DESC"
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return collectMovements(rows)
}

func collectMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Kind, &m.Qty, &m.UnitPrice, &m.Total, &m.Party, &m.Date, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
