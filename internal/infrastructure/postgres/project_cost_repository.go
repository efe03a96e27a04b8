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

var _ repository.ProjectCostRepository = (*ProjectCostRepo)(nil)

// ProjectCostRepo is the PostgreSQL adapter for project costs (usable with
// pool or tx).
type ProjectCostRepo struct {
	q Querier
}

// NewProjectCostRepository builds the adapter. Pass a pool or a tx (Querier).
func NewProjectCostRepository(q Querier) *ProjectCostRepo {
	return &ProjectCostRepo{q: q}
}

const costColumns = `id, project_id, type, amount, to_char(date, 'YYYY-MM-DD'), note`

// Create persists a cost.
func (r *ProjectCostRepo) Create(c *entity.ProjectCost) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO project_costs (id, project_id, type, amount, date, note)
		VALUES ($1, $2, $3, $4, $5, $6)`
	note := (*string)(nil)
	if c.Note != "" {
		note = &c.Note
	}
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ProjectID, c.Type, c.Amount, c.Date, note,
	)
	if err != nil {
		return fmt.Errorf("create project cost: %w", err)
	}
	return nil
}

// GetByID returns a cost, or (nil, nil) when missing.
func (r *ProjectCostRepo) GetByID(id string) (*entity.ProjectCost, error) {
	query := `SELECT ` + costColumns + ` FROM project_costs WHERE id = $1`
	var c entity.ProjectCost
	var note *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ProjectID, &c.Type, &c.Amount, &c.Date, &note,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project cost: %w", err)
	}
	if note != nil {
		c.Note = *note
	}
	return &c, nil
}

// ListByProject returns a project's costs within the inclusive date range,
// newest first.
func (r *ProjectCostRepo) ListByProject(projectID, from, to string) ([]*entity.ProjectCost, error) {
	query := `SELECT ` + costColumns + ` FROM project_costs WHERE project_id = $1`
	args := []any{projectID}
	pos := 2
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
	query += " ORDER BY date DESC"
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list project costs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProjectCost
	for rows.Next() {
		var c entity.ProjectCost
		var note *string
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Type, &c.Amount, &c.Date, &note); err != nil {
			return nil, fmt.Errorf("scan project cost: %w", err)
		}
		if note != nil {
			c.Note = *note
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete removes a cost.
func (r *ProjectCostRepo) Delete(id string) error {
	query := `DELETE FROM project_costs WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete project cost: %w", err)
	}
	return nil
}
