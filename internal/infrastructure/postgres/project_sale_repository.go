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

var _ repository.ProjectSaleRepository = (*ProjectSaleRepo)(nil)

// ProjectSaleRepo is the PostgreSQL adapter for project unit sales.
type ProjectSaleRepo struct {
	q Querier
}

// NewProjectSaleRepository builds the adapter. Pass a pool or a tx (Querier).
func NewProjectSaleRepository(q Querier) *ProjectSaleRepo {
	return &ProjectSaleRepo{q: q}
}

const saleColumns = `id, project_id, unit_no, buyer, price, to_char(date, 'YYYY-MM-DD'), terms`

// Create persists a sale.
func (r *ProjectSaleRepo) Create(s *entity.ProjectSale) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `
		INSERT INTO project_sales (id, project_id, unit_no, buyer, price, date, terms)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	terms := (*string)(nil)
	if s.Terms != "" {
		terms = &s.Terms
	}
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ProjectID, s.UnitNo, s.Buyer, s.Price, s.Date, terms,
	)
	if err != nil {
		return fmt.Errorf("create project sale: %w", err)
	}
	return nil
}

// GetByID returns a sale, or (nil, nil) when missing.
func (r *ProjectSaleRepo) GetByID(id string) (*entity.ProjectSale, error) {
	query := `SELECT ` + saleColumns + ` FROM project_sales WHERE id = $1`
	var s entity.ProjectSale
	var terms *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProjectID, &s.UnitNo, &s.Buyer, &s.Price, &s.Date, &terms,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project sale: %w", err)
	}
	if terms != nil {
		s.Terms = *terms
	}
	return &s, nil
}

// ListByProject returns a project's sales within the inclusive date range,
// newest first.
func (r *ProjectSaleRepo) ListByProject(projectID, from, to string) ([]*entity.ProjectSale, error) {
	query := `SELECT ` + saleColumns + ` FROM project_sales WHERE project_id = $1`
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
		return nil, fmt.Errorf("list project sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProjectSale
	for rows.Next() {
		var s entity.ProjectSale
		var terms *string
		if err := rows.Scan(&s.ID, &s.ProjectID, &s.UnitNo, &s.Buyer, &s.Price, &s.Date, &terms); err != nil {
			return nil, fmt.Errorf("scan project sale: %w", err)
		}
		if terms != nil {
			s.Terms = *terms
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete removes a sale.
func (r *ProjectSaleRepo) Delete(id string) error {
	query := `DELETE FROM project_sales WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete project sale: %w", err)
	}
	return nil
}
