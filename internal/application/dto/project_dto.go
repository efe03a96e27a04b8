package dto

import (
	"github.com/shopspring/decimal"

	"github.com/karimbadr/mohasib-api/internal/domain/entity"
)

// CreateProjectRequest body for POST /api/projects.
type CreateProjectRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Floors   int    `json:"floors" validate:"required,gt=0"`
	Units    int    `json:"units" validate:"required,gt=0"`
	Date     string `json:"date,omitempty"` // defaults to today
}

// CreateCostRequest body for POST /api/projects/:id/costs.
type CreateCostRequest struct {
	Type   string          `json:"type" validate:"required,oneof=construction operation expense"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
	Date   string          `json:"date" validate:"required"`
	Note   string          `json:"note,omitempty"`
}

// CreateSaleRequest body for POST /api/projects/:id/sales.
type CreateSaleRequest struct {
	UnitNo string          `json:"unit_no" validate:"required"`
	Buyer  string          `json:"buyer" validate:"required"`
	Price  decimal.Decimal `json:"price" validate:"required"`
	Date   string          `json:"date" validate:"required"`
	Terms  string          `json:"terms,omitempty"`
}

// ProjectResponse is one development project.
type ProjectResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Floors    int    `json:"floors"`
	Units     int    `json:"units"`
	CreatedAt string `json:"created_at"`
}

// CostResponse is one project cost.
type CostResponse struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Note      string          `json:"note,omitempty"`
}

// SaleResponse is one unit sale.
type SaleResponse struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	UnitNo    string          `json:"unit_no"`
	Buyer     string          `json:"buyer"`
	Price     decimal.Decimal `json:"price"`
	Date      string          `json:"date"`
	Terms     string          `json:"terms,omitempty"`
}

// ProjectDetailResponse is a project with its financial events.
type ProjectDetailResponse struct {
	Project ProjectResponse `json:"project"`
	Costs   []*CostResponse `json:"costs"`
	Sales   []*SaleResponse `json:"sales"`
}

// CostResultResponse pairs a stored cost with its ledger entry.
type CostResultResponse struct {
	Cost        CostResponse        `json:"cost"`
	Transaction TransactionResponse `json:"transaction"`
}

// SaleResultResponse pairs a stored sale with its ledger entry.
type SaleResultResponse struct {
	Sale        SaleResponse        `json:"sale"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToProjectResponse maps a project entity.
func ToProjectResponse(p *entity.Project) *ProjectResponse {
	if p == nil {
		return nil
	}
	return &ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Location:  p.Location,
		Floors:    p.Floors,
		Units:     p.Units,
		CreatedAt: p.CreatedAt,
	}
}

// ToCostResponse maps a cost entity.
func ToCostResponse(c *entity.ProjectCost) *CostResponse {
	if c == nil {
		return nil
	}
	return &CostResponse{
		ID:        c.ID,
		ProjectID: c.ProjectID,
		Type:      c.Type,
		Amount:    c.Amount,
		Date:      c.Date,
		Note:      c.Note,
	}
}

// ToSaleResponse maps a sale entity.
func ToSaleResponse(s *entity.ProjectSale) *SaleResponse {
	if s == nil {
		return nil
	}
	return &SaleResponse{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		UnitNo:    s.UnitNo,
		Buyer:     s.Buyer,
		Price:     s.Price,
		Date:      s.Date,
		Terms:     s.Terms,
	}
}
