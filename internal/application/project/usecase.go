package project

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/karimbadr/mohasib-api/internal/application/ledger"
	"github.com/karimbadr/mohasib-api/internal/domain"
	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/domain/policy"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

// UseCase manages real-estate projects and their financial events. Costs and
// sales always carry a paired ledger transaction; creating or deleting either
// happens inside one database transaction.
type UseCase struct {
	txRunner ledger.TxRunner
	projects repository.ProjectRepository
	costs    repository.ProjectCostRepository
	sales    repository.ProjectSaleRepository
}

// NewUseCase builds the use case.
func NewUseCase(txRunner ledger.TxRunner, projects repository.ProjectRepository, costs repository.ProjectCostRepository, sales repository.ProjectSaleRepository) *UseCase {
	return &UseCase{txRunner: txRunner, projects: projects, costs: costs, sales: sales}
}

// CreateInput is a new development project.
type CreateInput struct {
	Name     string
	Location string
	Floors   int
	Units    int
	Date     string // becomes CreatedAt
}

// CostInput books a cost against a project.
type CostInput struct {
	ProjectID string
	Type      string // construction | operation | expense
	Amount    decimal.Decimal
	Date      string
	Note      string
}

// SaleInput records the sale of one unit.
type SaleInput struct {
	ProjectID string
	UnitNo    string
	Buyer     string
	Price     decimal.Decimal
	Date      string
	Terms     string
}

// CostResult pairs the stored cost with its ledger entry.
type CostResult struct {
	Cost        *entity.ProjectCost
	Transaction *entity.Transaction
}

// SaleResult pairs the stored sale with its ledger entry.
type SaleResult struct {
	Sale        *entity.ProjectSale
	Transaction *entity.Transaction
}

// Create registers a project.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*entity.Project, error) {
	if in.Name == "" || in.Location == "" || !entity.ValidDate(in.Date) {
		return nil, domain.ErrInvalidInput
	}
	if in.Floors <= 0 || in.Units <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Project{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Location:  in.Location,
		Floors:    in.Floors,
		Units:     in.Units,
		CreatedAt: in.Date,
	}
	if err := uc.projects.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all projects.
func (uc *UseCase) List(ctx context.Context) ([]*entity.Project, error) {
	return uc.projects.List()
}

// Get returns one project with its costs and sales.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Project, []*entity.ProjectCost, []*entity.ProjectSale, error) {
	p, err := uc.projects.GetByID(id)
	if err != nil {
		return nil, nil, nil, err
	}
	if p == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	costs, err := uc.costs.ListByProject(id, "", "")
	if err != nil {
		return nil, nil, nil, err
	}
	sales, err := uc.sales.ListByProject(id, "", "")
	if err != nil {
		return nil, nil, nil, err
	}
	return p, costs, sales, nil
}

// AddCost books a cost and its paired expense transaction atomically.
func (uc *UseCase) AddCost(ctx context.Context, actor policy.Actor, in CostInput) (*CostResult, error) {
	if !entity.ValidCostType(in.Type) || !entity.ValidDate(in.Date) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.projects.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	var result CostResult
	err = uc.txRunner.Run(ctx, func(r ledger.Repos) error {
		cost := &entity.ProjectCost{
			ID:        uuid.New().String(),
			ProjectID: p.ID,
			Type:      in.Type,
			Amount:    in.Amount,
			Date:      in.Date,
			Note:      in.Note,
		}
		if err := r.Costs.Create(cost); err != nil {
			return err
		}
		tx := ledger.Paired(actor, in.Date, entity.TransactionExpense,
			ledger.CostDescription(entity.CostTypeLabel(in.Type), p.Name), in.Amount, cost.ID)
		if err := r.Transactions.Create(tx); err != nil {
			return err
		}
		result = CostResult{Cost: cost, Transaction: tx}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteCost removes a cost and its paired transaction atomically. A missing
// paired transaction (already deleted by hand) does not fail the operation.
func (uc *UseCase) DeleteCost(ctx context.Context, id string) error {
	cost, err := uc.costs.GetByID(id)
	if err != nil {
		return err
	}
	if cost == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(r ledger.Repos) error {
		if err := r.Costs.Delete(id); err != nil {
			return err
		}
		return r.Transactions.DeleteBySourceID(id)
	})
}

// AddSale records a unit sale and its paired revenue transaction atomically.
// Sales are not capped against Project.Units; overselling shows up in the
// project report instead of being rejected here.
func (uc *UseCase) AddSale(ctx context.Context, actor policy.Actor, in SaleInput) (*SaleResult, error) {
	if in.UnitNo == "" || in.Buyer == "" || !entity.ValidDate(in.Date) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.projects.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	var result SaleResult
	err = uc.txRunner.Run(ctx, func(r ledger.Repos) error {
		sale := &entity.ProjectSale{
			ID:        uuid.New().String(),
			ProjectID: p.ID,
			UnitNo:    in.UnitNo,
			Buyer:     in.Buyer,
			Price:     in.Price,
			Date:      in.Date,
			Terms:     in.Terms,
		}
		if err := r.Sales.Create(sale); err != nil {
			return err
		}
		tx := ledger.Paired(actor, in.Date, entity.TransactionRevenue,
			ledger.SaleDescription(in.UnitNo, p.Name, in.Buyer), in.Price, sale.ID)
		if err := r.Transactions.Create(tx); err != nil {
			return err
		}
		result = SaleResult{Sale: sale, Transaction: tx}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteSale removes a sale and its paired transaction atomically.
func (uc *UseCase) DeleteSale(ctx context.Context, id string) error {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(r ledger.Repos) error {
		if err := r.Sales.Delete(id); err != nil {
			return err
		}
		return r.Transactions.DeleteBySourceID(id)
	})
}

// Delete removes a project and cascades: costs and sales first, each pulling
// its paired ledger entry, then the project itself — children before parent,
// one transaction for the whole cascade.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.projects.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(r ledger.Repos) error {
		costs, err := r.Costs.ListByProject(id, "", "")
		if err != nil {
			return err
		}
		for _, c := range costs {
			if err := r.Costs.Delete(c.ID); err != nil {
				return err
			}
			if err := r.Transactions.DeleteBySourceID(c.ID); err != nil {
				return err
			}
		}
		sales, err := r.Sales.ListByProject(id, "", "")
		if err != nil {
			return err
		}
		for _, s := range sales {
			if err := r.Sales.Delete(s.ID); err != nil {
				return err
			}
			if err := r.Transactions.DeleteBySourceID(s.ID); err != nil {
				return err
			}
		}
		return r.Projects.Delete(id)
	})
}
