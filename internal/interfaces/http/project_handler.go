package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karimbadr/mohasib-api/internal/application/dto"
	"github.com/karimbadr/mohasib-api/internal/application/project"
)

// ProjectHandler handles real-estate projects and their costs and unit
// sales (protected).
type ProjectHandler struct {
	uc *project.UseCase
}

// NewProjectHandler builds the handler.
func NewProjectHandler(uc *project.UseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// Create godoc
// @Summary      Register a project
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProjectRequest  true  "name, location, floors, units"
// @Success      201   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if !parseBody(c, &in) {
		return nil
	}
	p, err := h.uc.Create(c.Context(), project.CreateInput{
		Name:     in.Name,
		Location: in.Location,
		Floors:   in.Floors,
		Units:    in.Units,
		Date:     in.Date,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProjectResponse(p))
}

// List godoc
// @Summary      List projects
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProjectResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, dto.ToProjectResponse(p))
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Project detail with costs and sales
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Project ID"
// @Success      200  {object}  dto.ProjectDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	p, costs, sales, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	detail := dto.ProjectDetailResponse{
		Project: *dto.ToProjectResponse(p),
		Costs:   make([]*dto.CostResponse, 0, len(costs)),
		Sales:   make([]*dto.SaleResponse, 0, len(sales)),
	}
	for _, cost := range costs {
		detail.Costs = append(detail.Costs, dto.ToCostResponse(cost))
	}
	for _, sale := range sales {
		detail.Sales = append(detail.Sales, dto.ToSaleResponse(sale))
	}
	return c.JSON(detail)
}

// Delete godoc
// @Summary      Delete a project and everything booked against it
// @Description  Removes the project, its costs, its sales and their derived
// @Description  ledger entries in one transaction.
// @Tags         projects
// @Security     Bearer
// @Param        id  path  string  true  "Project ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddCost godoc
// @Summary      Book a cost against a project
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Project ID"
// @Param        body  body  dto.CreateCostRequest  true  "type, amount, date"
// @Success      201   {object}  dto.CostResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/costs [post]
func (h *ProjectHandler) AddCost(c *fiber.Ctx) error {
	var in dto.CreateCostRequest
	if !parseBody(c, &in) {
		return nil
	}
	result, err := h.uc.AddCost(c.Context(), GetActor(c), project.CostInput{
		ProjectID: c.Params("id"),
		Type:      in.Type,
		Amount:    in.Amount,
		Date:      in.Date,
		Note:      in.Note,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CostResultResponse{
		Cost:        *dto.ToCostResponse(result.Cost),
		Transaction: *dto.ToTransactionResponse(result.Transaction),
	})
}

// DeleteCost godoc
// @Summary      Delete a project cost and its ledger entry
// @Tags         projects
// @Security     Bearer
// @Param        costId  path  string  true  "Cost ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/costs/{costId} [delete]
func (h *ProjectHandler) DeleteCost(c *fiber.Ctx) error {
	if err := h.uc.DeleteCost(c.Context(), c.Params("costId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddSale godoc
// @Summary      Record the sale of a unit
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Project ID"
// @Param        body  body  dto.CreateSaleRequest  true  "unit_no, buyer, price, date"
// @Success      201   {object}  dto.SaleResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/sales [post]
func (h *ProjectHandler) AddSale(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if !parseBody(c, &in) {
		return nil
	}
	result, err := h.uc.AddSale(c.Context(), GetActor(c), project.SaleInput{
		ProjectID: c.Params("id"),
		UnitNo:    in.UnitNo,
		Buyer:     in.Buyer,
		Price:     in.Price,
		Date:      in.Date,
		Terms:     in.Terms,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SaleResultResponse{
		Sale:        *dto.ToSaleResponse(result.Sale),
		Transaction: *dto.ToTransactionResponse(result.Transaction),
	})
}

// DeleteSale godoc
// @Summary      Delete a unit sale and its ledger entry
// @Tags         projects
// @Security     Bearer
// @Param        saleId  path  string  true  "Sale ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/sales/{saleId} [delete]
func (h *ProjectHandler) DeleteSale(c *fiber.Ctx) error {
	if err := h.uc.DeleteSale(c.Context(), c.Params("saleId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
