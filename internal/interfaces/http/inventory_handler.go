package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/karimbadr/mohasib-api/internal/application/dto"
	"github.com/karimbadr/mohasib-api/internal/application/inventory"
	"github.com/karimbadr/mohasib-api/internal/domain/policy"
)

// InventoryHandler handles stocked items and stock movements (protected).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// CreateItem godoc
// @Summary      Register a stocked material
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name, quantity, unit, min"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/items [post]
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	item, err := h.uc.CreateItem(c.Context(), inventory.CreateItemInput{
		Name:     in.Name,
		Quantity: in.Quantity,
		Unit:     in.Unit,
		Min:      in.Min,
		Date:     in.Date,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToItemResponse(item))
}

// ListItems godoc
// @Summary      List stocked materials
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/inventory/items [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.uc.ListItems(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ToItemResponse(item))
	}
	return c.JSON(out)
}

// DeleteItem godoc
// @Summary      Delete a stocked material
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  string  true  "Item ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.uc.DeleteItem(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Record a stock receipt from a supplier
// @Description  Raises the item quantity and books the paired expense in one
// @Description  transaction. The response carries item, movement and ledger
// @Description  entry together.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockRequest  true  "item_id, qty, unit_price, party (supplier), date"
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/receipts [post]
func (h *InventoryHandler) Receipt(c *fiber.Ctx) error {
	return h.stock(c, h.uc.RecordReceipt)
}

// Issue godoc
// @Summary      Record a stock issue to a project
// @Description  Lowers the item quantity (clamped at zero) and books the
// @Description  paired expense in one transaction.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockRequest  true  "item_id, qty, unit_price, party (project), date"
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/issues [post]
func (h *InventoryHandler) Issue(c *fiber.Ctx) error {
	return h.stock(c, h.uc.RecordIssue)
}

func (h *InventoryHandler) stock(c *fiber.Ctx, record func(ctx context.Context, actor policy.Actor, in inventory.StockInput) (*inventory.StockResult, error)) error {
	var in dto.StockRequest
	if !parseBody(c, &in) {
		return nil
	}
	result, err := record(c.Context(), GetActor(c), inventory.StockInput{
		ItemID:    in.ItemID,
		Qty:       in.Qty,
		UnitPrice: in.UnitPrice,
		Party:     in.Party,
		Date:      in.Date,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StockResponse{
		Item:        *dto.ToItemResponse(result.Item),
		Movement:    *dto.ToMovementResponse(result.Movement),
		Transaction: *dto.ToTransactionResponse(result.Transaction),
	})
}

// ItemMovements godoc
// @Summary      List one item's stock movements
// @Description  Movements are kept as history, so this also serves items that
// @Description  were deleted.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Item ID"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/movements [get]
func (h *InventoryHandler) ItemMovements(c *fiber.Ctx) error {
	movements, err := h.uc.ItemMovements(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.ToMovementResponse(m))
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      List stock movements
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Inclusive start date (YYYY-MM-DD)"
// @Param        to    query  string  false  "Inclusive end date (YYYY-MM-DD)"
// @Success      200   {array}   dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	movements, err := h.uc.ListMovements(c.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.ToMovementResponse(m))
	}
	return c.JSON(out)
}
