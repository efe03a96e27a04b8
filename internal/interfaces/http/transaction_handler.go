package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karimbadr/mohasib-api/internal/application/dto"
	"github.com/karimbadr/mohasib-api/internal/application/ledger"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
)

// TransactionHandler handles the financial ledger endpoints (protected).
type TransactionHandler struct {
	uc *ledger.TransactionUseCase
}

// NewTransactionHandler builds the handler.
func NewTransactionHandler(uc *ledger.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Create godoc
// @Summary      Record a manual ledger entry
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "date, type, description, amount"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if !parseBody(c, &in) {
		return nil
	}
	tx, err := h.uc.CreateManual(c.Context(), GetActor(c), ledger.ManualEntryInput{
		Date:        in.Date,
		Type:        in.Type,
		Description: in.Description,
		Amount:      in.Amount,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToTransactionResponse(tx))
}

// List godoc
// @Summary      List ledger entries
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Inclusive start date (YYYY-MM-DD)"
// @Param        to    query  string  false  "Inclusive end date (YYYY-MM-DD)"
// @Param        type  query  string  false  "revenue or expense"
// @Success      200   {array}   dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), repository.TransactionFilter{
		From: c.Query("from"),
		To:   c.Query("to"),
		Type: c.Query("type"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToTransactionResponses(list))
}

// Approve godoc
// @Summary      Approve a pending ledger entry
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Transaction ID"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id}/approve [post]
func (h *TransactionHandler) Approve(c *fiber.Ctx) error {
	tx, err := h.uc.Approve(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToTransactionResponse(tx))
}

// Delete godoc
// @Summary      Delete a ledger entry
// @Tags         transactions
// @Security     Bearer
// @Param        id  path  string  true  "Transaction ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
