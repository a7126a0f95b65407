package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/dto"
	"github.com/SarahAbdulmajeed/Stocker/internal/application/ledger"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain"
)

// LedgerHandler maneja las peticiones HTTP del libro de inventario:
// recepciones (lotes) y retiros (protegido).
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// CreateEntry godoc
// @Summary      Registrar una recepción (lote nuevo)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockEntryRequest  true  "product_id, supplier_id, quantity > 0, unit_cost, expiry_date, received_date"
// @Success      201   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/entries [post]
func (h *LedgerHandler) CreateEntry(c *fiber.Ctx) error {
	var in dto.CreateStockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterEntry(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos: quantity debe ser positiva y las referencias requeridas"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o proveedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListEntries godoc
// @Summary      Listar lotes
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. resultados (default 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.StockEntryResponse
// @Router       /api/stock/entries [get]
func (h *LedgerHandler) ListEntries(c *fiber.Ctx) error {
	out, err := h.uc.ListEntries(c.Context(), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetEntry godoc
// @Summary      Detalle de un lote
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.StockEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/entries/{id} [get]
func (h *LedgerHandler) GetEntry(c *fiber.Ctx) error {
	out, err := h.uc.GetEntry(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateEntry godoc
// @Summary      Editar un lote (nunca las cantidades)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del lote"
// @Param        body  body  dto.UpdateStockEntryRequest  true  "supplier_id, unit_cost, expiry_date, received_date"
// @Success      200   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/entries/{id} [put]
func (h *LedgerHandler) UpdateEntry(c *fiber.Ctx) error {
	var in dto.UpdateStockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateEntry(c.Context(), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote o proveedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteEntry godoc
// @Summary      Eliminar un lote (solo admin)
// @Tags         stock
// @Security     Bearer
// @Param        id  path  string  true  "ID del lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/entries/{id} [delete]
func (h *LedgerHandler) DeleteEntry(c *fiber.Ctx) error {
	if err := h.uc.DeleteEntry(c.Context(), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
		}
		if err == domain.ErrInUse {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_USE", Message: "el lote tiene retiros registrados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Withdraw godoc
// @Summary      Registrar un retiro contra un lote
// @Description  Verifica y decrementa el saldo del lote de forma atómica.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del lote"
// @Param        body  body  dto.CreateWithdrawalRequest  true  "quantity > 0, reason (SALE|DAMAGE|RETURN|ADJUST|OTHER), notes"
// @Success      201   {object}  dto.WithdrawalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/entries/{id}/withdraw [post]
func (h *LedgerHandler) Withdraw(c *fiber.Ctx) error {
	var in dto.CreateWithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Withdraw(c.Context(), c.Params("id"), in, GetUserID(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reason inválido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente en el lote"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListWithdrawals godoc
// @Summary      Listar retiros
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. resultados (default 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.WithdrawalResponse
// @Router       /api/stock/withdrawals [get]
func (h *LedgerHandler) ListWithdrawals(c *fiber.Ctx) error {
	out, err := h.uc.ListWithdrawals(c.Context(), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListEntryWithdrawals godoc
// @Summary      Listar los retiros de un lote
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {array}   dto.WithdrawalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/entries/{id}/withdrawals [get]
func (h *LedgerHandler) ListEntryWithdrawals(c *fiber.Ctx) error {
	out, err := h.uc.ListEntryWithdrawals(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
