package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
	"github.com/jhoicas/almoxarifado-api/internal/application/inventory"
)

// InventoryHandler entradas, salidas e historial de movimientos.
type InventoryHandler struct {
	register *inventory.RegisterMovementUseCase
	query    *inventory.MovementQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(register *inventory.RegisterMovementUseCase, query *inventory.MovementQueryUseCase) *InventoryHandler {
	return &InventoryHandler{register: register, query: query}
}

// Entry godoc
// @Summary      Registrar entrada
// @Description  Suma al producto con la misma descripción (sin distinguir mayúsculas) o lo crea.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntryRequest  true  "description, quantity, unit, warehouseKeeper, occurredAtDate (AAAA-MM-DD)"
// @Success      200   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/entry [post]
func (h *InventoryHandler) Entry(c *fiber.Ctx) error {
	var in dto.EntryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.register.RecordEntryFromRequest(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OperationResponse{Success: true, Message: "Entrada registrada con éxito."})
}

// Exit godoc
// @Summary      Registrar salida
// @Description  Rechaza la salida si supera el stock (INSUFFICIENT_STOCK).
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExitRequest  true  "productRef, quantity, warehouseKeeper y opcionales"
// @Success      200   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/exit [post]
func (h *InventoryHandler) Exit(c *fiber.Ctx) error {
	var in dto.ExitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.register.RecordExitFromRequest(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OperationResponse{Success: true, Message: "Salida registrada con éxito."})
}

// Movements godoc
// @Summary      Historial de movimientos
// @Tags         inventory
// @Produce      json
// @Param        product  query  string  false  "Subcadena de la descripción"
// @Param        type     query  string  false  "entry | exit"
// @Param        from     query  string  false  "AAAA-MM-DD"
// @Param        to       query  string  false  "AAAA-MM-DD"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	var filter dto.MovementFilter
	if err := c.QueryParser(&filter); err != nil {
		return invalidBody(c)
	}
	out, err := h.query.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Totales del historial
// @Tags         inventory
// @Produce      json
// @Param        product  query  string  false  "Subcadena de la descripción"
// @Param        type     query  string  false  "entry | exit"
// @Param        from     query  string  false  "AAAA-MM-DD"
// @Param        to       query  string  false  "AAAA-MM-DD"
// @Success      200  {object}  dto.MovementSummaryResponse
// @Router       /api/movements/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	var filter dto.MovementFilter
	if err := c.QueryParser(&filter); err != nil {
		return invalidBody(c)
	}
	out, err := h.query.Summary(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
