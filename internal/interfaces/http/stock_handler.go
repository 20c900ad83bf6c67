package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// StockHandler maneja consultas del libro de stock, el endpoint de movimientos
// y las operaciones admin sobre filas concretas.
type StockHandler struct {
	queryUC *usecase.StockQueryUseCase
	engine  *stock.MovementUseCase
	adminUC *stock.AdminUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(queryUC *usecase.StockQueryUseCase, engine *stock.MovementUseCase, adminUC *stock.AdminUseCase) *StockHandler {
	return &StockHandler{queryUC: queryUC, engine: engine, adminUC: adminUC}
}

// List godoc
// @Summary      Listar el libro de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  int  false  "Filtrar por ubicación"
// @Success      200  {array}  dto.StockItemResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var locationID *int64
	if v := c.QueryInt("location_id", 0); v > 0 {
		id := int64(v)
		locationID = &id
	}
	out, err := h.queryUC.List(locationID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// ByProduct godoc
// @Summary      Existencias de un producto por ubicación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {array}  dto.StockItemResponse
// @Router       /api/stock/product/{id} [get]
func (h *StockHandler) ByProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.queryUC.ByProduct(int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Move godoc
// @Summary      Registrar un movimiento de stock (IN, OUT o MOVE)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MoveStockRequest  true  "Movimiento"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/move [post]
func (h *StockHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.engine.ProcessMovementFromRequest(c.UserContext(), actingUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return movementResponse(c, result)
}

// SetQuantity godoc
// @Summary      Fijar la cantidad absoluta de una fila de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la fila de stock"
// @Param        body  body  dto.SetStockQuantityRequest  true  "Cantidad nueva"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/stock/{id} [put]
func (h *StockHandler) SetQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.SetStockQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.adminUC.SetQuantity(c.UserContext(), int64(id), in.Quantity, actingUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fila de stock no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return movementResponse(c, result)
}

// RemoveEntry godoc
// @Summary      Dar de baja una fila de stock completa
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la fila de stock"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/stock/{id} [delete]
func (h *StockHandler) RemoveEntry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	result, err := h.adminUC.RemoveEntry(c.UserContext(), int64(id), actingUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fila de stock no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return movementResponse(c, result)
}

// movementResponse mapea el resultado del motor: rechazo de negocio -> 400 con
// el mensaje del motor; éxito -> 200.
func movementResponse(c *fiber.Ctx, result *stock.MovementResult) error {
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MOVEMENT_REJECTED", Message: result.Message})
	}
	return c.JSON(dto.MessageResponse{Message: result.Message})
}
