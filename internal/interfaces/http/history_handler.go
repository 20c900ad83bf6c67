package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// HistoryHandler historial de movimientos y agregados del panel admin.
type HistoryHandler struct {
	historyUC *usecase.HistoryUseCase
	statsUC   *usecase.StatsUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(historyUC *usecase.HistoryUseCase, statsUC *usecase.StatsUseCase) *HistoryHandler {
	return &HistoryHandler{historyUC: historyUC, statsUC: statsUC}
}

// List godoc
// @Summary      Historial de movimientos (más recientes primero)
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(100)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.HistoryEntryResponse
// @Router       /api/admin/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	offset := c.QueryInt("offset", 0)
	out, err := h.historyUC.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Agregados del panel admin
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/admin/stats [get]
func (h *HistoryHandler) Stats(c *fiber.Ctx) error {
	out, err := h.statsUC.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
