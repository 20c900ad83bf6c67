package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// MobileHandler canal del escáner móvil: el producto llega siempre como código
// QR escaneado y se resuelve aquí; los movimientos se registran sin usuario
// ejecutor (el canal se autentica por clave de aplicación, no por sesión).
type MobileHandler struct {
	productUC  *usecase.ProductUseCase
	locationUC *usecase.LocationUseCase
	queryUC    *usecase.StockQueryUseCase
	engine     *stock.MovementUseCase
}

// NewMobileHandler construye el handler móvil.
func NewMobileHandler(productUC *usecase.ProductUseCase, locationUC *usecase.LocationUseCase, queryUC *usecase.StockQueryUseCase, engine *stock.MovementUseCase) *MobileHandler {
	return &MobileHandler{productUC: productUC, locationUC: locationUC, queryUC: queryUC, engine: engine}
}

// ListProducts godoc
// @Summary      Listar productos con totales (móvil)
// @Tags         mobile
// @Produce      json
// @Success      200  {array}  dto.ProductWithTotalResponse
// @Router       /api/mobile/products [get]
func (h *MobileHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.productUC.ListWithTotals()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// CreateProduct godoc
// @Summary      Crear producto desde el escáner (idempotente por código QR)
// @Tags         mobile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MobileCreateProductRequest  true  "qrCode, name"
// @Success      201   {object}  dto.ProductResponse
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/mobile/products [post]
func (h *MobileHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.MobileCreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.QRCode == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "qrCode y name son requeridos"})
	}
	out, created, err := h.productUC.Create(dto.CreateProductRequest{Name: in.Name, QRCode: in.QRCode})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if !created {
		return c.JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListLocations godoc
// @Summary      Listar ubicaciones (móvil)
// @Tags         mobile
// @Produce      json
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/mobile/locations [get]
func (h *MobileHandler) ListLocations(c *fiber.Ctx) error {
	out, err := h.locationUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// StockByQR godoc
// @Summary      Existencias de un producto escaneado
// @Tags         mobile
// @Produce      json
// @Param        qr  query  string  true  "Código QR escaneado"
// @Success      200  {object}  dto.MobileStockByQRResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mobile/stock/by-qr [get]
func (h *MobileHandler) StockByQR(c *fiber.Ctx) error {
	qr := c.Query("qr")
	if qr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "qr es requerido"})
	}
	product, err := h.productUC.GetByQRCode(qr)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay producto con ese código"})
	}
	items, err := h.queryUC.ByProduct(product.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	resp := dto.MobileStockByQRResponse{
		Product: *product,
		Stock:   make([]dto.MobileStockAtLocation, 0, len(items)),
	}
	for _, s := range items {
		resp.Stock = append(resp.Stock, dto.MobileStockAtLocation{
			ID:           s.ID,
			LocationID:   s.LocationID,
			LocationName: s.LocationName,
			Quantity:     s.Quantity,
			UpdatedAt:    s.UpdatedAt,
		})
		resp.TotalQuantity += s.Quantity
	}
	return c.JSON(resp)
}

// StockByLocation godoc
// @Summary      Existencias de una ubicación
// @Tags         mobile
// @Produce      json
// @Param        location_id  query  int  true  "ID de la ubicación"
// @Success      200  {array}  dto.StockItemResponse
// @Router       /api/mobile/stock/by-location [get]
func (h *MobileHandler) StockByLocation(c *fiber.Ctx) error {
	v := c.QueryInt("location_id", 0)
	if v <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id es requerido"})
	}
	locationID := int64(v)
	out, err := h.queryUC.List(&locationID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// AddStock godoc
// @Summary      Entrada de stock desde el escáner (IN)
// @Tags         mobile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MobileAddStockRequest  true  "qrCode, locationId, quantity"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/mobile/stock/add [post]
func (h *MobileHandler) AddStock(c *fiber.Ctx) error {
	var in dto.MobileAddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.productUC.GetByQRCode(in.QRCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay producto con ese código"})
	}
	result, err := h.engine.ProcessMovement(c.UserContext(), stock.MovementInput{
		Kind:         entity.MovementKindIN,
		ProductID:    product.ID,
		Quantity:     in.Quantity,
		ToLocationID: &in.LocationID,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return movementResponse(c, result)
}

// MoveStock godoc
// @Summary      Traslado de stock desde el escáner (MOVE)
// @Tags         mobile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MobileMoveStockRequest  true  "qrCode, fromLocationId, toLocationId, quantity"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/mobile/stock/move [post]
func (h *MobileHandler) MoveStock(c *fiber.Ctx) error {
	var in dto.MobileMoveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.FromLocationID == in.ToLocationID {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "origen y destino no pueden ser la misma ubicación"})
	}
	product, err := h.productUC.GetByQRCode(in.QRCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay producto con ese código"})
	}
	result, err := h.engine.ProcessMovement(c.UserContext(), stock.MovementInput{
		Kind:           entity.MovementKindMOVE,
		ProductID:      product.ID,
		Quantity:       in.Quantity,
		FromLocationID: &in.FromLocationID,
		ToLocationID:   &in.ToLocationID,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return movementResponse(c, result)
}
