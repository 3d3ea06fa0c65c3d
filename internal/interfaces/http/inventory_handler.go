package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
	"github.com/jhoicas/erp-inventory/internal/application/inventory"
	"github.com/jhoicas/erp-inventory/internal/application/report"
	"github.com/jhoicas/erp-inventory/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del motor FIFO (protegido):
// recepciones, retiros, capas, valoración y lista de reposición.
type InventoryHandler struct {
	stock    *inventory.StockUseCase
	lowStock *inventory.LowStockUseCase
	export   *report.ExportPDFUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	stock *inventory.StockUseCase,
	lowStock *inventory.LowStockUseCase,
	export *report.ExportPDFUseCase,
) *InventoryHandler {
	return &InventoryHandler{stock: stock, lowStock: lowStock, export: export}
}

// Receive godoc
// @Summary      Registrar recepción de mercancía (crea un lote FIFO)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveStockRequest  true  "item_id, warehouse_id, quantity, unit_cost, supplier, received_at (opcional)"
// @Success      201   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/receive [post]
func (h *InventoryHandler) Receive(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ReceiveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.stock.Receive(c.Context(), companyID, userID, in)
	if err != nil {
		return h.mapStockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Withdraw godoc
// @Summary      Registrar salida a costo FIFO
// @Description  Consume lotes del más antiguo al más nuevo. Todo-o-nada: si el
//
//	stock disponible no alcanza, no se consume nada.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WithdrawRequest  true  "item_id, quantity"
// @Success      201   {object}  dto.WithdrawalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/withdraw [post]
func (h *InventoryHandler) Withdraw(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.WithdrawRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.stock.Withdraw(c.Context(), companyID, userID, in)
	if err != nil {
		return h.mapStockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetLayers godoc
// @Summary      Capas FIFO vivas de un artículo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.LayersResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/layers [get]
func (h *InventoryHandler) GetLayers(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.stock.GetLayers(companyID, c.Params("id"))
	if err != nil {
		return h.mapStockError(c, err)
	}
	return c.JSON(out)
}

// Valuation godoc
// @Summary      Valor FIFO en libros de un artículo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ValuationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/valuation [get]
func (h *InventoryHandler) Valuation(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.stock.Valuation(companyID, c.Params("id"))
	if err != nil {
		return h.mapStockError(c, err)
	}
	return c.JSON(out)
}

// ListOnHand godoc
// @Summary      Listado de existencias con filtro por nombre o SKU
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        filter  query  string  false  "subcadena sobre nombre o SKU (case-insensitive)"
// @Param        limit   query  int     false  "máx. resultados (default 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.OnHandListResponse
// @Router       /api/inventory/on-hand [get]
func (h *InventoryHandler) ListOnHand(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.stock.ListOnHand(companyID, c.Query("filter"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetPurchase godoc
// @Summary      Detalle de una compra (lote) por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/purchases/{id} [get]
func (h *InventoryHandler) GetPurchase(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.stock.GetPurchase(companyID, c.Params("id"))
	if err != nil {
		return h.mapStockError(c, err)
	}
	return c.JSON(out)
}

// GetRestockList godoc
// @Summary      Lista de reposición
// @Description  Artículos en o bajo el nivel mínimo de stock con la cantidad
//
//	sugerida de pedido, los críticos primero.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.LowStockRow
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/restock-list [get]
func (h *InventoryHandler) GetRestockList(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.lowStock.List(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(list), "items": list})
}

// ExportValuationPDF godoc
// @Summary      Exportar inventario valorado a PDF
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/valuation/pdf [get]
func (h *InventoryHandler) ExportValuationPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pdfBytes, err := h.export.Export(c.Context(), companyID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario-valorado.pdf"`)
	return c.Send(pdfBytes)
}

// mapStockError traduce errores de dominio del motor FIFO a estados HTTP.
func (h *InventoryHandler) mapStockError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidQuantity:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad debe ser mayor que cero"})
	case domain.ErrInvalidCost:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el costo unitario no puede ser negativo"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la cantidad solicitada"})
	case domain.ErrUnknownItem, domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
