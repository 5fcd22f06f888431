package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harbourline/freight_console_app/internal/apperrors"
	"github.com/harbourline/freight_console_app/internal/core/domain"
	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
	"github.com/harbourline/freight_console_app/internal/dto"
	"github.com/harbourline/freight_console_app/internal/middleware"
)

// orderHandler handles HTTP requests related to shipping orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
	names        dto.NameReader
}

func newOrderHandler(os portssvc.OrderSvcFacade, refs portssvc.ReferenceSvcFacade) *orderHandler {
	return &orderHandler{
		orderService: os,
		names:        refs.ReadCached,
	}
}

// RegisterOrderRoutes registers routes related to shipping orders.
func RegisterOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade, refService portssvc.ReferenceSvcFacade) {
	h := newOrderHandler(orderService, refService)

	orders := rg.Group("/shipping-orders")
	{
		orders.GET("", h.listOrders)
		orders.POST("", h.createOrder)
		orders.PUT("/:id", h.updateOrder)
		orders.DELETE("/:id", h.deleteOrder)
		orders.POST("/bulk-delete", h.bulkDeleteOrders)
		orders.GET("/operations/:kind", h.operationState)
		orders.DELETE("/operations/:kind/error", h.clearOperationError)
	}
}

// listOrders godoc
// @Summary List shipping orders
// @Description Refetches the shipping-order collection and applies filter/sort parameters
// @Tags shipping-orders
// @Produce json
// @Param filter query []string false "Filter clause field:matcher:value" collectionFormat(multi)
// @Param sort query string false "Sort field"
// @Param order query string false "Sort direction (asc|desc)"
// @Success 200 {object} dto.ListShippingOrdersResponse
// @Failure 400 {object} map[string]string "Invalid filter or sort parameter"
// @Failure 502 {object} map[string]string "Backend failure"
// @Security BearerAuth
// @Router /shipping-orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filters, sortSpec, err := parseListParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders, count, err := h.orderService.ListView(c.Request.Context(), filters, sortSpec)
	if err != nil {
		logger.Error("Failed to list shipping orders", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToListShippingOrdersResponse(orders, count, h.names))
}

// createOrder godoc
// @Summary Create a shipping order
// @Tags shipping-orders
// @Accept json
// @Produce json
// @Param order body dto.CreateShippingOrderRequest true "Order details"
// @Success 201 {object} dto.ShippingOrderResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 502 {object} map[string]string "Backend failure"
// @Security BearerAuth
// @Router /shipping-orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateShippingOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.orderService.CreateShippingOrder(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to create shipping order")
		return
	}
	c.JSON(http.StatusCreated, dto.ToShippingOrderResponse(created, h.names))
}

// updateOrder godoc
// @Summary Update a shipping order
// @Tags shipping-orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param order body dto.UpdateShippingOrderRequest true "Order details"
// @Success 200 {object} dto.ShippingOrderResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 502 {object} map[string]string "Backend failure"
// @Security BearerAuth
// @Router /shipping-orders/{id} [put]
func (h *orderHandler) updateOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")
	var req dto.UpdateShippingOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.orderService.UpdateShippingOrder(c.Request.Context(), orderID, req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to update shipping order")
		return
	}
	c.JSON(http.StatusOK, dto.ToShippingOrderResponse(updated, h.names))
}

// deleteOrder godoc
// @Summary Delete a shipping order
// @Tags shipping-orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 502 {object} map[string]string "Backend failure"
// @Security BearerAuth
// @Router /shipping-orders/{id} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	orderID := c.Param("id")
	if err := h.orderService.DeleteShippingOrder(c.Request.Context(), orderID); err != nil {
		h.writeServiceError(c, err, "Failed to delete shipping order")
		return
	}
	c.Status(http.StatusNoContent)
}

// bulkDeleteOrders godoc
// @Summary Bulk-delete shipping orders
// @Description Deletes a selection with all-settled semantics; a partial outcome is a 200, not an error
// @Tags shipping-orders
// @Accept json
// @Produce json
// @Param batch body dto.BulkDeleteOrdersRequest true "Selection"
// @Success 200 {object} dto.BulkBatchResponse
// @Failure 400 {object} map[string]string "Invalid input format or empty selection"
// @Security BearerAuth
// @Router /shipping-orders/bulk-delete [post]
func (h *orderHandler) bulkDeleteOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkDeleteOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bulkDeleteOrders", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	batch, err := h.orderService.BulkDeleteShippingOrders(c.Request.Context(), req.IDs)
	if err != nil {
		h.writeServiceError(c, err, "Failed to run bulk order delete")
		return
	}
	if batch.SuccessCount > 0 {
		if _, _, err := h.orderService.ListView(c.Request.Context(), nil, nil); err != nil {
			logger.Warn("Post-bulk order resync failed", slog.String("error", err.Error()))
		}
	}
	c.JSON(http.StatusOK, dto.ToBulkBatchResponse(batch))
}

// operationState godoc
// @Summary Inspect one shipping-order operation
// @Tags shipping-orders
// @Produce json
// @Param kind path string true "Operation kind"
// @Success 200 {object} domain.OperationState
// @Failure 400 {object} map[string]string "Unknown operation kind"
// @Security BearerAuth
// @Router /shipping-orders/operations/{kind} [get]
func (h *orderHandler) operationState(c *gin.Context) {
	kind, ok := domain.ParseOperationKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown operation kind: " + c.Param("kind")})
		return
	}
	c.JSON(http.StatusOK, h.orderService.OperationState(kind))
}

// clearOperationError godoc
// @Summary Clear one shipping-order operation's error
// @Tags shipping-orders
// @Produce json
// @Param kind path string true "Operation kind"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Unknown operation kind"
// @Security BearerAuth
// @Router /shipping-orders/operations/{kind}/error [delete]
func (h *orderHandler) clearOperationError(c *gin.Context) {
	kind, ok := domain.ParseOperationKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown operation kind: " + c.Param("kind")})
		return
	}
	h.orderService.ClearOperationError(kind)
	c.Status(http.StatusNoContent)
}

func (h *orderHandler) writeServiceError(c *gin.Context, err error, logMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(logMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(logMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error(logMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
