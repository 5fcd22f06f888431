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

// stockHandler handles HTTP requests related to stock records.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
	names        dto.NameReader
}

// newStockHandler creates a new stockHandler.
func newStockHandler(ss portssvc.StockSvcFacade, refs portssvc.ReferenceSvcFacade) *stockHandler {
	return &stockHandler{
		stockService: ss,
		names:        refs.ReadCached,
	}
}

// RegisterStockRoutes registers routes related to stock records.
func RegisterStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade, refService portssvc.ReferenceSvcFacade) {
	h := newStockHandler(stockService, refService)

	stock := rg.Group("/stock")
	{
		stock.GET("", h.listStock)
		stock.POST("", h.createStock)
		stock.PUT("/:id", h.updateStock)
		stock.DELETE("/:id", h.deleteStock)
		stock.POST("/bulk-update", h.bulkUpdateStock)
		stock.POST("/bulk-delete", h.bulkDeleteStock)
		stock.GET("/operations/:kind", h.operationState)
		stock.DELETE("/operations/:kind/error", h.clearOperationError)
	}
}

// listStock godoc
// @Summary List stock records
// @Description Refetches the stock collection and applies filter/sort parameters
// @Tags stock
// @Produce json
// @Param filter query []string false "Filter clause field:matcher:value" collectionFormat(multi)
// @Param sort query string false "Sort field"
// @Param order query string false "Sort direction (asc|desc)"
// @Success 200 {object} dto.ListStockItemsResponse
// @Failure 400 {object} map[string]string "Invalid filter or sort parameter"
// @Failure 502 {object} map[string]string "Backend failure"
// @Security BearerAuth
// @Router /stock [get]
func (h *stockHandler) listStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filters, sortSpec, err := parseListParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, count, err := h.stockService.ListView(c.Request.Context(), filters, sortSpec)
	if err != nil {
		logger.Error("Failed to list stock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToListStockItemsResponse(items, count, h.names))
}

// createStock godoc
// @Summary Create a stock record
// @Description Creates a stock record and merges it into the cached collection
// @Tags stock
// @Accept json
// @Produce json
// @Param stock body dto.CreateStockItemRequest true "Stock details"
// @Success 201 {object} dto.StockItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 502 {object} map[string]string "Backend failure"
// @Security BearerAuth
// @Router /stock [post]
func (h *stockHandler) createStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.stockService.CreateStockItem(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to create stock record")
		return
	}
	c.JSON(http.StatusCreated, dto.ToStockItemResponse(created, h.names))
}

// updateStock godoc
// @Summary Update a stock record
// @Description Replaces the identified stock record and merges the result in place
// @Tags stock
// @Accept json
// @Produce json
// @Param id path string true "Stock ID"
// @Param stock body dto.UpdateStockItemRequest true "Stock details"
// @Success 200 {object} dto.StockItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Stock record not found"
// @Failure 502 {object} map[string]string "Backend failure"
// @Security BearerAuth
// @Router /stock/{id} [put]
func (h *stockHandler) updateStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stockID := c.Param("id")
	var req dto.UpdateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.stockService.UpdateStockItem(c.Request.Context(), stockID, req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to update stock record")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockItemResponse(updated, h.names))
}

// deleteStock godoc
// @Summary Delete a stock record
// @Description Deletes the identified stock record and drops it from the cached collection
// @Tags stock
// @Produce json
// @Param id path string true "Stock ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Stock record not found"
// @Failure 502 {object} map[string]string "Backend failure"
// @Security BearerAuth
// @Router /stock/{id} [delete]
func (h *stockHandler) deleteStock(c *gin.Context) {
	stockID := c.Param("id")
	if err := h.stockService.DeleteStockItem(c.Request.Context(), stockID); err != nil {
		h.writeServiceError(c, err, "Failed to delete stock record")
		return
	}
	c.Status(http.StatusNoContent)
}

// bulkUpdateStock godoc
// @Summary Bulk-update stock records
// @Description Applies one patch across a selection with all-settled semantics; a partial outcome is a 200, not an error
// @Tags stock
// @Accept json
// @Produce json
// @Param batch body dto.BulkUpdateStockRequest true "Selection and patch"
// @Success 200 {object} dto.BulkBatchResponse
// @Failure 400 {object} map[string]string "Invalid input format or empty selection"
// @Security BearerAuth
// @Router /stock/bulk-update [post]
func (h *stockHandler) bulkUpdateStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkUpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bulkUpdateStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	batch, err := h.stockService.BulkUpdateStockItems(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to run bulk stock update")
		return
	}
	h.resyncAfterBulk(c, batch)
	c.JSON(http.StatusOK, dto.ToBulkBatchResponse(batch))
}

// bulkDeleteStock godoc
// @Summary Bulk-delete stock records
// @Description Deletes a selection with all-settled semantics; a partial outcome is a 200, not an error
// @Tags stock
// @Accept json
// @Produce json
// @Param batch body dto.BulkDeleteStockRequest true "Selection"
// @Success 200 {object} dto.BulkBatchResponse
// @Failure 400 {object} map[string]string "Invalid input format or empty selection"
// @Security BearerAuth
// @Router /stock/bulk-delete [post]
func (h *stockHandler) bulkDeleteStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkDeleteStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bulkDeleteStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	batch, err := h.stockService.BulkDeleteStockItems(c.Request.Context(), req.IDs)
	if err != nil {
		h.writeServiceError(c, err, "Failed to run bulk stock delete")
		return
	}
	h.resyncAfterBulk(c, batch)
	c.JSON(http.StatusOK, dto.ToBulkBatchResponse(batch))
}

// resyncAfterBulk refetches the collection when any target succeeded,
// so the cached view reflects the surviving subset even after a partial
// failure. A failed resync is logged but does not fail the bulk result.
func (h *stockHandler) resyncAfterBulk(c *gin.Context, batch domain.BulkBatch) {
	if batch.SuccessCount == 0 {
		return
	}
	if _, _, err := h.stockService.ListView(c.Request.Context(), nil, nil); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Post-bulk stock resync failed", slog.String("error", err.Error()))
	}
}

// operationState godoc
// @Summary Inspect one stock operation
// @Description Reports the status and last error of one operation kind (list|create|update|delete)
// @Tags stock
// @Produce json
// @Param kind path string true "Operation kind"
// @Success 200 {object} domain.OperationState
// @Failure 400 {object} map[string]string "Unknown operation kind"
// @Security BearerAuth
// @Router /stock/operations/{kind} [get]
func (h *stockHandler) operationState(c *gin.Context) {
	kind, ok := domain.ParseOperationKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown operation kind: " + c.Param("kind")})
		return
	}
	c.JSON(http.StatusOK, h.stockService.OperationState(kind))
}

// clearOperationError godoc
// @Summary Clear one stock operation's error
// @Description Explicitly resets one operation kind back to idle; never happens implicitly
// @Tags stock
// @Produce json
// @Param kind path string true "Operation kind"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Unknown operation kind"
// @Security BearerAuth
// @Router /stock/operations/{kind}/error [delete]
func (h *stockHandler) clearOperationError(c *gin.Context) {
	kind, ok := domain.ParseOperationKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown operation kind: " + c.Param("kind")})
		return
	}
	h.stockService.ClearOperationError(kind)
	c.Status(http.StatusNoContent)
}

// writeServiceError maps service errors onto HTTP statuses. Upstream
// messages pass through as-is so the console can show them verbatim.
func (h *stockHandler) writeServiceError(c *gin.Context, err error, logMsg string) {
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
