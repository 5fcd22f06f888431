package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harbourline/freight_console_app/internal/apperrors"
	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
	"github.com/harbourline/freight_console_app/internal/dto"
	"github.com/harbourline/freight_console_app/internal/middleware"
)

// customerHandler covers the customer sub-resources the console mutates.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{customerService: cs}
}

// RegisterCustomerRoutes registers customer sub-resource routes.
func RegisterCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(customerService)
	rg.POST("/customers/:id/contacts/bulk", h.bulkCreateContacts)
}

// bulkCreateContacts godoc
// @Summary Bulk-create contact persons
// @Description Creates contact persons for one customer sequentially, stopping at the first failure; later persons are left untried
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param batch body dto.BulkCreateContactsRequest true "Contact persons"
// @Success 200 {object} dto.BulkBatchResponse
// @Failure 400 {object} map[string]string "Invalid input format or empty batch"
// @Security BearerAuth
// @Router /customers/{id}/contacts/bulk [post]
func (h *customerHandler) bulkCreateContacts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("id")

	var req dto.BulkCreateContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bulkCreateContacts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	batch, err := h.customerService.BulkCreateContacts(c.Request.Context(), customerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error in bulkCreateContacts", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to run bulk contact creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToBulkBatchResponse(batch))
}
