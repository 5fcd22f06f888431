package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
	"github.com/harbourline/freight_console_app/internal/dto"
	"github.com/harbourline/freight_console_app/internal/middleware"
)

// defaultAuditPageSize is the change-feed page size when the client
// does not ask for one.
const defaultAuditPageSize = 50

// auditHandler serves the flattened change feed.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: as}
}

// RegisterAuditRoutes registers the change-feed route.
func RegisterAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)
	rg.GET("/audit-logs", h.listChanges)
}

// listChanges godoc
// @Summary List audit changes
// @Description Fetches one page of audit history for the authenticated user, flattened into rendered change records
// @Tags audit
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(50)
// @Success 200 {object} dto.ListChangesResponse
// @Failure 400 {object} map[string]string "Invalid page parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend failure"
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *auditHandler) listChanges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currentUser, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultAuditPageSize)))
	if err != nil || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pageSize must be a positive integer"})
		return
	}

	changes, err := h.auditService.ListChanges(c.Request.Context(), currentUser, page, pageSize)
	if err != nil {
		logger.Error("Failed to list audit changes", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToListChangesResponse(page, changes))
}
