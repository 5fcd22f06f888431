package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
	"github.com/harbourline/freight_console_app/internal/dto"
)

// referenceHandler exposes batched id-to-name resolution.
type referenceHandler struct {
	refService portssvc.ReferenceSvcFacade
}

func newReferenceHandler(rs portssvc.ReferenceSvcFacade) *referenceHandler {
	return &referenceHandler{refService: rs}
}

// RegisterReferenceRoutes registers the reference resolution route.
func RegisterReferenceRoutes(rg *gin.RouterGroup, refService portssvc.ReferenceSvcFacade) {
	h := newReferenceHandler(refService)
	rg.GET("/references/:kind", h.resolveReferences)
}

// resolveReferences godoc
// @Summary Resolve reference ids to display names
// @Description Resolves a comma-separated batch of ids for one entity kind. Ids that cannot be resolved carry their fallback name; resolution failures never fail the request.
// @Tags references
// @Produce json
// @Param kind path string true "Entity kind (customer|vessel|vendor|destination|currency|location|user)"
// @Param ids query string true "Comma-separated ids"
// @Success 200 {object} dto.ResolveReferencesResponse
// @Failure 400 {object} map[string]string "Unknown entity kind or empty id list"
// @Security BearerAuth
// @Router /references/{kind} [get]
func (h *referenceHandler) resolveReferences(c *gin.Context) {
	kind, ok := domain.ParseEntityKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown entity kind: " + c.Param("kind")})
		return
	}

	var ids []string
	for _, id := range strings.Split(c.Query("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No ids given"})
		return
	}

	names := h.refService.ResolveMany(c.Request.Context(), kind, ids)
	c.JSON(http.StatusOK, dto.ResolveReferencesResponse{
		Kind:  string(kind),
		Names: names,
	})
}
