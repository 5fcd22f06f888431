package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
	"github.com/harbourline/freight_console_app/internal/dto"
	"github.com/harbourline/freight_console_app/internal/middleware"
)

// catalogHandler serves the read-only fleet and rate-list views.
type catalogHandler struct {
	vesselService portssvc.VesselSvcFacade
	rateService   portssvc.RateSvcFacade
	names         dto.NameReader
}

func newCatalogHandler(vs portssvc.VesselSvcFacade, rs portssvc.RateSvcFacade, refs portssvc.ReferenceSvcFacade) *catalogHandler {
	return &catalogHandler{
		vesselService: vs,
		rateService:   rs,
		names:         refs.ReadCached,
	}
}

// RegisterCatalogRoutes registers the vessel and rate-list routes.
func RegisterCatalogRoutes(rg *gin.RouterGroup, vesselService portssvc.VesselSvcFacade, rateService portssvc.RateSvcFacade, refService portssvc.ReferenceSvcFacade) {
	h := newCatalogHandler(vesselService, rateService, refService)

	rg.GET("/vessels", h.listVessels)
	rg.GET("/rates", h.listRates)
}

// listVessels godoc
// @Summary List vessels
// @Description Lists the fleet registry with filter/sort parameters
// @Tags catalog
// @Produce json
// @Param filter query []string false "Filter clause field:matcher:value" collectionFormat(multi)
// @Param sort query string false "Sort field"
// @Param order query string false "Sort direction (asc|desc)"
// @Success 200 {object} dto.ListVesselsResponse
// @Failure 400 {object} map[string]string "Invalid filter or sort parameter"
// @Failure 502 {object} map[string]string "Backend failure"
// @Security BearerAuth
// @Router /vessels [get]
func (h *catalogHandler) listVessels(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filters, sortSpec, err := parseListParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vessels, count, err := h.vesselService.ListView(c.Request.Context(), filters, sortSpec)
	if err != nil {
		logger.Error("Failed to list vessels", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToListVesselsResponse(vessels, count))
}

// listRates godoc
// @Summary List freight rates
// @Description Lists vendor rate lists with filter/sort parameters
// @Tags catalog
// @Produce json
// @Param filter query []string false "Filter clause field:matcher:value" collectionFormat(multi)
// @Param sort query string false "Sort field"
// @Param order query string false "Sort direction (asc|desc)"
// @Success 200 {object} dto.ListFreightRatesResponse
// @Failure 400 {object} map[string]string "Invalid filter or sort parameter"
// @Failure 502 {object} map[string]string "Backend failure"
// @Security BearerAuth
// @Router /rates [get]
func (h *catalogHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filters, sortSpec, err := parseListParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rates, count, err := h.rateService.ListView(c.Request.Context(), filters, sortSpec)
	if err != nil {
		logger.Error("Failed to list rates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToListFreightRatesResponse(rates, count, h.names))
}
