package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/leadfunnel-backend/internal/domain/ports"
	"github.com/rafabene/leadfunnel-backend/internal/handlers/dto"
	"github.com/rafabene/leadfunnel-backend/internal/services"
)

// DashboardHandler expõe as métricas agregadas
type DashboardHandler struct {
	dashboardService *services.DashboardService
	logger           ports.Logger
}

// NewDashboardHandler cria um novo DashboardHandler
func NewDashboardHandler(dashboardService *services.DashboardService, logger ports.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetStats godoc
// @Summary      Métricas do dashboard
// @Description  Calculadas a cada requisição a partir de leads e lead magnets
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		respondInternal(c, h.logger, "dashboard.stats_failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
